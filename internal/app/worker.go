package app

import (
	"context"
	"errors"

	"go-sitepass/internal/bootstrap"
	"go-sitepass/internal/config"
	"go-sitepass/internal/jobs"
	"go-sitepass/internal/messaging/kafka"
	"go-sitepass/internal/messaging/kafka/producer"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox and runs the periodic sweeps until
// SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB.Postgres(), cfg.DB.Retries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.Retries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.Retries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	m, err := buildModules(cfg, sqlDB, gormDB, redisClient, bootstrap.NopAuditLogger{}, zap.L())
	if err != nil {
		return err
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Jobs.OutboxPollInterval,
	)

	runner := jobs.NewRunner(m.attendance, m.verification, clock.System(), logger).
		WithOutboxPurge(outboxRepo, cfg.Jobs.OutboxRetention)
	scheduler, err := runner.Schedule(jobs.Schedules{
		AutoClose:           cfg.Jobs.AutoCloseSchedule,
		VerificationCleanup: cfg.Jobs.VerificationCleanupSchedule,
		OutboxPurge:         cfg.Jobs.OutboxPurgeSchedule,
	})
	if err != nil {
		return err
	}
	scheduler.Start()
	logger.Info("sweeps scheduled",
		zap.String("auto_close", cfg.Jobs.AutoCloseSchedule),
		zap.String("verification_cleanup", cfg.Jobs.VerificationCleanupSchedule),
		zap.String("outbox_purge", cfg.Jobs.OutboxPurgeSchedule),
	)

	sig := bootstrap.WaitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig))

	cancel()
	<-scheduler.Stop().Done()

	return nil
}
