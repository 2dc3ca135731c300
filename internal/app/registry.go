package app

import (
	"database/sql"

	"go-sitepass/internal/attendance"
	"go-sitepass/internal/auth"
	"go-sitepass/internal/bootstrap"
	"go-sitepass/internal/config"
	"go-sitepass/internal/directory"
	"go-sitepass/internal/identity"
	"go-sitepass/internal/messaging/kafka"
	"go-sitepass/internal/middleware"
	"go-sitepass/internal/notification"
	"go-sitepass/internal/rbac"
	rbacinfra "go-sitepass/internal/rbac/infra"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/token"
	"go-sitepass/internal/verification"
	"go-sitepass/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// modules is the service graph shared by the API and the background worker.
type modules struct {
	directory    directory.Service
	verification verification.Service
	worker       worker.Service
	auth         auth.Service
	attendance   attendance.Service
	rbac         rbac.Service
	issuer       *token.Issuer
}

func newNotificationGateway(cfg config.SMSConfig, logger *zap.Logger) notification.Gateway {
	if cfg.Enabled() {
		return notification.NewTwilioGateway(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger)
	}
	logger.Warn("twilio is not configured, SMS will only be logged")
	return notification.NewLogGateway(logger)
}

func buildModules(
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) (*modules, error) {
	clk := clock.System()

	// --- Repositories ---
	directoryRepo := directory.NewRepository(gormDB)
	verificationRepo := verification.NewRepository(gormDB)
	identityRepo := identity.NewRepository(gormDB)
	workerRepo := worker.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(rdb)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbacinfra.NewEnforcer("")
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	sms := newNotificationGateway(cfg.SMS, logger)
	directoryService := directory.NewService(directoryRepo, rdb, directory.Options{
		DefaultTimezone:     cfg.DefaultTimezone,
		DefaultDayStartHour: cfg.DefaultDayStartHour,
	}, logger)

	// verification asks the worker registry whether a phone is known, and
	// the registry consumes verification tokens; the lookup closes the loop.
	phones := &phoneLookup{}
	verificationService := verification.NewService(verificationRepo, sms, phones, verification.Options{
		Secret: cfg.Auth.VerificationSecret,
		Clock:  clk,
	}, logger)

	workerService := worker.NewService(db, workerRepo, worker.Dependencies{
		Credentials: identityRepo,
		Verifier:    verificationService,
		Placements:  directoryService,
		Sender:      sms,
		Outbox:      outboxRepo,
		Audit:       audit,
	}, worker.Options{
		InviteSecret:  cfg.Auth.InviteSecret,
		InviteBaseURL: cfg.InviteBaseURL,
		Clock:         clk,
	}, logger)
	phones.workers = workerService

	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, clk)
	authService := auth.NewService(authRepo, workerService, verificationService, identityRepo, issuer, auth.Options{
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
		Clock:      clk,
	}, logger)

	attendanceService := attendance.NewService(db, attendanceRepo, workerService, directoryService, outboxRepo,
		attendance.Options{QRSecret: cfg.Auth.QRSecret, Clock: clk}, logger)

	return &modules{
		directory:    directoryService,
		verification: verificationService,
		worker:       workerService,
		auth:         authService,
		attendance:   attendanceService,
		rbac:         rbacService,
		issuer:       issuer,
	}, nil
}

func registerRoutes(router *gin.Engine, m *modules, rdb *redis.Client, secureCookies bool, logger *zap.Logger) {
	authenticate := middleware.Authenticate(m.issuer)

	// --- Handlers ---
	authHandler := auth.NewHandler(m.auth, secureCookies, logger)
	verificationHandler := verification.NewHandler(m.verification, logger)
	directoryHandler := directory.NewHandler(m.directory, logger)
	workerHandler := worker.NewHandler(m.worker, logger)
	attendanceHandler := attendance.NewHandler(m.attendance, logger)
	rbacHandler := rbac.NewHandler(m.rbac, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		verification.RegisterRoutes(api, verificationHandler)
		directory.RegisterRoutes(api, directoryHandler)
		worker.RegisterRoutes(api, workerHandler, authenticate, m.rbac, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, authenticate, m.rbac, rdb)
		rbac.RegisterRoutes(api, rbacHandler, authenticate, m.rbac)
	}
}
