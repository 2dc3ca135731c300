package app

import (
	"context"
	"fmt"

	"go-sitepass/internal/attendance"
	"go-sitepass/internal/directory"
	"go-sitepass/internal/identity"
	"go-sitepass/internal/verification"
	"go-sitepass/internal/worker"

	"gorm.io/gorm"
)

// schemaStatements holds what gorm tags cannot express: the partial phone
// index and the outbox table written through database/sql.
var schemaStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_workers_phone_live
		ON workers (phone)
		WHERE status IN ('PENDING', 'REQUESTED', 'ACTIVE')`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id             uuid PRIMARY KEY,
		request_id     varchar(64),
		aggregate_type varchar(50)  NOT NULL,
		aggregate_id   uuid         NOT NULL,
		event_type     varchar(100) NOT NULL,
		topic          varchar(200) NOT NULL,
		payload        jsonb        NOT NULL,
		status         varchar(20)  NOT NULL DEFAULT 'pending',
		retry_count    int          NOT NULL DEFAULT 0,
		next_retry_at  timestamptz,
		error_message  varchar(500),
		processed_at   timestamptz,
		created_at     timestamptz  NOT NULL DEFAULT NOW(),
		updated_at     timestamptz  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
		ON outbox_events (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_open
		ON attendance_records (site_id, check_in_at)
		WHERE check_out_at IS NULL`,
}

// Migrate brings the schema up to date. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)
	if err := conn.AutoMigrate(
		&directory.Company{},
		&directory.Site{},
		&directory.Team{},
		&worker.Worker{},
		&identity.Credential{},
		&verification.Challenge{},
		&attendance.Record{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range schemaStatements {
		if err := conn.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
