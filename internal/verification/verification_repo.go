package verification

import (
	"context"
	"database/sql"
	"time"

	"go-sitepass/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_repo.go -destination=mock/verification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Challenge) error
	DeleteUnconsumed(ctx context.Context, phone, purpose string) error
	FindLatest(ctx context.Context, phone, purpose string) (*Challenge, error)
	FindByID(ctx context.Context, id string) (*Challenge, error)
	IncrementAttempts(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, id string, at time.Time) error
	MarkConsumed(ctx context.Context, id, consumer string, at time.Time) (bool, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.GormWithTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, c *Challenge) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) DeleteUnconsumed(ctx context.Context, phone, purpose string) error {
	return r.conn(ctx).
		Where("phone = ? AND purpose = ? AND consumed_at IS NULL", phone, purpose).
		Delete(&Challenge{}).Error
}

func (r *repository) FindLatest(ctx context.Context, phone, purpose string) (*Challenge, error) {
	var c Challenge
	err := r.conn(ctx).
		Where("phone = ? AND purpose = ? AND consumed_at IS NULL", phone, purpose).
		Order("issued_at DESC").
		First(&c).Error
	return &c, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Challenge, error) {
	var c Challenge
	err := r.conn(ctx).Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *repository) IncrementAttempts(ctx context.Context, id string) error {
	return r.conn(ctx).
		Model(&Challenge{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

func (r *repository) MarkVerified(ctx context.Context, id string, at time.Time) error {
	return r.conn(ctx).
		Model(&Challenge{}).
		Where("id = ? AND verified_at IS NULL", id).
		UpdateColumn("verified_at", at).Error
}

// MarkConsumed flips consumed_at only if it is still NULL and reports whether
// this call won.
func (r *repository) MarkConsumed(ctx context.Context, id, consumer string, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&Challenge{}).
		Where("id = ? AND verified_at IS NOT NULL AND consumed_at IS NULL", id).
		UpdateColumns(map[string]any{
			"consumed_at": at,
			"consumed_by": consumer,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.conn(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&Challenge{})
	return res.RowsAffected, res.Error
}
