package worker

import (
	"context"
	"database/sql"

	"go-sitepass/internal/shared/connection"
	"go-sitepass/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// phonePriority orders the workers sharing a phone so that the one holding
// it comes first, then blocked, then the most recent history.
const phonePriority = `CASE status
	WHEN 'PENDING' THEN 0 WHEN 'REQUESTED' THEN 0 WHEN 'ACTIVE' THEN 0
	WHEN 'BLOCKED' THEN 1
	WHEN 'INACTIVE' THEN 2
	ELSE 3 END`

//go:generate mockgen -source=worker_repo.go -destination=mock/worker_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *Worker) error
	Update(ctx context.Context, w *Worker) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Worker, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Worker, error)
	FindByPhone(ctx context.Context, phone string) (*Worker, error)
	FindByPhoneForUpdate(ctx context.Context, phone string) (*Worker, error)
	ExistsRegistered(ctx context.Context, phone string) (bool, error)
	ListByStatus(ctx context.Context, status string, filter tenant.Filter) ([]Worker, error)
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

func (r *repository) Create(ctx context.Context, w *Worker) error {
	return r.conn(ctx).Create(w).Error
}

func (r *repository) Update(ctx context.Context, w *Worker) error {
	return r.conn(ctx).Save(w).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Worker{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Worker, error) {
	var w Worker
	err := r.conn(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Worker, error) {
	var w Worker
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*Worker, error) {
	return r.findByPhone(r.conn(ctx), phone)
}

func (r *repository) FindByPhoneForUpdate(ctx context.Context, phone string) (*Worker, error) {
	return r.findByPhone(r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), phone)
}

func (r *repository) findByPhone(db *gorm.DB, phone string) (*Worker, error) {
	var w Worker
	err := db.
		Where("phone = ?", phone).
		Order(phonePriority).
		Order("updated_at DESC").
		Take(&w).Error
	return &w, err
}

func (r *repository) ExistsRegistered(ctx context.Context, phone string) (bool, error) {
	var n int64
	err := r.conn(ctx).
		Model(&Worker{}).
		Where("phone = ? AND status IN ?", phone, []string{StatusPending, StatusRequested, StatusActive, StatusBlocked, StatusInactive}).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) ListByStatus(ctx context.Context, status string, filter tenant.Filter) ([]Worker, error) {
	var workers []Worker
	err := r.conn(ctx).
		Scopes(filter.Scope()).
		Where("status = ?", status).
		Order("requested_at ASC NULLS LAST").
		Find(&workers).Error
	return workers, err
}
