package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-sitepass/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Record) error
	FindByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*Record, error)
	CloseIfOpen(ctx context.Context, id string, checkOutAt time.Time, autoClosed bool) (bool, error)
	OpenSiteIDs(ctx context.Context) ([]string, error)
	ListOpenAtSite(ctx context.Context, siteID string, checkedInBefore time.Time) ([]Record, error)
	ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]Record, error)
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

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) FindByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*Record, error) {
	var rec Record
	err := r.conn(ctx).
		Where("worker_id = ?", workerID).
		Where("work_date = ?", workDate.Format(workDateLayout)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CloseIfOpen sets check_out_at only while it is still NULL. It reports
// whether this call did the close, so overlapping sweeps and a concurrent
// manual check-out cannot both win.
func (r *repository) CloseIfOpen(ctx context.Context, id string, checkOutAt time.Time, autoClosed bool) (bool, error) {
	res := r.conn(ctx).
		Model(&Record{}).
		Where("id = ? AND check_out_at IS NULL", id).
		Updates(map[string]any{
			"check_out_at": checkOutAt,
			"auto_closed":  autoClosed,
			"updated_at":   checkOutAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// OpenSiteIDs lists the sites that currently have at least one open record.
func (r *repository) OpenSiteIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&Record{}).
		Where("check_out_at IS NULL").
		Distinct().
		Pluck("site_id", &ids).Error
	return ids, err
}

func (r *repository) ListOpenAtSite(ctx context.Context, siteID string, checkedInBefore time.Time) ([]Record, error) {
	var rows []Record
	err := r.conn(ctx).
		Where("site_id = ?", siteID).
		Where("check_out_at IS NULL").
		Where("check_in_at <= ?", checkedInBefore).
		Order("check_in_at ASC").
		Find(&rows).Error
	return rows, err
}

// ListByWorkerBetween returns records whose work date is in [from, to).
func (r *repository) ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]Record, error) {
	var rows []Record
	err := r.conn(ctx).
		Where("worker_id = ?", workerID).
		Where("work_date >= ? AND work_date < ?", from.Format(workDateLayout), to.Format(workDateLayout)).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}
