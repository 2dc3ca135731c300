package attendance_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-sitepass/internal/attendance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_CloseIfOpen(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE "attendance_records" SET`) + `.*check_out_at IS NULL`

	t.Run("closes an open record", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := attendance.NewRepository(gdb).CloseIfOpen(ctx, "a-1", at, true)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already closed matches no row", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := attendance.NewRepository(gdb).CloseIfOpen(ctx, "a-1", at, true)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindByWorkerAndDate_NotFound(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "attendance_records" WHERE worker_id = $1 AND work_date = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := attendance.NewRepository(gdb).FindByWorkerAndDate(context.Background(), "w-1",
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_OpenSiteIDs(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(`SELECT DISTINCT .*site_id.* FROM "attendance_records" WHERE check_out_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"site_id"}).AddRow("s-1").AddRow("s-2"))

	ids, err := attendance.NewRepository(gdb).OpenSiteIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"s-1", "s-2"}, ids)
}

func TestRepository_ListOpenAtSite(t *testing.T) {
	gdb, mock := newGormMock(t)
	cutoff := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	id := "6f1c2b7e-7d0a-4a47-9a39-3c1d8f3e2a10"

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "attendance_records" WHERE site_id = $1 AND check_out_at IS NULL AND check_in_at <= $2 ORDER BY check_in_at ASC`)).
		WithArgs("s-1", cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id", "check_in_at"}).AddRow(id, cutoff))

	rows, err := attendance.NewRepository(gdb).ListOpenAtSite(context.Background(), "s-1", cutoff)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID.String())
	assert.True(t, rows[0].CheckInAt.Equal(cutoff))
	assert.NoError(t, mock.ExpectationsWereMet())
}
