package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-sitepass/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const workDateConstraint = "uq_attendance_worker_workdate"

// mapRepositoryError turns the losing side of a concurrent check-in into
// ErrAlreadyOpen.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == workDateConstraint {
			return attendanceerrors.ErrAlreadyOpen
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, workDateConstraint) {
		return attendanceerrors.ErrAlreadyOpen
	}

	return err
}
