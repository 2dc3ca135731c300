package worker

import (
	"errors"
	"strings"

	workererrors "go-sitepass/internal/worker/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const phoneLiveConstraint = "uq_workers_phone_live"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workererrors.ErrWorkerNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == phoneLiveConstraint {
			return workererrors.ErrPhoneInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, phoneLiveConstraint) {
		return workererrors.ErrPhoneInUse
	}

	return err
}
