package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-sitepass/internal/attendance/errors"
	"go-sitepass/internal/directory"
	"go-sitepass/internal/events"
	"go-sitepass/internal/messaging/kafka"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/tenant"
	"go-sitepass/internal/worker"
	workererrors "go-sitepass/internal/worker/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const monthLayout = "2006-01"

// Workers gates attendance on the worker's current status and placement.
type Workers interface {
	GetStatus(ctx context.Context, workerID string) (worker.StatusView, error)
}

// Sites supplies the day boundary and checkout policy of a site.
type Sites interface {
	GetSitePolicy(ctx context.Context, siteID string) (directory.SitePolicy, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, workerID string) (CheckInResponse, error)
	CheckOut(ctx context.Context, workerID string) (CheckOutResponse, error)
	IssueQR(ctx context.Context, workerID string) (QRResponse, error)
	CheckInByQR(ctx context.Context, actor contextutil.Actor, req QRCheckInRequest) (CheckInResponse, error)
	Monthly(ctx context.Context, workerID, month string) (MonthlyResponse, error)
	AutoClose(ctx context.Context, asOf time.Time) (int, error)
}

type Options struct {
	// QRSecret signs the gate QR payloads. Without it IssueQR fails.
	QRSecret string
	Clock    clock.Clock
}

type service struct {
	db      *sql.DB
	repo    Repository
	workers Workers
	sites   Sites
	outbox  kafka.OutboxRepository
	qr      qrSigner
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	workers Workers,
	sites Sites,
	outbox kafka.OutboxRepository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	return &service{
		db:      db,
		repo:    repo,
		workers: workers,
		sites:   sites,
		outbox:  outbox,
		qr:      qrSigner{secret: []byte(opts.QRSecret), clock: opts.Clock},
		clock:   opts.Clock,
		logger:  l,
	}
}

// activeWorker loads the worker and its site policy, refusing anyone who is
// not ACTIVE.
func (s *service) activeWorker(ctx context.Context, workerID string) (worker.StatusView, directory.SitePolicy, error) {
	view, err := s.workers.GetStatus(ctx, workerID)
	if err != nil {
		return worker.StatusView{}, directory.SitePolicy{}, err
	}
	if view.Status != worker.StatusActive {
		return worker.StatusView{}, directory.SitePolicy{}, workererrors.NotActive(view.Status)
	}
	policy, err := s.sites.GetSitePolicy(ctx, view.SiteID)
	if err != nil {
		return worker.StatusView{}, directory.SitePolicy{}, err
	}
	return view, policy, nil
}

func (s *service) CheckIn(ctx context.Context, workerID string) (CheckInResponse, error) {
	view, policy, err := s.activeWorker(ctx, workerID)
	if err != nil {
		return CheckInResponse{}, err
	}
	return s.checkIn(ctx, view, policy, "")
}

func (s *service) IssueQR(ctx context.Context, workerID string) (QRResponse, error) {
	if _, _, err := s.activeWorker(ctx, workerID); err != nil {
		return QRResponse{}, err
	}
	if len(s.qr.secret) == 0 {
		return QRResponse{}, errors.New("attendance qr secret is not configured")
	}
	payload, expiresAt, err := s.qr.sign(workerID)
	if err != nil {
		return QRResponse{}, err
	}
	return QRResponse{
		Payload:          payload,
		ExpiresAt:        expiresAt,
		ExpiresInSeconds: int(QRTTL / time.Second),
	}, nil
}

// CheckInByQR checks in the worker a scanned payload was issued to. The
// scanning administrator must cover the worker's team.
func (s *service) CheckInByQR(ctx context.Context, actor contextutil.Actor, req QRCheckInRequest) (CheckInResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if !tenant.IsAdmin(actor.Role) {
		return CheckInResponse{}, apperror.ErrForbidden
	}

	workerID, err := s.qr.parse(req.Payload)
	if err != nil {
		log.Info("qr check-in refused", zap.String("actor_id", actor.WorkerID), zap.Error(err))
		return CheckInResponse{}, err
	}

	view, err := s.workers.GetStatus(ctx, workerID)
	if err != nil {
		return CheckInResponse{}, err
	}
	if !tenant.Covers(actor, view.CompanyID, view.SiteID, view.TeamID) {
		return CheckInResponse{}, apperror.ErrForbidden
	}
	if view.Status != worker.StatusActive {
		return CheckInResponse{}, workererrors.NotActive(view.Status)
	}
	policy, err := s.sites.GetSitePolicy(ctx, view.SiteID)
	if err != nil {
		return CheckInResponse{}, err
	}
	return s.checkIn(ctx, view, policy, actor.WorkerID)
}

func (s *service) checkIn(ctx context.Context, view worker.StatusView, policy directory.SitePolicy, scannedBy string) (CheckInResponse, error) {
	workerID := view.WorkerID
	ids, err := parsePlacement(view)
	if err != nil {
		return CheckInResponse{}, err
	}

	now := s.clock.Now().UTC()
	workDate := policy.WorkDate(now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CheckInResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.FindByWorkerAndDate(ctx, workerID, workDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckInResponse{}, err
	}
	if err == nil {
		if existing.Open() {
			return CheckInResponse{}, attendanceerrors.ErrAlreadyOpen
		}
		return CheckInResponse{}, attendanceerrors.ErrAlreadyCompleted
	}

	rec := &Record{
		ID:        uuid.New(),
		WorkerID:  ids.worker,
		CompanyID: ids.company,
		SiteID:    ids.site,
		TeamID:    ids.team,
		WorkDate:  workDate,
		CheckInAt: now,
	}
	if !view.BirthDate.IsZero() {
		age := ageOn(view.BirthDate, workDate)
		rec.Age = &age
		rec.IsSenior = age >= policy.SeniorAge
	}
	if err := qtx.Create(ctx, rec); err != nil {
		return CheckInResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return CheckInResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("checked in",
		zap.String("attendance_id", rec.ID.String()),
		zap.String("work_date", workDate.Format(workDateLayout)),
		zap.String("scanned_by", scannedBy),
	)

	return CheckInResponse{
		AttendanceID: rec.ID.String(),
		WorkDate:     workDate.Format(workDateLayout),
		CheckInTime:  now,
		Status:       StatusWorking,
		WorkerName:   view.Name,
		IsSenior:     rec.IsSenior,
	}, nil
}

func (s *service) CheckOut(ctx context.Context, workerID string) (CheckOutResponse, error) {
	_, policy, err := s.activeWorker(ctx, workerID)
	if err != nil {
		return CheckOutResponse{}, err
	}

	now := s.clock.Now().UTC()
	rec, err := s.repo.FindByWorkerAndDate(ctx, workerID, policy.WorkDate(now))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckOutResponse{}, attendanceerrors.ErrNoOpenSession
	}
	if err != nil {
		return CheckOutResponse{}, err
	}
	if !rec.Open() {
		return CheckOutResponse{}, attendanceerrors.ErrNoOpenSession
	}

	closed, err := s.repo.CloseIfOpen(ctx, rec.ID.String(), now, false)
	if err != nil {
		return CheckOutResponse{}, err
	}
	if !closed {
		// auto-close or a parallel checkout got there first
		return CheckOutResponse{}, attendanceerrors.ErrNoOpenSession
	}

	minutes := minutesBetween(rec.CheckInAt, now)
	contextutil.GetLogger(ctx, s.logger).Info("checked out",
		zap.String("attendance_id", rec.ID.String()),
		zap.Int("duration_minutes", minutes),
	)

	return CheckOutResponse{
		AttendanceID:        rec.ID.String(),
		CheckOutTime:        now,
		WorkDurationMinutes: minutes,
		Status:              StatusWorkDone,
	}, nil
}

func (s *service) Monthly(ctx context.Context, workerID, month string) (MonthlyResponse, error) {
	view, err := s.workers.GetStatus(ctx, workerID)
	if err != nil {
		return MonthlyResponse{}, err
	}

	var first time.Time
	if month == "" {
		policy, err := s.sites.GetSitePolicy(ctx, view.SiteID)
		if err != nil {
			return MonthlyResponse{}, err
		}
		wd := policy.WorkDate(s.clock.Now())
		first = time.Date(wd.Year(), wd.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		first, err = time.Parse(monthLayout, month)
		if err != nil {
			return MonthlyResponse{}, attendanceerrors.ErrInvalidMonth
		}
	}

	rows, err := s.repo.ListByWorkerBetween(ctx, workerID, first, first.AddDate(0, 1, 0))
	if err != nil {
		return MonthlyResponse{}, err
	}

	resp := MonthlyResponse{
		Month:   first.Format(monthLayout),
		Records: make([]RecordResponse, 0, len(rows)),
		Summary: MonthlySummary{BusinessDays: businessDaysInMonth(first)},
	}
	for i := range rows {
		r := &rows[i]
		resp.Records = append(resp.Records, toRecordResponse(r))
		resp.Summary.DaysWorked++
		resp.Summary.TotalMinutes += r.DurationMinutes()
		if r.AutoClosed {
			resp.Summary.AutoClosedCount++
		}
	}
	return resp, nil
}

// AutoClose closes every open record at an AUTO_{N}H site whose check-in is
// at least N hours before asOf, stamping checkout at check-in plus N hours.
// Records already closed by someone else are skipped, so overlapping sweeps
// are harmless. It returns how many records this call closed.
func (s *service) AutoClose(ctx context.Context, asOf time.Time) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	siteIDs, err := s.repo.OpenSiteIDs(ctx)
	if err != nil {
		return 0, err
	}

	var (
		closed int
		errs   []error
	)
	for _, siteID := range siteIDs {
		policy, err := s.sites.GetSitePolicy(ctx, siteID)
		if err != nil {
			errs = append(errs, fmt.Errorf("site %s policy: %w", siteID, err))
			continue
		}
		if !policy.Checkout.Auto {
			continue
		}

		window := policy.Checkout.Duration()
		rows, err := s.repo.ListOpenAtSite(ctx, siteID, asOf.Add(-window))
		if err != nil {
			errs = append(errs, fmt.Errorf("site %s open records: %w", siteID, err))
			continue
		}
		for i := range rows {
			ok, err := s.closeOne(ctx, &rows[i], rows[i].CheckInAt.Add(window))
			if err != nil {
				errs = append(errs, fmt.Errorf("record %s: %w", rows[i].ID, err))
				continue
			}
			if ok {
				closed++
			}
		}
	}

	if closed > 0 || len(errs) > 0 {
		log.Info("auto-close sweep finished",
			zap.Int("closed", closed),
			zap.Int("failed", len(errs)),
			zap.Time("as_of", asOf),
		)
	}
	return closed, errors.Join(errs...)
}

func (s *service) closeOne(ctx context.Context, rec *Record, checkOutAt time.Time) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	ok, err := s.repo.WithTx(tx).CloseIfOpen(ctx, rec.ID.String(), checkOutAt, true)
	if err != nil || !ok {
		return false, err
	}

	rec.CheckOutAt = &checkOutAt
	rec.AutoClosed = true
	if err := s.writeAutoClosedEvent(ctx, tx, rec); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) writeAutoClosedEvent(ctx context.Context, tx *sql.Tx, rec *Record) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewEvent(contextutil.GetRequestID(ctx), "attendance", rec.ID.String(),
		events.AttendanceAutoClosedType, events.AttendanceAutoClosedTopic,
		events.AttendanceAutoClosedEvent{
			EventType:       events.AttendanceAutoClosedType,
			AttendanceID:    rec.ID.String(),
			WorkerID:        rec.WorkerID.String(),
			SiteID:          rec.SiteID.String(),
			WorkDate:        rec.WorkDate.Format(workDateLayout),
			CheckInAt:       rec.CheckInAt,
			CheckOutAt:      *rec.CheckOutAt,
			DurationMinutes: rec.DurationMinutes(),
			OccurredAt:      s.clock.Now().UTC(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

type placementIDs struct {
	worker, company, site, team uuid.UUID
}

func parsePlacement(v worker.StatusView) (placementIDs, error) {
	var (
		ids placementIDs
		err error
	)
	if ids.worker, err = uuid.Parse(v.WorkerID); err != nil {
		return ids, fmt.Errorf("worker id: %w", err)
	}
	if ids.company, err = uuid.Parse(v.CompanyID); err != nil {
		return ids, fmt.Errorf("company id: %w", err)
	}
	if ids.site, err = uuid.Parse(v.SiteID); err != nil {
		return ids, fmt.Errorf("site id: %w", err)
	}
	if ids.team, err = uuid.Parse(v.TeamID); err != nil {
		return ids, fmt.Errorf("team id: %w", err)
	}
	return ids, nil
}

func toRecordResponse(r *Record) RecordResponse {
	status := StatusWorking
	if !r.Open() {
		status = StatusWorkDone
	}
	return RecordResponse{
		ID:              r.ID.String(),
		WorkDate:        r.WorkDate.Format(workDateLayout),
		SiteID:          r.SiteID.String(),
		CheckInAt:       r.CheckInAt,
		CheckOutAt:      r.CheckOutAt,
		AutoClosed:      r.AutoClosed,
		IsSenior:        r.IsSenior,
		DurationMinutes: r.DurationMinutes(),
		Status:          status,
	}
}
