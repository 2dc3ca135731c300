package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-sitepass/internal/bootstrap"
	"go-sitepass/internal/directory"
	directoryerrors "go-sitepass/internal/directory/errors"
	"go-sitepass/internal/events"
	"go-sitepass/internal/identity"
	"go-sitepass/internal/messaging/kafka"
	"go-sitepass/internal/notification"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/phone"
	"go-sitepass/internal/tenant"
	"go-sitepass/internal/verification"
	verificationerrors "go-sitepass/internal/verification/errors"
	workererrors "go-sitepass/internal/worker/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const birthDateLayout = "20060102"

// Verifier validates and spends phone verification tokens.
type Verifier interface {
	ValidateToken(ctx context.Context, token string, purpose string) (verification.Proof, error)
	Consume(ctx context.Context, tx *sql.Tx, proof verification.Proof, consumer string) error
}

// Placements resolves company/site/team ids against the directory.
type Placements interface {
	ResolvePlacement(ctx context.Context, companyID, siteID, teamID string) (directory.Placement, error)
	GetTeam(ctx context.Context, teamID string) (directory.Placement, error)
}

//go:generate mockgen -source=worker_service.go -destination=mock/worker_service_mock.go -package=mock
type Service interface {
	Invite(ctx context.Context, actor contextutil.Actor, req InviteRequest) (InviteResponse, error)
	ResolveInvite(ctx context.Context, reference string) (InviteDetailResponse, error)
	RequestEnrollment(ctx context.Context, req SelfEnrollRequest) (EnrollResponse, error)
	Approve(ctx context.Context, actor contextutil.Actor, workerID string, req ApproveRequest) (WorkerResponse, error)
	Reject(ctx context.Context, actor contextutil.Actor, workerID string, req RejectRequest) (WorkerResponse, error)
	Block(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error)
	Unblock(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error)
	Deactivate(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error)
	GetMe(ctx context.Context, workerID string) (WorkerResponse, error)
	ListPending(ctx context.Context, actor contextutil.Actor) ([]WorkerResponse, error)
	GetStatus(ctx context.Context, workerID string) (StatusView, error)
	FindByPhone(ctx context.Context, phone string) (StatusView, error)
	PhoneRegistered(ctx context.Context, phone string) (bool, error)
}

type Dependencies struct {
	Credentials identity.Repository
	Verifier    Verifier
	Placements  Placements
	Sender      notification.Gateway
	Outbox      kafka.OutboxRepository
	Audit       bootstrap.AuditLogger
}

type Options struct {
	InviteSecret  string
	InviteBaseURL string
	Clock         clock.Clock
}

type service struct {
	db            *sql.DB
	repo          Repository
	credentials   identity.Repository
	verifier      Verifier
	placements    Placements
	sender        notification.Gateway
	outbox        kafka.OutboxRepository
	audit         bootstrap.AuditLogger
	invites       inviteSigner
	inviteBaseURL string
	clock         clock.Clock
	logger        *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("worker.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worker.service")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if deps.Audit == nil {
		deps.Audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		db:            db,
		repo:          repo,
		credentials:   deps.Credentials,
		verifier:      deps.Verifier,
		placements:    deps.Placements,
		sender:        deps.Sender,
		outbox:        deps.Outbox,
		audit:         deps.Audit,
		invites:       inviteSigner{secret: []byte(opts.InviteSecret), clock: opts.Clock},
		inviteBaseURL: strings.TrimRight(opts.InviteBaseURL, "/"),
		clock:         opts.Clock,
		logger:        l,
	}
}

func (s *service) Invite(ctx context.Context, actor contextutil.Actor, req InviteRequest) (InviteResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !tenant.IsAdmin(actor.Role) {
		return InviteResponse{}, workererrors.ErrForbidden
	}
	p := phone.Normalize(req.Phone)
	if !phone.IsValid(p) {
		return InviteResponse{}, workererrors.ErrInvalidPhone
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return InviteResponse{}, err
	}
	role := req.Role
	if role == "" {
		role = RoleWorker
	}
	if role != RoleWorker && role != RoleTeamAdmin {
		return InviteResponse{}, workererrors.ErrInvalidRole
	}

	placement, err := s.placements.GetTeam(ctx, req.TeamID)
	if err != nil {
		return InviteResponse{}, err
	}
	if !tenant.Covers(actor, placement.CompanyID, placement.SiteID, placement.TeamID) {
		return InviteResponse{}, workererrors.ErrForbidden
	}

	now := s.clock.Now()
	w := &Worker{
		ID:          uuid.New(),
		Phone:       p,
		Name:        strings.TrimSpace(req.Name),
		BirthDate:   birthDate,
		Gender:      optional(req.Gender),
		Nationality: optional(req.Nationality),
		JobTitle:    optional(req.JobTitle),
		Role:        role,
		Status:      StatusPending,
		InvitedBy:   parseUUIDPtr(actor.WorkerID),
		InvitedAt:   &now,
	}
	if err := assignPlacement(w, placement); err != nil {
		return InviteResponse{}, err
	}

	reference, _, err := s.invites.sign(w.ID.String(), p)
	if err != nil {
		return InviteResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("invite begin tx failed", zap.Error(err))
		return InviteResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByPhoneForUpdate(ctx, p)
	switch {
	case err == nil:
		if existing.HoldsPhone() {
			return InviteResponse{}, workererrors.ErrPhoneInUse
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return InviteResponse{}, err
	}

	committed := false
	if err := s.credentials.Create(ctx, &identity.Credential{ID: w.ID, Phone: p, CreatedAt: now}); err != nil {
		log.Error("invite credential create failed", zap.Error(err))
		return InviteResponse{}, err
	}
	defer func() {
		if !committed {
			s.dropCredential(ctx, w.ID.String())
		}
	}()

	if err := qtx.Create(ctx, w); err != nil {
		log.Error("invite worker persist failed", zap.Error(err))
		return InviteResponse{}, mapRepositoryError(err)
	}
	if err := s.writeStatusEvent(ctx, tx, w, "", actor.WorkerID, ""); err != nil {
		log.Error("invite outbox persist failed", zap.Error(err))
		return InviteResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("invite commit failed", zap.Error(err))
		return InviteResponse{}, err
	}
	committed = true

	resp := InviteResponse{WorkerID: w.ID.String(), Status: w.Status, InviteReference: reference}

	link := fmt.Sprintf("%s/invite/%s", s.inviteBaseURL, reference)
	if _, err := s.sender.Send(ctx, p, notification.InviteMessage(placement.CompanyName, link)); err != nil {
		log.Warn("invite message delivery failed",
			zap.String("worker_id", w.ID.String()),
			zap.String("phone", phone.Mask(p)),
			zap.Error(err),
		)
		resp.Warnings = append(resp.Warnings, "invite message could not be delivered, share the invite link another way")
	}

	log.Info("worker invited",
		zap.String("worker_id", w.ID.String()),
		zap.String("team_id", placement.TeamID),
		zap.String("actor_id", actor.WorkerID),
	)
	return resp, nil
}

func (s *service) ResolveInvite(ctx context.Context, reference string) (InviteDetailResponse, error) {
	claims, err := s.invites.parse(reference)
	if err != nil {
		return InviteDetailResponse{}, workererrors.ErrInvalidInviteReference
	}

	w, err := s.repo.FindByID(ctx, claims.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InviteDetailResponse{}, workererrors.ErrInvalidInviteReference
		}
		return InviteDetailResponse{}, err
	}
	if w.Phone != claims.Phone {
		return InviteDetailResponse{}, workererrors.ErrInvalidInviteReference
	}
	if w.Status != StatusPending {
		return InviteDetailResponse{}, workererrors.ErrInviteNotPending
	}

	placement, err := s.placements.GetTeam(ctx, w.TeamID.String())
	if err != nil {
		return InviteDetailResponse{}, err
	}

	return InviteDetailResponse{
		WorkerID:    w.ID.String(),
		Name:        w.Name,
		MaskedPhone: phone.Mask(w.Phone),
		CompanyID:   placement.CompanyID,
		CompanyName: placement.CompanyName,
		SiteID:      placement.SiteID,
		SiteName:    placement.SiteName,
		TeamID:      placement.TeamID,
		TeamName:    placement.TeamName,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *service) RequestEnrollment(ctx context.Context, req SelfEnrollRequest) (EnrollResponse, error) {
	if !req.Consents.All() {
		return EnrollResponse{}, workererrors.ErrConsentRequired
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return EnrollResponse{}, err
	}

	proof, err := s.verifier.ValidateToken(ctx, req.VerificationToken, verification.PurposeEnroll)
	if err != nil {
		return EnrollResponse{}, err
	}
	if proof.Consumed() {
		return s.replayEnrollment(ctx, proof.ConsumedBy)
	}

	placement, err := s.placements.ResolvePlacement(ctx, req.CompanyID, req.SiteID, req.TeamID)
	if err != nil {
		return EnrollResponse{}, err
	}

	resp, err := s.enroll(ctx, proof, req, birthDate, placement)
	if errors.Is(err, verificationerrors.ErrTokenConsumed) || errors.Is(err, workererrors.ErrPhoneInUse) {
		// A concurrent submission with the same token may have committed
		// first, in which case the loser trips over its phone or its token.
		again, vErr := s.verifier.ValidateToken(ctx, req.VerificationToken, verification.PurposeEnroll)
		if vErr == nil && again.Consumed() {
			return s.replayEnrollment(ctx, again.ConsumedBy)
		}
	}
	return resp, err
}

func (s *service) enroll(
	ctx context.Context,
	proof verification.Proof,
	req SelfEnrollRequest,
	birthDate time.Time,
	placement directory.Placement,
) (EnrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	companyID, err := uuid.Parse(placement.CompanyID)
	if err != nil {
		return EnrollResponse{}, directoryerrors.ErrPlacementNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("enroll begin tx failed", zap.Error(err))
		return EnrollResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByPhoneForUpdate(ctx, proof.Phone)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollResponse{}, err
		}
		existing = nil
	}

	if req.InviteReference != "" {
		if err := s.checkInviteReference(req.InviteReference, proof.Phone, existing); err != nil {
			return EnrollResponse{}, err
		}
	}

	now := s.clock.Now()
	var (
		target    *Worker
		from      string
		isNew     bool
		staleID   string
		resp      EnrollResponse
		assignErr error
	)

	switch prior := classifyPrior(existing, companyID).(type) {
	case noPrior:
		target, assignErr = newApplicant(proof.Phone, req, birthDate, placement, now)
		isNew = true
	case rejectedPrior:
		if err := qtx.Delete(ctx, prior.worker.ID.String()); err != nil {
			return EnrollResponse{}, mapRepositoryError(err)
		}
		staleID = prior.worker.ID.String()
		target, assignErr = newApplicant(proof.Phone, req, birthDate, placement, now)
		isNew = true
	case pendingPrior:
		target, from = prior.worker, StatusPending
		applyProfile(target, req, birthDate)
		target.Status = StatusActive
		target.ActivatedAt = &now
	case returningPrior:
		target, from = prior.worker, StatusInactive
		applyProfile(target, req, birthDate)
		assignErr = assignPlacement(target, placement)
		target.Status = StatusActive
		target.ActivatedAt = &now
		target.DeactivatedAt = nil
	case transferPrior:
		target, from = prior.worker, StatusInactive
		resp.Transferred = true
		resp.PreviousCompanyID = target.CompanyID.String()
		applyProfile(target, req, birthDate)
		assignErr = assignPlacement(target, placement)
		target.Role = RoleWorker
		target.Status = StatusRequested
		target.RequestedAt = &now
		target.ApprovedAt = nil
		target.ApprovedBy = nil
		target.ActivatedAt = nil
		target.DeactivatedAt = nil
	case heldPrior:
		log.Info("enroll rejected, phone held",
			zap.String("phone", phone.Mask(proof.Phone)),
			zap.String("status", prior.worker.Status),
		)
		return EnrollResponse{}, workererrors.ErrPhoneInUse
	default:
		return EnrollResponse{}, fmt.Errorf("unhandled prior state %T", prior)
	}
	if assignErr != nil {
		return EnrollResponse{}, assignErr
	}
	target.ConsentedAt = &now

	committed := false
	if isNew {
		if err := s.credentials.Create(ctx, &identity.Credential{ID: target.ID, Phone: target.Phone, CreatedAt: now}); err != nil {
			log.Error("enroll credential create failed", zap.Error(err))
			return EnrollResponse{}, err
		}
		defer func() {
			if !committed {
				s.dropCredential(ctx, target.ID.String())
			}
		}()
		err = qtx.Create(ctx, target)
	} else {
		err = qtx.Update(ctx, target)
	}
	if err != nil {
		log.Error("enroll worker persist failed", zap.Error(err))
		return EnrollResponse{}, mapRepositoryError(err)
	}

	if err := s.verifier.Consume(ctx, tx, proof, target.ID.String()); err != nil {
		return EnrollResponse{}, err
	}
	if err := s.writeStatusEvent(ctx, tx, target, from, "", ""); err != nil {
		log.Error("enroll outbox persist failed", zap.Error(err))
		return EnrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("enroll commit failed", zap.Error(err))
		return EnrollResponse{}, err
	}
	committed = true

	if staleID != "" {
		s.dropCredential(ctx, staleID)
	}

	log.Info("worker enrolled",
		zap.String("worker_id", target.ID.String()),
		zap.String("from", from),
		zap.String("status", target.Status),
		zap.Bool("transferred", resp.Transferred),
	)
	resp.WorkerID = target.ID.String()
	resp.Status = target.Status
	return resp, nil
}

// replayEnrollment answers a resubmitted token with the worker it created.
func (s *service) replayEnrollment(ctx context.Context, workerID string) (EnrollResponse, error) {
	w, err := s.repo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollResponse{}, verificationerrors.ErrTokenConsumed
		}
		return EnrollResponse{}, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("enrollment replayed",
		zap.String("worker_id", workerID),
		zap.String("status", w.Status),
	)
	return EnrollResponse{WorkerID: w.ID.String(), Status: w.Status}, nil
}

func (s *service) checkInviteReference(raw, phoneNumber string, existing *Worker) error {
	claims, err := s.invites.parse(raw)
	if err != nil || claims.Phone != phoneNumber {
		return workererrors.ErrInvalidInviteReference
	}
	if existing == nil || existing.ID.String() != claims.WorkerID || existing.Status != StatusPending {
		return workererrors.ErrInvalidInviteReference
	}
	return nil
}

func (s *service) Approve(ctx context.Context, actor contextutil.Actor, workerID string, req ApproveRequest) (WorkerResponse, error) {
	return s.transition(ctx, actor, workerID, ActionApprove, "", func(w *Worker, now time.Time) error {
		if req.Role != "" {
			if req.Role != RoleWorker && req.Role != RoleTeamAdmin {
				return workererrors.ErrInvalidRole
			}
			w.Role = req.Role
		}
		if req.TeamID != "" && req.TeamID != w.TeamID.String() {
			p, err := s.placements.GetTeam(ctx, req.TeamID)
			if err != nil {
				if errors.Is(err, directoryerrors.ErrTeamNotFound) || errors.Is(err, directoryerrors.ErrInvalidID) {
					return workererrors.ErrTeamOutsideSite
				}
				return err
			}
			if p.CompanyID != w.CompanyID.String() || p.SiteID != w.SiteID.String() {
				return workererrors.ErrTeamOutsideSite
			}
			if !tenant.Covers(actor, p.CompanyID, p.SiteID, p.TeamID) {
				return workererrors.ErrForbidden
			}
			if err := assignPlacement(w, p); err != nil {
				return err
			}
		}
		w.ApprovedAt = &now
		w.ApprovedBy = parseUUIDPtr(actor.WorkerID)
		w.ActivatedAt = &now
		return nil
	})
}

func (s *service) Reject(ctx context.Context, actor contextutil.Actor, workerID string, req RejectRequest) (WorkerResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	return s.transition(ctx, actor, workerID, ActionReject, reason, func(w *Worker, now time.Time) error {
		w.RejectedAt = &now
		w.RejectionReason = optional(reason)
		return nil
	})
}

func (s *service) Block(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error) {
	return s.transition(ctx, actor, workerID, ActionBlock, "", func(w *Worker, now time.Time) error {
		w.BlockedAt = &now
		return nil
	})
}

func (s *service) Unblock(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error) {
	return s.transition(ctx, actor, workerID, ActionUnblock, "", func(w *Worker, now time.Time) error {
		w.BlockedAt = nil
		return nil
	})
}

func (s *service) Deactivate(ctx context.Context, actor contextutil.Actor, workerID string) (WorkerResponse, error) {
	return s.transition(ctx, actor, workerID, ActionDeactivate, "", func(w *Worker, now time.Time) error {
		w.DeactivatedAt = &now
		return nil
	})
}

func (s *service) transition(
	ctx context.Context,
	actor contextutil.Actor,
	workerID string,
	action Action,
	reason string,
	apply func(w *Worker, now time.Time) error,
) (WorkerResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !tenant.IsAdmin(actor.Role) {
		return WorkerResponse{}, workererrors.ErrForbidden
	}
	// unknown and out-of-scope targets answer alike
	if _, err := uuid.Parse(workerID); err != nil {
		return WorkerResponse{}, workererrors.ErrForbidden
	}
	rule, ok := transitions[action]
	if !ok {
		return WorkerResponse{}, fmt.Errorf("unknown worker action %q", action)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("worker transition begin tx failed", zap.String("action", string(action)), zap.Error(err))
		return WorkerResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByIDForUpdate(ctx, workerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return WorkerResponse{}, workererrors.ErrForbidden
	}
	if err != nil {
		return WorkerResponse{}, err
	}
	if !tenant.Covers(actor, w.CompanyID.String(), w.SiteID.String(), w.TeamID.String()) {
		return WorkerResponse{}, workererrors.ErrForbidden
	}
	if w.Status != rule.from {
		return WorkerResponse{}, workererrors.ErrInvalidTransition.WithDetails(map[string]string{
			"action": string(action),
			"status": w.Status,
		})
	}

	now := s.clock.Now()
	from := w.Status
	if err := apply(w, now); err != nil {
		return WorkerResponse{}, err
	}
	w.Status = rule.to

	if err := qtx.Update(ctx, w); err != nil {
		log.Error("worker transition persist failed", zap.String("action", string(action)), zap.Error(err))
		return WorkerResponse{}, mapRepositoryError(err)
	}
	if err := s.writeStatusEvent(ctx, tx, w, from, actor.WorkerID, reason); err != nil {
		log.Error("worker transition outbox persist failed", zap.Error(err))
		return WorkerResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("worker transition commit failed", zap.Error(err))
		return WorkerResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   "worker." + string(action),
		ActorID:  actor.WorkerID,
		TargetID: w.ID.String(),
		Message:  from + " -> " + w.Status,
		Meta: map[string]any{
			"company_id": w.CompanyID.String(),
			"site_id":    w.SiteID.String(),
			"team_id":    w.TeamID.String(),
			"reason":     reason,
		},
	})
	return toResponse(w), nil
}

func (s *service) GetMe(ctx context.Context, workerID string) (WorkerResponse, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return WorkerResponse{}, workererrors.ErrWorkerNotFound
	}
	w, err := s.repo.FindByID(ctx, workerID)
	if err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	return toResponse(w), nil
}

func (s *service) ListPending(ctx context.Context, actor contextutil.Actor) ([]WorkerResponse, error) {
	if !tenant.IsAdmin(actor.Role) {
		return nil, workererrors.ErrForbidden
	}
	workers, err := s.repo.ListByStatus(ctx, StatusRequested, tenant.ForActor(actor))
	if err != nil {
		return nil, err
	}
	out := make([]WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, toResponse(&workers[i]))
	}
	return out, nil
}

func (s *service) GetStatus(ctx context.Context, workerID string) (StatusView, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return StatusView{}, workererrors.ErrWorkerNotFound
	}
	w, err := s.repo.FindByID(ctx, workerID)
	if err != nil {
		return StatusView{}, mapRepositoryError(err)
	}
	return toStatusView(w), nil
}

func (s *service) FindByPhone(ctx context.Context, phoneNumber string) (StatusView, error) {
	w, err := s.repo.FindByPhone(ctx, phone.Normalize(phoneNumber))
	if err != nil {
		return StatusView{}, mapRepositoryError(err)
	}
	return toStatusView(w), nil
}

func (s *service) PhoneRegistered(ctx context.Context, phoneNumber string) (bool, error) {
	return s.repo.ExistsRegistered(ctx, phone.Normalize(phoneNumber))
}

func (s *service) writeStatusEvent(ctx context.Context, tx *sql.Tx, w *Worker, from, actorID, reason string) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewEvent(rid, "worker", w.ID.String(), events.WorkerStatusChangedType, events.WorkerStatusChangedTopic,
		events.WorkerStatusChangedEvent{
			EventType:  events.WorkerStatusChangedType,
			RequestID:  rid,
			WorkerID:   w.ID.String(),
			CompanyID:  w.CompanyID.String(),
			Phone:      w.Phone,
			From:       from,
			To:         w.Status,
			ActorID:    actorID,
			Reason:     reason,
			OccurredAt: s.clock.Now().UTC(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// dropCredential compensates a credential written before a failed worker
// write. It runs even if the request context is already cancelled.
func (s *service) dropCredential(ctx context.Context, id string) {
	if err := s.credentials.Delete(context.WithoutCancel(ctx), id); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("credential compensation failed, orphan left behind",
			zap.String("credential_id", id),
			zap.Error(err),
		)
	}
}

func newApplicant(p string, req SelfEnrollRequest, birthDate time.Time, placement directory.Placement, now time.Time) (*Worker, error) {
	w := &Worker{
		ID:          uuid.New(),
		Phone:       p,
		Role:        RoleWorker,
		Status:      StatusRequested,
		RequestedAt: &now,
	}
	applyProfile(w, req, birthDate)
	if err := assignPlacement(w, placement); err != nil {
		return nil, err
	}
	return w, nil
}

func applyProfile(w *Worker, req SelfEnrollRequest, birthDate time.Time) {
	if name := strings.TrimSpace(req.Name); name != "" {
		w.Name = name
	}
	w.BirthDate = birthDate
	if v := optional(req.Gender); v != nil {
		w.Gender = v
	}
	if v := optional(req.Nationality); v != nil {
		w.Nationality = v
	}
	if v := optional(req.JobTitle); v != nil {
		w.JobTitle = v
	}
}

func assignPlacement(w *Worker, p directory.Placement) error {
	companyID, err1 := uuid.Parse(p.CompanyID)
	siteID, err2 := uuid.Parse(p.SiteID)
	teamID, err3 := uuid.Parse(p.TeamID)
	if err := errors.Join(err1, err2, err3); err != nil {
		return directoryerrors.ErrPlacementNotFound
	}
	w.CompanyID, w.SiteID, w.TeamID = companyID, siteID, teamID
	return nil
}

func parseBirthDate(raw string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, workererrors.ErrInvalidBirthDate
	}
	return t, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func parseUUIDPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func toResponse(w *Worker) WorkerResponse {
	return WorkerResponse{
		ID:          w.ID.String(),
		Name:        w.Name,
		Phone:       w.Phone,
		BirthDate:   w.BirthDate.Format(birthDateLayout),
		Gender:      deref(w.Gender),
		Nationality: deref(w.Nationality),
		JobTitle:    deref(w.JobTitle),
		CompanyID:   w.CompanyID.String(),
		SiteID:      w.SiteID.String(),
		TeamID:      w.TeamID.String(),
		Role:        w.Role,
		Status:      w.Status,
		RequestedAt: w.RequestedAt,
		ActivatedAt: w.ActivatedAt,
		CreatedAt:   w.CreatedAt,
	}
}

func toStatusView(w *Worker) StatusView {
	return StatusView{
		WorkerID:  w.ID.String(),
		Phone:     w.Phone,
		Name:      w.Name,
		BirthDate: w.BirthDate,
		CompanyID: w.CompanyID.String(),
		SiteID:    w.SiteID.String(),
		TeamID:    w.TeamID.String(),
		Role:      w.Role,
		Status:    w.Status,
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
