package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	autherrors "go-sitepass/internal/auth/errors"
	"go-sitepass/internal/identity"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/phone"
	"go-sitepass/internal/shared/token"
	"go-sitepass/internal/verification"
	verificationerrors "go-sitepass/internal/verification/errors"
	"go-sitepass/internal/worker"
	workererrors "go-sitepass/internal/worker/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Workers is the read side of the worker registry used for login gating.
type Workers interface {
	FindByPhone(ctx context.Context, phone string) (worker.StatusView, error)
	GetStatus(ctx context.Context, workerID string) (worker.StatusView, error)
}

// Verifier validates and spends AUTHENTICATE verification tokens.
type Verifier interface {
	ValidateToken(ctx context.Context, token string, purpose string) (verification.Proof, error)
	Consume(ctx context.Context, tx *sql.Tx, proof verification.Proof, consumer string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type Options struct {
	RefreshTTL time.Duration
	Clock      clock.Clock
}

type service struct {
	repo        Repository
	workers     Workers
	verifier    Verifier
	credentials identity.Repository
	issuer      *token.Issuer
	refreshTTL  time.Duration
	clock       clock.Clock
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	workers Workers,
	verifier Verifier,
	credentials identity.Repository,
	issuer *token.Issuer,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.RefreshTTL <= 0 {
		opts.RefreshTTL = 30 * 24 * time.Hour
	}
	return &service{
		repo:        repo,
		workers:     workers,
		verifier:    verifier,
		credentials: credentials,
		issuer:      issuer,
		refreshTTL:  opts.RefreshTTL,
		clock:       opts.Clock,
		logger:      l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	p := phone.Normalize(req.Phone)

	proof, err := s.verifier.ValidateToken(ctx, req.VerificationToken, verification.PurposeAuthenticate)
	if err != nil {
		return TokenResponse{}, err
	}
	if proof.Phone != p {
		return TokenResponse{}, autherrors.ErrPhoneMismatch
	}
	if proof.Consumed() {
		return TokenResponse{}, verificationerrors.ErrTokenConsumed
	}

	view, err := s.workers.FindByPhone(ctx, p)
	if err != nil {
		if errors.Is(err, workererrors.ErrWorkerNotFound) {
			return TokenResponse{}, autherrors.ErrWorkerNotFound
		}
		return TokenResponse{}, err
	}
	if err := loginGate(view.Status); err != nil {
		log.Info("login refused",
			zap.String("worker_id", view.WorkerID),
			zap.String("status", view.Status),
		)
		return TokenResponse{}, err
	}

	if err := s.verifier.Consume(ctx, nil, proof, view.WorkerID); err != nil {
		return TokenResponse{}, err
	}
	if err := s.credentials.TouchLogin(ctx, view.WorkerID, s.clock.Now()); err != nil {
		log.Warn("credential login timestamp not recorded", zap.String("worker_id", view.WorkerID), zap.Error(err))
	}

	resp, err := s.issuePair(ctx, view)
	if err != nil {
		return TokenResponse{}, err
	}
	log.Info("worker logged in", zap.String("worker_id", view.WorkerID), zap.String("status", view.Status))
	return resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if refreshToken == "" {
		return TokenResponse{}, autherrors.ErrRefreshInvalid
	}

	session, err := s.repo.Take(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return TokenResponse{}, autherrors.ErrRefreshInvalid
		}
		log.Error("refresh session lookup failed", zap.Error(err))
		return TokenResponse{}, err
	}
	if clock.Expired(s.clock, session.ExpiresAt) {
		return TokenResponse{}, autherrors.ErrRefreshInvalid
	}

	view, err := s.workers.GetStatus(ctx, session.WorkerID)
	if err != nil {
		if errors.Is(err, workererrors.ErrWorkerNotFound) {
			return TokenResponse{}, autherrors.ErrRefreshInvalid
		}
		return TokenResponse{}, err
	}
	if err := loginGate(view.Status); err != nil {
		log.Info("refresh refused", zap.String("worker_id", view.WorkerID), zap.String("status", view.Status))
		return TokenResponse{}, err
	}

	return s.issuePair(ctx, view)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.repo.Delete(ctx, refreshToken)
}

// issuePair signs an access token from the worker's current placement and
// stores a fresh opaque refresh id.
func (s *service) issuePair(ctx context.Context, view worker.StatusView) (TokenResponse, error) {
	access, accessExp, err := s.issuer.Issue(token.Identity{
		WorkerID:  view.WorkerID,
		CompanyID: view.CompanyID,
		SiteID:    view.SiteID,
		TeamID:    view.TeamID,
		Role:      view.Role,
	})
	if err != nil {
		return TokenResponse{}, err
	}

	now := s.clock.Now()
	session := RefreshSession{
		ID:        uuid.NewString(),
		WorkerID:  view.WorkerID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.refreshTTL),
	}
	if err := s.repo.Save(ctx, session, s.refreshTTL); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     session.ID,
		RefreshExpiresAt: session.ExpiresAt,
		Worker: AuthWorker{
			ID:        view.WorkerID,
			Name:      view.Name,
			CompanyID: view.CompanyID,
			SiteID:    view.SiteID,
			TeamID:    view.TeamID,
			Role:      view.Role,
			Status:    view.Status,
		},
	}, nil
}

// loginGate lets PENDING, REQUESTED and ACTIVE workers hold a session.
func loginGate(status string) error {
	switch status {
	case worker.StatusBlocked, worker.StatusRejected, worker.StatusInactive:
		return workererrors.NotActive(status)
	default:
		return nil
	}
}
