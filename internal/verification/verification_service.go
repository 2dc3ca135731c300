package verification

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go-sitepass/internal/notification"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/phone"
	verificationerrors "go-sitepass/internal/verification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PhoneDirectory answers whether a phone already belongs to a worker record.
// AUTHENTICATE codes are only sent to known phones.
type PhoneDirectory interface {
	PhoneRegistered(ctx context.Context, phone string) (bool, error)
}

//go:generate mockgen -source=verification_service.go -destination=mock/verification_service_mock.go -package=mock
type Service interface {
	RequestCode(ctx context.Context, req RequestCodeRequest) (RequestCodeResponse, error)
	VerifyCode(ctx context.Context, req VerifyCodeRequest) (VerifyCodeResponse, error)
	ValidateToken(ctx context.Context, token string, purpose string) (Proof, error)
	Consume(ctx context.Context, tx *sql.Tx, proof Proof, consumer string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type Options struct {
	Secret string
	Clock  clock.Clock
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

type service struct {
	repo     Repository
	sender   notification.Gateway
	phones   PhoneDirectory
	tokens   tokenSigner
	clock    clock.Clock
	hashCost int
	logger   *zap.Logger
}

func NewService(repo Repository, sender notification.Gateway, phones PhoneDirectory, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("verification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("verification.service")
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	return &service{
		repo:     repo,
		sender:   sender,
		phones:   phones,
		tokens:   tokenSigner{secret: []byte(opts.Secret), clock: opts.Clock},
		clock:    opts.Clock,
		hashCost: opts.HashCost,
		logger:   l,
	}
}

func (s *service) RequestCode(ctx context.Context, req RequestCodeRequest) (RequestCodeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	p := phone.Normalize(req.Phone)
	if !phone.IsValid(p) {
		return RequestCodeResponse{}, verificationerrors.ErrInvalidPhone
	}
	purpose, err := normalizePurpose(req.Purpose)
	if err != nil {
		return RequestCodeResponse{}, err
	}

	if purpose == PurposeAuthenticate && s.phones != nil {
		known, err := s.phones.PhoneRegistered(ctx, p)
		if err != nil {
			return RequestCodeResponse{}, apperror.ErrDependencyFailure.WithMessage("worker lookup failed").WithCause(err)
		}
		if !known {
			return RequestCodeResponse{}, verificationerrors.ErrPhoneNotRegistered
		}
	}

	now := s.clock.Now()
	latest, err := s.repo.FindLatest(ctx, p, purpose)
	switch {
	case err == nil:
		if now.Sub(latest.IssuedAt) < ResendCooldown {
			return RequestCodeResponse{}, verificationerrors.ErrResendTooSoon
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return RequestCodeResponse{}, err
	}

	code, err := generateCode()
	if err != nil {
		return RequestCodeResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.hashCost)
	if err != nil {
		return RequestCodeResponse{}, err
	}

	// A newer code supersedes every unconsumed one for the same phone.
	if err := s.repo.DeleteUnconsumed(ctx, p, purpose); err != nil {
		return RequestCodeResponse{}, err
	}
	ch := &Challenge{
		ID:        uuid.New(),
		Phone:     p,
		Purpose:   purpose,
		CodeHash:  string(hash),
		IssuedAt:  now,
		ExpiresAt: now.Add(CodeTTL),
	}
	if err := s.repo.Create(ctx, ch); err != nil {
		return RequestCodeResponse{}, err
	}

	if _, err := s.sender.Send(ctx, p, notification.VerificationCodeMessage(code)); err != nil {
		log.Warn("verification code delivery failed",
			zap.String("phone", phone.Mask(p)),
			zap.String("purpose", purpose),
			zap.Error(err),
		)
		return RequestCodeResponse{}, verificationerrors.ErrCodeDeliveryFailed
	}

	log.Info("verification code sent",
		zap.String("phone", phone.Mask(p)),
		zap.String("purpose", purpose),
		zap.String("challenge_id", ch.ID.String()),
	)
	return RequestCodeResponse{
		ExpiresAt:          ch.ExpiresAt,
		ResendAfterSeconds: int(ResendCooldown / time.Second),
	}, nil
}

func (s *service) VerifyCode(ctx context.Context, req VerifyCodeRequest) (VerifyCodeResponse, error) {
	p := phone.Normalize(req.Phone)
	if !phone.IsValid(p) {
		return VerifyCodeResponse{}, verificationerrors.ErrInvalidPhone
	}
	purpose, err := normalizePurpose(req.Purpose)
	if err != nil {
		return VerifyCodeResponse{}, err
	}

	ch, err := s.repo.FindLatest(ctx, p, purpose)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VerifyCodeResponse{}, verificationerrors.ErrChallengeNotFound
		}
		return VerifyCodeResponse{}, err
	}

	if clock.Expired(s.clock, ch.ExpiresAt) {
		return VerifyCodeResponse{}, verificationerrors.ErrCodeExpired
	}
	if ch.Attempts >= MaxAttempts {
		return VerifyCodeResponse{}, verificationerrors.ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(ch.CodeHash), []byte(req.Code)) != nil {
		if err := s.repo.IncrementAttempts(ctx, ch.ID.String()); err != nil {
			return VerifyCodeResponse{}, err
		}
		remaining := MaxAttempts - ch.Attempts - 1
		if remaining <= 0 {
			return VerifyCodeResponse{}, verificationerrors.ErrTooManyAttempts
		}
		return VerifyCodeResponse{}, verificationerrors.ErrCodeMismatch.WithDetails(map[string]int{
			"remainingAttempts": remaining,
		})
	}

	// Verifying again inside the code window reissues the token for a client
	// that lost the first answer; the reissue keeps the first token's expiry.
	now := s.clock.Now()
	expiresAt := now.Add(TokenTTL)
	if ch.VerifiedAt == nil {
		if err := s.repo.MarkVerified(ctx, ch.ID.String(), now); err != nil {
			return VerifyCodeResponse{}, err
		}
	} else {
		expiresAt = ch.VerifiedAt.Add(TokenTTL)
	}

	token, err := s.tokens.sign(ch.ID.String(), p, purpose, expiresAt)
	if err != nil {
		return VerifyCodeResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("phone verified",
		zap.String("phone", phone.Mask(p)),
		zap.String("purpose", purpose),
		zap.String("challenge_id", ch.ID.String()),
	)
	return VerifyCodeResponse{VerificationToken: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken checks signature, expiry and purpose, then loads the backing
// challenge. It has no side effects: a consumed token is reported through
// Proof.ConsumedBy rather than as an error.
func (s *service) ValidateToken(ctx context.Context, token string, purpose string) (Proof, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Proof{}, verificationerrors.ErrInvalidToken
	}
	claims, err := s.tokens.parse(token)
	if err != nil {
		return Proof{}, verificationerrors.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return Proof{}, verificationerrors.ErrInvalidToken
	}

	ch, err := s.repo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Proof{}, verificationerrors.ErrInvalidToken
		}
		return Proof{}, err
	}
	if ch.VerifiedAt == nil || ch.Phone != claims.Phone || ch.Purpose != purpose {
		return Proof{}, verificationerrors.ErrInvalidToken
	}

	proof := Proof{ChallengeID: ch.ID.String(), Phone: ch.Phone, Purpose: ch.Purpose}
	if ch.ConsumedAt != nil {
		if ch.ConsumedBy == nil {
			return Proof{}, verificationerrors.ErrTokenConsumed
		}
		proof.ConsumedBy = *ch.ConsumedBy
	}
	return proof, nil
}

// Consume marks the challenge spent by consumer. When tx is non-nil the
// update joins the caller's transaction. A lost race returns ErrTokenConsumed.
func (s *service) Consume(ctx context.Context, tx *sql.Tx, proof Proof, consumer string) error {
	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	won, err := repo.MarkConsumed(ctx, proof.ChallengeID, consumer, s.clock.Now())
	if err != nil {
		return err
	}
	if !won {
		return verificationerrors.ErrTokenConsumed
	}
	return nil
}

// CleanupExpired removes challenges whose code expired more than
// RetentionAfter ago. Their tokens can no longer validate by then.
func (s *service) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-RetentionAfter)
	n, err := s.repo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired verification challenges removed",
			zap.Int64("count", n),
			zap.Time("cutoff", cutoff),
		)
	}
	return n, nil
}

func normalizePurpose(raw string) (string, error) {
	switch p := strings.ToUpper(strings.TrimSpace(raw)); p {
	case PurposeEnroll, PurposeAuthenticate:
		return p, nil
	default:
		return "", verificationerrors.ErrInvalidPurpose
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}
