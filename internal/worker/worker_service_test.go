package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-sitepass/internal/directory"
	"go-sitepass/internal/identity"
	identityMock "go-sitepass/internal/identity/mock"
	"go-sitepass/internal/messaging/kafka"
	kafkaMock "go-sitepass/internal/messaging/kafka/mock"
	"go-sitepass/internal/notification"
	notificationMock "go-sitepass/internal/notification/mock"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/clock"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/verification"
	verificationerrors "go-sitepass/internal/verification/errors"
	"go-sitepass/internal/worker"
	workererrors "go-sitepass/internal/worker/errors"
	workerMock "go-sitepass/internal/worker/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testPhone = "01012345678"

var (
	companyA = uuid.MustParse("0b6f3c3e-1d2a-4c59-9a0e-000000000001")
	companyB = uuid.MustParse("0b6f3c3e-1d2a-4c59-9a0e-000000000002")
	siteA    = uuid.MustParse("5a1e7f10-3b7c-4e1d-8f11-000000000001")
	siteB    = uuid.MustParse("5a1e7f10-3b7c-4e1d-8f11-000000000002")
	teamA    = uuid.MustParse("9c4d2e55-7a8b-4c3d-b2a1-000000000001")
	teamA2   = uuid.MustParse("9c4d2e55-7a8b-4c3d-b2a1-000000000003")
	teamB    = uuid.MustParse("9c4d2e55-7a8b-4c3d-b2a1-000000000002")
)

var (
	placementA = directory.Placement{
		CompanyID: companyA.String(), CompanyName: "Hanul Construction",
		SiteID: siteA.String(), SiteName: "Songdo Tower",
		TeamID: teamA.String(), TeamName: "Rebar",
	}
	placementB = directory.Placement{
		CompanyID: companyB.String(), CompanyName: "Daon Engineering",
		SiteID: siteB.String(), SiteName: "Pangyo Campus",
		TeamID: teamB.String(), TeamName: "Formwork",
	}
)

type fixture struct {
	t           *testing.T
	db          sqlmock.Sqlmock
	repo        *workerMock.MockRepository
	credentials *identityMock.MockRepository
	verifier    *workerMock.MockVerifier
	placements  *workerMock.MockPlacements
	sender      *notificationMock.MockGateway
	outbox      *kafkaMock.MockOutboxRepository
	clock       *clock.Fixed
	svc         worker.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		t:           t,
		db:          dbMock,
		repo:        workerMock.NewMockRepository(ctrl),
		credentials: identityMock.NewMockRepository(ctrl),
		verifier:    workerMock.NewMockVerifier(ctrl),
		placements:  workerMock.NewMockPlacements(ctrl),
		sender:      notificationMock.NewMockGateway(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		clock:       clock.NewFixed(time.Date(2025, 3, 3, 7, 30, 0, 0, time.UTC)),
	}
	f.svc = worker.NewService(db, f.repo, worker.Dependencies{
		Credentials: f.credentials,
		Verifier:    f.verifier,
		Placements:  f.placements,
		Sender:      f.sender,
		Outbox:      f.outbox,
	}, worker.Options{
		InviteSecret:  "invite-secret",
		InviteBaseURL: "https://app.example.test/",
		Clock:         f.clock,
	})
	return f
}

// expectTx wires the transactional repositories back to the mocks.
func (f *fixture) expectTx() {
	f.db.ExpectBegin()
	f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
}

func (f *fixture) expectOutbox(to string) {
	f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox)
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		assert.Equal(f.t, "worker", e.AggregateType)
		assert.Contains(f.t, string(e.Payload), `"to":"`+to+`"`)
		return nil
	})
}

func enrollRequest(p directory.Placement) worker.SelfEnrollRequest {
	return worker.SelfEnrollRequest{
		VerificationToken: "vt",
		Name:              "Kim Minjun",
		BirthDate:         "19900115",
		Gender:            "M",
		Nationality:       "KR",
		JobTitle:          "Rebar worker",
		CompanyID:         p.CompanyID,
		SiteID:            p.SiteID,
		TeamID:            p.TeamID,
		Consents:          worker.Consents{Terms: true, Privacy: true, ThirdParty: true, Location: true},
	}
}

func proof() verification.Proof {
	return verification.Proof{ChallengeID: uuid.NewString(), Phone: testPhone, Purpose: verification.PurposeEnroll}
}

func existingWorker(status string, company, site, team uuid.UUID) *worker.Worker {
	return &worker.Worker{
		ID:        uuid.New(),
		Phone:     testPhone,
		Name:      "Kim Minjun",
		BirthDate: time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		CompanyID: company,
		SiteID:    site,
		TeamID:    team,
		Role:      worker.RoleWorker,
		Status:    status,
	}
}

func TestService_RequestEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("new phone creates a REQUESTED worker", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		var created *worker.Worker

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), placementA.CompanyID, placementA.SiteID, placementA.TeamID).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *worker.Worker) error {
			created = w
			return nil
		})
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, gomock.Any()).Return(nil)
		f.expectOutbox(worker.StatusRequested)
		f.db.ExpectCommit()

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, worker.StatusRequested, resp.Status)
		assert.Equal(t, created.ID.String(), resp.WorkerID)
		assert.Equal(t, companyA, created.CompanyID)
		assert.Equal(t, worker.RoleWorker, created.Role)
		assert.NotNil(t, created.ConsentedAt)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("pending invite activates without moving company", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		pending := existingWorker(worker.StatusPending, companyA, siteA, teamA)

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementB, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(pending, nil)
		f.repo.EXPECT().Update(gomock.Any(), pending).Return(nil)
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, pending.ID.String()).Return(nil)
		f.expectOutbox(worker.StatusActive)
		f.db.ExpectCommit()

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementB))
		require.NoError(t, err)

		assert.Equal(t, worker.StatusActive, resp.Status)
		assert.Equal(t, pending.ID.String(), resp.WorkerID)
		assert.Equal(t, companyA, pending.CompanyID)
		assert.NotNil(t, pending.ActivatedAt)
	})

	t.Run("inactive at another company transfers and re-requests", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		former := existingWorker(worker.StatusInactive, companyA, siteA, teamA)
		former.Role = worker.RoleTeamAdmin

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementB, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(former, nil)
		f.repo.EXPECT().Update(gomock.Any(), former).Return(nil)
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, former.ID.String()).Return(nil)
		f.expectOutbox(worker.StatusRequested)
		f.db.ExpectCommit()

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementB))
		require.NoError(t, err)

		assert.Equal(t, worker.StatusRequested, resp.Status)
		assert.True(t, resp.Transferred)
		assert.Equal(t, companyA.String(), resp.PreviousCompanyID)
		assert.Equal(t, companyB, former.CompanyID)
		assert.Equal(t, teamB, former.TeamID)
		assert.Equal(t, worker.RoleWorker, former.Role)
	})

	t.Run("inactive at the same company reactivates", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		former := existingWorker(worker.StatusInactive, companyA, siteA, teamA2)

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(former, nil)
		f.repo.EXPECT().Update(gomock.Any(), former).Return(nil)
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, former.ID.String()).Return(nil)
		f.expectOutbox(worker.StatusActive)
		f.db.ExpectCommit()

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		require.NoError(t, err)

		assert.Equal(t, worker.StatusActive, resp.Status)
		assert.False(t, resp.Transferred)
		assert.Equal(t, teamA, former.TeamID)
	})

	t.Run("rejected applicant is replaced by a fresh record", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		rejected := existingWorker(worker.StatusRejected, companyA, siteA, teamA)
		var created *worker.Worker

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(rejected, nil)
		f.repo.EXPECT().Delete(gomock.Any(), rejected.ID.String()).Return(nil)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *worker.Worker) error {
			created = w
			return nil
		})
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, gomock.Any()).Return(nil)
		f.expectOutbox(worker.StatusRequested)
		f.db.ExpectCommit()
		f.credentials.EXPECT().Delete(gomock.Any(), rejected.ID.String()).Return(nil)

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		require.NoError(t, err)

		assert.Equal(t, worker.StatusRequested, resp.Status)
		assert.NotEqual(t, rejected.ID, created.ID)
	})

	for _, status := range []string{worker.StatusActive, worker.StatusRequested, worker.StatusBlocked} {
		t.Run("phone held by "+status+" worker conflicts", func(t *testing.T) {
			f := newFixture(t)
			f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(proof(), nil).Times(2)
			f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
			f.expectTx()
			f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(existingWorker(status, companyA, siteA, teamA), nil)
			f.db.ExpectRollback()

			_, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
			assert.ErrorIs(t, err, workererrors.ErrPhoneInUse)
			assert.NoError(t, f.db.ExpectationsWereMet())
		})
	}

	t.Run("consumed token replays the earlier result", func(t *testing.T) {
		f := newFixture(t)
		enrolled := existingWorker(worker.StatusRequested, companyA, siteA, teamA)
		p := proof()
		p.ConsumedBy = enrolled.ID.String()

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.repo.EXPECT().FindByID(gomock.Any(), enrolled.ID.String()).Return(enrolled, nil)

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		require.NoError(t, err)
		assert.Equal(t, enrolled.ID.String(), resp.WorkerID)
		assert.Equal(t, worker.StatusRequested, resp.Status)
	})

	t.Run("losing a concurrent submission replays the winner", func(t *testing.T) {
		f := newFixture(t)
		p := proof()
		winner := existingWorker(worker.StatusRequested, companyA, siteA, teamA)
		consumed := p
		consumed.ConsumedBy = winner.ID.String()

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_workers_phone_live"})
		f.credentials.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.db.ExpectRollback()
		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(consumed, nil)
		f.repo.EXPECT().FindByID(gomock.Any(), winner.ID.String()).Return(winner, nil)

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		require.NoError(t, err)
		assert.Equal(t, winner.ID.String(), resp.WorkerID)
		assert.Equal(t, worker.StatusRequested, resp.Status)
	})

	t.Run("phone conflict with an unconsumed token stays a conflict", func(t *testing.T) {
		f := newFixture(t)
		p := proof()

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil).Times(2)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(existingWorker(worker.StatusActive, companyA, siteA, teamA), nil)
		f.db.ExpectRollback()

		_, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		assert.ErrorIs(t, err, workererrors.ErrPhoneInUse)
	})

	t.Run("token expiring mid-enrollment is not mistaken for a lost race", func(t *testing.T) {
		f := newFixture(t)
		p := proof()

		// a single ValidateToken: no replay lookup follows an invalid token
		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil).Times(1)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, gomock.Any()).Return(verificationerrors.ErrInvalidToken)
		f.credentials.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.db.ExpectRollback()

		_, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		assert.ErrorIs(t, err, verificationerrors.ErrInvalidToken)
		assert.NotErrorIs(t, err, verificationerrors.ErrTokenConsumed)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("credential is compensated when the worker insert fails", func(t *testing.T) {
		f := newFixture(t)
		var credentialID uuid.UUID

		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(proof(), nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *identity.Credential) error {
			credentialID = c.ID
			return nil
		})
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.credentials.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
			assert.Equal(t, credentialID.String(), id)
			return nil
		})
		f.db.ExpectRollback()

		_, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		assert.Error(t, err)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("missing consent is rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)
		req := enrollRequest(placementA)
		req.Consents.Location = false

		_, err := f.svc.RequestEnrollment(ctx, req)
		assert.ErrorIs(t, err, workererrors.ErrConsentRequired)
	})

	t.Run("invalid token is surfaced", func(t *testing.T) {
		f := newFixture(t)
		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).
			Return(verification.Proof{}, verificationerrors.ErrInvalidToken)

		_, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementA))
		assert.ErrorIs(t, err, verificationerrors.ErrInvalidToken)
	})
}

func admin(role string, team uuid.UUID) contextutil.Actor {
	return contextutil.Actor{
		WorkerID:  uuid.NewString(),
		CompanyID: companyA.String(),
		SiteID:    siteA.String(),
		TeamID:    team.String(),
		Role:      role,
	}
}

func TestService_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve moves REQUESTED to ACTIVE", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusRequested, companyA, siteA, teamA)
		actor := admin(worker.RoleTeamAdmin, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusActive)
		f.db.ExpectCommit()

		resp, err := f.svc.Approve(ctx, actor, w.ID.String(), worker.ApproveRequest{})
		require.NoError(t, err)
		assert.Equal(t, worker.StatusActive, resp.Status)
		require.NotNil(t, w.ApprovedBy)
		assert.Equal(t, actor.WorkerID, w.ApprovedBy.String())
	})

	t.Run("approve can reassign team within the site", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusRequested, companyA, siteA, teamA)
		actor := admin(worker.RoleSiteAdmin, teamA)
		target := placementA
		target.TeamID = teamA2.String()

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.placements.EXPECT().GetTeam(gomock.Any(), teamA2.String()).Return(target, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusActive)
		f.db.ExpectCommit()

		_, err := f.svc.Approve(ctx, actor, w.ID.String(), worker.ApproveRequest{TeamID: teamA2.String(), Role: worker.RoleTeamAdmin})
		require.NoError(t, err)
		assert.Equal(t, teamA2, w.TeamID)
		assert.Equal(t, worker.RoleTeamAdmin, w.Role)
	})

	t.Run("approve on ACTIVE is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusActive, companyA, siteA, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.db.ExpectRollback()

		_, err := f.svc.Approve(ctx, admin(worker.RoleTeamAdmin, teamA), w.ID.String(), worker.ApproveRequest{})
		assert.ErrorIs(t, err, workererrors.ErrInvalidTransition)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, map[string]string{"action": "approve", "status": worker.StatusActive}, appErr.Details)
	})

	t.Run("team admin cannot act outside their team", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusActive, companyA, siteA, teamA2)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.db.ExpectRollback()

		_, err := f.svc.Block(ctx, admin(worker.RoleTeamAdmin, teamA), w.ID.String())
		assert.ErrorIs(t, err, workererrors.ErrForbidden)
	})

	t.Run("unknown target answers like an out-of-scope one", func(t *testing.T) {
		f := newFixture(t)
		actor := admin(worker.RoleTeamAdmin, teamA)
		outside := existingWorker(worker.StatusActive, companyA, siteA, teamA2)
		missing := uuid.NewString()

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), outside.ID.String()).Return(outside, nil)
		f.db.ExpectRollback()
		_, outErr := f.svc.Block(ctx, actor, outside.ID.String())

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)
		f.db.ExpectRollback()
		_, missErr := f.svc.Block(ctx, actor, missing)

		_, badErr := f.svc.Block(ctx, actor, "not-a-uuid")

		assert.ErrorIs(t, outErr, workererrors.ErrForbidden)
		assert.ErrorIs(t, missErr, workererrors.ErrForbidden)
		assert.ErrorIs(t, badErr, workererrors.ErrForbidden)
		assert.Equal(t, apperror.ToHTTP(outErr), apperror.ToHTTP(missErr))
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("workers cannot run admin transitions", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Deactivate(ctx, admin(worker.RoleWorker, teamA), uuid.NewString())
		assert.ErrorIs(t, err, workererrors.ErrForbidden)
	})

	t.Run("deactivate moves ACTIVE to INACTIVE", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusActive, companyA, siteA, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusInactive)
		f.db.ExpectCommit()

		resp, err := f.svc.Deactivate(ctx, admin(worker.RoleSiteAdmin, teamA), w.ID.String())
		require.NoError(t, err)
		assert.Equal(t, worker.StatusInactive, resp.Status)
		assert.NotNil(t, w.DeactivatedAt)
	})

	t.Run("deactivate on REQUESTED is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusRequested, companyA, siteA, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.db.ExpectRollback()

		_, err := f.svc.Deactivate(ctx, admin(worker.RoleSiteAdmin, teamA), w.ID.String())
		assert.ErrorIs(t, err, workererrors.ErrInvalidTransition)
		assert.Equal(t, worker.StatusRequested, w.Status)
	})

	t.Run("deactivated worker can transfer to another company", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusActive, companyA, siteA, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusInactive)
		f.db.ExpectCommit()

		_, err := f.svc.Deactivate(ctx, admin(worker.RoleSuperAdmin, teamB), w.ID.String())
		require.NoError(t, err)

		p := proof()
		f.verifier.EXPECT().ValidateToken(gomock.Any(), "vt", verification.PurposeEnroll).Return(p, nil)
		f.placements.EXPECT().ResolvePlacement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(placementB, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.verifier.EXPECT().Consume(gomock.Any(), gomock.Any(), p, w.ID.String()).Return(nil)
		f.expectOutbox(worker.StatusRequested)
		f.db.ExpectCommit()

		resp, err := f.svc.RequestEnrollment(ctx, enrollRequest(placementB))
		require.NoError(t, err)
		assert.Equal(t, worker.StatusRequested, resp.Status)
		assert.True(t, resp.Transferred)
		assert.Equal(t, companyB, w.CompanyID)
		assert.Nil(t, w.DeactivatedAt)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("block then unblock", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusActive, companyA, siteA, teamA)
		actor := admin(worker.RoleSuperAdmin, teamB)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusBlocked)
		f.db.ExpectCommit()

		resp, err := f.svc.Block(ctx, actor, w.ID.String())
		require.NoError(t, err)
		assert.Equal(t, worker.StatusBlocked, resp.Status)
		assert.NotNil(t, w.BlockedAt)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusActive)
		f.db.ExpectCommit()

		resp, err = f.svc.Unblock(ctx, actor, w.ID.String())
		require.NoError(t, err)
		assert.Equal(t, worker.StatusActive, resp.Status)
		assert.Nil(t, w.BlockedAt)
	})

	t.Run("reject records the reason", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusRequested, companyA, siteA, teamA)

		f.expectTx()
		f.repo.EXPECT().FindByIDForUpdate(gomock.Any(), w.ID.String()).Return(w, nil)
		f.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
		f.expectOutbox(worker.StatusRejected)
		f.db.ExpectCommit()

		_, err := f.svc.Reject(ctx, admin(worker.RoleSiteAdmin, teamA), w.ID.String(), worker.RejectRequest{Reason: " unknown applicant "})
		require.NoError(t, err)
		require.NotNil(t, w.RejectionReason)
		assert.Equal(t, "unknown applicant", *w.RejectionReason)
	})
}

func TestService_Invite(t *testing.T) {
	ctx := context.Background()
	req := worker.InviteRequest{
		TeamID:    teamA.String(),
		Name:      "Lee Seoyeon",
		Phone:     "010-1234-5678",
		BirthDate: "19950302",
		JobTitle:  "Electrician",
	}

	t.Run("creates a PENDING worker and resolves the reference", func(t *testing.T) {
		f := newFixture(t)
		var created *worker.Worker

		f.placements.EXPECT().GetTeam(gomock.Any(), teamA.String()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *worker.Worker) error {
			created = w
			return nil
		})
		f.expectOutbox(worker.StatusPending)
		f.db.ExpectCommit()
		f.sender.EXPECT().Send(gomock.Any(), testPhone, gomock.Any()).Return(notification.Outcome{Delivered: true}, nil)

		resp, err := f.svc.Invite(ctx, admin(worker.RoleTeamAdmin, teamA), req)
		require.NoError(t, err)
		assert.Equal(t, worker.StatusPending, resp.Status)
		assert.Empty(t, resp.Warnings)
		assert.NotEmpty(t, resp.InviteReference)

		f.repo.EXPECT().FindByID(gomock.Any(), created.ID.String()).Return(created, nil)
		f.placements.EXPECT().GetTeam(gomock.Any(), teamA.String()).Return(placementA, nil)

		detail, err := f.svc.ResolveInvite(ctx, resp.InviteReference)
		require.NoError(t, err)
		assert.Equal(t, "Songdo Tower", detail.SiteName)
		assert.Equal(t, created.ID.String(), detail.WorkerID)
		assert.NotContains(t, detail.MaskedPhone, "1234")
	})

	t.Run("failed SMS becomes a warning", func(t *testing.T) {
		f := newFixture(t)

		f.placements.EXPECT().GetTeam(gomock.Any(), teamA.String()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(nil, gorm.ErrRecordNotFound)
		f.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.expectOutbox(worker.StatusPending)
		f.db.ExpectCommit()
		f.sender.EXPECT().Send(gomock.Any(), testPhone, gomock.Any()).Return(notification.Outcome{}, notification.ErrDeliveryFailed)

		resp, err := f.svc.Invite(ctx, admin(worker.RoleTeamAdmin, teamA), req)
		require.NoError(t, err)
		assert.Len(t, resp.Warnings, 1)
	})

	t.Run("held phone conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.placements.EXPECT().GetTeam(gomock.Any(), teamA.String()).Return(placementA, nil)
		f.expectTx()
		f.repo.EXPECT().FindByPhoneForUpdate(gomock.Any(), testPhone).Return(existingWorker(worker.StatusActive, companyB, siteB, teamB), nil)
		f.db.ExpectRollback()

		_, err := f.svc.Invite(ctx, admin(worker.RoleTeamAdmin, teamA), req)
		assert.ErrorIs(t, err, workererrors.ErrPhoneInUse)
	})

	t.Run("team admin cannot invite into another team", func(t *testing.T) {
		f := newFixture(t)
		f.placements.EXPECT().GetTeam(gomock.Any(), teamA.String()).Return(placementA, nil)

		_, err := f.svc.Invite(ctx, admin(worker.RoleTeamAdmin, teamA2), req)
		assert.ErrorIs(t, err, workererrors.ErrForbidden)
	})

	t.Run("resolving a tampered reference fails", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ResolveInvite(ctx, "not-a-reference")
		assert.ErrorIs(t, err, workererrors.ErrInvalidInviteReference)
	})
}

func TestService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("status view by id", func(t *testing.T) {
		f := newFixture(t)
		w := existingWorker(worker.StatusBlocked, companyA, siteA, teamA)
		f.repo.EXPECT().FindByID(gomock.Any(), w.ID.String()).Return(w, nil)

		view, err := f.svc.GetStatus(ctx, w.ID.String())
		require.NoError(t, err)
		assert.Equal(t, worker.StatusBlocked, view.Status)
		assert.Equal(t, siteA.String(), view.SiteID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.NewString()
		f.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.GetMe(ctx, id)
		assert.ErrorIs(t, err, workererrors.ErrWorkerNotFound)
	})

	t.Run("phone registered normalizes input", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ExistsRegistered(gomock.Any(), testPhone).Return(true, nil)

		ok, err := f.svc.PhoneRegistered(ctx, "010-1234-5678")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("pending list is scoped to the admin", func(t *testing.T) {
		f := newFixture(t)
		actor := admin(worker.RoleSiteAdmin, teamA)
		f.repo.EXPECT().ListByStatus(gomock.Any(), worker.StatusRequested, gomock.Any()).
			Return([]worker.Worker{*existingWorker(worker.StatusRequested, companyA, siteA, teamA)}, nil)

		list, err := f.svc.ListPending(ctx, actor)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
