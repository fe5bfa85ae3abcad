package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	balanceMock "leaveflow/internal/balance/mock"
	"leaveflow/internal/leave"
	leaveerrors "leaveflow/internal/leave/errors"
	leaveMock "leaveflow/internal/leave/mock"
	kafkaMock "leaveflow/internal/messaging/kafka/mock"
	"leaveflow/internal/org"
	orgMock "leaveflow/internal/org/mock"
	"leaveflow/internal/policy"
	policyMock "leaveflow/internal/policy/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  leave.Service
	repo     *leaveMock.MockRepository
	orgRepo  *orgMock.MockRepository
	policies *policyMock.MockService
	ledger   *balanceMock.MockService
	outbox   *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	orgRepo := orgMock.NewMockRepository(ctrl)
	policies := policyMock.NewMockService(ctrl)
	ledger := balanceMock.NewMockService(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	chain := leave.NewChainBuilder(orgRepo)
	svc := leave.NewService(db, repo, orgRepo, policies, ledger, chain, outbox)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		orgRepo:  orgRepo,
		policies: policies,
		ledger:   ledger,
		outbox:   outbox,
	}
}

func employeeUser(managerID *uuid.UUID) *org.User {
	cap := 3
	return &org.User{
		ID:        uuid.New(),
		Name:      "Employee",
		ManagerID: managerID,
		RoleID:    uuid.New(),
		Role:      &org.Role{ID: uuid.New(), Name: "employee", Rank: 4, ApprovalLevel: &cap},
	}
}

func TestLeaveService_RequestLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("two-day request gets one approval level and pending status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		manager := &org.User{ID: uuid.New(), Name: "Manager"}
		requester := employeeUser(&manager.ID)
		leaveTypeID := uuid.New()

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), requester.ID.String()).Return(requester, nil)
		deps.policies.EXPECT().Resolve(gomock.Any(), requester.RoleID.String(), leaveTypeID.String()).Return(policy.ResolvedPolicy{
			LeaveTypeID:     leaveTypeID,
			AccrualPerYear:  decimal.NewFromInt(12),
			ApprovalBreadth: 1,
		}, nil)
		deps.ledger.EXPECT().CheckSufficiency(gomock.Any(), requester.ID.String(), leaveTypeID.String(), 2026, decimal.NewFromInt(2), false).Return(nil)
		deps.orgRepo.EXPECT().FindUser(gomock.Any(), manager.ID.String()).Return(manager, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPending, req.Status)
				assert.Equal(t, 1, req.FinalApprovalLevel)
				assert.True(t, req.TotalDays.Equal(decimal.NewFromInt(2)))
				return nil
			})
		deps.repo.EXPECT().CreateApprovals(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []leave.LeaveApproval) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, 1, rows[0].Level)
				assert.Equal(t, manager.ID, rows[0].ApproverID)
				assert.Equal(t, leave.ApprovalPending, rows[0].Status)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.RequestLeave(ctx, requester.ID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-07", // Monday
			EndDate:     "2026-09-08",
			Reason:      "family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Len(t, resp.Approvals, 1)
	})

	t.Run("six-day request escalates to the full chain", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hr := &org.User{ID: uuid.New(), Name: "HR"}
		senior := &org.User{ID: uuid.New(), Name: "Senior", ManagerID: &hr.ID}
		manager := &org.User{ID: uuid.New(), Name: "Manager", ManagerID: &senior.ID}
		requester := employeeUser(&manager.ID)
		leaveTypeID := uuid.New()

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), requester.ID.String()).Return(requester, nil)
		deps.policies.EXPECT().Resolve(gomock.Any(), requester.RoleID.String(), leaveTypeID.String()).Return(policy.ResolvedPolicy{
			LeaveTypeID:     leaveTypeID,
			ApprovalBreadth: 1,
		}, nil)
		deps.ledger.EXPECT().CheckSufficiency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)
		deps.orgRepo.EXPECT().FindUser(gomock.Any(), manager.ID.String()).Return(manager, nil)
		deps.orgRepo.EXPECT().FindUser(gomock.Any(), senior.ID.String()).Return(senior, nil)
		deps.orgRepo.EXPECT().FindUser(gomock.Any(), hr.ID.String()).Return(hr, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPendingL1, req.Status)
				assert.Equal(t, 3, req.FinalApprovalLevel)
				return nil
			})
		deps.repo.EXPECT().CreateApprovals(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []leave.LeaveApproval) error {
				assert.Len(t, rows, 3)
				assert.Equal(t, manager.ID, rows[0].ApproverID)
				assert.Equal(t, senior.ID, rows[1].ApproverID)
				assert.Equal(t, hr.ID, rows[2].ApproverID)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.RequestLeave(ctx, requester.ID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-14", // 6 business days
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.FinalApprovalLevel)
	})

	t.Run("auto-approve debits immediately", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		requester := employeeUser(nil)
		leaveTypeID := uuid.New()

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), requester.ID.String()).Return(requester, nil)
		deps.policies.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.ResolvedPolicy{
			LeaveTypeID:     leaveTypeID,
			ApprovalBreadth: 0,
		}, nil)
		deps.ledger.EXPECT().CheckSufficiency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusApproved, req.Status)
				assert.Equal(t, 0, req.FinalApprovalLevel)
				return nil
			})
		deps.repo.EXPECT().CreateApprovals(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []leave.LeaveApproval) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, leave.ApprovalApproved, rows[0].Status)
				assert.Equal(t, requester.ID, rows[0].ApproverID)
				return nil
			})
		deps.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), requester.ID.String(), leaveTypeID.String(), 2026, gomock.Any(), false).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.RequestLeave(ctx, requester.ID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("insufficient balance stops before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		requester := employeeUser(nil)
		leaveTypeID := uuid.New()
		insufficient := assert.AnError

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), requester.ID.String()).Return(requester, nil)
		deps.policies.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.ResolvedPolicy{
			LeaveTypeID:     leaveTypeID,
			ApprovalBreadth: 1,
		}, nil)
		deps.ledger.EXPECT().CheckSufficiency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).Return(insufficient)

		_, err := deps.service.RequestLeave(ctx, requester.ID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-08",
		})

		assert.ErrorIs(t, err, insufficient)
	})

	t.Run("weekend-only range is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		requester := employeeUser(nil)
		leaveTypeID := uuid.New()

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), requester.ID.String()).Return(requester, nil)
		deps.policies.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.ResolvedPolicy{
			LeaveTypeID:     leaveTypeID,
			ApprovalBreadth: 1,
		}, nil)

		_, err := deps.service.RequestLeave(ctx, requester.ID.String(), leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-05", // Saturday
			EndDate:     "2026-09-06", // Sunday
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("unknown requester", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.orgRepo.EXPECT().FindUser(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.RequestLeave(ctx, uuid.New().String(), leave.CreateLeaveRequest{
			LeaveTypeID: uuid.New().String(),
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-08",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrRequesterNotFound)
	})
}

func pendingApproval(level, finalLevel int, status string) *leave.LeaveApproval {
	requestID := uuid.New()
	return &leave.LeaveApproval{
		ID:             uuid.New(),
		LeaveRequestID: requestID,
		ApproverID:     uuid.New(),
		Level:          level,
		Status:         leave.ApprovalPending,
		Request: &leave.LeaveRequest{
			ID:                 requestID,
			UserID:             uuid.New(),
			LeaveTypeID:        uuid.New(),
			StartDate:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			TotalDays:          decimal.NewFromInt(2),
			Status:             status,
			FinalApprovalLevel: finalLevel,
			LeaveType:          &policy.LeaveType{ID: uuid.New(), Name: "Annual Leave"},
		},
	}
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("intermediate approval advances without touching the ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(1, 3, leave.StatusPendingL1)
		request := approval.Request

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ActOnApproval(gomock.Any(), approval.ID.String(), approval.ApproverID.String(), leave.ApprovalApproved, gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID.String(), leave.StatusPendingL2).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).DoAndReturn(
			func(_ context.Context, _ string) (*leave.LeaveRequest, error) {
				updated := *request
				updated.Status = leave.StatusPendingL2
				return &updated, nil
			})

		resp, err := deps.service.Approve(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPendingL2, resp.Status)
	})

	t.Run("final approval debits the balance", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(3, 3, leave.StatusPendingL3)
		request := approval.Request

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ActOnApproval(gomock.Any(), approval.ID.String(), approval.ApproverID.String(), leave.ApprovalApproved, gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID.String(), leave.StatusApproved).Return(nil)
		deps.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), request.UserID.String(), request.LeaveTypeID.String(), 2026, request.TotalDays, false).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).DoAndReturn(
			func(_ context.Context, _ string) (*leave.LeaveRequest, error) {
				updated := *request
				updated.Status = leave.StatusApproved
				return &updated, nil
			})

		resp, err := deps.service.Approve(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("wrong approver is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(1, 1, leave.StatusPending)
		imposter := uuid.New().String()

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ActOnApproval(gomock.Any(), approval.ID.String(), imposter, leave.ApprovalApproved, gomock.Any()).Return(int64(0), nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, approval.ID.String(), imposter, leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrNotAuthorizedApprover)
	})

	t.Run("duplicate click reports already processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(1, 1, leave.StatusPending)

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ActOnApproval(gomock.Any(), approval.ID.String(), approval.ApproverID.String(), leave.ApprovalApproved, gomock.Any()).Return(int64(0), nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyActed)
	})

	t.Run("acting out of order is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(2, 3, leave.StatusPendingL1)

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)

		_, err := deps.service.Approve(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrApprovalLevelNotActive)
	})

	t.Run("terminal request cannot be acted on", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(1, 1, leave.StatusRejected)

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)

		_, err := deps.service.Approve(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrRequestTerminal)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("rejection short-circuits the whole request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approval := pendingApproval(1, 3, leave.StatusPendingL1)
		request := approval.Request
		comment := "headcount freeze"

		deps.repo.EXPECT().FindApproval(gomock.Any(), approval.ID.String()).Return(approval, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ActOnApproval(gomock.Any(), approval.ID.String(), approval.ApproverID.String(), leave.ApprovalRejected, &comment).Return(int64(1), nil)
		deps.repo.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID.String(), leave.StatusRejected).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).DoAndReturn(
			func(_ context.Context, _ string) (*leave.LeaveRequest, error) {
				updated := *request
				updated.Status = leave.StatusRejected
				return &updated, nil
			})

		resp, err := deps.service.Reject(ctx, approval.ID.String(), approval.ApproverID.String(), leave.ActionRequest{Comment: &comment})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling an approved request refunds the balance", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		request := &leave.LeaveRequest{
			ID:                 uuid.New(),
			UserID:             uuid.New(),
			LeaveTypeID:        uuid.New(),
			StartDate:          time.Now().UTC().AddDate(0, 0, 7),
			EndDate:            time.Now().UTC().AddDate(0, 0, 8),
			TotalDays:          decimal.NewFromInt(2),
			Status:             leave.StatusApproved,
			FinalApprovalLevel: 1,
			LeaveType:          &policy.LeaveType{ID: uuid.New(), Name: "Annual Leave"},
		}

		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).Return(request, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID.String(), leave.StatusCancelled).Return(nil)
		deps.repo.EXPECT().CancelOpenApprovals(gomock.Any(), request.ID.String()).Return(nil)
		deps.ledger.EXPECT().Credit(gomock.Any(), gomock.Any(), request.UserID.String(), request.LeaveTypeID.String(), request.StartDate.Year(), request.TotalDays, false).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).DoAndReturn(
			func(_ context.Context, _ string) (*leave.LeaveRequest, error) {
				updated := *request
				updated.Status = leave.StatusCancelled
				return &updated, nil
			})

		resp, err := deps.service.Cancel(ctx, request.ID.String(), request.UserID.String(), leave.ActionRequest{})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})

	t.Run("pending cancel does not touch the ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		request := &leave.LeaveRequest{
			ID:                 uuid.New(),
			UserID:             uuid.New(),
			LeaveTypeID:        uuid.New(),
			StartDate:          time.Now().UTC().AddDate(0, 0, 7),
			EndDate:            time.Now().UTC().AddDate(0, 0, 8),
			TotalDays:          decimal.NewFromInt(2),
			Status:             leave.StatusPendingL2,
			FinalApprovalLevel: 3,
		}

		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).Return(request, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID.String(), leave.StatusCancelled).Return(nil)
		deps.repo.EXPECT().CancelOpenApprovals(gomock.Any(), request.ID.String()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).Return(request, nil)

		_, err := deps.service.Cancel(ctx, request.ID.String(), request.UserID.String(), leave.ActionRequest{})

		assert.NoError(t, err)
	})

	t.Run("approved leave cannot be cancelled after it starts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		request := &leave.LeaveRequest{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			StartDate: time.Now().UTC().AddDate(0, 0, -1),
			Status:    leave.StatusApproved,
		}

		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).Return(request, nil)

		_, err := deps.service.Cancel(ctx, request.ID.String(), request.UserID.String(), leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrCancelAfterStart)
	})

	t.Run("only the requester may cancel", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		request := &leave.LeaveRequest{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Status: leave.StatusPending,
		}

		deps.repo.EXPECT().FindRequest(gomock.Any(), request.ID.String()).Return(request, nil)

		_, err := deps.service.Cancel(ctx, request.ID.String(), uuid.New().String(), leave.ActionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
	})
}
