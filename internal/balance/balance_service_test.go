package balance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"

	"leaveflow/internal/balance"
	balanceerrors "leaveflow/internal/balance/errors"
	balanceMock "leaveflow/internal/balance/mock"
	"leaveflow/internal/policy"
	policyerrors "leaveflow/internal/policy/errors"
	policyMock "leaveflow/internal/policy/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    balance.Service
	repo       *balanceMock.MockRepository
	policyRepo *policyMock.MockRepository
	redismock  redismock.ClientMock
}

func setupServiceTest(t *testing.T, rdb bool) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := balanceMock.NewMockRepository(ctrl)
	policyRepo := policyMock.NewMockRepository(ctrl)

	var client *redis.Client
	var redisMock redismock.ClientMock
	if rdb {
		client, redisMock = redismock.NewClientMock()
	}

	svc := balance.NewService(db, repo, policyRepo, client)

	return &serviceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		policyRepo: policyRepo,
		redismock:  redisMock,
	}
}

func summaryKey(userID string, year int) string {
	return fmt.Sprintf("%s%s:%d", balance.SummaryKeyPrefix, userID, year)
}

func TestBalanceService_DebitCredit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	leaveTypeID := uuid.New().String()

	t.Run("debit moves both columns", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		amount := decimal.NewFromInt(2)
		deps.repo.EXPECT().AdjustBalance(gomock.Any(), userID, leaveTypeID, 2026, amount.Neg(), amount).Return(int64(1), nil)

		err := deps.service.Debit(ctx, nil, userID, leaveTypeID, 2026, amount, false)
		assert.NoError(t, err)
	})

	t.Run("unbounded debit only tracks usage", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		amount := decimal.NewFromFloat(0.5)
		deps.repo.EXPECT().AdjustBalance(gomock.Any(), userID, leaveTypeID, 2026, decimal.Zero, amount).Return(int64(1), nil)

		err := deps.service.Debit(ctx, nil, userID, leaveTypeID, 2026, amount, true)
		assert.NoError(t, err)
	})

	t.Run("credit is the inverse of debit", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		amount := decimal.NewFromInt(3)
		deps.repo.EXPECT().AdjustBalance(gomock.Any(), userID, leaveTypeID, 2026, amount, amount.Neg()).Return(int64(1), nil)

		err := deps.service.Credit(ctx, nil, userID, leaveTypeID, 2026, amount, false)
		assert.NoError(t, err)
	})

	t.Run("missing ledger row", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.repo.EXPECT().AdjustBalance(gomock.Any(), userID, leaveTypeID, 2026, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := deps.service.Debit(ctx, nil, userID, leaveTypeID, 2026, decimal.NewFromInt(1), false)
		assert.ErrorIs(t, err, balanceerrors.ErrBalanceRowNotFound)
	})

	t.Run("zero amount is invalid", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		err := deps.service.Debit(ctx, nil, userID, leaveTypeID, 2026, decimal.Zero, false)
		assert.ErrorIs(t, err, balanceerrors.ErrInvalidAmount)
	})
}

func TestBalanceService_CheckSufficiency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	leaveTypeID := uuid.New().String()

	t.Run("enough balance", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.repo.EXPECT().FindBalance(gomock.Any(), userID, leaveTypeID, 2026).Return(&balance.LeaveBalance{
			Balance: decimal.NewFromInt(10),
		}, nil)

		err := deps.service.CheckSufficiency(ctx, userID, leaveTypeID, 2026, decimal.NewFromInt(3), false)
		assert.NoError(t, err)
	})

	t.Run("insufficient balance names remaining and year maximum", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.repo.EXPECT().FindBalance(gomock.Any(), userID, leaveTypeID, 2026).Return(&balance.LeaveBalance{
			Balance: decimal.NewFromFloat(1.5),
			Used:    decimal.NewFromFloat(6.5),
		}, nil)

		err := deps.service.CheckSufficiency(ctx, userID, leaveTypeID, 2026, decimal.NewFromInt(3), false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "1.5")
		assert.Contains(t, err.Error(), "8")
	})

	t.Run("unbounded type never blocks", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		err := deps.service.CheckSufficiency(ctx, userID, leaveTypeID, 2026, decimal.NewFromInt(30), true)
		assert.NoError(t, err)
	})

	t.Run("no ledger row", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.repo.EXPECT().FindBalance(gomock.Any(), userID, leaveTypeID, 2026).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.CheckSufficiency(ctx, userID, leaveTypeID, 2026, decimal.NewFromInt(1), false)
		assert.ErrorIs(t, err, balanceerrors.ErrBalanceNotFound)
	})
}

func TestBalanceService_ProvisionForRole(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	roleID := uuid.New().String()

	t.Run("seeds one row per grant with the accrual as opening balance", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		annual := uuid.New()
		sick := uuid.New()
		deps.policyRepo.EXPECT().ListPoliciesByRole(gomock.Any(), roleID).Return([]policy.RolePolicy{
			{LeaveTypeID: annual, AccrualPerYear: decimal.NewFromInt(12), LeaveType: &policy.LeaveType{ID: annual, Name: "Annual Leave"}},
			{LeaveTypeID: sick, AccrualPerYear: decimal.Zero, LeaveType: &policy.LeaveType{ID: sick, Name: "Sick Leave", Unbounded: true}},
		}, nil)

		var seeded []*balance.LeaveBalance
		deps.repo.EXPECT().ProvisionRow(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row *balance.LeaveBalance) (int64, error) {
				seeded = append(seeded, row)
				return 1, nil
			}).Times(2)

		err := deps.service.ProvisionForRole(ctx, nil, userID.String(), roleID, 2026)

		assert.NoError(t, err)
		assert.Len(t, seeded, 2)
		assert.True(t, seeded[0].Balance.Equal(decimal.NewFromInt(12)))
		assert.True(t, seeded[1].Balance.IsZero())
		assert.Equal(t, userID, seeded[0].UserID)
		assert.Equal(t, 2026, seeded[0].Year)
	})
}

func TestBalanceService_Rollover(t *testing.T) {
	ctx := context.Background()

	t.Run("carries at most one year of accrual on top of the entitlement", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		leaveTypeID := uuid.New()
		deps.policyRepo.EXPECT().FindLeaveType(gomock.Any(), leaveTypeID.String()).Return(&policy.LeaveType{
			ID:         leaveTypeID,
			Name:       "Annual Leave",
			MaxPerYear: decimal.NewFromInt(12),
		}, nil)
		deps.policyRepo.EXPECT().ListRolePolicies(gomock.Any(), leaveTypeID.String()).Return([]policy.RolePolicy{
			{LeaveTypeID: leaveTypeID, AccrualPerYear: decimal.NewFromInt(10)},
		}, nil)

		holderA := uuid.New()
		holderB := uuid.New()
		deps.repo.EXPECT().ListYearRows(gomock.Any(), leaveTypeID.String(), 2026).Return([]balance.LeaveBalance{
			// 4 unused days, under the accrual cap: all of it carries.
			{UserID: holderA, LeaveTypeID: leaveTypeID, Year: 2026, Balance: decimal.NewFromInt(6), Used: decimal.NewFromInt(2)},
			// 15 unused days: only one accrual's worth carries.
			{UserID: holderB, LeaveTypeID: leaveTypeID, Year: 2026, Balance: decimal.NewFromInt(15), Used: decimal.Zero},
		}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		var opened []*balance.LeaveBalance
		deps.repo.EXPECT().ProvisionRow(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row *balance.LeaveBalance) (int64, error) {
				opened = append(opened, row)
				return 1, nil
			}).Times(2)
		deps.sqlMock.ExpectCommit()

		result, err := deps.service.Rollover(ctx, balance.RolloverRequest{
			LeaveTypeID: leaveTypeID.String(),
			FromYear:    2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2027, result.ToYear)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 0, result.Skipped)
		assert.True(t, opened[0].Balance.Equal(decimal.NewFromInt(16))) // 12 + min(10, 4)
		assert.True(t, opened[1].Balance.Equal(decimal.NewFromInt(22))) // 12 + min(10, 15)
		assert.Equal(t, 2027, opened[0].Year)
	})

	t.Run("rerun counts already-opened rows as skipped", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		leaveTypeID := uuid.New()
		deps.policyRepo.EXPECT().FindLeaveType(gomock.Any(), leaveTypeID.String()).Return(&policy.LeaveType{
			ID:         leaveTypeID,
			MaxPerYear: decimal.NewFromInt(12),
		}, nil)
		deps.policyRepo.EXPECT().ListRolePolicies(gomock.Any(), leaveTypeID.String()).Return([]policy.RolePolicy{
			{LeaveTypeID: leaveTypeID, AccrualPerYear: decimal.NewFromInt(10)},
		}, nil)
		deps.repo.EXPECT().ListYearRows(gomock.Any(), leaveTypeID.String(), 2026).Return([]balance.LeaveBalance{
			{UserID: uuid.New(), LeaveTypeID: leaveTypeID, Year: 2026, Balance: decimal.NewFromInt(6)},
		}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProvisionRow(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		deps.sqlMock.ExpectCommit()

		result, err := deps.service.Rollover(ctx, balance.RolloverRequest{
			LeaveTypeID: leaveTypeID.String(),
			FromYear:    2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
		assert.Equal(t, 1, result.Skipped)
	})

	// No ListRolePolicies expectation here: unbounded types never carry,
	// so the policy lookup must be skipped entirely.
	t.Run("unbounded type opens zero balances", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		leaveTypeID := uuid.New()
		deps.policyRepo.EXPECT().FindLeaveType(gomock.Any(), leaveTypeID.String()).Return(&policy.LeaveType{
			ID:        leaveTypeID,
			Unbounded: true,
		}, nil)
		deps.repo.EXPECT().ListYearRows(gomock.Any(), leaveTypeID.String(), 2026).Return([]balance.LeaveBalance{
			{UserID: uuid.New(), LeaveTypeID: leaveTypeID, Year: 2026, Used: decimal.NewFromInt(9)},
		}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProvisionRow(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, row *balance.LeaveBalance) (int64, error) {
				assert.True(t, row.Balance.IsZero())
				return 1, nil
			})
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Rollover(ctx, balance.RolloverRequest{
			LeaveTypeID: leaveTypeID.String(),
			FromYear:    2026,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.policyRepo.EXPECT().FindLeaveType(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Rollover(ctx, balance.RolloverRequest{
			LeaveTypeID: id,
			FromYear:    2026,
		})
		assert.ErrorIs(t, err, policyerrors.ErrLeaveTypeNotFound)
	})
}

func TestBalanceService_Summary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	cacheKey := summaryKey(userID, 2026)

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		cached := []balance.SummaryItem{{
			LeaveTypeID:   uuid.New().String(),
			LeaveTypeName: "Annual Leave",
			Balance:       decimal.NewFromInt(9),
			Used:          decimal.NewFromInt(3),
		}}
		jsonResp, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.Summary(ctx, userID, 2026)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Annual Leave", resp[0].LeaveTypeName)
	})

	t.Run("cache miss joins rows with their leave types", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		leaveTypeID := uuid.New()
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().ListBalances(gomock.Any(), userID, 2026).Return([]balance.LeaveBalance{
			{LeaveTypeID: leaveTypeID, Year: 2026, Balance: decimal.NewFromInt(9), Used: decimal.NewFromInt(3)},
		}, nil)
		deps.policyRepo.EXPECT().ListLeaveTypes(gomock.Any()).Return([]policy.LeaveType{
			{ID: leaveTypeID, Name: "Annual Leave"},
		}, nil)

		resp, err := deps.service.Summary(ctx, userID, 2026)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, leaveTypeID.String(), resp[0].LeaveTypeID)
		assert.Equal(t, "Annual Leave", resp[0].LeaveTypeName)
		assert.True(t, resp[0].Balance.Equal(decimal.NewFromInt(9)))
	})
}
