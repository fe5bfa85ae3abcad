package balance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/policy"
	policyerrors "leaveflow/internal/policy/errors"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SummaryKeyPrefix = "balance:summary:"

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// Debit consumes days from the ledger row. For unbounded leave types
	// only the used column moves. Runs inside the caller's transaction
	// when tx is non-nil.
	Debit(ctx context.Context, tx *sql.Tx, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error
	// Credit returns days to the ledger row, the exact inverse of Debit.
	Credit(ctx context.Context, tx *sql.Tx, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error
	// CheckSufficiency reports whether the user can take amount days.
	CheckSufficiency(ctx context.Context, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error
	ProvisionForRole(ctx context.Context, tx *sql.Tx, userID, roleID string, year int) error
	Rollover(ctx context.Context, req RolloverRequest) (RolloverResult, error)
	Summary(ctx context.Context, userID string, year int) ([]SummaryItem, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	policyRepo policy.Repository
	rdb        *redis.Client
	sf         *singleflight.Group
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policyRepo policy.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		policyRepo: policyRepo,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func (s *service) Debit(ctx context.Context, tx *sql.Tx, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error {
	return s.adjust(ctx, tx, userID, leaveTypeID, year, amount.Neg(), amount, unbounded)
}

func (s *service) Credit(ctx context.Context, tx *sql.Tx, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error {
	return s.adjust(ctx, tx, userID, leaveTypeID, year, amount, amount.Neg(), unbounded)
}

func (s *service) adjust(ctx context.Context, tx *sql.Tx, userID, leaveTypeID string, year int, balanceDelta, usedDelta decimal.Decimal, unbounded bool) error {
	if usedDelta.IsZero() {
		return balanceerrors.ErrInvalidAmount
	}
	if unbounded {
		// Usage tracking only; the balance column stays untouched.
		balanceDelta = decimal.Zero
	}

	repo := s.repo
	if tx != nil {
		repo = s.repo.WithTx(tx)
	}

	affected, err := repo.AdjustBalance(ctx, userID, leaveTypeID, year, balanceDelta, usedDelta)
	if err != nil {
		s.logger.Error("balance adjust failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("user_id", userID),
			zap.String("leave_type_id", leaveTypeID),
			zap.Error(err),
		)
		return err
	}
	if affected == 0 {
		s.logger.Error("balance row missing on adjust",
			zap.String("user_id", userID),
			zap.String("leave_type_id", leaveTypeID),
			zap.Int("year", year),
		)
		return balanceerrors.ErrBalanceRowNotFound
	}

	s.invalidateSummary(ctx, userID, year)
	return nil
}

func (s *service) CheckSufficiency(ctx context.Context, userID, leaveTypeID string, year int, amount decimal.Decimal, unbounded bool) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return balanceerrors.ErrInvalidAmount
	}
	if unbounded {
		return nil
	}

	row, err := s.repo.FindBalance(ctx, userID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return balanceerrors.ErrBalanceNotFound
		}
		return err
	}
	if amount.GreaterThan(row.Balance) {
		return balanceerrors.NewInsufficientBalance(row.Balance, row.Balance.Add(row.Used))
	}
	return nil
}

// ProvisionForRole seeds one ledger row per leave policy granted to the
// role. Already-present rows are left alone, so re-running for the same
// user and year is harmless.
func (s *service) ProvisionForRole(ctx context.Context, tx *sql.Tx, userID, roleID string, year int) error {
	grants, err := s.policyRepo.ListPoliciesByRole(ctx, roleID)
	if err != nil {
		return err
	}

	repo := s.repo
	if tx != nil {
		repo = s.repo.WithTx(tx)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	for _, grant := range grants {
		opening := grant.AccrualPerYear
		if grant.LeaveType != nil && grant.LeaveType.Unbounded {
			opening = decimal.Zero
		}
		row := &LeaveBalance{
			ID:          uuid.New(),
			UserID:      uid,
			LeaveTypeID: grant.LeaveTypeID,
			Year:        year,
			Balance:     opening,
			Used:        decimal.Zero,
		}
		if _, err := repo.ProvisionRow(ctx, row); err != nil {
			return err
		}
	}

	s.logger.Info("provision balances success",
		zap.String("user_id", userID),
		zap.String("role_id", roleID),
		zap.Int("year", year),
		zap.Int("rows", len(grants)),
	)
	return nil
}

// Rollover opens next-year rows for every holder of the leave type:
// new balance = annual entitlement + carried days, where at most one
// year's accrual worth of unused days carries over. The carry cap is
// read from the stored role policies, never from caller input. Rows
// already opened by an earlier run are counted as skipped.
func (s *service) Rollover(ctx context.Context, req RolloverRequest) (RolloverResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("rollover requested",
		zap.String("request_id", rid),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("from_year", req.FromYear),
	)

	lt, err := s.policyRepo.FindLeaveType(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RolloverResult{}, policyerrors.ErrLeaveTypeNotFound
		}
		return RolloverResult{}, err
	}

	carryCap := decimal.Zero
	if !lt.Unbounded {
		// Cascading reconciliation keeps one accrual value across every
		// role granted the type, so any policy row can speak for all.
		policies, err := s.policyRepo.ListRolePolicies(ctx, req.LeaveTypeID)
		if err != nil {
			return RolloverResult{}, err
		}
		if len(policies) > 0 {
			carryCap = policies[0].AccrualPerYear
		}
	}

	current, err := s.repo.ListYearRows(ctx, req.LeaveTypeID, req.FromYear)
	if err != nil {
		return RolloverResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RolloverResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	toYear := req.FromYear + 1
	result := RolloverResult{FromYear: req.FromYear, ToYear: toYear}

	for _, row := range current {
		opening := decimal.Zero
		if !lt.Unbounded {
			unused := decimal.Max(decimal.Zero, row.Balance.Sub(row.Used))
			carry := decimal.Min(carryCap, unused)
			opening = lt.MaxPerYear.Add(carry)
		}

		inserted, err := qtx.ProvisionRow(ctx, &LeaveBalance{
			ID:          uuid.New(),
			UserID:      row.UserID,
			LeaveTypeID: row.LeaveTypeID,
			Year:        toYear,
			Balance:     opening,
			Used:        decimal.Zero,
		})
		if err != nil {
			s.logger.Error("rollover insert failed",
				zap.String("request_id", rid),
				zap.String("user_id", row.UserID.String()),
				zap.Error(err),
			)
			return RolloverResult{}, err
		}
		if inserted == 0 {
			result.Skipped++
			continue
		}
		result.Processed++
	}

	if err := tx.Commit(); err != nil {
		return RolloverResult{}, err
	}

	for _, row := range current {
		s.invalidateSummary(ctx, row.UserID.String(), toYear)
	}

	s.logger.Info("rollover success",
		zap.String("request_id", rid),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) Summary(ctx context.Context, userID string, year int) ([]SummaryItem, error) {
	cacheKey := summaryKey(userID, year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []SummaryItem
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.ListBalances(ctx, userID, year)
		if err != nil {
			return nil, err
		}

		types, err := s.policyRepo.ListLeaveTypes(ctx)
		if err != nil {
			return nil, err
		}
		typesByID := make(map[uuid.UUID]policy.LeaveType, len(types))
		for _, lt := range types {
			typesByID[lt.ID] = lt
		}

		resp := make([]SummaryItem, 0, len(rows))
		for _, row := range rows {
			item := SummaryItem{
				LeaveTypeID: row.LeaveTypeID.String(),
				Balance:     row.Balance,
				Used:        row.Used,
			}
			if lt, ok := typesByID[row.LeaveTypeID]; ok {
				item.LeaveTypeName = lt.Name
				item.Unbounded = lt.Unbounded
			}
			resp = append(resp, item)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 5*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]SummaryItem), nil
}

func (s *service) invalidateSummary(ctx context.Context, userID string, year int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, summaryKey(userID, year)).Err(); err != nil {
		s.logger.Warn("summary cache invalidation failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func summaryKey(userID string, year int) string {
	return fmt.Sprintf("%s%s:%d", SummaryKeyPrefix, userID, year)
}
