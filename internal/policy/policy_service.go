package policy

import (
	"context"
	"database/sql"
	"errors"

	"leaveflow/internal/org"
	policyerrors "leaveflow/internal/policy/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// topRoleRank is the seniority rank of the unrestricted role (admin).
// Cascading writes never produce a row for it: the top role is not
// subject to leave policies.
const topRoleRank = 1

// ResolvedPolicy is what the rest of the engine consumes: the accrual for
// the requester's role plus the leave type attributes that drive the
// approval chain and the ledger.
type ResolvedPolicy struct {
	LeaveTypeID     uuid.UUID
	AccrualPerYear  decimal.Decimal
	ApprovalBreadth int
	Unbounded       bool
	MaxPerYear      decimal.Decimal
}

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, roleID, leaveTypeID string) (ResolvedPolicy, error)
	ListCanonical(ctx context.Context) ([]CanonicalPolicyResponse, error)
	Apply(ctx context.Context, req ApplyPolicyRequest) (ReconcileResult, error)
	Reapply(ctx context.Context, req ApplyPolicyRequest) (ReconcileResult, error)
	ListGrantsForRole(ctx context.Context, roleID string) ([]RolePolicy, error)

	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	orgRepo org.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, orgRepo org.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{db: db, repo: repo, orgRepo: orgRepo, logger: l}
}

func (s *service) Resolve(ctx context.Context, roleID, leaveTypeID string) (ResolvedPolicy, error) {
	lt, err := s.repo.FindLeaveType(ctx, leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedPolicy{}, policyerrors.ErrLeaveTypeNotFound
		}
		return ResolvedPolicy{}, err
	}

	row, err := s.repo.FindRolePolicy(ctx, roleID, leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedPolicy{}, policyerrors.ErrPolicyNotFound
		}
		return ResolvedPolicy{}, err
	}

	return ResolvedPolicy{
		LeaveTypeID:     lt.ID,
		AccrualPerYear:  row.AccrualPerYear,
		ApprovalBreadth: lt.ApproverCount,
		Unbounded:       lt.Unbounded,
		MaxPerYear:      lt.MaxPerYear,
	}, nil
}

// ListCanonical collapses the cascading rows to one per leave type: the row
// of the most junior applicable role. All more senior rows carry the same
// accrual after a write, so that row represents the whole range.
func (s *service) ListCanonical(ctx context.Context) ([]CanonicalPolicyResponse, error) {
	rows, err := s.repo.ListAllPolicies(ctx)
	if err != nil {
		return nil, err
	}

	rolesByID, err := s.rolesByID(ctx)
	if err != nil {
		return nil, err
	}

	type canonical struct {
		row  RolePolicy
		rank int
	}
	byType := make(map[uuid.UUID]canonical)
	order := make([]uuid.UUID, 0)

	for _, row := range rows {
		role, ok := rolesByID[row.RoleID]
		if !ok {
			continue
		}
		existing, seen := byType[row.LeaveTypeID]
		if !seen {
			order = append(order, row.LeaveTypeID)
		}
		if !seen || role.Rank > existing.rank {
			byType[row.LeaveTypeID] = canonical{row: row, rank: role.Rank}
		}
	}

	resp := make([]CanonicalPolicyResponse, 0, len(order))
	for _, typeID := range order {
		c := byType[typeID]
		item := CanonicalPolicyResponse{
			LeaveTypeID:    typeID.String(),
			AccrualPerYear: c.row.AccrualPerYear,
		}
		if c.row.LeaveType != nil {
			item.LeaveTypeName = c.row.LeaveType.Name
			item.MaxPerYear = c.row.LeaveType.MaxPerYear
			item.Unbounded = c.row.LeaveType.Unbounded
			item.ApproverCount = c.row.LeaveType.ApproverCount
		}
		if role, ok := rolesByID[c.row.RoleID]; ok {
			item.ThresholdRole = role.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// Apply is the cascading create: one row per role at or more senior than
// the threshold, excluding the unrestricted top role, all with the same
// accrual.
func (s *service) Apply(ctx context.Context, req ApplyPolicyRequest) (ReconcileResult, error) {
	s.logger.Debug("apply policy requested",
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("threshold_role_id", req.ThresholdRoleID),
	)

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return ReconcileResult{}, policyerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReconcileResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	targetRoles, err := s.targetRoles(ctx, req.ThresholdRoleID)
	if err != nil {
		return ReconcileResult{}, err
	}

	if _, err := qtx.FindLeaveType(ctx, req.LeaveTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReconcileResult{}, policyerrors.ErrLeaveTypeNotFound
		}
		return ReconcileResult{}, err
	}
	rows := make([]RolePolicy, 0, len(targetRoles))
	for _, role := range targetRoles {
		rows = append(rows, RolePolicy{
			ID:             uuid.New(),
			RoleID:         role.ID,
			LeaveTypeID:    leaveTypeID,
			AccrualPerYear: req.AccrualPerYear,
		})
	}

	if err := qtx.CreatePolicies(ctx, rows); err != nil {
		s.logger.Error("apply policy persist failed", zap.Error(err))
		return ReconcileResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReconcileResult{}, err
	}
	s.logger.Info("apply policy success",
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("inserted", len(rows)),
	)
	return ReconcileResult{Inserted: len(rows)}, nil
}

// Reapply reconciles the stored rows against the target set implied by the
// new threshold: update accrual on rows still in range, insert rows newly
// brought into range, retire rows that fell out. Running it twice with the
// same arguments is a no-op the second time.
func (s *service) Reapply(ctx context.Context, req ApplyPolicyRequest) (ReconcileResult, error) {
	s.logger.Debug("reapply policy requested",
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("threshold_role_id", req.ThresholdRoleID),
	)

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return ReconcileResult{}, policyerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReconcileResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindLeaveType(ctx, req.LeaveTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReconcileResult{}, policyerrors.ErrLeaveTypeNotFound
		}
		return ReconcileResult{}, err
	}

	targetRoles, err := s.targetRoles(ctx, req.ThresholdRoleID)
	if err != nil {
		return ReconcileResult{}, err
	}
	targetByRole := make(map[uuid.UUID]struct{}, len(targetRoles))
	for _, role := range targetRoles {
		targetByRole[role.ID] = struct{}{}
	}

	existing, err := qtx.ListRolePolicies(ctx, req.LeaveTypeID)
	if err != nil {
		return ReconcileResult{}, err
	}

	var (
		updateIDs []uuid.UUID
		retireIDs []uuid.UUID
	)
	existingByRole := make(map[uuid.UUID]struct{}, len(existing))
	for _, row := range existing {
		existingByRole[row.RoleID] = struct{}{}
		if _, inRange := targetByRole[row.RoleID]; !inRange {
			retireIDs = append(retireIDs, row.ID)
			continue
		}
		if !row.AccrualPerYear.Equal(req.AccrualPerYear) {
			updateIDs = append(updateIDs, row.ID)
		}
	}

	var inserts []RolePolicy
	for _, role := range targetRoles {
		if _, ok := existingByRole[role.ID]; ok {
			continue
		}
		inserts = append(inserts, RolePolicy{
			ID:             uuid.New(),
			RoleID:         role.ID,
			LeaveTypeID:    leaveTypeID,
			AccrualPerYear: req.AccrualPerYear,
		})
	}

	if err := qtx.UpdateAccrual(ctx, updateIDs, req.AccrualPerYear); err != nil {
		return ReconcileResult{}, err
	}
	if err := qtx.CreatePolicies(ctx, inserts); err != nil {
		return ReconcileResult{}, err
	}
	if err := qtx.RetirePolicies(ctx, retireIDs); err != nil {
		return ReconcileResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{
		Updated:  len(updateIDs),
		Inserted: len(inserts),
		Retired:  len(retireIDs),
	}
	s.logger.Info("reapply policy success",
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("updated", result.Updated),
		zap.Int("inserted", result.Inserted),
		zap.Int("retired", result.Retired),
	)
	return result, nil
}

func (s *service) ListGrantsForRole(ctx context.Context, roleID string) ([]RolePolicy, error) {
	return s.repo.ListPoliciesByRole(ctx, roleID)
}

func (s *service) CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if req.ApproverCount < 0 || req.ApproverCount > 3 {
		return LeaveTypeResponse{}, policyerrors.ErrInvalidApproverCount
	}

	lt := &LeaveType{
		ID:            uuid.New(),
		Name:          req.Name,
		MaxPerYear:    req.MaxPerYear,
		Unbounded:     req.Unbounded,
		ApproverCount: req.ApproverCount,
	}
	if err := s.repo.CreateLeaveType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("name", lt.Name),
	)
	return mapToLeaveTypeResponse(*lt), nil
}

func (s *service) UpdateLeaveType(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if req.ApproverCount < 0 || req.ApproverCount > 3 {
		return LeaveTypeResponse{}, policyerrors.ErrInvalidApproverCount
	}

	lt, err := s.repo.FindLeaveType(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, policyerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	lt.Name = req.Name
	lt.MaxPerYear = req.MaxPerYear
	lt.Unbounded = req.Unbounded
	lt.ApproverCount = req.ApproverCount

	if err := s.repo.UpdateLeaveType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapToLeaveTypeResponse(*lt), nil
}

func (s *service) DeleteLeaveType(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return policyerrors.ErrInvalidLeaveTypeID
	}
	return s.repo.DeleteLeaveType(ctx, id)
}

func (s *service) ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListLeaveTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToLeaveTypeResponse(lt)
	}
	return resp, nil
}

// targetRoles returns every role at or more senior than the threshold,
// excluding the top role, ordered by rank.
func (s *service) targetRoles(ctx context.Context, thresholdRoleID string) ([]org.Role, error) {
	threshold, err := s.orgRepo.FindRole(ctx, thresholdRoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policyerrors.ErrThresholdRoleNotFound
		}
		return nil, err
	}
	if threshold.Rank == topRoleRank {
		return nil, policyerrors.ErrTopRoleNotApplicable
	}

	roles, err := s.orgRepo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	var target []org.Role
	for _, role := range roles {
		if role.Rank > topRoleRank && role.Rank <= threshold.Rank {
			target = append(target, role)
		}
	}
	return target, nil
}

func (s *service) rolesByID(ctx context.Context) (map[uuid.UUID]org.Role, error) {
	roles, err := s.orgRepo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]org.Role, len(roles))
	for _, role := range roles {
		byID[role.ID] = role
	}
	return byID, nil
}

func mapToLeaveTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:            lt.ID.String(),
		Name:          lt.Name,
		MaxPerYear:    lt.MaxPerYear,
		Unbounded:     lt.Unbounded,
		ApproverCount: lt.ApproverCount,
	}
}
