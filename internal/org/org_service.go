package org

import (
	"context"
	"database/sql"
	"errors"
	"time"

	orgerrors "leaveflow/internal/org/errors"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Onboarder creates the current-year balance rows for a newly added user.
// Implemented by balance.Service; the indirection keeps org free of a
// hard dependency on the ledger.
type Onboarder interface {
	ProvisionForRole(ctx context.Context, tx *sql.Tx, userID, roleID string, year int) error
}

//go:generate mockgen -source=org_service.go -destination=mock/org_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Team(ctx context.Context, managerID string) ([]UserResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	onboarder Onboarder
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, onboarder Onboarder, logger ...*zap.Logger) Service {
	l := zap.L().Named("org.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("org.service")
	}
	return &service{db: db, repo: repo, onboarder: onboarder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role_id", req.RoleID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindRole(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, orgerrors.ErrRoleNotFound
		}
		return UserResponse{}, err
	}

	var managerID *uuid.UUID
	if req.ManagerID != nil && *req.ManagerID != "" {
		manager, err := qtx.FindUser(ctx, *req.ManagerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return UserResponse{}, orgerrors.ErrManagerNotFound
			}
			return UserResponse{}, err
		}
		managerID = &manager.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		RoleID:    role.ID,
		ManagerID: managerID,
	}

	if err := qtx.CreateUser(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	// Onboarding: satu baris saldo per leave type yang berlaku untuk role user.
	year := time.Now().UTC().Year()
	if err := s.onboarder.ProvisionForRole(ctx, tx, u.ID.String(), role.ID.String(), year); err != nil {
		s.logger.Error("create user provision balances failed",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}
	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("role", role.Name),
	)

	u.Role = role
	return mapToUserResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapToUserListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, orgerrors.ErrInvalidUserID
	}

	u, err := s.repo.FindUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, orgerrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToUserResponse(*u), nil
}

func (s *service) Team(ctx context.Context, managerID string) ([]UserResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, orgerrors.ErrInvalidUserID
	}

	users, err := s.repo.FindUsersByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToUserListResponse(users), nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = RoleResponse{
			ID:            role.ID.String(),
			Name:          role.Name,
			Rank:          role.Rank,
			ApprovalLevel: role.ApprovalLevel,
		}
	}
	return resp, nil
}

func mapToUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Role != nil {
		resp.Role = u.Role.Name
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToUserListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToUserResponse(u)
	}
	return resp
}
