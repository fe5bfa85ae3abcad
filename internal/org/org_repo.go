package org

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=org_repo.go -destination=mock/org_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateUser(ctx context.Context, u *User) error
	FindUser(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUsersByManager(ctx context.Context, managerID string) ([]User, error)
	ListUsers(ctx context.Context) ([]User, error)
	FindRole(ctx context.Context, id string) (*Role, error)
	FindRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) CreateUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindUser(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindUsersByManager(ctx context.Context, managerID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindRole(ctx context.Context, id string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	return &role, err
}

func (r *repository) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	return &role, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Order("rank ASC").
		Find(&roles).Error
	return roles, err
}
