package org

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role.Rank orders roles by seniority (1 = most senior). Policy cascading
// uses the rank as its applicability threshold. ApprovalLevel is the role's
// approval-depth ceiling; NULL for the top role.
type Role struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(30);not null;uniqueIndex"`
	Rank          int            `gorm:"type:int;not null;uniqueIndex"`
	ApprovalLevel *int           `gorm:"type:int"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password  string     `gorm:"type:varchar(255);not null"`
	RoleID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Role    *Role `gorm:"foreignKey:RoleID"`
	Manager *User `gorm:"foreignKey:ManagerID"`
}

func (User) TableName() string {
	return "users"
}
