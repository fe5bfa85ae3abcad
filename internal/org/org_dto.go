package org

type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	RoleID    string  `json:"role_id" binding:"required,uuid"`
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type RoleResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Rank          int    `json:"rank"`
	ApprovalLevel *int   `json:"approval_level,omitempty"`
}
