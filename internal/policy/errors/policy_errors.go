package policyerrors

import (
	"net/http"

	"leaveflow/internal/shared/apperror"
)

var (
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave policy is defined for this role and leave type",
		http.StatusNotFound,
	)
	ErrThresholdRoleNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"threshold role not found",
		http.StatusBadRequest,
	)
	ErrTopRoleNotApplicable = apperror.New(
		apperror.CodeInvalidInput,
		"policies cannot be scoped to the unrestricted top role",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNameExists = apperror.New(
		apperror.CodeConflict,
		"a leave type with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidApproverCount = apperror.New(
		apperror.CodeInvalidInput,
		"approver count must be between 0 and 3",
		http.StatusBadRequest,
	)
)
