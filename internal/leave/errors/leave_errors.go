package leaveerrors

import (
	"net/http"

	"leaveflow/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval record not found",
		http.StatusNotFound,
	)
	// ErrRequesterNotFound is a data-integrity fault: the authenticated
	// subject has no user row.
	ErrRequesterNotFound = apperror.New(
		apperror.CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
	// ErrNotAuthorizedApprover deliberately does not say who the
	// assigned approver is.
	ErrNotAuthorizedApprover = apperror.New(
		apperror.CodeForbidden,
		"you are not the assigned approver for this step",
		http.StatusForbidden,
	)
	ErrAlreadyActed = apperror.New(
		apperror.CodeConflict,
		"this approval step was already processed",
		http.StatusConflict,
	)
	ErrApprovalLevelNotActive = apperror.New(
		apperror.CodeInvalidState,
		"an earlier approval step is still pending",
		http.StatusConflict,
	)
	ErrRequestTerminal = apperror.New(
		apperror.CodeInvalidState,
		"this leave request is already finalized",
		http.StatusConflict,
	)
	ErrCancelAfterStart = apperror.New(
		apperror.CodeInvalidState,
		"an approved leave cannot be cancelled once it has started",
		http.StatusConflict,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requester can cancel this leave request",
		http.StatusForbidden,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
	ErrHalfDayRange = apperror.New(
		apperror.CodeInvalidInput,
		"a half-day request must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"the requested range contains no working days",
		http.StatusBadRequest,
	)
)
