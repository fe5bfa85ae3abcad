package balanceerrors

import (
	"fmt"
	"net/http"

	"leaveflow/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

var (
	// ErrBalanceRowNotFound means a debit or credit targeted a ledger row
	// that should have existed. Provisioning guarantees a row per
	// (user, leave type, year), so a miss is a data integrity fault, not
	// a client error.
	ErrBalanceRowNotFound = apperror.New(
		apperror.CodeInternalError,
		"leave balance record is missing",
		http.StatusInternalServerError,
	)

	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave balance found for this user and leave type",
		http.StatusNotFound,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is out of range",
		http.StatusBadRequest,
	)
)

// NewInsufficientBalance reports both what is left and the year's
// computed maximum (remaining plus already used), so the caller can
// surface an actionable message.
func NewInsufficientBalance(remaining, maxAllowed decimal.Decimal) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("insufficient leave balance: %s day(s) remaining of %s allowed this year",
			remaining.String(), maxAllowed.String()),
		http.StatusUnprocessableEntity,
	)
}
