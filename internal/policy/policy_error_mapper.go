package policy

import (
	"errors"

	policyerrors "leaveflow/internal/policy/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_type_name" {
			return policyerrors.ErrLeaveTypeNameExists
		}
	}
	return err
}
