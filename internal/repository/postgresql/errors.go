package postgresql

import (
	"errors"
	"strings"

	"github.com/brgy-portal/staff-backend-go/internal/domain/employee"
	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

// referenceError translates a foreign key violation on employee_id or
// group_schedule_id into the matching domain error. Other errors yield nil.
func referenceError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return nil
	}
	switch {
	case strings.HasSuffix(pgErr.ConstraintName, "_group_schedule_id_fkey"):
		return schedule.ErrGroupScheduleNotFound
	case strings.HasSuffix(pgErr.ConstraintName, "_employee_id_fkey"):
		return employee.ErrEmployeeNotFound
	}
	return nil
}
