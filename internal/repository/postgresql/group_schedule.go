package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type groupScheduleRepository struct {
	db *database.DB
}

// Create implements schedule.GroupScheduleRepository.
func (r *groupScheduleRepository) Create(ctx context.Context, g schedule.GroupSchedule) (schedule.GroupSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO group_schedules (name, date, is_working_day, time_in, time_out, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.Name,
		g.Date,
		g.IsWorkingDay,
		clock.ToPg(g.TimeIn),
		clock.ToPg(g.TimeOut),
		g.Description,
		g.CreatedBy,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return schedule.GroupSchedule{}, fmt.Errorf("failed to create group schedule: %w", err)
	}

	return g, nil
}

// GetByID implements schedule.GroupScheduleRepository. EmployeeIDs is filled
// from the assignment table.
func (r *groupScheduleRepository) GetByID(ctx context.Context, id string) (schedule.GroupSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.name, g.date, g.is_working_day, g.time_in, g.time_out,
		       g.description, g.created_by, g.created_at, g.updated_at,
		       COALESCE(ARRAY_AGG(ge.employee_id::text ORDER BY ge.employee_id) FILTER (WHERE ge.employee_id IS NOT NULL), '{}')
		FROM group_schedules g
		LEFT JOIN group_schedule_employees ge ON ge.group_schedule_id = g.id
		WHERE g.id = $1
		GROUP BY g.id
	`

	var (
		g               schedule.GroupSchedule
		timeIn, timeOut pgtype.Time
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Date, &g.IsWorkingDay, &timeIn, &timeOut,
		&g.Description, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
		&g.EmployeeIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.GroupSchedule{}, schedule.ErrGroupScheduleNotFound
		}
		return schedule.GroupSchedule{}, fmt.Errorf("failed to get group schedule: %w", err)
	}
	g.TimeIn = clock.FromPg(timeIn)
	g.TimeOut = clock.FromPg(timeOut)

	return g, nil
}

// Delete implements schedule.GroupScheduleRepository. Assignments cascade.
func (r *groupScheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM group_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group schedule: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrGroupScheduleNotFound
	}
	return nil
}

// AssignEmployees implements schedule.GroupScheduleRepository. Existing
// assignments are left untouched.
func (r *groupScheduleRepository) AssignEmployees(ctx context.Context, groupScheduleID string, employeeIDs []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO group_schedule_employees (group_schedule_id, employee_id)
		SELECT $1, UNNEST($2::uuid[])
		ON CONFLICT DO NOTHING
	`

	if _, err := q.Exec(ctx, query, groupScheduleID, employeeIDs); err != nil {
		if refErr := referenceError(err); refErr != nil {
			return refErr
		}
		return fmt.Errorf("failed to assign employees to group schedule: %w", err)
	}
	return nil
}

// UnassignEmployee implements schedule.GroupScheduleRepository.
func (r *groupScheduleRepository) UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`DELETE FROM group_schedule_employees WHERE group_schedule_id = $1 AND employee_id = $2`,
		groupScheduleID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to unassign employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrGroupAssignmentNotFound
	}
	return nil
}

// GetAssignmentsByEmployeeAndRange implements schedule.GroupScheduleRepository.
func (r *groupScheduleRepository) GetAssignmentsByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.GroupAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, ge.employee_id, g.name, g.date, g.is_working_day, g.time_in, g.time_out
		FROM group_schedule_employees ge
		JOIN group_schedules g ON g.id = ge.group_schedule_id
		WHERE ge.employee_id = $1
		  AND g.date BETWEEN $2 AND $3
		ORDER BY g.date ASC, g.created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list group assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.GroupAssignment
	for rows.Next() {
		var (
			a               schedule.GroupAssignment
			timeIn, timeOut pgtype.Time
		)
		if err := rows.Scan(&a.GroupScheduleID, &a.EmployeeID, &a.Name, &a.Date, &a.IsWorkingDay, &timeIn, &timeOut); err != nil {
			return nil, fmt.Errorf("failed to scan group assignment: %w", err)
		}
		a.TimeIn = clock.FromPg(timeIn)
		a.TimeOut = clock.FromPg(timeOut)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group assignments: %w", err)
	}

	return assignments, nil
}

func NewGroupScheduleRepository(db *database.DB) schedule.GroupScheduleRepository {
	return &groupScheduleRepository{db: db}
}
