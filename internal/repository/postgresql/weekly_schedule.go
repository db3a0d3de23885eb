package postgresql

import (
	"context"
	"fmt"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgtype"
)

type weeklyScheduleRepository struct {
	db *database.DB
}

// GetByEmployeeID implements schedule.WeeklyScheduleRepository.
func (r *weeklyScheduleRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.WeeklyDutySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, day_of_week, time_in, time_out, is_active, created_at, updated_at
		FROM weekly_duty_schedules
		WHERE employee_id = $1
		ORDER BY CASE day_of_week
			WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
			ELSE 7 END
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}
	defer rows.Close()

	var result []schedule.WeeklyDutySchedule
	for rows.Next() {
		var (
			w               schedule.WeeklyDutySchedule
			day             string
			timeIn, timeOut pgtype.Time
		)
		if err := rows.Scan(&w.ID, &w.EmployeeID, &day, &timeIn, &timeOut, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule: %w", err)
		}
		weekday, ok := schedule.ParseWeekday(day)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in weekly schedule %s", day, w.ID)
		}
		w.DayOfWeek = weekday
		if in := clock.FromPg(timeIn); in != nil {
			w.TimeIn = *in
		}
		if out := clock.FromPg(timeOut); out != nil {
			w.TimeOut = *out
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weekly schedule: %w", err)
	}

	return result, nil
}

// DeleteByEmployeeID implements schedule.WeeklyScheduleRepository.
func (r *weeklyScheduleRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM weekly_duty_schedules WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete weekly schedule: %w", err)
	}
	return nil
}

// Create implements schedule.WeeklyScheduleRepository.
func (r *weeklyScheduleRepository) Create(ctx context.Context, row schedule.WeeklyDutySchedule) (schedule.WeeklyDutySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_duty_schedules (employee_id, day_of_week, time_in, time_out, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		row.EmployeeID,
		row.DayOfWeek.String(),
		clock.ToPg(&row.TimeIn),
		clock.ToPg(&row.TimeOut),
		row.IsActive,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if refErr := referenceError(err); refErr != nil {
			return schedule.WeeklyDutySchedule{}, refErr
		}
		return schedule.WeeklyDutySchedule{}, fmt.Errorf("failed to create weekly schedule: %w", err)
	}

	return row, nil
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{db: db}
}
