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

type dutyOverrideRepository struct {
	db *database.DB
}

const dutyOverrideColumns = `id, employee_id, date, time_in, time_out, note, created_by, created_at, updated_at`

func scanDutyOverride(row pgx.Row) (schedule.DutyOverride, error) {
	var (
		o               schedule.DutyOverride
		timeIn, timeOut pgtype.Time
	)
	if err := row.Scan(&o.ID, &o.EmployeeID, &o.Date, &timeIn, &timeOut, &o.Note, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return schedule.DutyOverride{}, err
	}
	o.TimeIn = clock.FromPg(timeIn)
	o.TimeOut = clock.FromPg(timeOut)
	return o, nil
}

// Upsert implements schedule.DutyOverrideRepository.
func (r *dutyOverrideRepository) Upsert(ctx context.Context, o schedule.DutyOverride) (schedule.DutyOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO duty_overrides (employee_id, date, time_in, time_out, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			time_in    = EXCLUDED.time_in,
			time_out   = EXCLUDED.time_out,
			note       = EXCLUDED.note,
			updated_at = NOW()
		RETURNING ` + dutyOverrideColumns

	saved, err := scanDutyOverride(q.QueryRow(ctx, query,
		o.EmployeeID,
		o.Date,
		clock.ToPg(o.TimeIn),
		clock.ToPg(o.TimeOut),
		o.Note,
		o.CreatedBy,
	))
	if err != nil {
		if refErr := referenceError(err); refErr != nil {
			return schedule.DutyOverride{}, refErr
		}
		return schedule.DutyOverride{}, fmt.Errorf("failed to upsert duty override: %w", err)
	}
	return saved, nil
}

// GetByID implements schedule.DutyOverrideRepository.
func (r *dutyOverrideRepository) GetByID(ctx context.Context, id string) (schedule.DutyOverride, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanDutyOverride(q.QueryRow(ctx, `SELECT `+dutyOverrideColumns+` FROM duty_overrides WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DutyOverride{}, schedule.ErrDutyOverrideNotFound
		}
		return schedule.DutyOverride{}, fmt.Errorf("failed to get duty override: %w", err)
	}
	return o, nil
}

// GetByEmployeeAndRange implements schedule.DutyOverrideRepository.
func (r *dutyOverrideRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.DutyOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dutyOverrideColumns + `
		FROM duty_overrides
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty overrides: %w", err)
	}
	defer rows.Close()

	var overrides []schedule.DutyOverride
	for rows.Next() {
		o, err := scanDutyOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty override: %w", err)
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duty overrides: %w", err)
	}

	return overrides, nil
}

// Delete implements schedule.DutyOverrideRepository.
func (r *dutyOverrideRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM duty_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete duty override: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrDutyOverrideNotFound
	}
	return nil
}

func NewDutyOverrideRepository(db *database.DB) schedule.DutyOverrideRepository {
	return &dutyOverrideRepository{db: db}
}
