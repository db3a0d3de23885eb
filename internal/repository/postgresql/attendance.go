package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.clock_in, a.clock_out, a.note,
	a.created_by, a.updated_by, a.created_at, a.updated_at, e.full_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att               attendance.Attendance
		clockIn, clockOut pgtype.Time
	)
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &clockIn, &clockOut, &att.Note,
		&att.CreatedBy, &att.UpdatedBy, &att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.ClockIn = clock.FromPg(clockIn)
	att.ClockOut = clock.FromPg(clockOut)
	return att, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, status, clock_in, clock_out, note, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status     = EXCLUDED.status,
			clock_in   = EXCLUDED.clock_in,
			clock_out  = EXCLUDED.clock_out,
			note       = EXCLUDED.note,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, created_by, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		string(att.Status),
		clock.ToPg(att.ClockIn),
		clock.ToPg(att.ClockOut),
		att.Note,
		att.CreatedBy,
		att.UpdatedBy,
	).Scan(&att.ID, &att.CreatedBy, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if refErr := referenceError(err); refErr != nil {
			return attendance.Attendance{}, refErr
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
