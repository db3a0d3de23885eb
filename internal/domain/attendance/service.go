package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark records or corrects one employee's attendance for a date.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// BulkMark marks several records atomically.
	BulkMark(ctx context.Context, req BulkMarkAttendanceRequest) ([]AttendanceResponse, error)

	ListByEmployee(ctx context.Context, q RangeQuery) ([]AttendanceResponse, error)

	// GetSummary aggregates the range the same way payroll does.
	GetSummary(ctx context.Context, q RangeQuery) (SummaryResponse, error)
}

// Aggregator turns attendance and effective schedules into a Summary.
type Aggregator interface {
	Aggregate(ctx context.Context, employeeID string, start, end time.Time) (Summary, error)
}
