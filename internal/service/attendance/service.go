package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx             database.Transactor
	attendanceRepo attendance.AttendanceRepository
	aggregator     attendance.Aggregator
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	aggregator attendance.Aggregator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		aggregator:     aggregator,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return attendance.NewAttendanceResponse(saved), nil
}

// BulkMark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(req.Records))
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for i := range req.Records {
			rec := req.Records[i]
			if rec.ActorID == nil {
				rec.ActorID = req.ActorID
			}
			saved, err := s.attendanceRepo.Upsert(txCtx, rec.ToEntity())
			if err != nil {
				return fmt.Errorf("failed to save attendance for employee %s on %s: %w", rec.EmployeeID, rec.Date, err)
			}
			responses = append(responses, attendance.NewAttendanceResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Bulk attendance marked", "count", len(responses))
	return responses, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, q attendance.RangeQuery) ([]attendance.AttendanceResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	start, end := q.Range()
	rows, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, q.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses, nil
}

// GetSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, q attendance.RangeQuery) (attendance.SummaryResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	start, end := q.Range()
	summary, err := s.aggregator.Aggregate(ctx, q.EmployeeID, start, end)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	return attendance.NewSummaryResponse(q.EmployeeID, start, end, summary), nil
}
