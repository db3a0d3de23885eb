package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/attendance"
	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

const (
	GracePeriodMinutes   = 15
	LunchThresholdHours  = 6.0
	LunchBreakHours      = 1.0
	StandardWorkdayHours = 8.0
)

type aggregatorImpl struct {
	attendanceRepo attendance.AttendanceRepository
	resolver       schedule.Resolver
}

func NewAggregator(attendanceRepo attendance.AttendanceRepository, resolver schedule.Resolver) attendance.Aggregator {
	return &aggregatorImpl{
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
	}
}

// Aggregate implements attendance.Aggregator.
func (a *aggregatorImpl) Aggregate(ctx context.Context, employeeID string, start, end time.Time) (attendance.Summary, error) {
	var (
		records  []attendance.Attendance
		timeline schedule.Timeline
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := a.attendanceRepo.ListByEmployeeAndRange(gCtx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		records = rows
		return nil
	})

	g.Go(func() error {
		t, err := a.resolver.ResolveRange(gCtx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to resolve schedules: %w", err)
		}
		timeline = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.Summary{}, err
	}

	return Summarize(records, timeline), nil
}

// Summarize folds attendance records against their effective schedules.
// Dates without a record contribute nothing. Present or Late records missing
// a clock are listed in Days but excluded from every counter.
func Summarize(records []attendance.Attendance, timeline schedule.Timeline) attendance.Summary {
	var s attendance.Summary
	s.Days = make([]attendance.DayDetail, 0, len(records))

	for _, r := range records {
		detail := attendance.DayDetail{
			Date:     r.Date,
			Status:   r.Status,
			ClockIn:  r.ClockIn,
			ClockOut: r.ClockOut,
		}
		eff, scheduled := timeline.On(r.Date)
		if scheduled {
			detail.ScheduledIn = eff.TimeIn
			detail.ScheduledOut = eff.TimeOut
		}

		switch {
		case r.Status == attendance.StatusAbsent:
			s.AbsentDays++
		case r.Status == attendance.StatusOnLeave:
			s.OnLeaveDays++
		case r.PayrollEligible():
			s.WorkedDays++
			s.PresentDays++

			clockIn := r.ClockIn.On(r.Date)
			clockOut := r.ClockOut.On(r.Date)

			if scheduled && eff.TimeIn != nil {
				if late := lateMinutes(clockIn, eff.TimeIn.On(r.Date)); late > 0 {
					detail.LateMinutes = late
					s.TotalLateMinutes += late
					s.LateDays++
				}
			}

			worked := lunchAdjusted(clockOut.Sub(clockIn))
			detail.WorkedHours = worked

			standard := StandardWorkdayHours
			if scheduled && eff.Complete() {
				standard = lunchAdjusted(eff.TimeOut.On(r.Date).Sub(eff.TimeIn.On(r.Date)))
			}
			if overtime := worked - standard; overtime > 0 {
				detail.OvertimeHours = overtime
				s.TotalOvertimeHours += overtime
			}
		}

		s.Days = append(s.Days, detail)
	}

	return s
}

// lateMinutes counts whole minutes past the grace period; zero or less means on time.
func lateMinutes(actual, expected time.Time) int {
	if !actual.After(expected) {
		return 0
	}
	return int(actual.Sub(expected)/time.Minute) - GracePeriodMinutes
}

func lunchAdjusted(d time.Duration) float64 {
	hours := d.Hours()
	if hours > LunchThresholdHours {
		hours -= LunchBreakHours
	}
	return hours
}
