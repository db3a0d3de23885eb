package attendance

import (
	"math"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
)

// DayDetail is the per-record audit line of a Summary. Computed values are
// zero when the record did not reach that computation.
type DayDetail struct {
	Date          time.Time
	Status        Status
	ClockIn       *clock.TimeOfDay
	ClockOut      *clock.TimeOfDay
	ScheduledIn   *clock.TimeOfDay
	ScheduledOut  *clock.TimeOfDay
	LateMinutes   int
	WorkedHours   float64
	OvertimeHours float64
}

// Summary aggregates attendance over a period.
type Summary struct {
	PresentDays      int
	LateDays         int
	AbsentDays       int
	OnLeaveDays      int
	WorkedDays       int
	TotalLateMinutes int
	// TotalOvertimeHours is accumulated unrounded; use OvertimeHours to report it.
	TotalOvertimeHours float64
	Days               []DayDetail
}

// OvertimeHours is TotalOvertimeHours rounded to two decimals.
func (s Summary) OvertimeHours() float64 {
	return RoundHours(s.TotalOvertimeHours)
}

func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
