// Package clock models wall-clock time-of-day values as stored in TIME
// columns and the calendar dates they are combined with.
package clock

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const DateLayout = "2006-01-02"

// TimeOfDay is the offset from midnight, with second precision.
type TimeOfDay time.Duration

// Parse accepts "15:04" or "15:04:05".
func Parse(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return New(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, use HH:MM or HH:MM:SS", s)
}

func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func New(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

// IsZero reports 00:00:00, which the attendance screens write for "not clocked".
func (t TimeOfDay) IsZero() bool {
	return t == 0
}

// On combines t with the calendar date of d.
func (t TimeOfDay) On(d time.Time) time.Time {
	return Date(d).Add(time.Duration(t))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Present reports whether p is set and not midnight.
func Present(p *TimeOfDay) bool {
	return p != nil && !p.IsZero()
}

// Date truncates d to midnight UTC of its own calendar day.
func Date(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return d, nil
}

func DateKey(d time.Time) string {
	return d.Format(DateLayout)
}

// Days returns every date from start to end inclusive.
func Days(start, end time.Time) []time.Time {
	var days []time.Time
	for d := Date(start); !d.After(Date(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthPeriod returns the first and last day of the month.
func MonthPeriod(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// FromPg converts a scanned TIME column; NULL becomes nil.
func FromPg(t pgtype.Time) *TimeOfDay {
	if !t.Valid {
		return nil
	}
	v := TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
	return &v
}

// ToPg converts for a TIME parameter; nil becomes NULL.
func ToPg(t *TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: time.Duration(*t).Microseconds(), Valid: true}
}
