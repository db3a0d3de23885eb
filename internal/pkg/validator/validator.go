package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when no errors were collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := clock.ParseDate(dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsNonNegative treats a nil amount as valid.
func IsNonNegative(d *decimal.Decimal) bool {
	return d == nil || !d.IsNegative()
}

// HasMaxPlaces reports whether d carries no more than places decimal digits.
// A nil amount is valid.
func HasMaxPlaces(d *decimal.Decimal, places int32) bool {
	return d == nil || d.Equal(d.Truncate(places))
}

// MaxPeriodDays caps a date range, both ends inclusive.
const MaxPeriodDays = 62

// CheckPeriod validates a start/end date pair and returns the parsed dates.
func CheckPeriod(errs *ValidationErrors, start, end string) (time.Time, time.Time) {
	startDate, okStart := IsValidDate(start)
	if !okStart {
		errs.Add("period_start", "must be a date in YYYY-MM-DD format")
	}
	endDate, okEnd := IsValidDate(end)
	if !okEnd {
		errs.Add("period_end", "must be a date in YYYY-MM-DD format")
	}
	if okStart && okEnd && endDate.Before(startDate) {
		errs.Add("period_end", "must not be before period_start")
	} else if okStart && okEnd && endDate.After(startDate.AddDate(0, 0, MaxPeriodDays-1)) {
		errs.Add("period_end", fmt.Sprintf("must be within %d days of period_start", MaxPeriodDays))
	}
	return startDate, endDate
}
