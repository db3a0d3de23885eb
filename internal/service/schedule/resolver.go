package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

// strategy inspects one tier of the book. A matched result with
// SourceNonDuty ends the chain without producing a schedule.
type strategy func(book schedule.Book, date time.Time) (schedule.EffectiveSchedule, bool)

// firstMatch runs strategies in order and returns the first match.
func firstMatch(strategies ...strategy) strategy {
	return func(book schedule.Book, date time.Time) (schedule.EffectiveSchedule, bool) {
		for _, s := range strategies {
			if eff, ok := s(book, date); ok {
				return eff, true
			}
		}
		return schedule.EffectiveSchedule{}, false
	}
}

// fromOverride matches only when the override defines both times.
func fromOverride(book schedule.Book, date time.Time) (schedule.EffectiveSchedule, bool) {
	o, ok := book.Overrides[clock.DateKey(date)]
	if !ok || o.TimeIn == nil || o.TimeOut == nil {
		return schedule.EffectiveSchedule{}, false
	}
	return schedule.EffectiveSchedule{
		Date:    date,
		TimeIn:  o.TimeIn,
		TimeOut: o.TimeOut,
		Source:  schedule.SourceOverride,
	}, true
}

// fromGroup fills a missing custom time from the weekly row of the same weekday.
func fromGroup(book schedule.Book, date time.Time) (schedule.EffectiveSchedule, bool) {
	g, ok := book.Groups[clock.DateKey(date)]
	if !ok {
		return schedule.EffectiveSchedule{}, false
	}
	if !g.IsWorkingDay {
		return schedule.EffectiveSchedule{Date: date, Source: schedule.SourceNonDuty}, true
	}
	if g.TimeIn == nil && g.TimeOut == nil {
		return schedule.EffectiveSchedule{}, false
	}

	timeIn, timeOut := g.TimeIn, g.TimeOut
	if w, ok := book.Weekly[date.Weekday()]; ok {
		if timeIn == nil {
			in := w.TimeIn
			timeIn = &in
		}
		if timeOut == nil {
			out := w.TimeOut
			timeOut = &out
		}
	}
	return schedule.EffectiveSchedule{
		Date:    date,
		TimeIn:  timeIn,
		TimeOut: timeOut,
		Source:  schedule.SourceGroup,
	}, true
}

func fromWeekly(book schedule.Book, date time.Time) (schedule.EffectiveSchedule, bool) {
	w, ok := book.Weekly[date.Weekday()]
	if !ok {
		return schedule.EffectiveSchedule{}, false
	}
	in, out := w.TimeIn, w.TimeOut
	return schedule.EffectiveSchedule{
		Date:    date,
		TimeIn:  &in,
		TimeOut: &out,
		Source:  schedule.SourceWeekly,
	}, true
}

var resolveDay = firstMatch(fromOverride, fromGroup, fromWeekly)

// ResolveBook builds the timeline for [start, end] from an already loaded book.
func ResolveBook(book schedule.Book, start, end time.Time) schedule.Timeline {
	timeline := make(schedule.Timeline)
	for _, day := range clock.Days(start, end) {
		eff, ok := resolveDay(book, day)
		if !ok || eff.Source == schedule.SourceNonDuty {
			continue
		}
		timeline[clock.DateKey(day)] = eff
	}
	return timeline
}

type resolverImpl struct {
	weeklyRepo   schedule.WeeklyScheduleRepository
	overrideRepo schedule.DutyOverrideRepository
	groupRepo    schedule.GroupScheduleRepository
}

func NewResolver(
	weeklyRepo schedule.WeeklyScheduleRepository,
	overrideRepo schedule.DutyOverrideRepository,
	groupRepo schedule.GroupScheduleRepository,
) schedule.Resolver {
	return &resolverImpl{
		weeklyRepo:   weeklyRepo,
		overrideRepo: overrideRepo,
		groupRepo:    groupRepo,
	}
}

// ResolveRange implements schedule.Resolver.
func (r *resolverImpl) ResolveRange(ctx context.Context, employeeID string, start, end time.Time) (schedule.Timeline, error) {
	book, err := r.loadBook(ctx, employeeID, clock.Date(start), clock.Date(end))
	if err != nil {
		return nil, err
	}
	return ResolveBook(book, start, end), nil
}

// Resolve implements schedule.Resolver.
func (r *resolverImpl) Resolve(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveSchedule, bool, error) {
	timeline, err := r.ResolveRange(ctx, employeeID, date, date)
	if err != nil {
		return schedule.EffectiveSchedule{}, false, err
	}
	eff, ok := timeline.On(date)
	return eff, ok, nil
}

// loadBook reads the three schedule tiers concurrently. It must not be
// called with a transaction in ctx since a pgx.Tx is not safe for
// concurrent use.
func (r *resolverImpl) loadBook(ctx context.Context, employeeID string, start, end time.Time) (schedule.Book, error) {
	var (
		weekly    []schedule.WeeklyDutySchedule
		overrides []schedule.DutyOverride
		groups    []schedule.GroupAssignment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := r.weeklyRepo.GetByEmployeeID(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to load weekly schedule: %w", err)
		}
		weekly = rows
		return nil
	})

	g.Go(func() error {
		rows, err := r.overrideRepo.GetByEmployeeAndRange(gCtx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load duty overrides: %w", err)
		}
		overrides = rows
		return nil
	})

	g.Go(func() error {
		rows, err := r.groupRepo.GetAssignmentsByEmployeeAndRange(gCtx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load group schedules: %w", err)
		}
		groups = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return schedule.Book{}, err
	}

	return schedule.NewBook(employeeID, weekly, overrides, groups), nil
}
