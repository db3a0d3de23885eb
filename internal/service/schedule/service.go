package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/clock"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/database"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
)

type scheduleServiceImpl struct {
	tx           database.Transactor
	weeklyRepo   schedule.WeeklyScheduleRepository
	overrideRepo schedule.DutyOverrideRepository
	groupRepo    schedule.GroupScheduleRepository
	resolver     schedule.Resolver
}

func NewScheduleService(
	tx database.Transactor,
	weeklyRepo schedule.WeeklyScheduleRepository,
	overrideRepo schedule.DutyOverrideRepository,
	groupRepo schedule.GroupScheduleRepository,
	resolver schedule.Resolver,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		tx:           tx,
		weeklyRepo:   weeklyRepo,
		overrideRepo: overrideRepo,
		groupRepo:    groupRepo,
		resolver:     resolver,
	}
}

// SetWeeklySchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) SetWeeklySchedule(ctx context.Context, req schedule.SetWeeklyScheduleRequest) (schedule.WeeklyScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}

	var created []schedule.WeeklyDutySchedule
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.weeklyRepo.DeleteByEmployeeID(txCtx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to clear weekly schedule: %w", err)
		}
		for _, d := range req.Days {
			day, _ := schedule.ParseWeekday(d.Day)
			row, err := s.weeklyRepo.Create(txCtx, schedule.WeeklyDutySchedule{
				EmployeeID: req.EmployeeID,
				DayOfWeek:  day,
				TimeIn:     clock.MustParse(d.TimeIn),
				TimeOut:    clock.MustParse(d.TimeOut),
				IsActive:   true,
			})
			if err != nil {
				return fmt.Errorf("failed to create weekly schedule for %s: %w", d.Day, err)
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}

	slog.Info("Weekly schedule replaced", "employee_id", req.EmployeeID, "days", len(created))
	return toWeeklyResponse(req.EmployeeID, created), nil
}

// GetWeeklySchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWeeklySchedule(ctx context.Context, employeeID string) (schedule.WeeklyScheduleResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return schedule.WeeklyScheduleResponse{}, schedule.ErrEmployeeIDRequired
	}
	rows, err := s.weeklyRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, fmt.Errorf("failed to get weekly schedule: %w", err)
	}
	return toWeeklyResponse(employeeID, rows), nil
}

// UpsertDutyOverride implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpsertDutyOverride(ctx context.Context, req schedule.UpsertDutyOverrideRequest) (schedule.DutyOverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.DutyOverrideResponse{}, err
	}

	date, _ := clock.ParseDate(req.Date)
	in, out := clock.MustParse(req.TimeIn), clock.MustParse(req.TimeOut)
	saved, err := s.overrideRepo.Upsert(ctx, schedule.DutyOverride{
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     &in,
		TimeOut:    &out,
		Note:       req.Note,
		CreatedBy:  req.CreatedBy,
	})
	if err != nil {
		return schedule.DutyOverrideResponse{}, fmt.Errorf("failed to save duty override: %w", err)
	}
	return toOverrideResponse(saved), nil
}

// ListDutyOverrides implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListDutyOverrides(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.DutyOverrideResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, schedule.ErrEmployeeIDRequired
	}
	rows, err := s.overrideRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty overrides: %w", err)
	}
	resp := make([]schedule.DutyOverrideResponse, 0, len(rows))
	for _, o := range rows {
		resp = append(resp, toOverrideResponse(o))
	}
	return resp, nil
}

// DeleteDutyOverride implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteDutyOverride(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return schedule.ErrDutyOverrideNotFound
	}
	return s.overrideRepo.Delete(ctx, id)
}

// CreateGroupSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateGroupSchedule(ctx context.Context, req schedule.CreateGroupScheduleRequest) (schedule.GroupScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.GroupScheduleResponse{}, err
	}

	date, _ := clock.ParseDate(req.Date)
	group := schedule.GroupSchedule{
		Name:         req.Name,
		Date:         date,
		IsWorkingDay: *req.IsWorkingDay,
		TimeIn:       parseOptional(req.TimeIn),
		TimeOut:      parseOptional(req.TimeOut),
		Description:  req.Description,
		CreatedBy:    req.CreatedBy,
	}

	var created schedule.GroupSchedule
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.groupRepo.Create(txCtx, group)
		if err != nil {
			return fmt.Errorf("failed to create group schedule: %w", err)
		}
		if len(req.EmployeeIDs) > 0 {
			if err := s.groupRepo.AssignEmployees(txCtx, created.ID, req.EmployeeIDs); err != nil {
				return fmt.Errorf("failed to assign employees: %w", err)
			}
		}
		created.EmployeeIDs = req.EmployeeIDs
		return nil
	})
	if err != nil {
		return schedule.GroupScheduleResponse{}, err
	}

	slog.Info("Group schedule created", "group_schedule_id", created.ID, "date", req.Date, "employees", len(req.EmployeeIDs))
	return toGroupResponse(created), nil
}

// GetGroupSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetGroupSchedule(ctx context.Context, id string) (schedule.GroupScheduleResponse, error) {
	if !validator.IsValidUUID(id) {
		return schedule.GroupScheduleResponse{}, schedule.ErrGroupScheduleNotFound
	}
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.GroupScheduleResponse{}, err
	}
	return toGroupResponse(group), nil
}

// DeleteGroupSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteGroupSchedule(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return schedule.ErrGroupScheduleNotFound
	}
	return s.groupRepo.Delete(ctx, id)
}

// AssignEmployees implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AssignEmployees(ctx context.Context, req schedule.AssignEmployeesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !validator.IsValidUUID(req.GroupScheduleID) {
		return schedule.ErrGroupScheduleNotFound
	}
	if _, err := s.groupRepo.GetByID(ctx, req.GroupScheduleID); err != nil {
		return err
	}
	if err := s.groupRepo.AssignEmployees(ctx, req.GroupScheduleID, req.EmployeeIDs); err != nil {
		return fmt.Errorf("failed to assign employees: %w", err)
	}
	return nil
}

// UnassignEmployee implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UnassignEmployee(ctx context.Context, groupScheduleID, employeeID string) error {
	if !validator.IsValidUUID(groupScheduleID) || !validator.IsValidUUID(employeeID) {
		return schedule.ErrGroupAssignmentNotFound
	}
	return s.groupRepo.UnassignEmployee(ctx, groupScheduleID, employeeID)
}

// GetEffectiveSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetEffectiveSchedule(ctx context.Context, employeeID string, date time.Time) (schedule.EffectiveScheduleResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return schedule.EffectiveScheduleResponse{}, schedule.ErrEmployeeIDRequired
	}
	eff, ok, err := s.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return schedule.EffectiveScheduleResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}
	return schedule.NewEffectiveScheduleResponse(employeeID, date, eff, ok), nil
}

func parseOptional(s *string) *clock.TimeOfDay {
	if s == nil {
		return nil
	}
	t := clock.MustParse(*s)
	return &t
}

func toWeeklyResponse(employeeID string, rows []schedule.WeeklyDutySchedule) schedule.WeeklyScheduleResponse {
	days := make([]schedule.WeeklyDayResponse, 0, len(rows))
	for _, r := range rows {
		days = append(days, schedule.WeeklyDayResponse{
			ID:       r.ID,
			Day:      r.DayOfWeek.String(),
			TimeIn:   r.TimeIn,
			TimeOut:  r.TimeOut,
			IsActive: r.IsActive,
		})
	}
	return schedule.WeeklyScheduleResponse{EmployeeID: employeeID, Days: days}
}

func toOverrideResponse(o schedule.DutyOverride) schedule.DutyOverrideResponse {
	return schedule.DutyOverrideResponse{
		ID:         o.ID,
		EmployeeID: o.EmployeeID,
		Date:       clock.DateKey(o.Date),
		TimeIn:     o.TimeIn,
		TimeOut:    o.TimeOut,
		Note:       o.Note,
	}
}

func toGroupResponse(g schedule.GroupSchedule) schedule.GroupScheduleResponse {
	ids := g.EmployeeIDs
	if ids == nil {
		ids = []string{}
	}
	return schedule.GroupScheduleResponse{
		ID:           g.ID,
		Name:         g.Name,
		Date:         clock.DateKey(g.Date),
		IsWorkingDay: g.IsWorkingDay,
		TimeIn:       g.TimeIn,
		TimeOut:      g.TimeOut,
		Description:  g.Description,
		EmployeeIDs:  ids,
	}
}
