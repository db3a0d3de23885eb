package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	tx       *inlineTx
	weekly   *mockWeeklyRepo
	override *mockOverrideRepo
	group    *mockGroupRepo
	svc      schedule.ScheduleService
}

func newServiceFixture() serviceFixture {
	f := serviceFixture{
		tx:       &inlineTx{},
		weekly:   new(mockWeeklyRepo),
		override: new(mockOverrideRepo),
		group:    new(mockGroupRepo),
	}
	resolver := NewResolver(f.weekly, f.override, f.group)
	f.svc = NewScheduleService(f.tx, f.weekly, f.override, f.group, resolver)
	return f
}

func TestSetWeeklySchedule_ReplacesRosterInTransaction(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.weekly.On("DeleteByEmployeeID", ctx, employeeID).Return(nil).Once()
	f.weekly.On("Create", ctx, mock.MatchedBy(func(r schedule.WeeklyDutySchedule) bool {
		return r.DayOfWeek == time.Monday && r.IsActive && r.TimeIn.String() == "08:00:00"
	})).Return(schedule.WeeklyDutySchedule{ID: "w1", EmployeeID: employeeID, DayOfWeek: time.Monday, IsActive: true}, nil).Once()
	f.weekly.On("Create", ctx, mock.MatchedBy(func(r schedule.WeeklyDutySchedule) bool {
		return r.DayOfWeek == time.Friday
	})).Return(schedule.WeeklyDutySchedule{ID: "w2", EmployeeID: employeeID, DayOfWeek: time.Friday, IsActive: true}, nil).Once()

	resp, err := f.svc.SetWeeklySchedule(ctx, schedule.SetWeeklyScheduleRequest{
		EmployeeID: employeeID,
		Days: []schedule.WeeklyDayRequest{
			{Day: "Monday", TimeIn: "08:00", TimeOut: "17:00"},
			{Day: "Friday", TimeIn: "08:00", TimeOut: "12:00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "Monday", resp.Days[0].Day)
	assert.Equal(t, "Friday", resp.Days[1].Day)
	f.weekly.AssertExpectations(t)
}

func TestSetWeeklySchedule_RejectsDuplicateWeekday(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.SetWeeklySchedule(context.Background(), schedule.SetWeeklyScheduleRequest{
		EmployeeID: employeeID,
		Days: []schedule.WeeklyDayRequest{
			{Day: "Monday", TimeIn: "08:00", TimeOut: "17:00"},
			{Day: "Monday", TimeIn: "09:00", TimeOut: "18:00"},
		},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, schedule.ErrDuplicateWeekday.Error(), verrs.ToMap()["days[1].day"])
	assert.Zero(t, f.tx.calls)
}

func TestSetWeeklySchedule_CreateFailureAbortsTransaction(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	boom := errors.New("insert failed")

	f.weekly.On("DeleteByEmployeeID", ctx, employeeID).Return(nil)
	f.weekly.On("Create", ctx, mock.Anything).Return(schedule.WeeklyDutySchedule{}, boom)

	_, err := f.svc.SetWeeklySchedule(ctx, schedule.SetWeeklyScheduleRequest{
		EmployeeID: employeeID,
		Days:       []schedule.WeeklyDayRequest{{Day: "Monday", TimeIn: "08:00", TimeOut: "17:00"}},
	})

	assert.ErrorIs(t, err, boom)
}

func TestCreateGroupSchedule_AssignsEmployees(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	working := true
	in := "07:00"

	f.group.On("Create", ctx, mock.MatchedBy(func(g schedule.GroupSchedule) bool {
		return g.Name == "Clean-up drive" && g.IsWorkingDay && g.TimeIn != nil && g.TimeOut == nil
	})).Return(schedule.GroupSchedule{ID: "g1", Name: "Clean-up drive", Date: monday, IsWorkingDay: true, TimeIn: tod("07:00")}, nil)
	f.group.On("AssignEmployees", ctx, "g1", []string{employeeID}).Return(nil)

	resp, err := f.svc.CreateGroupSchedule(ctx, schedule.CreateGroupScheduleRequest{
		Name:         "Clean-up drive",
		Date:         "2025-03-03",
		IsWorkingDay: &working,
		TimeIn:       &in,
		EmployeeIDs:  []string{employeeID},
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", resp.ID)
	assert.Equal(t, "2025-03-03", resp.Date)
	assert.Equal(t, []string{employeeID}, resp.EmployeeIDs)
	f.group.AssertExpectations(t)
}

func TestCreateGroupSchedule_RequiresWorkingDayFlag(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.CreateGroupSchedule(context.Background(), schedule.CreateGroupScheduleRequest{
		Name: "Holiday",
		Date: "2025-03-03",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "is_working_day")
}

func TestAssignEmployees_UnknownGroup(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	groupID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

	f.group.On("GetByID", ctx, groupID).Return(schedule.GroupSchedule{}, schedule.ErrGroupScheduleNotFound)

	err := f.svc.AssignEmployees(ctx, schedule.AssignEmployeesRequest{
		GroupScheduleID: groupID,
		EmployeeIDs:     []string{employeeID},
	})

	assert.ErrorIs(t, err, schedule.ErrGroupScheduleNotFound)
	f.group.AssertNotCalled(t, "AssignEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetEffectiveSchedule(t *testing.T) {
	f := newServiceFixture()

	f.weekly.On("GetByEmployeeID", mock.Anything, employeeID).
		Return([]schedule.WeeklyDutySchedule{weeklyRow(time.Monday, "08:00", "17:00")}, nil)
	f.override.On("GetByEmployeeAndRange", mock.Anything, employeeID, mock.Anything, mock.Anything).
		Return([]schedule.DutyOverride(nil), nil)
	f.group.On("GetAssignmentsByEmployeeAndRange", mock.Anything, employeeID, mock.Anything, mock.Anything).
		Return([]schedule.GroupAssignment(nil), nil)

	resp, err := f.svc.GetEffectiveSchedule(context.Background(), employeeID, monday)
	require.NoError(t, err)
	assert.True(t, resp.HasSchedule)
	require.NotNil(t, resp.Source)
	assert.Equal(t, schedule.SourceWeekly, *resp.Source)

	resp, err = f.svc.GetEffectiveSchedule(context.Background(), employeeID, tuesday)
	require.NoError(t, err)
	assert.False(t, resp.HasSchedule)
	assert.Nil(t, resp.TimeIn)
}

func TestDeleteDutyOverride_InvalidID(t *testing.T) {
	f := newServiceFixture()
	err := f.svc.DeleteDutyOverride(context.Background(), "nope")
	assert.ErrorIs(t, err, schedule.ErrDutyOverrideNotFound)
}
