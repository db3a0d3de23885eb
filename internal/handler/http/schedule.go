package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brgy-portal/staff-backend-go/internal/domain/schedule"
	"github.com/brgy-portal/staff-backend-go/internal/handler/http/middleware"
	"github.com/brgy-portal/staff-backend-go/internal/handler/http/response"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	// Weekly roster
	SetWeekly(w http.ResponseWriter, r *http.Request)
	GetWeekly(w http.ResponseWriter, r *http.Request)

	// Duty overrides
	UpsertOverride(w http.ResponseWriter, r *http.Request)
	ListOverrides(w http.ResponseWriter, r *http.Request)
	DeleteOverride(w http.ResponseWriter, r *http.Request)

	// Group schedules
	CreateGroup(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
	AssignEmployees(w http.ResponseWriter, r *http.Request)
	UnassignEmployee(w http.ResponseWriter, r *http.Request)

	GetEffective(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// SetWeekly implements ScheduleHandler.
func (h *scheduleHandlerImpl) SetWeekly(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetWeeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode weekly schedule request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.SetWeeklySchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly schedule saved successfully", result)
}

// GetWeekly implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetWeekly(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWeeklySchedule(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertOverride implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpsertOverride(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertDutyOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode duty override request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = middleware.ActorID(r.Context())

	result, err := h.scheduleService.UpsertDutyOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duty override saved successfully", result)
}

// ListOverrides implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	start, end := validator.CheckPeriod(&errs, r.URL.Query().Get("period_start"), r.URL.Query().Get("period_end"))
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.scheduleService.ListDutyOverrides(r.Context(), chi.URLParam(r, "employeeID"), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteOverride implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteDutyOverride(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duty override deleted successfully", nil)
}

// CreateGroup implements ScheduleHandler.
func (h *scheduleHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateGroupScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group schedule request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = middleware.ActorID(r.Context())

	result, err := h.scheduleService.CreateGroupSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group schedule created successfully", result)
}

// GetGroup implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetGroup(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetGroupSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteGroup implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteGroupSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group schedule deleted successfully", nil)
}

// AssignEmployees implements ScheduleHandler.
func (h *scheduleHandlerImpl) AssignEmployees(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode assignment request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GroupScheduleID = chi.URLParam(r, "id")

	if err := h.scheduleService.AssignEmployees(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees assigned successfully", nil)
}

// UnassignEmployee implements ScheduleHandler.
func (h *scheduleHandlerImpl) UnassignEmployee(w http.ResponseWriter, r *http.Request) {
	err := h.scheduleService.UnassignEmployee(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee unassigned successfully", nil)
}

// GetEffective implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetEffective(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		var errs validator.ValidationErrors
		errs.Add("date", schedule.ErrInvalidDateFormat.Error())
		response.HandleError(w, errs)
		return
	}

	result, err := h.scheduleService.GetEffectiveSchedule(r.Context(), chi.URLParam(r, "employeeID"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
