package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymhub/internal/service"
)

// TrainerHandler handles trainer-side member management endpoints.
type TrainerHandler struct {
	trainerService    service.TrainerService
	attendanceService service.AttendanceService
}

// NewTrainerHandler creates a new trainer handler.
func NewTrainerHandler(trainerService service.TrainerService, attendanceService service.AttendanceService) *TrainerHandler {
	return &TrainerHandler{
		trainerService:    trainerService,
		attendanceService: attendanceService,
	}
}

// WorkoutPlanRequest represents a workout plan assignment.
type WorkoutPlanRequest struct {
	PlanDetails string `json:"plan_details" validate:"required"`
}

// DietPlanRequest represents a diet plan assignment.
type DietPlanRequest struct {
	DietDetails string `json:"diet_details" validate:"required"`
}

// ProgressRequest represents a progress measurement.
type ProgressRequest struct {
	Weight     float64 `json:"weight" validate:"required,gt=0"`
	BodyFat    float64 `json:"body_fat" validate:"gte=0,lte=100"`
	MuscleMass float64 `json:"muscle_mass" validate:"gte=0"`
	Notes      string  `json:"notes"`
}

// AttendanceRequest represents an attendance mark.
type AttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=present absent leave"`
}

// ListMembers godoc
// @Summary List all members
// @Tags trainer
// @Produce json
// @Success 200 {array} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /trainer/members [get]
func (h *TrainerHandler) ListMembers(c echo.Context) error {
	members, err := h.trainerService.ListMembers(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// AssignWorkoutPlan godoc
// @Summary Assign a workout plan to a member
// @Tags trainer
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body WorkoutPlanRequest true "Plan details"
// @Success 200 {object} model.WorkoutPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /trainer/members/{id}/workout [put]
func (h *TrainerHandler) AssignWorkoutPlan(c echo.Context) error {
	memberID, trainerID, err := pathMemberAndTrainer(c)
	if err != nil {
		return err
	}

	var req WorkoutPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.trainerService.AssignWorkoutPlan(c.Request().Context(), memberID, trainerID, req.PlanDetails)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// AssignDietPlan godoc
// @Summary Assign a diet plan to a member
// @Tags trainer
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body DietPlanRequest true "Diet details"
// @Success 200 {object} model.DietPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /trainer/members/{id}/diet [put]
func (h *TrainerHandler) AssignDietPlan(c echo.Context) error {
	memberID, trainerID, err := pathMemberAndTrainer(c)
	if err != nil {
		return err
	}

	var req DietPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.trainerService.AssignDietPlan(c.Request().Context(), memberID, trainerID, req.DietDetails)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// RecordProgress godoc
// @Summary Record a progress measurement for a member
// @Tags trainer
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body ProgressRequest true "Measurements"
// @Success 200 {object} model.Progress
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /trainer/members/{id}/progress [put]
func (h *TrainerHandler) RecordProgress(c echo.Context) error {
	memberID, trainerID, err := pathMemberAndTrainer(c)
	if err != nil {
		return err
	}

	var req ProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	progress, err := h.trainerService.RecordProgress(c.Request().Context(), memberID, trainerID, service.ProgressInput{
		Weight:     req.Weight,
		BodyFat:    req.BodyFat,
		MuscleMass: req.MuscleMass,
		Notes:      req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, progress)
}

// MarkAttendance godoc
// @Summary Mark a member's attendance for today
// @Tags trainer
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body AttendanceRequest true "Attendance status"
// @Success 201 {object} model.Attendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /trainer/members/{id}/attendance [post]
func (h *TrainerHandler) MarkAttendance(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid member id")
	}

	var req AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendance, err := h.attendanceService.Mark(c.Request().Context(), memberID, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, attendance)
}

// pathMemberAndTrainer resolves the :id path param and the acting trainer.
func pathMemberAndTrainer(c echo.Context) (memberID, trainerID uuid.UUID, err error) {
	memberID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid member id")
	}
	trainerID, err = currentUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return memberID, trainerID, nil
}
