package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymhub/internal/middleware"
	"gymhub/internal/service"
)

// MemberHandler handles member dashboard endpoints. Every route is scoped to
// the authenticated member's own records.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags member
// @Produce json
// @Success 200 {object} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /member/profile [get]
func (h *MemberHandler) GetProfile(c echo.Context) error {
	memberID, err := currentUserID(c)
	if err != nil {
		return err
	}

	member, err := h.memberService.GetProfile(c.Request().Context(), memberID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// GetWorkoutPlans godoc
// @Summary Get own workout plans
// @Tags member
// @Produce json
// @Success 200 {array} model.WorkoutPlan
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /member/my/workout [get]
func (h *MemberHandler) GetWorkoutPlans(c echo.Context) error {
	memberID, err := currentUserID(c)
	if err != nil {
		return err
	}

	plans, err := h.memberService.GetWorkoutPlans(c.Request().Context(), memberID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// GetDietPlans godoc
// @Summary Get own diet plans
// @Tags member
// @Produce json
// @Success 200 {array} model.DietPlan
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /member/my/diet [get]
func (h *MemberHandler) GetDietPlans(c echo.Context) error {
	memberID, err := currentUserID(c)
	if err != nil {
		return err
	}

	plans, err := h.memberService.GetDietPlans(c.Request().Context(), memberID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// GetAttendance godoc
// @Summary Get own attendance history
// @Tags member
// @Produce json
// @Success 200 {array} model.Attendance
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /member/my/attendance [get]
func (h *MemberHandler) GetAttendance(c echo.Context) error {
	memberID, err := currentUserID(c)
	if err != nil {
		return err
	}

	records, err := h.memberService.GetAttendance(c.Request().Context(), memberID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// GetProgress godoc
// @Summary Get own progress history
// @Tags member
// @Produce json
// @Success 200 {array} model.Progress
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /member/my/progress [get]
func (h *MemberHandler) GetProgress(c echo.Context) error {
	memberID, err := currentUserID(c)
	if err != nil {
		return err
	}

	records, err := h.memberService.GetProgress(c.Request().Context(), memberID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// currentUserID resolves the authenticated identity's id as a UUID.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid identity")
	}
	return id, nil
}
