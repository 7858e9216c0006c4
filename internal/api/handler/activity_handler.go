package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campuslife/activity-system/internal/api/metrics"
	"github.com/campuslife/activity-system/internal/core/domain"
	"github.com/campuslife/activity-system/internal/core/ports"
)

// ActivityHandler handles HTTP requests for the activity catalog and
// participant registration.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /activities — every authenticated role may read the
// catalog.
//
// @Summary      List all activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Create handles POST /activities — admin only.
//
// @Summary      Create a new activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity details"
// @Success      201   {object}  activityResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Create(c.Request().Context(), ports.CreateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return err
	}

	metrics.ActivitiesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, activityResponse{
		Message: "activity created successfully",
		Data:    activity,
	})
}

// Update handles PUT /activities/:id — admin only, partial update.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to update"
// @Success      200   {object}  activityResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	activity, err := h.service.Update(c.Request().Context(), id, ports.UpdateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, activityResponse{
		Message: "activity updated successfully",
		Data:    activity,
	})
}

// Join handles POST /activities/:id/join — student only. The caller's
// username comes from the verified token claims, never from the body.
//
// @Summary      Join an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Activity id"
// @Success      200  {object}  joinResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/join [post]
func (h *ActivityHandler) Join(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		metrics.JoinsTotal.WithLabelValues("not_found").Inc()
		return err
	}

	username, _ := c.Get("username").(string)
	if username == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	result, err := h.service.Join(c.Request().Context(), id, username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyJoined):
			metrics.JoinsTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrActivityNotFound):
			metrics.JoinsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.JoinsTotal.WithLabelValues("joined").Inc()
	return c.JSON(http.StatusOK, joinResponse{
		Message: fmt.Sprintf("successfully joined activity: %s", result.ActivityTitle),
	})
}

// activityID parses the :id path parameter. A non-numeric id can never
// reference an activity, so it surfaces as not found.
func activityID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrActivityNotFound
	}
	return id, nil
}
