package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	actionUsecase "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/action"
)

// Action handles action item HTTP requests
type Action struct {
	svc    actionUsecase.Service
	logger *zap.Logger
}

// NewActionHandler creates a new action item handler
func NewActionHandler(svc actionUsecase.Service, logger *zap.Logger) *Action {
	return &Action{svc: svc, logger: logger}
}

// List handles GET /actions
// @Summary      List action items
// @Description  Returns action items, newest first, optionally filtered by owner (case-insensitive), priority, status and meeting_id
// @Tags         Actions
// @Produce      json
// @Param        owner       query  string  false  "Owner filter"
// @Param        priority    query  string  false  "Priority filter"
// @Param        status      query  string  false  "Status filter"
// @Param        meeting_id  query  string  false  "Owning meeting filter"
// @Success      200  {object}  common.Response
// @Router       /actions [get]
func (h *Action) List(c echo.Context) error {
	filters := actionUsecase.Filters{
		Owner:     c.QueryParam("owner"),
		Priority:  c.QueryParam("priority"),
		Status:    c.QueryParam("status"),
		MeetingID: c.QueryParam("meeting_id"),
	}

	items, err := h.svc.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, items)
}

// Update handles PATCH /actions/:id
// @Summary      Update an action item
// @Description  Partial update; only status, owner, due_date, priority, title and description are accepted, unknown fields are dropped
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        id      path  string          true  "Action item ID"
// @Param        fields  body  map[string]any  true  "Fields to update"
// @Success      200  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /actions/{id} [patch]
func (h *Action) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if len(fields) == 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("No data"))
	}

	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// Delete handles DELETE /actions/:id
// @Summary      Delete an action item
// @Tags         Actions
// @Produce      json
// @Param        id  path  string  true  "Action item ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /actions/{id} [delete]
func (h *Action) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]any{"message": "Deleted"})
}
