package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/common"
	meetingdto "github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	svc    meetingUsecase.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Returns all meetings, newest first, optionally filtered by a search term
// @Tags         Meetings
// @Produce      json
// @Param        search  query  string  false  "Case-insensitive substring over title, transcript and summary"
// @Success      200  {object}  common.Response
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetings)
}

// Create handles POST /meetings/create
// @Summary      Create a meeting
// @Description  Stores a new pending meeting; transcript is required
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body  meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201  {object}  common.Response
// @Failure      400  {object}  common.Response
// @Router       /meetings/create [post]
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Transcript is required"))
	}

	out, err := h.svc.Create(c.Request().Context(), meetingUsecase.CreateInput{
		Title:        req.Title,
		Transcript:   req.Transcript,
		MeetingType:  req.MeetingType,
		Participants: req.Participants,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, out)
}

// Get handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id  path  string  true  "Meeting ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, m)
}

// Process handles POST /meetings/process
// @Summary      Process a meeting
// @Description  Runs the AI summarization pass and creates extracted action items. AI failure degrades to the demo payload with ai_success=false, still HTTP 200.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body  meeting.ProcessMeetingRequest  true  "Meeting to process"
// @Success      200  {object}  common.ProcessResponse
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /meetings/process [post]
func (h *Meeting) Process(c echo.Context) error {
	var req meetingdto.ProcessMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id required"))
	}

	out, err := h.svc.Process(c.Request().Context(), req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Bool("ai_success", out.AISuccess),
		)
	}
	return c.JSON(http.StatusOK, common.ProcessResponse{
		Success:      true,
		AISuccess:    out.AISuccess,
		ErrorMessage: out.ErrorMessage,
		Data: meetingdto.ProcessData{
			Summary:          out.Summary,
			KeyDecisions:     out.KeyDecisions,
			TopicsDiscussed:  out.TopicsDiscussed,
			MeetingSentiment: out.MeetingSentiment,
			ActionItems:      out.ActionItems,
		},
	})
}
