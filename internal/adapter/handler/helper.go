package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data any) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, common.OK(data))
}

// HandleCreated writes a success response with 201 Created
func HandleCreated(logger *zap.Logger, c echo.Context, data any) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusCreated, common.OK(data))
}

// HandleError centralizes error handling and logging. Usecase sentinel
// errors are converted to their status codes here; nothing escapes to
// the transport layer uncaught.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, common.Err(appErr.Message))
}

func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptRequired):
		return errors.ErrInvalidArgument("Transcript is required")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingIDRequired):
		return errors.ErrInvalidArgument("meeting_id required")
	case stdErrors.Is(err, usecaseErrors.ErrNoValidFields):
		return errors.ErrInvalidArgument("No valid fields")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return errors.ErrNotFound("Action item")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("Resource")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}
