package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrTranscriptRequired  = errors.New("transcript is required")
	ErrMeetingIDRequired   = errors.New("meeting_id required")
	ErrInvalidMeetingState = errors.New("invalid meeting state")
)

// Action item errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrNoValidFields      = errors.New("no valid fields")
)
