package common

// Response is the envelope every endpoint returns
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ProcessResponse extends the envelope with the in-band AI outcome so a
// degraded pass still returns HTTP 200.
type ProcessResponse struct {
	Success      bool   `json:"success"`
	AISuccess    bool   `json:"ai_success"`
	ErrorMessage string `json:"error_message,omitempty"`
	Data         any    `json:"data"`
}

// OK wraps a successful payload
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Err wraps an error message
func Err(message string) Response {
	return Response{Success: false, Error: message}
}
