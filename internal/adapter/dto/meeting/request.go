package meeting

// CreateMeetingRequest is the body for POST /meetings/create
type CreateMeetingRequest struct {
	Title        string   `json:"title"`
	Transcript   string   `json:"transcript" validate:"required"`
	MeetingType  string   `json:"meeting_type"`
	Participants []string `json:"participants"`
}

// ProcessMeetingRequest is the body for POST /meetings/process
type ProcessMeetingRequest struct {
	MeetingID string `json:"meeting_id" validate:"required"`
}
