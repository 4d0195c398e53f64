package meeting

import "github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"

// ProcessData is the data portion of the process endpoint response
type ProcessData struct {
	Summary          string                 `json:"summary"`
	KeyDecisions     []string               `json:"key_decisions"`
	TopicsDiscussed  []string               `json:"topics_discussed"`
	MeetingSentiment string                 `json:"meeting_sentiment"`
	ActionItems      []*entities.ActionItem `json:"action_items"`
}
