package entities

// MeetingStatus represents the processing state of a meeting
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusProcessed MeetingStatus = "processed"
)

// Meeting sentiments as produced by the analysis pass
const (
	SentimentProductive  = "Productive"
	SentimentNeutral     = "Neutral"
	SentimentChallenging = "Challenging"
)

// DefaultMeetingType is used when a meeting is created without a type
const DefaultMeetingType = "General"

// Meeting is a transcript-bearing record that is summarized and mined
// for action items. Timestamps are RFC3339 strings so that created_at
// ordering matches lexicographic ordering.
type Meeting struct {
	ID               string        `json:"_id"`
	Title            string        `json:"title"`
	Transcript       string        `json:"transcript"`
	MeetingType      string        `json:"meeting_type"`
	Participants     []string      `json:"participants"`
	Status           MeetingStatus `json:"status"`
	AISummary        *string       `json:"ai_summary"`
	KeyDecisions     []string      `json:"key_decisions"`
	TopicsDiscussed  []string      `json:"topics_discussed"`
	MeetingSentiment *string       `json:"meeting_sentiment"`
	CreatedAt        string        `json:"created_at"`
	ProcessedAt      string        `json:"processed_at,omitempty"`
}

// Processed reports whether the AI pass has run for this meeting
func (m *Meeting) Processed() bool {
	return m.Status == MeetingStatusProcessed
}
