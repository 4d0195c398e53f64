package entities

// AnalysisResult is the JSON object the model is asked to return for a
// transcript. Missing fields are filled with defaults by the AI usecase
// before the result is consumed anywhere else.
type AnalysisResult struct {
	Summary          string                `json:"summary"`
	KeyDecisions     []string              `json:"key_decisions"`
	ActionItems      []ExtractedActionItem `json:"action_items"`
	MeetingSentiment string                `json:"meeting_sentiment"`
	TopicsDiscussed  []string              `json:"topics_discussed"`
}

// ExtractedActionItem is a single action item as extracted by the model
type ExtractedActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}
