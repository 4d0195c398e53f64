package entities

// Action item priorities
const (
	ActionItemPriorityHigh   = "High"
	ActionItemPriorityMedium = "Medium"
	ActionItemPriorityLow    = "Low"
)

// ActionItemStatusPending is the status every extracted item starts in.
// Updates may set arbitrary caller-provided statuses.
const ActionItemStatusPending = "Pending"

// DefaultOwner is assigned when the analysis does not name an owner
const DefaultOwner = "Unassigned"

// ActionItem is a discrete task extracted from a meeting. MeetingID is a
// lookup reference only; deleting a meeting does not cascade.
type ActionItem struct {
	ID          string `json:"_id"`
	MeetingID   string `json:"meeting_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
