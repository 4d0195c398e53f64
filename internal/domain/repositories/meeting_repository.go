package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// MeetingAnalysis carries the derived fields written back after the AI
// pass. The write is unconditional: it happens for real and for demo
// results alike.
type MeetingAnalysis struct {
	AISummary        string
	KeyDecisions     []string
	TopicsDiscussed  []string
	MeetingSentiment string
	ProcessedAt      string
}

// MeetingRepository defines meeting data access
type MeetingRepository interface {
	// Create stores a new meeting and returns the assigned id.
	Create(ctx context.Context, meeting *entities.Meeting) (string, error)
	// List returns all meetings in insertion order.
	List(ctx context.Context) ([]*entities.Meeting, error)
	// GetByID returns the meeting or (nil, nil) when absent. The lookup is
	// id-representation agnostic across backends.
	GetByID(ctx context.Context, id string) (*entities.Meeting, error)
	// SetAnalysis marks the meeting processed and overwrites its derived fields.
	SetAnalysis(ctx context.Context, id string, analysis MeetingAnalysis) error
}
