package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// ActionItemRepository defines action item data access
type ActionItemRepository interface {
	// Create stores a new action item and returns the assigned id.
	Create(ctx context.Context, item *entities.ActionItem) (string, error)
	// List returns all action items in insertion order.
	List(ctx context.Context) ([]*entities.ActionItem, error)
	// GetByID returns the action item or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*entities.ActionItem, error)
	// Update merges fields into the action item. Callers validate the
	// field set before this point.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes the action item.
	Delete(ctx context.Context, id string) error
}
