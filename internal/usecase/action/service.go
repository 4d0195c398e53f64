package action

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/errors"
)

// Filters narrows an action item listing. Owner matches case-insensitively,
// the rest match exactly. Empty fields are ignored.
type Filters struct {
	Owner     string
	Priority  string
	Status    string
	MeetingID string
}

// Service defines action item operations
type Service interface {
	List(ctx context.Context, filters Filters) ([]*entities.ActionItem, error)
	Update(ctx context.Context, id string, fields map[string]any) (*entities.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

// allowedUpdateFields is the only set of fields a partial update may touch
var allowedUpdateFields = map[string]struct{}{
	"status":      {},
	"owner":       {},
	"due_date":    {},
	"priority":    {},
	"title":       {},
	"description": {},
}

type actionService struct {
	actionRepo repositories.ActionItemRepository
	logger     *zap.Logger
}

// NewService constructs the action item service
func NewService(actionRepo repositories.ActionItemRepository, logger *zap.Logger) Service {
	return &actionService{actionRepo: actionRepo, logger: logger}
}

// List returns matching action items, newest first
func (s *actionService) List(ctx context.Context, filters Filters) ([]*entities.ActionItem, error) {
	items, err := s.actionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}

	result := make([]*entities.ActionItem, 0, len(items))
	for _, item := range items {
		if filters.Owner != "" && !strings.EqualFold(item.Owner, filters.Owner) {
			continue
		}
		if filters.Priority != "" && item.Priority != filters.Priority {
			continue
		}
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}
		if filters.MeetingID != "" && item.MeetingID != filters.MeetingID {
			continue
		}
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

// Update applies a partial update. Unknown fields are silently dropped;
// an update that ends up empty is a validation error. The target must
// exist before the update is applied.
func (s *actionService) Update(ctx context.Context, id string, fields map[string]any) (*entities.ActionItem, error) {
	updates := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := allowedUpdateFields[k]; ok {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return nil, usecaseErrors.ErrNoValidFields
	}
	updates["updated_at"] = time.Now().Format(time.RFC3339)

	existing, err := s.actionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load action item: %w", err)
	}
	if existing == nil {
		return nil, usecaseErrors.ErrActionItemNotFound
	}

	if err := s.actionRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}

	updated, err := s.actionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload action item: %w", err)
	}

	s.logger.Info("action item updated",
		zap.String("action_id", id),
		zap.Int("fields", len(updates)-1),
	)
	return updated, nil
}

// Delete removes one action item
func (s *actionService) Delete(ctx context.Context, id string) error {
	existing, err := s.actionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load action item: %w", err)
	}
	if existing == nil {
		return usecaseErrors.ErrActionItemNotFound
	}

	if err := s.actionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}

	s.logger.Info("action item deleted", zap.String("action_id", id))
	return nil
}
