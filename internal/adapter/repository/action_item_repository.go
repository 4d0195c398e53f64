package repository

import (
	"context"
	"errors"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
)

// ActionItemRepository handles action item data operations over the document store
type ActionItemRepository struct {
	coll database.Collection
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(store database.Store) *ActionItemRepository {
	return &ActionItemRepository{coll: store.ActionItems()}
}

var _ repositories.ActionItemRepository = (*ActionItemRepository)(nil)

// Create stores a new action item and returns the assigned id
func (r *ActionItemRepository) Create(ctx context.Context, item *entities.ActionItem) (string, error) {
	if item == nil {
		return "", errors.New("action item cannot be nil")
	}

	doc := database.Document{
		"meeting_id":  item.MeetingID,
		"title":       item.Title,
		"description": item.Description,
		"owner":       item.Owner,
		"priority":    item.Priority,
		"due_date":    item.DueDate,
		"status":      item.Status,
		"created_at":  item.CreatedAt,
		"updated_at":  item.UpdatedAt,
	}

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	item.ID = id
	return id, nil
}

// List returns all action items in insertion order
func (r *ActionItemRepository) List(ctx context.Context) ([]*entities.ActionItem, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.ActionItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, actionItemFromDocument(doc))
	}
	return items, nil
}

// GetByID returns the action item or (nil, nil) when absent
func (r *ActionItemRepository) GetByID(ctx context.Context, id string) (*entities.ActionItem, error) {
	doc, err := r.coll.FindOne(ctx, database.Document{"_id": id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return actionItemFromDocument(doc), nil
}

// Update merges fields into the action item
func (r *ActionItemRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.coll.UpdateOne(ctx, database.Document{"_id": id}, database.Document(fields))
}

// Delete removes the action item
func (r *ActionItemRepository) Delete(ctx context.Context, id string) error {
	return r.coll.DeleteOne(ctx, database.Document{"_id": id})
}

func actionItemFromDocument(doc database.Document) *entities.ActionItem {
	return &entities.ActionItem{
		ID:          docString(doc["_id"]),
		MeetingID:   docString(doc["meeting_id"]),
		Title:       docString(doc["title"]),
		Description: docString(doc["description"]),
		Owner:       docString(doc["owner"]),
		Priority:    docString(doc["priority"]),
		DueDate:     docString(doc["due_date"]),
		Status:      docString(doc["status"]),
		CreatedAt:   docString(doc["created_at"]),
		UpdatedAt:   docString(doc["updated_at"]),
	}
}
