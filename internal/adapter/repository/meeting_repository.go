package repository

import (
	"context"
	"errors"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
)

// MeetingRepository handles meeting data operations over the document store
type MeetingRepository struct {
	coll database.Collection
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(store database.Store) *MeetingRepository {
	return &MeetingRepository{coll: store.Meetings()}
}

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

// Create stores a new meeting and returns the assigned id
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) (string, error) {
	if meeting == nil {
		return "", errors.New("meeting cannot be nil")
	}

	doc := database.Document{
		"title":             meeting.Title,
		"transcript":        meeting.Transcript,
		"meeting_type":      meeting.MeetingType,
		"participants":      meeting.Participants,
		"status":            string(meeting.Status),
		"ai_summary":        nil,
		"key_decisions":     []string{},
		"topics_discussed":  []string{},
		"meeting_sentiment": nil,
		"created_at":        meeting.CreatedAt,
	}

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	meeting.ID = id
	return id, nil
}

// List returns all meetings in insertion order
func (r *MeetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return nil, err
	}

	meetings := make([]*entities.Meeting, 0, len(docs))
	for _, doc := range docs {
		meetings = append(meetings, meetingFromDocument(doc))
	}
	return meetings, nil
}

// GetByID returns the meeting or (nil, nil) when absent
func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*entities.Meeting, error) {
	doc, err := r.coll.FindOne(ctx, database.Document{"_id": id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return meetingFromDocument(doc), nil
}

// SetAnalysis marks the meeting processed and overwrites its derived fields
func (r *MeetingRepository) SetAnalysis(ctx context.Context, id string, analysis repositories.MeetingAnalysis) error {
	fields := database.Document{
		"status":            string(entities.MeetingStatusProcessed),
		"ai_summary":        analysis.AISummary,
		"key_decisions":     analysis.KeyDecisions,
		"topics_discussed":  analysis.TopicsDiscussed,
		"meeting_sentiment": analysis.MeetingSentiment,
		"processed_at":      analysis.ProcessedAt,
	}
	return r.coll.UpdateOne(ctx, database.Document{"_id": id}, fields)
}

func meetingFromDocument(doc database.Document) *entities.Meeting {
	return &entities.Meeting{
		ID:               docString(doc["_id"]),
		Title:            docString(doc["title"]),
		Transcript:       docString(doc["transcript"]),
		MeetingType:      docString(doc["meeting_type"]),
		Participants:     docStringSlice(doc["participants"]),
		Status:           entities.MeetingStatus(docString(doc["status"])),
		AISummary:        docStringPtr(doc["ai_summary"]),
		KeyDecisions:     docStringSlice(doc["key_decisions"]),
		TopicsDiscussed:  docStringSlice(doc["topics_discussed"]),
		MeetingSentiment: docStringPtr(doc["meeting_sentiment"]),
		CreatedAt:        docString(doc["created_at"]),
		ProcessedAt:      docString(doc["processed_at"]),
	}
}
