package meeting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	aiuse "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes-tracker/internal/usecase/errors"
)

// Service defines meeting operations
type Service interface {
	List(ctx context.Context, search string) ([]*entities.Meeting, error)
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, id string) (*entities.Meeting, error)
	Process(ctx context.Context, meetingID string) (*ProcessOutput, error)
}

// CreateInput carries the fields accepted at meeting creation
type CreateInput struct {
	Title        string
	Transcript   string
	MeetingType  string
	Participants []string
}

// CreateOutput is returned after a successful creation
type CreateOutput struct {
	MeetingID string `json:"meeting_id"`
	Title     string `json:"title"`
}

// ProcessOutput is the enriched result of an AI pass, including the
// in-band success flag so callers can display a degraded-mode notice.
type ProcessOutput struct {
	Summary          string
	KeyDecisions     []string
	TopicsDiscussed  []string
	MeetingSentiment string
	ActionItems      []*entities.ActionItem
	AISuccess        bool
	ErrorMessage     string
}

type meetingService struct {
	meetingRepo repositories.MeetingRepository
	actionRepo  repositories.ActionItemRepository
	aiService   aiuse.Service
	logger      *zap.Logger
}

// NewService constructs the meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	actionRepo repositories.ActionItemRepository,
	aiService aiuse.Service,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo: meetingRepo,
		actionRepo:  actionRepo,
		aiService:   aiService,
		logger:      logger,
	}
}

// List returns all meetings, newest first, optionally filtered by a
// case-insensitive substring over title, transcript and summary.
func (s *meetingService) List(ctx context.Context, search string) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search != "" {
		filtered := make([]*entities.Meeting, 0, len(meetings))
		for _, m := range meetings {
			summary := ""
			if m.AISummary != nil {
				summary = *m.AISummary
			}
			haystack := strings.ToLower(m.Title + m.Transcript + summary)
			if strings.Contains(haystack, search) {
				filtered = append(filtered, m)
			}
		}
		meetings = filtered
	}

	// created_at is RFC3339, so string order is chronological
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt > meetings[j].CreatedAt
	})
	return meetings, nil
}

// Create validates and stores a new pending meeting
func (s *meetingService) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return nil, usecaseErrors.ErrTranscriptRequired
	}

	meetingType := input.MeetingType
	if meetingType == "" {
		meetingType = entities.DefaultMeetingType
	}

	now := time.Now()
	title := input.Title
	if title == "" {
		title = fmt.Sprintf("%s Meeting — %s", meetingType, now.Format("Jan 02, 2006"))
	}

	participants := input.Participants
	if participants == nil {
		participants = []string{}
	}

	m := &entities.Meeting{
		Title:        title,
		Transcript:   transcript,
		MeetingType:  meetingType,
		Participants: participants,
		Status:       entities.MeetingStatusPending,
		CreatedAt:    now.Format(time.RFC3339),
	}

	id, err := s.meetingRepo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info("meeting created",
		zap.String("meeting_id", id),
		zap.String("meeting_type", meetingType),
	)
	return &CreateOutput{MeetingID: id, Title: title}, nil
}

// Get fetches one meeting by id
func (s *meetingService) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if m == nil {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	return m, nil
}

// Process runs the AI pass over the meeting and fans the result out into
// new action items. The meeting is marked processed whether the AI call
// succeeded or fell back to the demo payload. Repeated calls overwrite
// the derived fields and append another batch of action items.
func (s *meetingService) Process(ctx context.Context, meetingID string) (*ProcessOutput, error) {
	m, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	if m == nil {
		return nil, usecaseErrors.ErrMeetingNotFound
	}

	result, aiSuccess, errMessage := s.aiService.Analyze(ctx, m.Transcript, m.MeetingType, m.Participants)

	now := time.Now().Format(time.RFC3339)
	analysis := repositories.MeetingAnalysis{
		AISummary:        result.Summary,
		KeyDecisions:     result.KeyDecisions,
		TopicsDiscussed:  result.TopicsDiscussed,
		MeetingSentiment: result.MeetingSentiment,
		ProcessedAt:      now,
	}
	if err := s.meetingRepo.SetAnalysis(ctx, meetingID, analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	// Meeting update and item inserts are independent writes; a crash in
	// between leaves a processed meeting with a partial batch.
	items := make([]*entities.ActionItem, 0, len(result.ActionItems))
	for _, extracted := range result.ActionItems {
		item := &entities.ActionItem{
			MeetingID:   meetingID,
			Title:       extracted.Title,
			Description: extracted.Description,
			Owner:       extracted.Owner,
			Priority:    extracted.Priority,
			DueDate:     extracted.DueDate,
			Status:      entities.ActionItemStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := s.actionRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to create action item: %w", err)
		}
		items = append(items, item)
	}

	s.logger.Info("meeting processed",
		zap.String("meeting_id", meetingID),
		zap.Bool("ai_success", aiSuccess),
		zap.Int("action_items", len(items)),
	)

	return &ProcessOutput{
		Summary:          result.Summary,
		KeyDecisions:     result.KeyDecisions,
		TopicsDiscussed:  result.TopicsDiscussed,
		MeetingSentiment: result.MeetingSentiment,
		ActionItems:      items,
		AISuccess:        aiSuccess,
		ErrorMessage:     errMessage,
	}, nil
}
