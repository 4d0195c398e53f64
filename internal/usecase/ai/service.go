package ai

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-notes-tracker/pkg/ai"
)

// Service runs the summarization pass over a transcript. Analyze never
// returns an error: on any upstream or parse failure the caller gets the
// demo payload together with aiSuccess=false and a readable message.
type Service interface {
	Analyze(ctx context.Context, transcript, meetingType string, participants []string) (*entities.AnalysisResult, bool, string)
}

type analysisService struct {
	gemini *pkgai.GeminiClient
	parser *Parser
	logger *zap.Logger
}

// NewService constructs the analysis service
func NewService(gemini *pkgai.GeminiClient, logger *zap.Logger) Service {
	return &analysisService{
		gemini: gemini,
		parser: NewParser(),
		logger: logger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, transcript, meetingType string, participants []string) (*entities.AnalysisResult, bool, string) {
	// "today" is fixed before the call; defaults derived from it must not
	// drift while the model is thinking.
	today := time.Now()

	prompt := BuildPrompt(transcript, meetingType, participants, today)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("gemini call failed, serving demo payload", zap.Error(err))
		return DemoResult(today), false, err.Error()
	}

	result, err := s.parser.Parse(text)
	if err != nil {
		s.logger.Warn("gemini returned invalid JSON, serving demo payload", zap.Error(err))
		return DemoResult(today), false, fmt.Sprintf("AI returned invalid JSON: %v", err)
	}

	s.parser.ApplyDefaults(result, today)
	s.logger.Info("ai analysis successful",
		zap.Int("action_items", len(result.ActionItems)),
		zap.String("sentiment", result.MeetingSentiment),
	)
	return result, true, ""
}

// DemoResult is the deterministic payload served whenever the AI pass
// fails. Downstream consumers and tests key off these exact field values.
func DemoResult(now time.Time) *entities.AnalysisResult {
	due := now.AddDate(0, 0, 1).Format("2006-01-02")
	return &entities.AnalysisResult{
		Summary:      "Demo mode — add your Gemini API key to .env to enable AI processing.",
		KeyDecisions: []string{"Add GEMINI_API_KEY to .env to activate AI"},
		ActionItems: []entities.ExtractedActionItem{
			{
				Title:       "Configure Gemini API Key",
				Description: "Get a free key from https://aistudio.google.com/app/apikey and add it to .env",
				Owner:       "Developer",
				Priority:    entities.ActionItemPriorityHigh,
				DueDate:     due,
				Status:      entities.ActionItemStatusPending,
			},
		},
		MeetingSentiment: entities.SentimentNeutral,
		TopicsDiscussed:  []string{"Setup", "Configuration"},
	}
}
