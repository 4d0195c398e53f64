package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
)

// Parser handles parsing and validation of Gemini responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse strips any code-fence markup the model may have added and parses
// the remaining text strictly as JSON.
func (p *Parser) Parse(raw string) (*entities.AnalysisResult, error) {
	raw = extractJSON(raw)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &result, nil
}

// ApplyDefaults fills every field the model omitted with its defined
// default. Due dates fall back to 7 days ahead of today as fixed at
// prompt-render time.
func (p *Parser) ApplyDefaults(result *entities.AnalysisResult, today time.Time) {
	if result.KeyDecisions == nil {
		result.KeyDecisions = make([]string, 0)
	}
	if result.TopicsDiscussed == nil {
		result.TopicsDiscussed = make([]string, 0)
	}
	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ExtractedActionItem, 0)
	}
	if result.MeetingSentiment == "" {
		result.MeetingSentiment = entities.SentimentNeutral
	}

	dueDefault := today.AddDate(0, 0, 7).Format("2006-01-02")
	for i := range result.ActionItems {
		item := &result.ActionItems[i]
		if item.Title == "" {
			item.Title = "Untitled"
		}
		if item.Owner == "" {
			item.Owner = entities.DefaultOwner
		}
		if item.Priority == "" {
			item.Priority = entities.ActionItemPriorityMedium
		}
		if item.DueDate == "" {
			item.DueDate = dueDefault
		}
		if item.Status == "" {
			item.Status = entities.ActionItemStatusPending
		}
	}
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
