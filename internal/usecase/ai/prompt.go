package ai

import (
	"fmt"
	"strings"
	"time"
)

const promptTemplate = `You are an expert meeting analyst. Analyze this %s meeting transcript.

Participants: %s
Today: %s

Transcript:
---
%s
---

Return ONLY a raw JSON object. No markdown. No code fences. No explanation. Just the JSON:
{
  "summary": "2-3 sentence summary of the meeting",
  "key_decisions": ["decision 1", "decision 2"],
  "action_items": [
    {
      "title": "short action title",
      "description": "detailed description of what needs to be done",
      "owner": "person name or Unassigned",
      "priority": "High or Medium or Low",
      "due_date": "YYYY-MM-DD",
      "status": "Pending"
    }
  ],
  "meeting_sentiment": "Productive or Neutral or Challenging",
  "topics_discussed": ["topic1", "topic2"]
}

Rules:
- urgent/critical = High priority, soon/next week = Medium, later/eventually = Low
- If owner not mentioned, use Unassigned
- If due date not mentioned, default to 7 days from today (%s)
- Return ONLY the JSON. Absolutely nothing else.`

// BuildPrompt renders the analysis instruction for one transcript. The
// "today" the model reasons about is fixed at render time so that due
// date defaults stay consistent with it.
func BuildPrompt(transcript, meetingType string, participants []string, today time.Time) string {
	participantsStr := "Not specified"
	if len(participants) > 0 {
		participantsStr = strings.Join(participants, ", ")
	}

	date := today.Format("2006-01-02")
	return fmt.Sprintf(promptTemplate, meetingType, participantsStr, date, transcript, date)
}
