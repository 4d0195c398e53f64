package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
)

// Seeds a couple of meetings and action items into the configured store.
// Run with: go run scripts/seed_demo.go
func main() {
	log.Println("🚀 Starting demo data seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("📦 Connecting to storage...")
	store := database.NewStore(cfg, logger)
	defer store.Close(context.Background())
	log.Printf("✅ Storage ready (backend: %s)", store.Backend())

	if store.Backend() == database.BackendMemory {
		log.Println("⚠️  Memory backend is process-local; seeded data will not outlive this run")
	}

	ctx := context.Background()
	meetingRepo := repository.NewMeetingRepository(store)
	actionRepo := repository.NewActionItemRepository(store)

	now := time.Now().UTC()

	meetings := []*entities.Meeting{
		{
			Title:        "Sprint Planning — Demo",
			Transcript:   "Alice: Let's target the release for Friday. Bob: I'll finish the payment flow by Wednesday.",
			MeetingType:  "Planning",
			Participants: []string{"Alice", "Bob"},
			Status:       entities.MeetingStatusPending,
			CreatedAt:    now.Add(-48 * time.Hour).Format(time.RFC3339),
		},
		{
			Title:        "Weekly Sync — Demo",
			Transcript:   "Carol: The staging environment is back up. Dave: I'll document the deploy steps.",
			MeetingType:  entities.DefaultMeetingType,
			Participants: []string{"Carol", "Dave"},
			Status:       entities.MeetingStatusPending,
			CreatedAt:    now.Add(-24 * time.Hour).Format(time.RFC3339),
		},
	}

	for _, m := range meetings {
		id, err := meetingRepo.Create(ctx, m)
		if err != nil {
			log.Fatalf("Failed to create meeting %q: %v", m.Title, err)
		}
		log.Printf("📝 Created meeting %s (%s)", m.Title, id)
	}

	items := []*entities.ActionItem{
		{
			MeetingID:   meetings[0].ID,
			Title:       "Finish payment flow",
			Description: "Complete the payment integration before the Friday release.",
			Owner:       "Bob",
			Priority:    entities.ActionItemPriorityHigh,
			DueDate:     now.Add(72 * time.Hour).Format("2006-01-02"),
			Status:      entities.ActionItemStatusPending,
			CreatedAt:   now.Format(time.RFC3339),
			UpdatedAt:   now.Format(time.RFC3339),
		},
		{
			MeetingID:   meetings[1].ID,
			Title:       "Document deploy steps",
			Description: "Write up the staging deploy runbook.",
			Owner:       "Dave",
			Priority:    entities.ActionItemPriorityMedium,
			DueDate:     now.Add(7 * 24 * time.Hour).Format("2006-01-02"),
			Status:      entities.ActionItemStatusPending,
			CreatedAt:   now.Format(time.RFC3339),
			UpdatedAt:   now.Format(time.RFC3339),
		},
	}

	for _, item := range items {
		id, err := actionRepo.Create(ctx, item)
		if err != nil {
			log.Fatalf("Failed to create action item %q: %v", item.Title, err)
		}
		log.Printf("✅ Created action item %s (%s)", item.Title, id)
	}

	fmt.Println()
	log.Printf("🎉 Seeded %d meetings and %d action items", len(meetings), len(items))
}
