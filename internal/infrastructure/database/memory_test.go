package database

import (
	"context"
	"testing"
)

func TestMemoryCollection_InsertAssignsID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	coll := store.Meetings()

	id, err := coll.InsertOne(ctx, Document{"title": "Standup"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}

	doc, err := coll.FindOne(ctx, Document{"_id": id})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc == nil {
		t.Fatalf("expected document for id %s", id)
	}
	if doc["title"] != "Standup" {
		t.Fatalf("unexpected title %v", doc["title"])
	}
}

func TestMemoryCollection_FindMatchesEveryFilterField(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().ActionItems()

	seed := []Document{
		{"owner": "Alice", "priority": "High"},
		{"owner": "Alice", "priority": "Low"},
		{"owner": "Bob", "priority": "High"},
	}
	for _, d := range seed {
		if _, err := coll.InsertOne(ctx, d); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	all, err := coll.Find(ctx, nil)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
	// Insertion order preserved
	if all[0]["priority"] != "High" || all[1]["priority"] != "Low" {
		t.Fatalf("unexpected order: %v", all)
	}

	matched, err := coll.Find(ctx, Document{"owner": "Alice", "priority": "High"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
}

func TestMemoryCollection_FindOneFirstMatch(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().ActionItems()

	first, _ := coll.InsertOne(ctx, Document{"status": "Pending", "n": "a"})
	if _, err := coll.InsertOne(ctx, Document{"status": "Pending", "n": "b"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	doc, err := coll.FindOne(ctx, Document{"status": "Pending"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc["_id"] != first {
		t.Fatalf("expected first matching document, got %v", doc["_id"])
	}

	missing, err := coll.FindOne(ctx, Document{"status": "Done"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for no match, got %v", missing)
	}
}

func TestMemoryCollection_UpdateOneMergesFields(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().ActionItems()

	id, _ := coll.InsertOne(ctx, Document{"status": "Pending", "owner": "Alice"})

	if err := coll.UpdateOne(ctx, Document{"_id": id}, Document{"status": "Done"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	doc, _ := coll.FindOne(ctx, Document{"_id": id})
	if doc["status"] != "Done" {
		t.Fatalf("expected merged status, got %v", doc["status"])
	}
	if doc["owner"] != "Alice" {
		t.Fatalf("untouched field changed: %v", doc["owner"])
	}

	// No match is a no-op, not an error
	if err := coll.UpdateOne(ctx, Document{"_id": "nope"}, Document{"status": "X"}); err != nil {
		t.Fatalf("no-match update should be a no-op: %v", err)
	}
}

func TestMemoryCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().ActionItems()

	id, _ := coll.InsertOne(ctx, Document{"status": "Pending"})

	if err := coll.DeleteOne(ctx, Document{"_id": id}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	doc, _ := coll.FindOne(ctx, Document{"_id": id})
	if doc != nil {
		t.Fatalf("expected document gone, got %v", doc)
	}

	if err := coll.DeleteOne(ctx, Document{"_id": id}); err != nil {
		t.Fatalf("no-match delete should be a no-op: %v", err)
	}
}

func TestMemoryCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Meetings()

	original := Document{"title": "Planning", "participants": []string{"Alice"}}
	id, _ := coll.InsertOne(ctx, original)

	// Mutating the inserted document must not affect stored state
	original["title"] = "Changed"

	doc, _ := coll.FindOne(ctx, Document{"_id": id})
	if doc["title"] != "Planning" {
		t.Fatalf("stored doc mutated through caller copy: %v", doc["title"])
	}

	// Mutating a returned document must not affect stored state either
	doc["title"] = "Changed again"
	doc["participants"].([]string)[0] = "Mallory"

	again, _ := coll.FindOne(ctx, Document{"_id": id})
	if again["title"] != "Planning" {
		t.Fatalf("stored doc mutated through returned copy")
	}
	if again["participants"].([]string)[0] != "Alice" {
		t.Fatalf("stored slice mutated through returned copy")
	}
}

func TestMemoryStore_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Meetings().InsertOne(ctx, Document{"title": "A"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	items, err := store.ActionItems().Find(ctx, nil)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("collections must be independent, got %d docs", len(items))
	}

	if store.Backend() != BackendMemory {
		t.Fatalf("unexpected backend name %s", store.Backend())
	}
}
