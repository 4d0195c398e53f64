package database

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// memoryStore is the in-process fallback backend. Both named collections
// are constructed up front; data lives for the process lifetime only.
type memoryStore struct {
	meetings    *memoryCollection
	actionItems *memoryCollection
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		meetings:    newMemoryCollection(),
		actionItems: newMemoryCollection(),
	}
}

func (s *memoryStore) Meetings() Collection    { return s.meetings }
func (s *memoryStore) ActionItems() Collection { return s.actionItems }
func (s *memoryStore) Backend() string         { return BackendMemory }

func (s *memoryStore) Close(ctx context.Context) error { return nil }

// memoryCollection holds documents in insertion order. Handlers run
// concurrently, so every operation takes the mutex.
type memoryCollection struct {
	mu   sync.RWMutex
	docs []Document
}

func newMemoryCollection() *memoryCollection {
	return &memoryCollection{docs: make([]Document, 0)}
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc Document) (string, error) {
	stored := copyDocument(doc)
	id := uuid.NewString()
	stored["_id"] = id

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, stored)
	return id, nil
}

func (c *memoryCollection) Find(ctx context.Context, filter Document) ([]Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]Document, 0)
	for _, d := range c.docs {
		if matches(d, filter) {
			results = append(results, copyDocument(d))
		}
	}
	return results, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter Document) (Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.docs {
		if matches(d, filter) {
			return copyDocument(d), nil
		}
	}
	return nil, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter Document, fields Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if matches(d, filter) {
			for k, v := range fields {
				d[k] = copyValue(v)
			}
			return nil
		}
	}
	return nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if matches(d, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// matches reports whether doc carries every filter field with an equal value
func matches(doc Document, filter Document) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

// copyDocument returns a copy deep enough that callers cannot mutate
// stored state through returned maps or slices.
func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case map[string]any:
		return map[string]any(copyDocument(t))
	case Document:
		return copyDocument(t)
	default:
		return v
	}
}
