package database

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
)

// Document is a schemaless record as stored in a collection. Ids surface
// as strings under the "_id" key regardless of backend.
type Document map[string]any

// Collection is the uniform storage contract both backends satisfy.
// Filters are exact-equality on every given field; a nil or empty filter
// matches everything. Results come back in insertion order as copies.
type Collection interface {
	// InsertOne assigns a fresh id, stores a copy of doc and returns the id.
	InsertOne(ctx context.Context, doc Document) (string, error)
	// Find returns copies of all documents matching filter.
	Find(ctx context.Context, filter Document) ([]Document, error)
	// FindOne returns the first match, or (nil, nil) when nothing matches.
	FindOne(ctx context.Context, filter Document) (Document, error)
	// UpdateOne merges fields into the first match; no-op when nothing matches.
	UpdateOne(ctx context.Context, filter Document, fields Document) error
	// DeleteOne removes the first match; no-op when nothing matches.
	DeleteOne(ctx context.Context, filter Document) error
}

// Store exposes the fixed set of named collections
type Store interface {
	Meetings() Collection
	ActionItems() Collection
	Backend() string
	Close(ctx context.Context) error
}

// Backend names
const (
	BackendMongo  = "mongodb"
	BackendMemory = "memory"
)

const (
	collectionMeetings    = "meetings"
	collectionActionItems = "action_items"
)

// NewStore probes MongoDB once at startup and returns the mongo-backed
// store when the server answers within the configured probe timeout.
// On any probe failure it logs and returns the in-memory store for the
// lifetime of the process; there is no later reconnect. Never fails.
func NewStore(cfg *config.Config, logger *zap.Logger) Store {
	store, err := newMongoStore(cfg)
	if err != nil {
		logger.Warn("mongodb unavailable, using in-memory storage (data resets on restart)",
			zap.String("uri", cfg.Mongo.URI),
			zap.Error(err),
		)
		return NewMemoryStore()
	}
	logger.Info("mongodb connected", zap.String("database", cfg.Mongo.Database))
	return store
}
