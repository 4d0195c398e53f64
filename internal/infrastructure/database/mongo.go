package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
)

// mongoStore is the persistent backend over a real MongoDB connection
type mongoStore struct {
	client      *mongo.Client
	meetings    *mongoCollection
	actionItems *mongoCollection
}

// newMongoStore connects and pings within the probe timeout. Any error
// here means the caller falls back to the in-memory store.
func newMongoStore(cfg *config.Config) (*mongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ProbeTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(cfg.Mongo.ProbeTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	return &mongoStore{
		client:      client,
		meetings:    &mongoCollection{coll: db.Collection(collectionMeetings)},
		actionItems: &mongoCollection{coll: db.Collection(collectionActionItems)},
	}, nil
}

func (s *mongoStore) Meetings() Collection    { return s.meetings }
func (s *mongoStore) ActionItems() Collection { return s.actionItems }
func (s *mongoStore) Backend() string         { return BackendMongo }

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// mongoCollection adapts a mongo collection to the Collection contract.
// String ids are encoded as ObjectIDs when possible; lookups try the
// native ObjectID encoding first and retry with a plain string match, so
// callers never need to know which representation a document carries.
type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc Document) (string, error) {
	payload := bson.M{}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		payload[k] = v
	}

	res, err := c.coll.InsertOne(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (c *mongoCollection) Find(ctx context.Context, filter Document) ([]Document, error) {
	docs, err := c.findAll(ctx, encodeFilter(filter, true))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 && filterHasNativeID(filter) {
		return c.findAll(ctx, encodeFilter(filter, false))
	}
	return docs, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Document) (Document, error) {
	doc, err := c.findOne(ctx, encodeFilter(filter, true))
	if err != nil {
		return nil, err
	}
	if doc == nil && filterHasNativeID(filter) {
		return c.findOne(ctx, encodeFilter(filter, false))
	}
	return doc, nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter Document, fields Document) error {
	update := bson.M{"$set": bson.M(fields)}

	res, err := c.coll.UpdateOne(ctx, encodeFilter(filter, true), update)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if res.MatchedCount == 0 && filterHasNativeID(filter) {
		if _, err := c.coll.UpdateOne(ctx, encodeFilter(filter, false), update); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
	}
	return nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter Document) error {
	res, err := c.coll.DeleteOne(ctx, encodeFilter(filter, true))
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if res.DeletedCount == 0 && filterHasNativeID(filter) {
		if _, err := c.coll.DeleteOne(ctx, encodeFilter(filter, false)); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
	}
	return nil
}

func (c *mongoCollection) findAll(ctx context.Context, filter bson.M) ([]Document, error) {
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, normalizeDocument(r))
	}
	return docs, nil
}

func (c *mongoCollection) findOne(ctx context.Context, filter bson.M) (Document, error) {
	var raw bson.M
	if err := c.coll.FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return normalizeDocument(raw), nil
}

// encodeFilter translates an exact-equality filter to bson. With native
// set, a string "_id" that decodes as an ObjectID is matched natively;
// otherwise (or when decoding is impossible) it is matched as the raw
// string.
func encodeFilter(filter Document, native bool) bson.M {
	out := bson.M{}
	for k, v := range filter {
		if k == "_id" && native {
			if s, ok := v.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					out[k] = oid
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}

// filterHasNativeID reports whether a second raw-string pass differs
// from the native pass, i.e. the filter carries an ObjectID-decodable
// string id.
func filterHasNativeID(filter Document) bool {
	v, ok := filter["_id"]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// normalizeDocument converts decoded bson values to the plain shapes the
// rest of the application works with: ObjectIDs become hex strings and
// bson arrays/maps become []any and Document.
func normalizeDocument(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	case bson.M:
		return map[string]any(normalizeDocument(t))
	default:
		return v
	}
}
