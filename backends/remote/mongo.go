package remote

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/botirk38/collabfilter/types"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore implements IndexStore with one document per item.
type MongoStore[I cmp.Ordered] struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// mongoDocument holds the neighbours of one item
type mongoDocument[I cmp.Ordered] struct {
	ID        string             `bson:"_id"`
	Item      I                  `bson:"item"`
	Neighbors types.MatchList[I] `bson:"neighbors"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// NewMongoStore connects to MongoDB and returns a store backed by
// Options["database"] / Options["collection"].
func NewMongoStore[I cmp.Ordered](config types.StoreConfig) (*MongoStore[I], error) {
	if config.ConnectionString == "" {
		return nil, errors.New("mongo: connection string is required")
	}

	opt := options.Client().ApplyURI(config.ConnectionString)
	if config.Username != "" {
		opt.SetAuth(options.Credential{Username: config.Username, Password: config.Password})
	}

	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	dbName := stringOption(config.Options, "database", "collabfilter")
	collName := stringOption(config.Options, "collection", "item_similarities")

	return &MongoStore[I]{
		client:     client,
		collection: client.Database(dbName).Collection(collName),
	}, nil
}

func stringOption(opts map[string]any, key, fallback string) string {
	if v, ok := opts[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// docID derives a stable _id for item
func docID[I cmp.Ordered](item I) (string, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("mongo: encode item: %w", err)
	}
	return string(b), nil
}

// Put upserts the neighbour document for item
func (s *MongoStore[I]) Put(ctx context.Context, item I, matches types.MatchList[I]) error {
	id, err := docID(item)
	if err != nil {
		return err
	}

	doc := mongoDocument[I]{
		ID:        id,
		Item:      item,
		Neighbors: matches,
		UpdatedAt: time.Now().UTC(),
	}
	_, err = s.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: put: %w", err)
	}
	return nil
}

// Get retrieves the neighbour document for item
func (s *MongoStore[I]) Get(ctx context.Context, item I) (types.MatchList[I], bool, error) {
	id, err := docID(item)
	if err != nil {
		return nil, false, err
	}

	var doc mongoDocument[I]
	err = s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo: get: %w", err)
	}
	return doc.Neighbors, true, nil
}

// Delete removes the neighbour document for item
func (s *MongoStore[I]) Delete(ctx context.Context, item I) error {
	id, err := docID(item)
	if err != nil {
		return err
	}

	if _, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("mongo: delete: %w", err)
	}
	return nil
}

// Contains checks if a document exists for item
func (s *MongoStore[I]) Contains(ctx context.Context, item I) (bool, error) {
	id, err := docID(item)
	if err != nil {
		return false, err
	}

	n, err := s.collection.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("mongo: contains: %w", err)
	}
	return n > 0, nil
}

// Flush deletes every document in the collection
func (s *MongoStore[I]) Flush(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("mongo: flush: %w", err)
	}
	return nil
}

// Len counts the documents in the collection
func (s *MongoStore[I]) Len(ctx context.Context) (int, error) {
	n, err := s.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongo: len: %w", err)
	}
	return int(n), nil
}

// Keys returns every stored item
func (s *MongoStore[I]) Keys(ctx context.Context) ([]I, error) {
	cursor, err := s.collection.Find(ctx, bson.D{}, options.Find().SetProjection(bson.D{{Key: "item", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: keys: %w", err)
	}

	var docs []mongoDocument[I]
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: keys: %w", err)
	}

	keys := make([]I, 0, len(docs))
	for _, doc := range docs {
		keys = append(keys, doc.Item)
	}
	return keys, nil
}

// Close disconnects the client
func (s *MongoStore[I]) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
