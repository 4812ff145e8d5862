package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nearbee-scraper/models"
)

// MongoStore persists shop records to a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB, pings it, and returns a store bound to
// the given database and collection.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// FindByNaturalKey checks for an existing record with exactly the
// (shopName, latitude, longitude) triple.
func (s *MongoStore) FindByNaturalKey(ctx context.Context, name string, lat, lng float64) (bool, error) {
	err := s.collection.FindOne(ctx, naturalKeyFilter(name, lat, lng)).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongo: find by natural key: %w", err)
	}
	return true, nil
}

// Insert persists one new shop record.
func (s *MongoStore) Insert(ctx context.Context, record *models.ShopRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("mongo: insert %q: %w", record.ShopName, err)
	}
	return nil
}

// Search returns records whose shopName, address or category matches the
// free-text query, case-insensitively.
func (s *MongoStore) Search(ctx context.Context, query string) ([]*models.ShopRecord, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := s.collection.Find(ctx, searchFilter(query), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: search %q: %w", query, err)
	}
	defer cursor.Close(ctx)

	var records []*models.ShopRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("mongo: decode search results: %w", err)
	}
	return records, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func naturalKeyFilter(name string, lat, lng float64) bson.M {
	return bson.M{
		"shopName":  name,
		"latitude":  lat,
		"longitude": lng,
	}
}

func searchFilter(query string) bson.M {
	regex := primitive.Regex{Pattern: query, Options: "i"}
	return bson.M{
		"$or": []bson.M{
			{"shopName": regex},
			{"address": regex},
			{"category": regex},
		},
	}
}
