package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"innkeeper/models"
)

// Source loads the hotel catalog at startup. A failed or malformed load is
// fatal for the process, never a per-turn error.
type Source interface {
	Load(ctx context.Context) ([]models.HotelRecord, error)
}

// FileSource reads the catalog from a JSON array on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]models.HotelRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read hotel data %s: %w", s.Path, err)
	}
	var hotels []models.HotelRecord
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, fmt.Errorf("hotel data must be a JSON list of hotel objects: %w", err)
	}
	return hotels, nil
}

// MongoSource reads the catalog from the "hotels" collection.
type MongoSource struct {
	Client   *mongo.Client
	Database string
}

func (s MongoSource) Load(ctx context.Context) ([]models.HotelRecord, error) {
	coll := s.Client.Database(s.Database).Collection("hotels")
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query hotels collection: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.HotelRecord
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("decode hotel records: %w", err)
	}
	return hotels, nil
}
