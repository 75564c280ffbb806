package memoryRepo

import (
	"context"
	"fmt"
	"time"

	"evermore/config"
	"evermore/database"
	"evermore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMemoryRepo implements MemoryRepository using MongoDB.
type MongoMemoryRepo struct {
	coll *mongo.Collection
}

// NewMongoMemoryRepo creates a new instance of MemoryRepository using MongoDB.
func NewMongoMemoryRepo() MemoryRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("memories")
	repo := &MongoMemoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMemoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a memory by its unique ID. Returns nil when no document
// matches.
func (r *MongoMemoryRepo) GetByID(id string) (*models.Memory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var mem models.Memory
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mem); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch memory with id %s: %w", id, err)
	}
	return &mem, nil
}

// GetAll retrieves all memories, newest first.
func (r *MongoMemoryRepo) GetAll() ([]models.Memory, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve memories: %w", err)
	}
	defer cursor.Close(ctx)

	var memories []models.Memory
	for cursor.Next(ctx) {
		var m models.Memory
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode memory: %w", err)
		}
		memories = append(memories, m)
	}
	return memories, nil
}
