package anniversaryRepo

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

// MongoAnniversaryRepo implements AnniversaryRepository using MongoDB.
type MongoAnniversaryRepo struct {
	coll *mongo.Collection
}

// NewMongoAnniversaryRepo creates a new instance of AnniversaryRepository using MongoDB.
func NewMongoAnniversaryRepo() AnniversaryRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("anniversaries")
	repo := &MongoAnniversaryRepo{coll: coll}

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
// Titles are unique across the collection; duplicate creates fail here even
// if the service-level pre-check races.
func (r *MongoAnniversaryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an anniversary by its unique ID. Returns nil when no
// document matches.
func (r *MongoAnniversaryRepo) GetByID(id string) (*models.Anniversary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var annv models.Anniversary
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&annv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch anniversary with id %s: %w", id, err)
	}
	return &annv, nil
}

// GetByTitle retrieves an anniversary by its title. Returns nil when no
// document matches.
func (r *MongoAnniversaryRepo) GetByTitle(title string) (*models.Anniversary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var annv models.Anniversary
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&annv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch anniversary with title %s: %w", title, err)
	}
	return &annv, nil
}

// GetAll retrieves all anniversaries sorted by date.
func (r *MongoAnniversaryRepo) GetAll() ([]models.Anniversary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve anniversaries: %w", err)
	}
	defer cursor.Close(ctx)

	var anniversaries []models.Anniversary
	for cursor.Next(ctx) {
		var a models.Anniversary
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode anniversary: %w", err)
		}
		anniversaries = append(anniversaries, a)
	}
	return anniversaries, nil
}
