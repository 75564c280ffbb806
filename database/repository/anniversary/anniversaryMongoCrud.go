// File: database/repository/anniversary/anniversaryMongoCrud.go
package anniversaryRepo

import (
	"fmt"
	"time"

	"evermore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new anniversary document.
func (r *MongoAnniversaryRepo) Create(annv *models.Anniversary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	annv.CreatedAt = now
	annv.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, annv)
	if err != nil {
		return fmt.Errorf("failed to create anniversary: %w", err)
	}
	return nil
}

// Update modifies an existing anniversary document.
func (r *MongoAnniversaryRepo) Update(annv *models.Anniversary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	annv.UpdatedAt = time.Now()
	filter := bson.M{"id": annv.ID}
	update := bson.M{"$set": annv}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update anniversary with id %s: %w", annv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("anniversary with id %s not found", annv.ID)
	}
	return nil
}

// Delete removes an anniversary document by its ID.
func (r *MongoAnniversaryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete anniversary with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("anniversary with id %s not found", id)
	}
	return nil
}
