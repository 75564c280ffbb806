// File: database/repository/memory/memoryMongoCrud.go
package memoryRepo

import (
	"fmt"
	"time"

	"evermore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new memory document.
func (r *MongoMemoryRepo) Create(mem *models.Memory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	mem.CreatedAt = now
	mem.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, mem)
	if err != nil {
		return fmt.Errorf("failed to create memory: %w", err)
	}
	return nil
}

// Update modifies an existing memory document.
func (r *MongoMemoryRepo) Update(mem *models.Memory) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	mem.UpdatedAt = time.Now()
	filter := bson.M{"id": mem.ID}
	update := bson.M{"$set": mem}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update memory with id %s: %w", mem.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("memory with id %s not found", mem.ID)
	}
	return nil
}

// Delete removes a memory document by its ID.
func (r *MongoMemoryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete memory with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("memory with id %s not found", id)
	}
	return nil
}

// AddImage appends an image reference to a memory's ordered image list.
func (r *MongoMemoryRepo) AddImage(id string, image models.MemoryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": image},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add image to memory %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("memory with id %s not found", id)
	}
	return nil
}

// RemoveImage pulls an image reference from a memory by GridFS file ID.
func (r *MongoMemoryRepo) RemoveImage(id string, fileID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"images": bson.M{"fileId": fileID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove image from memory %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("memory with id %s not found", id)
	}
	return nil
}
