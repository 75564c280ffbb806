// models/memory.go
package models

import "time"

// MemoryImage references one photo blob stored in GridFS.
type MemoryImage struct {
	FileID string `bson:"fileId" json:"fileId"`
	URL    string `bson:"url" json:"url"`
}

// Memory is one photo journal entry, owned by the user who created it.
type Memory struct {
	ID          string        `bson:"id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Date        time.Time     `bson:"date" json:"date"`
	Images      []MemoryImage `bson:"images" json:"images"`
	UserID      string        `bson:"userId" json:"userId"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
