package memory

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	memoryRepo "evermore/database/repository/memory"
	"evermore/models"
	"evermore/services/storage"
	"evermore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals an unknown memory id.
var ErrNotFound = errors.New("memory not found")

// ErrForbidden signals a mutation attempt by someone other than the owner
// or an admin.
var ErrForbidden = errors.New("only the owner or an admin may modify this memory")

// Ensure DefaultMemoryService implements MemoryService
var _ MemoryService = (*DefaultMemoryService)(nil)

// DefaultMemoryService implements MemoryService over the memory repository
// and the image blob store.
type DefaultMemoryService struct {
	Repo   memoryRepo.MemoryRepository
	Images storage.ImageStore
}

func validate(in *CreateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	return nil
}

// authorize loads a memory and checks the caller may mutate it.
func (s *DefaultMemoryService) authorize(id, callerID string, callerIsAdmin bool) (*models.Memory, error) {
	mem, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mem == nil {
		return nil, ErrNotFound
	}
	if mem.UserID != callerID && !callerIsAdmin {
		return nil, ErrForbidden
	}
	return mem, nil
}

// Create persists a new memory owned by userID.
func (s *DefaultMemoryService) Create(userID string, in CreateInput) (*models.Memory, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	mem := models.Memory{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Images:      []models.MemoryImage{},
		UserID:      userID,
	}
	if err := s.Repo.Create(&mem); err != nil {
		return nil, err
	}
	return &mem, nil
}

// Update mutates title, description and date. Owner or admin only.
func (s *DefaultMemoryService) Update(id, callerID string, callerIsAdmin bool, in CreateInput) (*models.Memory, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	mem, err := s.authorize(id, callerID, callerIsAdmin)
	if err != nil {
		return nil, err
	}

	mem.Title = in.Title
	mem.Description = in.Description
	mem.Date = in.Date
	if err := s.Repo.Update(mem); err != nil {
		return nil, err
	}
	return mem, nil
}

// Delete removes a memory and its image blobs. Owner or admin only. A blob
// that fails to delete is logged and skipped; the document delete proceeds.
func (s *DefaultMemoryService) Delete(id, callerID string, callerIsAdmin bool) error {
	mem, err := s.authorize(id, callerID, callerIsAdmin)
	if err != nil {
		return err
	}

	for _, img := range mem.Images {
		if err := s.Images.Delete(img.FileID); err != nil {
			utils.GetLogger().Warn("failed to delete image blob",
				zap.String("memory", id),
				zap.String("fileId", img.FileID),
				zap.Error(err))
		}
	}
	return s.Repo.Delete(id)
}

// GetByID fetches one memory.
func (s *DefaultMemoryService) GetByID(id string) (*models.Memory, error) {
	mem, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mem == nil {
		return nil, ErrNotFound
	}
	return mem, nil
}

// GetAll lists every memory, newest first.
func (s *DefaultMemoryService) GetAll() ([]models.Memory, error) {
	return s.Repo.GetAll()
}

// AttachImage uploads a blob and appends its reference to the memory.
func (s *DefaultMemoryService) AttachImage(id, callerID string, callerIsAdmin bool, filename string, r io.Reader) (*models.MemoryImage, error) {
	if _, err := s.authorize(id, callerID, callerIsAdmin); err != nil {
		return nil, err
	}

	fileID, err := s.Images.Upload(filename, r)
	if err != nil {
		return nil, err
	}

	img := models.MemoryImage{
		FileID: fileID,
		URL:    "/api/images/" + fileID,
	}
	if err := s.Repo.AddImage(id, img); err != nil {
		// Orphaned blob if this cleanup fails too; logged, not fatal.
		if delErr := s.Images.Delete(fileID); delErr != nil {
			utils.GetLogger().Warn("failed to clean up orphaned image blob",
				zap.String("fileId", fileID), zap.Error(delErr))
		}
		return nil, err
	}
	return &img, nil
}

// RemoveImage deletes a blob and pulls its reference from the memory.
func (s *DefaultMemoryService) RemoveImage(id, fileID, callerID string, callerIsAdmin bool) error {
	if _, err := s.authorize(id, callerID, callerIsAdmin); err != nil {
		return err
	}

	if err := s.Repo.RemoveImage(id, fileID); err != nil {
		return err
	}
	if err := s.Images.Delete(fileID); err != nil {
		utils.GetLogger().Warn("failed to delete image blob",
			zap.String("memory", id),
			zap.String("fileId", fileID),
			zap.Error(err))
	}
	return nil
}
