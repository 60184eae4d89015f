package services

import (
	"log"

	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/utils"
)

// moderationLedger is the slice of the store the moderation path needs
type moderationLedger interface {
	Approve(id uint) error
	DeleteAndReturn(id uint) (*models.Submission, error)
}

// fileRemover deletes stored files on rejection
type fileRemover interface {
	Remove(filename string) error
}

// ModerationService transitions pending submissions to their terminal
// state: approved, or rejected and deleted
type ModerationService struct {
	ledger moderationLedger
	images fileRemover
}

// NewModerationService creates a new moderation service
func NewModerationService(ledger moderationLedger, images fileRemover) *ModerationService {
	return &ModerationService{
		ledger: ledger,
		images: images,
	}
}

// Approve marks a submission approved. No file operation is involved.
func (s *ModerationService) Approve(id uint) error {
	return s.ledger.Approve(id)
}

// Reject deletes the submission row and then its stored file. Returns
// false when the id does not exist, which is a no-op rather than an error.
// A failed file deletion is logged but does not resurrect the row.
func (s *ModerationService) Reject(id uint) (bool, error) {
	sub, err := s.ledger.DeleteAndReturn(id)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	filename := utils.FilenameFromPath(sub.StoredPath)
	if filename != "" {
		if err := s.images.Remove(filename); err != nil {
			log.Printf("failed to delete file for rejected submission %d: %v", id, err)
		}
	}
	return true, nil
}
