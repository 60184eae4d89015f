package store

import (
	"errors"
	"fmt"
	"strings"

	"logo-gallery-api/internal/apperrors"
	"logo-gallery-api/internal/models"

	"gorm.io/gorm"
)

// SubmissionStore is the durable ledger of submissions. It owns the only
// shared mutable state in the system; conflicting writes are serialized by
// the database itself, so the source URL uniqueness constraint holds even
// when the cheap pre-check in the service layer races with another insert.
type SubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore creates a store bound to an open database handle
func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// variantOrderExpr builds the ORDER BY CASE that ranks known variants by
// their declared priority, unknown variants last.
func variantOrderExpr() string {
	var b strings.Builder
	b.WriteString("CASE variant")
	for i, v := range models.VariantPriority {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", v, i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(models.VariantPriority))
	return b.String()
}

// Insert persists a new pending submission. The stored path is still
// provisional at this point; the caller reconciles it after finalizing the
// file name. A duplicate source URL surfaces as ErrDuplicateURL.
func (s *SubmissionStore) Insert(sub *models.Submission) error {
	sub.Status = models.StatusPending
	if err := s.db.Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateURL
		}
		return apperrors.StorageError(err, "Failed to save submission")
	}
	return nil
}

// ExistsBySourceURL is the cheap duplicate probe run before downloading.
// The unique index checked in Insert remains the authoritative guard.
func (s *SubmissionStore) ExistsBySourceURL(url string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Submission{}).Where("source_url = ?", url).Count(&count).Error; err != nil {
		return false, apperrors.StorageError(err, "Failed to check for duplicate URL")
	}
	return count > 0, nil
}

// UpdateStoredPath replaces a row's provisional path with the final one
func (s *SubmissionStore) UpdateStoredPath(id uint, path string) error {
	if err := s.db.Model(&models.Submission{}).Where("id = ?", id).Update("stored_path", path).Error; err != nil {
		return apperrors.StorageError(err, "Failed to update stored path")
	}
	return nil
}

// CountBySubject counts submissions for a subject across all statuses.
// Taken immediately after an insert it yields that row's 1-based sequence
// number. Two concurrent submissions for the same subject can observe the
// same count before either finalizes; accepted given the moderated, manual
// submission flow.
func (s *SubmissionStore) CountBySubject(subjectNumber int) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Submission{}).Where("subject_number = ?", subjectNumber).Count(&count).Error; err != nil {
		return 0, apperrors.StorageError(err, "Failed to count submissions for subject")
	}
	return count, nil
}

// ListPending returns all pending submissions, most recent first
func (s *SubmissionStore) ListPending() ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.db.Where("status = ?", models.StatusPending).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, apperrors.StorageError(err, "Failed to list pending submissions")
	}
	return subs, nil
}

// ListApprovedBySubject returns approved submissions grouped by subject
// number, each group ordered by variant priority
func (s *SubmissionStore) ListApprovedBySubject() (map[int][]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("status = ?", models.StatusApproved).
		Order("subject_number ASC").
		Order(variantOrderExpr()).
		Find(&subs).Error
	if err != nil {
		return nil, apperrors.StorageError(err, "Failed to list approved submissions")
	}

	grouped := make(map[int][]models.Submission)
	for _, sub := range subs {
		grouped[sub.SubjectNumber] = append(grouped[sub.SubjectNumber], sub)
	}
	return grouped, nil
}

// Approve marks a submission approved. Approving an already approved row,
// or an id that no longer exists, is a silent no-op.
func (s *SubmissionStore) Approve(id uint) error {
	if err := s.db.Model(&models.Submission{}).Where("id = ?", id).Update("status", models.StatusApproved).Error; err != nil {
		return apperrors.StorageError(err, "Failed to approve submission")
	}
	return nil
}

// DeleteAndReturn removes a submission and returns its pre-deletion
// snapshot so the caller can clean up the stored file. Returns nil when the
// id does not exist.
func (s *SubmissionStore) DeleteAndReturn(id uint) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Submission{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.StorageError(err, "Failed to delete submission")
	}
	return &sub, nil
}
