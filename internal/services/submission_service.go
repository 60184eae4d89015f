package services

import (
	"context"
	"log"
	"strings"

	"logo-gallery-api/internal/apperrors"
	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/requests"
	"logo-gallery-api/internal/validation"
)

// submissionLedger is the slice of the store the ingestion path needs
type submissionLedger interface {
	ExistsBySourceURL(url string) (bool, error)
	Insert(sub *models.Submission) error
	CountBySubject(subjectNumber int) (int64, error)
	UpdateStoredPath(id uint, path string) error
}

// imageStore is the slice of the file store the ingestion path needs
type imageStore interface {
	Download(ctx context.Context, url string) ([]byte, string, error)
	PersistProvisional(data []byte, contentType string, subjectNumber int, variant string) (ProvisionalFile, error)
	Finalize(file ProvisionalFile, subjectNumber, sequence int) (string, error)
	Remove(filename string) error
}

// SubmissionService coordinates validation, image download and the ledger
// to accept a new submission
type SubmissionService struct {
	ledger submissionLedger
	images imageStore
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(ledger submissionLedger, images imageStore) *SubmissionService {
	return &SubmissionService{
		ledger: ledger,
		images: images,
	}
}

// Submit accepts a new logo submission: validate, download, persist the
// file provisionally, insert the pending row, then rename the file to its
// sequenced name and reconcile the row's stored path. Every failure after
// the provisional write attempts to delete that file before the error
// propagates; a cleanup failure is logged, never returned, so the primary
// cause is not masked.
func (s *SubmissionService) Submit(ctx context.Context, req requests.SubmitLogoRequest) (*models.Submission, error) {
	if !validation.IsAcceptableSourceURL(req.URL) {
		return nil, apperrors.ValidationError("Invalid URL. Must be a Twitter image URL (" + validation.TrustedURLPrefix + ")")
	}

	if !validation.IsAcceptableSubjectNumber(req.SubjectNumber) {
		return nil, apperrors.ValidationError("Subject number must be between 1 and 1025")
	}

	// Cheap duplicate probe before spending a download. The unique index
	// checked at insert time is the authoritative guard.
	exists, err := s.ledger.ExistsBySourceURL(req.URL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateURL
	}

	// Nothing exists yet on any failure up to here
	data, contentType, err := s.images.Download(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	provisional, err := s.images.PersistProvisional(data, contentType, req.SubjectNumber, req.Variant)
	if err != nil {
		return nil, err
	}

	sub := &models.Submission{
		SubjectNumber: req.SubjectNumber,
		SubjectName:   strings.TrimSpace(req.SubjectName),
		Variant:       req.Variant,
		VariantLabel:  strings.TrimSpace(req.VariantLabel),
		SourceURL:     req.URL,
		StoredPath:    provisional.StoredPath,
		SubmitterName: strings.TrimSpace(req.SubmitterName),
	}
	if err := s.ledger.Insert(sub); err != nil {
		s.cleanup(provisional.Filename)
		return nil, err
	}

	// Counting after the insert includes the row just created, which makes
	// the sequence 1-based and monotonic per subject
	count, err := s.ledger.CountBySubject(req.SubjectNumber)
	if err != nil {
		s.cleanup(provisional.Filename)
		return nil, err
	}

	finalPath, err := s.images.Finalize(provisional, req.SubjectNumber, int(count))
	if err != nil {
		s.cleanup(provisional.Filename)
		return nil, err
	}

	if err := s.ledger.UpdateStoredPath(sub.ID, finalPath); err != nil {
		// The provisional name no longer exists after the rename, so this
		// is a no-op; kept so every failure path attempts cleanup
		s.cleanup(provisional.Filename)
		return nil, err
	}

	sub.StoredPath = finalPath
	return sub, nil
}

func (s *SubmissionService) cleanup(filename string) {
	if err := s.images.Remove(filename); err != nil {
		log.Printf("failed to clean up provisional file %s: %v", filename, err)
	}
}
