package services

import (
	"context"
	"errors"
	"testing"

	"logo-gallery-api/internal/apperrors"
	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() requests.SubmitLogoRequest {
	return requests.SubmitLogoRequest{
		URL:           "https://pbs.twimg.com/media/abc.jpg",
		SubjectNumber: 25,
		SubjectName:   "Pikachu",
		Variant:       models.VariantBase,
		SubmitterName: " someone ",
	}
}

func newTestService() (*SubmissionService, *fakeLedger, *fakeImages) {
	ledger := newFakeLedger()
	images := &fakeImages{data: []byte("img"), contentType: "image/jpeg"}
	return NewSubmissionService(ledger, images), ledger, images
}

func TestSubmitSuccess(t *testing.T) {
	svc, ledger, images := newTestService()

	sub, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(1), sub.ID)
	assert.Equal(t, models.StatusPending, sub.Status)
	assert.Equal(t, 25, sub.SubjectNumber)
	assert.Equal(t, "/logos/0025-1.jpg", sub.StoredPath)
	assert.Equal(t, "someone", sub.SubmitterName, "optional fields are trimmed")
	assert.Equal(t, "/logos/0025-1.jpg", ledger.updated[sub.ID], "row path reconciled to the final name")
	assert.Empty(t, images.removed, "no cleanup on the happy path")
}

func TestSubmitSequenceIncreasesPerSubject(t *testing.T) {
	svc, _, _ := newTestService()

	first := validRequest()
	sub1, err := svc.Submit(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "/logos/0025-1.jpg", sub1.StoredPath)

	second := validRequest()
	second.URL = "https://pbs.twimg.com/media/def.jpg"
	sub2, err := svc.Submit(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, "/logos/0025-2.jpg", sub2.StoredPath)

	other := validRequest()
	other.URL = "https://pbs.twimg.com/media/ghi.jpg"
	other.SubjectNumber = 1
	sub3, err := svc.Submit(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, "/logos/0001-1.jpg", sub3.StoredPath, "sequence is per subject")
}

func TestSubmitRejectsUntrustedURL(t *testing.T) {
	svc, _, images := newTestService()

	req := validRequest()
	req.URL = "https://example.com/media/abc.jpg"

	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Empty(t, images.downloads, "no download is attempted for a rejected URL")
	assert.Empty(t, images.persisted, "no file is written for a rejected URL")
}

func TestSubmitSubjectNumberBounds(t *testing.T) {
	for _, n := range []int{0, 1026, -5} {
		svc, _, images := newTestService()
		req := validRequest()
		req.SubjectNumber = n

		_, err := svc.Submit(context.Background(), req)
		require.Error(t, err, "subject %d", n)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
		assert.Empty(t, images.downloads)
	}

	for _, n := range []int{1, 1025} {
		svc, _, _ := newTestService()
		req := validRequest()
		req.SubjectNumber = n

		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err, "subject %d", n)
	}
}

func TestSubmitDuplicatePreCheck(t *testing.T) {
	svc, _, images := newTestService()

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDuplicateURL, appErr.Code)
	assert.Len(t, images.downloads, 1, "duplicate is caught before a second download")
}

func TestSubmitInsertConflictCleansUpProvisional(t *testing.T) {
	// Simulates the pre-check passing but the authoritative uniqueness
	// constraint firing at insert time
	svc, ledger, images := newTestService()
	ledger.insertErr = apperrors.ErrDuplicateURL

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDuplicateURL, appErr.Code)

	require.Len(t, images.persisted, 1)
	assert.Equal(t, []string{images.persisted[0].Filename}, images.removed)
}

func TestSubmitDownloadFailureLeavesNothing(t *testing.T) {
	svc, ledger, images := newTestService()
	images.downloadErr = apperrors.FetchError(nil, "Failed to fetch image: 500")

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	assert.Empty(t, images.persisted)
	assert.Empty(t, images.removed)
	assert.Empty(t, ledger.subs)
}

func TestSubmitFinalizeFailureCleansUpProvisional(t *testing.T) {
	svc, _, images := newTestService()
	images.finalizeErr = apperrors.StorageError(errors.New("rename failed"), "Failed to finalize image file")

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	require.Len(t, images.persisted, 1)
	assert.Equal(t, []string{images.persisted[0].Filename}, images.removed)
}

func TestSubmitCleanupFailureDoesNotMaskPrimaryError(t *testing.T) {
	svc, ledger, images := newTestService()
	ledger.insertErr = apperrors.ErrDuplicateURL
	images.removeErr = apperrors.StorageError(errors.New("unlink failed"), "Failed to delete image file")

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDuplicateURL, appErr.Code, "the insert conflict is reported, not the cleanup failure")
}
