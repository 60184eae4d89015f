package services

import (
	"context"
	"fmt"

	"logo-gallery-api/internal/models"
	"logo-gallery-api/internal/utils"
)

// In-memory fakes for the ledger and image store interfaces

type fakeLedger struct {
	subs       []*models.Submission
	nextID     uint
	insertErr  error
	existsErr  error
	approved   []uint
	updated    map[uint]string
	deleteErr  error
	approveErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{updated: make(map[uint]string)}
}

func (f *fakeLedger) ExistsBySourceURL(url string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, sub := range f.subs {
		if sub.SourceURL == url {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedger) Insert(sub *models.Submission) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	sub.ID = f.nextID
	sub.Status = models.StatusPending
	copied := *sub
	f.subs = append(f.subs, &copied)
	return nil
}

func (f *fakeLedger) CountBySubject(subjectNumber int) (int64, error) {
	var count int64
	for _, sub := range f.subs {
		if sub.SubjectNumber == subjectNumber {
			count++
		}
	}
	return count, nil
}

func (f *fakeLedger) UpdateStoredPath(id uint, path string) error {
	f.updated[id] = path
	for _, sub := range f.subs {
		if sub.ID == id {
			sub.StoredPath = path
		}
	}
	return nil
}

func (f *fakeLedger) Approve(id uint) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	f.approved = append(f.approved, id)
	for _, sub := range f.subs {
		if sub.ID == id {
			sub.Status = models.StatusApproved
		}
	}
	return nil
}

func (f *fakeLedger) DeleteAndReturn(id uint) (*models.Submission, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	for i, sub := range f.subs {
		if sub.ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return sub, nil
		}
	}
	return nil, nil
}

type fakeImages struct {
	data        []byte
	contentType string
	downloadErr error
	persistErr  error
	finalizeErr error
	removeErr   error

	downloads []string
	persisted []ProvisionalFile
	removed   []string
}

func (f *fakeImages) Download(ctx context.Context, url string) ([]byte, string, error) {
	if f.downloadErr != nil {
		return nil, "", f.downloadErr
	}
	f.downloads = append(f.downloads, url)
	return f.data, f.contentType, nil
}

func (f *fakeImages) PersistProvisional(data []byte, contentType string, subjectNumber int, variant string) (ProvisionalFile, error) {
	if f.persistErr != nil {
		return ProvisionalFile{}, f.persistErr
	}
	ext := utils.ExtensionForContentType(contentType)
	file := ProvisionalFile{
		Filename: fmt.Sprintf("temp-%d-%d-%s.%s", len(f.persisted)+1, subjectNumber, variant, ext),
	}
	file.StoredPath = "/logos/" + file.Filename
	f.persisted = append(f.persisted, file)
	return file, nil
}

func (f *fakeImages) Finalize(file ProvisionalFile, subjectNumber, sequence int) (string, error) {
	if f.finalizeErr != nil {
		return "", f.finalizeErr
	}
	ext := utils.GetFileExtension(file.Filename)
	return "/logos/" + utils.FormatFilename(subjectNumber, sequence, ext), nil
}

func (f *fakeImages) Remove(filename string) error {
	f.removed = append(f.removed, filename)
	return f.removeErr
}
