package models

import "time"

// Submission statuses. Rejected submissions are hard-deleted, so only
// pending and approved rows ever exist.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Known form variants
const (
	VariantBase     = "base"
	VariantAlolan   = "alolan"
	VariantGalarian = "galarian"
	VariantHisuian  = "hisuian"
	VariantPaldean  = "paldean"
	VariantOther    = "other"
)

// VariantPriority defines the display order of variants within a subject:
// base form first, then regional forms in release order. Variants not listed
// here sort after all of these.
var VariantPriority = []string{
	VariantBase,
	VariantAlolan,
	VariantGalarian,
	VariantHisuian,
	VariantPaldean,
}

// Submission represents one submitted logo candidate
type Submission struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SubjectNumber int       `json:"subjectNumber" gorm:"not null;index"`
	SubjectName   string    `json:"subjectName,omitempty"`
	Variant       string    `json:"variant" gorm:"not null;default:'base';index"`
	VariantLabel  string    `json:"variantLabel,omitempty"`
	SourceURL     string    `json:"sourceUrl" gorm:"not null;uniqueIndex"`
	StoredPath    string    `json:"storedPath" gorm:"not null;uniqueIndex"`
	SubmitterName string    `json:"submitterName,omitempty"`
	Status        string    `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName sets the table name for the Submission model
func (Submission) TableName() string {
	return "submissions"
}
