package requests

// SubmitLogoRequest represents a new logo submission
type SubmitLogoRequest struct {
	URL           string `json:"url" validate:"required"`
	SubjectNumber int    `json:"subjectNumber" validate:"required"`
	SubjectName   string `json:"subjectName,omitempty"`
	Variant       string `json:"variant" validate:"required"`
	VariantLabel  string `json:"variantLabel,omitempty"`
	SubmitterName string `json:"submitterName,omitempty"`
}

// DecisionRequest represents a moderation decision on a pending submission
type DecisionRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
}
