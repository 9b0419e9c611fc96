package dto

// RecordClickRequest is the click ingestion payload sent by published pages.
// IsGated is a pointer so a missing field is distinguishable from false.
// Slug follows the page slug alphabet so it cannot contain the ':' key separator.
type RecordClickRequest struct {
	Slug    string `json:"slug" validate:"required,max=64,slug"`
	ItemID  string `json:"itemId" validate:"required,max=128"`
	IsGated *bool  `json:"isGated" validate:"required"`
}

// ClickIngestResponse is the UI-facing result of click ingestion
type ClickIngestResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// FieldError describes one schema violation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
