package dto

// CreatePageRequest creates a page owned by the authenticated subject
type CreatePageRequest struct {
	Slug  string `json:"slug" validate:"required,min=2,max=64,slug"`
	Title string `json:"title" validate:"max=255"`
}

// PageLinkRequest creates or replaces a page link. The URL must satisfy its preset.
type PageLinkRequest struct {
	Preset  string `json:"preset" validate:"required,link_preset"`
	URL     string `json:"url" validate:"required,max=2048"`
	Label   string `json:"label" validate:"max=255"`
	IsGated bool   `json:"is_gated"`
}

// PageLinkDTO is a page link as returned by the API
type PageLinkDTO struct {
	UUID     string `json:"uuid"`
	Preset   string `json:"preset"`
	URL      string `json:"url"`
	Label    string `json:"label"`
	IsGated  bool   `json:"is_gated"`
	Position int    `json:"position"`
}

// PageDTO is a page with its ordered links
type PageDTO struct {
	UUID      string        `json:"uuid"`
	Slug      string        `json:"slug"`
	Title     string        `json:"title"`
	Links     []PageLinkDTO `json:"links"`
	CreatedAt string        `json:"created_at"`
}
