package models

import (
	"time"

	"github.com/google/uuid"
)

// PageLink is one link element on a page.
// UUID is what the page sends back as itemId when the link is clicked.
type PageLink struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	UUID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uk_page_links_uuid" json:"uuid"`
	PageID   uint       `gorm:"not null;index:idx_page_links_page_id" json:"page_id"`
	Preset   LinkPreset `gorm:"size:32;not null;index:idx_page_links_preset" json:"preset"`
	URL      string     `gorm:"type:text;not null" json:"url"`
	Label    string     `gorm:"size:255" json:"label"`
	IsGated  *bool      `gorm:"default:false" json:"is_gated"`
	Position int        `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

// TableName returns the table name for PageLink
func (PageLink) TableName() string { return "page_links" }

// PageLinkFilter provides filter fields for repository queries
type PageLinkFilter struct {
	ID     *uint
	UUID   *uuid.UUID
	PageID *uint
	Preset *LinkPreset
}
