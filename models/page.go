package models

import (
	"time"

	"github.com/google/uuid"
)

// Page is a published link-in-bio page
// Slug is the public identifier used in URLs and as the analytics key
// OwnerID is the subject claim issued by the identity provider
type Page struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UUID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_pages_uuid" json:"uuid"`
	Slug    string    `gorm:"size:64;not null;uniqueIndex:uk_pages_slug" json:"slug"`
	OwnerID string    `gorm:"size:255;not null;index:idx_pages_owner_id" json:"owner_id"`
	Title   string    `gorm:"size:255" json:"title"`

	Links []PageLink `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"links,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_pages_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

// TableName returns the table name for Page
func (Page) TableName() string { return "pages" }

// PageFilter provides filter fields for repository queries
type PageFilter struct {
	ID      *uint
	UUID    *uuid.UUID
	Slug    *string
	OwnerID *string
}
