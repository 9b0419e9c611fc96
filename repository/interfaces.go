// Package repository provides data access layer implementations and interfaces for database and cache operations
package repository

import (
	"context"

	"github.com/amirphl/linkbio/models"
	"github.com/google/uuid"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// PageRepository defines operations for pages
type PageRepository interface {
	Repository[models.Page, models.PageFilter]
	BySlug(ctx context.Context, slug string) (*models.Page, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Page, error)
}

// PageLinkRepository defines operations for page links
type PageLinkRepository interface {
	Repository[models.PageLink, models.PageLinkFilter]
	ByUUID(ctx context.Context, id uuid.UUID) (*models.PageLink, error)
	ListByPage(ctx context.Context, pageID uint) ([]*models.PageLink, error)
	NextPosition(ctx context.Context, pageID uint) (int, error)
}

// ClickStore is the key-value side of click analytics: a score-ordered log per page
// and an integer counter per page item. Each method is atomic on its own key only.
type ClickStore interface {
	AppendClick(ctx context.Context, event *models.ClickEvent) error
	IncrementItemCounter(ctx context.Context, slug, itemID string) (int64, error)
	RangeClicks(ctx context.Context, slug string, r models.ClickRange) ([]*models.ClickEvent, error)
	ItemCount(ctx context.Context, slug, itemID string) (int64, error)
	ItemCounts(ctx context.Context, slug string, itemIDs []string) (map[string]int64, error)
	Ping(ctx context.Context) error
}
