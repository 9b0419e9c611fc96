package repository

import (
	"context"

	"github.com/amirphl/linkbio/models"
	"gorm.io/gorm"
)

// PageRepositoryImpl implements PageRepository
type PageRepositoryImpl struct {
	*BaseRepository[models.Page, models.PageFilter]
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &PageRepositoryImpl{BaseRepository: NewBaseRepository[models.Page, models.PageFilter](db)}
}

func (r *PageRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Page, error) {
	rows, err := r.ByFilter(ctx, models.PageFilter{Slug: &slug}, "id DESC", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *PageRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*models.Page, error) {
	return r.ByFilter(ctx, models.PageFilter{OwnerID: &ownerID}, "id ASC", 0, 0)
}

func (r *PageRepositoryImpl) applyFilter(db *gorm.DB, f models.PageFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.UUID != nil {
		db = db.Where("uuid = ?", *f.UUID)
	}
	if f.Slug != nil {
		db = db.Where("slug = ?", *f.Slug)
	}
	if f.OwnerID != nil {
		db = db.Where("owner_id = ?", *f.OwnerID)
	}
	return db
}

func (r *PageRepositoryImpl) ByFilter(ctx context.Context, filter models.PageFilter, orderBy string, limit, offset int) ([]*models.Page, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Page{}), filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var rows []*models.Page
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PageRepositoryImpl) Count(ctx context.Context, filter models.PageFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.Page{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PageRepositoryImpl) Exists(ctx context.Context, filter models.PageFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
