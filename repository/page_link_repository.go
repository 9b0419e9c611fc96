package repository

import (
	"context"

	"github.com/amirphl/linkbio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageLinkRepositoryImpl implements PageLinkRepository
type PageLinkRepositoryImpl struct {
	*BaseRepository[models.PageLink, models.PageLinkFilter]
}

func NewPageLinkRepository(db *gorm.DB) PageLinkRepository {
	return &PageLinkRepositoryImpl{BaseRepository: NewBaseRepository[models.PageLink, models.PageLinkFilter](db)}
}

func (r *PageLinkRepositoryImpl) ByUUID(ctx context.Context, id uuid.UUID) (*models.PageLink, error) {
	rows, err := r.ByFilter(ctx, models.PageLinkFilter{UUID: &id}, "id DESC", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// ListByPage returns the links of a page in display order
func (r *PageLinkRepositoryImpl) ListByPage(ctx context.Context, pageID uint) ([]*models.PageLink, error) {
	return r.ByFilter(ctx, models.PageLinkFilter{PageID: &pageID}, "position ASC, id ASC", 0, 0)
}

// NextPosition returns the position after the last link of a page
func (r *PageLinkRepositoryImpl) NextPosition(ctx context.Context, pageID uint) (int, error) {
	db := r.getDB(ctx)
	var maxPos *int
	err := db.Model(&models.PageLink{}).
		Where("page_id = ?", pageID).
		Select("MAX(position)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, err
	}
	if maxPos == nil {
		return 0, nil
	}
	return *maxPos + 1, nil
}

func (r *PageLinkRepositoryImpl) applyFilter(db *gorm.DB, f models.PageLinkFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.UUID != nil {
		db = db.Where("uuid = ?", *f.UUID)
	}
	if f.PageID != nil {
		db = db.Where("page_id = ?", *f.PageID)
	}
	if f.Preset != nil {
		db = db.Where("preset = ?", *f.Preset)
	}
	return db
}

func (r *PageLinkRepositoryImpl) ByFilter(ctx context.Context, filter models.PageLinkFilter, orderBy string, limit, offset int) ([]*models.PageLink, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PageLink{}), filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var rows []*models.PageLink
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PageLinkRepositoryImpl) Count(ctx context.Context, filter models.PageLinkFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.PageLink{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PageLinkRepositoryImpl) Exists(ctx context.Context, filter models.PageLinkFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
