package businessflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/repository"
	"github.com/amirphl/linkbio/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageFlow manages pages and their links. Every link URL is checked against
// its preset before it is persisted.
type PageFlow interface {
	CreatePage(ctx context.Context, ownerID string, req *dto.CreatePageRequest) (*dto.PageDTO, error)
	GetPage(ctx context.Context, slug string) (*dto.PageDTO, error)
	ListOwnerPages(ctx context.Context, ownerID string) ([]dto.PageDTO, error)
	AddLink(ctx context.Context, ownerID, slug string, req *dto.PageLinkRequest) (*dto.PageLinkDTO, error)
	UpdateLink(ctx context.Context, ownerID, slug string, linkUUID uuid.UUID, req *dto.PageLinkRequest) (*dto.PageLinkDTO, error)
	DeleteLink(ctx context.Context, ownerID, slug string, linkUUID uuid.UUID) error
}

type PageFlowImpl struct {
	pageRepo repository.PageRepository
	linkRepo repository.PageLinkRepository
	db       *gorm.DB
}

func NewPageFlow(pageRepo repository.PageRepository, linkRepo repository.PageLinkRepository, db *gorm.DB) PageFlow {
	return &PageFlowImpl{pageRepo: pageRepo, linkRepo: linkRepo, db: db}
}

func (f *PageFlowImpl) CreatePage(ctx context.Context, ownerID string, req *dto.CreatePageRequest) (*dto.PageDTO, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "slug is required", ErrSlugRequired)
	}

	exists, err := f.pageRepo.Exists(ctx, models.PageFilter{Slug: &slug})
	if err != nil {
		return nil, NewBusinessError("PAGE_LOOKUP_FAILED", "Failed to lookup page", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	page := &models.Page{
		UUID:      uuid.New(),
		Slug:      slug,
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(req.Title),
		CreatedAt: utils.UTCNow(),
		UpdatedAt: utils.UTCNow(),
	}
	if err := f.pageRepo.Save(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugAlreadyExists
		}
		return nil, NewBusinessError("PAGE_CREATE_FAILED", "Failed to create page", err)
	}

	res := toPageDTO(page, nil)
	return &res, nil
}

func (f *PageFlowImpl) GetPage(ctx context.Context, slug string) (*dto.PageDTO, error) {
	page, err := f.pageRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, NewBusinessError("PAGE_LOOKUP_FAILED", "Failed to lookup page", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	links, err := f.linkRepo.ListByPage(ctx, page.ID)
	if err != nil {
		return nil, NewBusinessError("LIST_PAGE_LINKS_FAILED", "Failed to list page links", err)
	}
	res := toPageDTO(page, links)
	return &res, nil
}

func (f *PageFlowImpl) ListOwnerPages(ctx context.Context, ownerID string) ([]dto.PageDTO, error) {
	pages, err := f.pageRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, NewBusinessError("LIST_PAGES_FAILED", "Failed to list pages", err)
	}
	res := make([]dto.PageDTO, 0, len(pages))
	for _, p := range pages {
		res = append(res, toPageDTO(p, nil))
	}
	return res, nil
}

func (f *PageFlowImpl) AddLink(ctx context.Context, ownerID, slug string, req *dto.PageLinkRequest) (*dto.PageLinkDTO, error) {
	preset, err := checkPresetURL(req)
	if err != nil {
		return nil, err
	}
	page, err := f.ownedPage(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}

	var link *models.PageLink
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		pos, err := f.linkRepo.NextPosition(txCtx, page.ID)
		if err != nil {
			return err
		}
		link = &models.PageLink{
			UUID:      uuid.New(),
			PageID:    page.ID,
			Preset:    preset,
			URL:       req.URL,
			Label:     strings.TrimSpace(req.Label),
			IsGated:   utils.ToPtr(req.IsGated),
			Position:  pos,
			CreatedAt: utils.UTCNow(),
			UpdatedAt: utils.UTCNow(),
		}
		return f.linkRepo.Save(txCtx, link)
	})
	if err != nil {
		return nil, NewBusinessError("PAGE_LINK_CREATE_FAILED", "Failed to create page link", err)
	}

	res := toPageLinkDTO(link)
	return &res, nil
}

func (f *PageFlowImpl) UpdateLink(ctx context.Context, ownerID, slug string, linkUUID uuid.UUID, req *dto.PageLinkRequest) (*dto.PageLinkDTO, error) {
	preset, err := checkPresetURL(req)
	if err != nil {
		return nil, err
	}
	link, err := f.ownedLink(ctx, ownerID, slug, linkUUID)
	if err != nil {
		return nil, err
	}

	link.Preset = preset
	link.URL = req.URL
	link.Label = strings.TrimSpace(req.Label)
	link.IsGated = utils.ToPtr(req.IsGated)
	link.UpdatedAt = utils.UTCNow()
	if err := f.linkRepo.Update(ctx, link); err != nil {
		return nil, NewBusinessError("PAGE_LINK_UPDATE_FAILED", "Failed to update page link", err)
	}

	res := toPageLinkDTO(link)
	return &res, nil
}

// DeleteLink removes the link configuration only; its recorded clicks are kept
func (f *PageFlowImpl) DeleteLink(ctx context.Context, ownerID, slug string, linkUUID uuid.UUID) error {
	link, err := f.ownedLink(ctx, ownerID, slug, linkUUID)
	if err != nil {
		return err
	}
	if err := f.linkRepo.Delete(ctx, link.ID); err != nil {
		return NewBusinessError("PAGE_LINK_DELETE_FAILED", "Failed to delete page link", err)
	}
	return nil
}

func (f *PageFlowImpl) ownedPage(ctx context.Context, ownerID, slug string) (*models.Page, error) {
	page, err := f.pageRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, NewBusinessError("PAGE_LOOKUP_FAILED", "Failed to lookup page", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	if page.OwnerID != ownerID {
		return nil, ErrPageAccessDenied
	}
	return page, nil
}

func (f *PageFlowImpl) ownedLink(ctx context.Context, ownerID, slug string, linkUUID uuid.UUID) (*models.PageLink, error) {
	page, err := f.ownedPage(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}
	link, err := f.linkRepo.ByUUID(ctx, linkUUID)
	if err != nil {
		return nil, NewBusinessError("PAGE_LINK_LOOKUP_FAILED", "Failed to lookup page link", err)
	}
	if link == nil || link.PageID != page.ID {
		return nil, ErrPageLinkNotFound
	}
	return link, nil
}

// checkPresetURL accepts only known presets whose URL passes the preset validator
func checkPresetURL(req *dto.PageLinkRequest) (models.LinkPreset, error) {
	preset := models.LinkPreset(req.Preset)
	if !preset.IsKnown() {
		return "", NewBusinessErrorf("INVALID_PRESET", "unknown link preset %q", ErrUnknownLinkPreset, req.Preset)
	}
	if !utils.ValidatePresetURL(req.URL, req.Preset) {
		presetValidationTotal.WithLabelValues(preset.String(), "rejected").Inc()
		return "", NewBusinessErrorf("INVALID_PRESET_URL", "url is not valid for preset %s", ErrInvalidPresetURL, req.Preset)
	}
	presetValidationTotal.WithLabelValues(preset.String(), "accepted").Inc()
	return preset, nil
}

func toPageDTO(p *models.Page, links []*models.PageLink) dto.PageDTO {
	res := dto.PageDTO{
		UUID:      p.UUID.String(),
		Slug:      p.Slug,
		Title:     p.Title,
		Links:     make([]dto.PageLinkDTO, 0, len(links)),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, l := range links {
		res.Links = append(res.Links, toPageLinkDTO(l))
	}
	return res
}

func toPageLinkDTO(l *models.PageLink) dto.PageLinkDTO {
	return dto.PageLinkDTO{
		UUID:     l.UUID.String(),
		Preset:   l.Preset.String(),
		URL:      l.URL,
		Label:    l.Label,
		IsGated:  utils.IsTrue(l.IsGated),
		Position: l.Position,
	}
}
