package businessflow

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/amirphl/linkbio/models"
	"github.com/google/uuid"
)

var errStoreDown = errors.New("store unavailable")

// memClickStore mimics the redis click store: per-key atomic writes, no cross-key atomicity
type memClickStore struct {
	mu          sync.Mutex
	logs        map[string][]models.ClickEvent
	counters    map[string]int64
	failAppend  func(ev *models.ClickEvent) bool
	failCounter func(slug, itemID string) bool
	failReads   bool
}

func newMemClickStore() *memClickStore {
	return &memClickStore{
		logs:     make(map[string][]models.ClickEvent),
		counters: make(map[string]int64),
	}
}

func (s *memClickStore) AppendClick(_ context.Context, ev *models.ClickEvent) error {
	if s.failAppend != nil && s.failAppend(ev) {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[ev.Slug] = append(s.logs[ev.Slug], *ev)
	return nil
}

func (s *memClickStore) IncrementItemCounter(_ context.Context, slug, itemID string) (int64, error) {
	if s.failCounter != nil && s.failCounter(slug, itemID) {
		return 0, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[slug+":"+itemID]++
	return s.counters[slug+":"+itemID], nil
}

func (s *memClickStore) RangeClicks(_ context.Context, slug string, r models.ClickRange) ([]*models.ClickEvent, error) {
	if s.failReads {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append([]models.ClickEvent(nil), s.logs[slug]...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Timestamp < entries[j].Timestamp })

	var out []*models.ClickEvent
	for i := range entries {
		ev := entries[i]
		if r.From != nil && ev.Timestamp < *r.From {
			continue
		}
		if r.To != nil && ev.Timestamp > *r.To {
			continue
		}
		out = append(out, &ev)
		if r.Limit > 0 && len(out) == r.Limit {
			break
		}
	}
	return out, nil
}

func (s *memClickStore) ItemCount(_ context.Context, slug, itemID string) (int64, error) {
	if s.failReads {
		return 0, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[slug+":"+itemID], nil
}

func (s *memClickStore) ItemCounts(_ context.Context, slug string, itemIDs []string) (map[string]int64, error) {
	if s.failReads {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = s.counters[slug+":"+id]
	}
	return out, nil
}

func (s *memClickStore) Ping(context.Context) error { return nil }

func (s *memClickStore) logLen(slug string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs[slug])
}

func (s *memClickStore) counter(slug, itemID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[slug+":"+itemID]
}

// memPageRepo and memPageLinkRepo cover the read paths used by the flows
type memPageRepo struct {
	pages []*models.Page
	err   error
}

func (r *memPageRepo) ByID(_ context.Context, id uint) (*models.Page, error) {
	for _, p := range r.pages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, r.err
}

func (r *memPageRepo) ByFilter(_ context.Context, f models.PageFilter, _ string, _, _ int) ([]*models.Page, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Page
	for _, p := range r.pages {
		if f.Slug != nil && p.Slug != *f.Slug {
			continue
		}
		if f.OwnerID != nil && p.OwnerID != *f.OwnerID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPageRepo) Save(_ context.Context, p *models.Page) error {
	if r.err != nil {
		return r.err
	}
	p.ID = uint(len(r.pages) + 1)
	r.pages = append(r.pages, p)
	return nil
}

func (r *memPageRepo) SaveBatch(ctx context.Context, ps []*models.Page) error {
	for _, p := range ps {
		if err := r.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *memPageRepo) Update(context.Context, *models.Page) error { return r.err }
func (r *memPageRepo) Delete(context.Context, uint) error        { return r.err }

func (r *memPageRepo) Count(ctx context.Context, f models.PageFilter) (int64, error) {
	rows, err := r.ByFilter(ctx, f, "", 0, 0)
	return int64(len(rows)), err
}

func (r *memPageRepo) Exists(ctx context.Context, f models.PageFilter) (bool, error) {
	n, err := r.Count(ctx, f)
	return n > 0, err
}

func (r *memPageRepo) BySlug(ctx context.Context, slug string) (*models.Page, error) {
	rows, err := r.ByFilter(ctx, models.PageFilter{Slug: &slug}, "", 0, 0)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *memPageRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Page, error) {
	return r.ByFilter(ctx, models.PageFilter{OwnerID: &ownerID}, "", 0, 0)
}

type memPageLinkRepo struct {
	links   []*models.PageLink
	updated []*models.PageLink
	deleted []uint
}

func (r *memPageLinkRepo) ByID(_ context.Context, id uint) (*models.PageLink, error) {
	for _, l := range r.links {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memPageLinkRepo) ByFilter(_ context.Context, f models.PageLinkFilter, _ string, _, _ int) ([]*models.PageLink, error) {
	var out []*models.PageLink
	for _, l := range r.links {
		if f.PageID != nil && l.PageID != *f.PageID {
			continue
		}
		if f.UUID != nil && l.UUID != *f.UUID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *memPageLinkRepo) Save(_ context.Context, l *models.PageLink) error {
	l.ID = uint(len(r.links) + 1)
	r.links = append(r.links, l)
	return nil
}

func (r *memPageLinkRepo) SaveBatch(ctx context.Context, ls []*models.PageLink) error {
	for _, l := range ls {
		_ = r.Save(ctx, l)
	}
	return nil
}

func (r *memPageLinkRepo) Update(_ context.Context, l *models.PageLink) error {
	r.updated = append(r.updated, l)
	return nil
}

func (r *memPageLinkRepo) Delete(_ context.Context, id uint) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memPageLinkRepo) Count(ctx context.Context, f models.PageLinkFilter) (int64, error) {
	rows, _ := r.ByFilter(ctx, f, "", 0, 0)
	return int64(len(rows)), nil
}

func (r *memPageLinkRepo) Exists(ctx context.Context, f models.PageLinkFilter) (bool, error) {
	n, _ := r.Count(ctx, f)
	return n > 0, nil
}

func (r *memPageLinkRepo) ByUUID(ctx context.Context, id uuid.UUID) (*models.PageLink, error) {
	rows, _ := r.ByFilter(ctx, models.PageLinkFilter{UUID: &id}, "", 0, 0)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *memPageLinkRepo) ListByPage(ctx context.Context, pageID uint) ([]*models.PageLink, error) {
	return r.ByFilter(ctx, models.PageLinkFilter{PageID: &pageID}, "", 0, 0)
}

func (r *memPageLinkRepo) NextPosition(_ context.Context, pageID uint) (int, error) {
	pos := 0
	for _, l := range r.links {
		if l.PageID == pageID && l.Position >= pos {
			pos = l.Position + 1
		}
	}
	return pos, nil
}
