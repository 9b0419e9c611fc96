package testing

import (
	"fmt"
	"math/rand"

	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/utils"
	"github.com/google/uuid"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// RandomSlug returns a slug that is unique enough for one test database
func RandomSlug(base string) string {
	return fmt.Sprintf("%s-%06d", base, rand.Intn(1000000))
}

// CreateTestPage creates a page owned by ownerID with a random slug
func (tf *TestFixtures) CreateTestPage(ownerID string) (*models.Page, error) {
	page := &models.Page{
		UUID:    uuid.New(),
		Slug:    RandomSlug("page"),
		OwnerID: ownerID,
		Title:   "Test Page",
	}
	if err := tf.DB.DB.Create(page).Error; err != nil {
		return nil, fmt.Errorf("failed to create test page: %w", err)
	}
	return page, nil
}

// CreateTestPageLink appends a link of the given preset to page
func (tf *TestFixtures) CreateTestPageLink(page *models.Page, preset models.LinkPreset, url string, position int) (*models.PageLink, error) {
	link := &models.PageLink{
		UUID:     uuid.New(),
		PageID:   page.ID,
		Preset:   preset,
		URL:      url,
		Label:    string(preset),
		IsGated:  utils.ToPtr(false),
		Position: position,
	}
	if err := tf.DB.DB.Create(link).Error; err != nil {
		return nil, fmt.Errorf("failed to create test page link: %w", err)
	}
	return link, nil
}

// CreateTestPageWithLinks creates a page with one telegram and one general link
func (tf *TestFixtures) CreateTestPageWithLinks(ownerID string) (*models.Page, []*models.PageLink, error) {
	page, err := tf.CreateTestPage(ownerID)
	if err != nil {
		return nil, nil, err
	}
	telegram, err := tf.CreateTestPageLink(page, models.PresetTelegram, "https://t.me/linkbio", 0)
	if err != nil {
		return nil, nil, err
	}
	general, err := tf.CreateTestPageLink(page, models.PresetGeneral, "https://example.com", 1)
	if err != nil {
		return nil, nil, err
	}
	return page, []*models.PageLink{telegram, general}, nil
}
