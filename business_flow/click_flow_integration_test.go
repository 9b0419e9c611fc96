package businessflow_test

import (
	"errors"
	"testing"

	"github.com/amirphl/linkbio/app/dto"
	businessflow "github.com/amirphl/linkbio/business_flow"
	"github.com/amirphl/linkbio/repository"
	testingutil "github.com/amirphl/linkbio/testing"
	"github.com/amirphl/linkbio/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Record through the real click store, then read it back through analytics against a real page
func TestClickFlowsEndToEnd(t *testing.T) {
	tr, err := testingutil.SetupTestRedis()
	if errors.Is(err, testingutil.ErrTestRedisUnavailable) {
		t.Skipf("skipping: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Teardown() })

	err = testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		ctx := testingutil.CreateTestContext()
		store := repository.NewClickStoreRedis(tr.Client, tr.Prefix)
		pageRepo := repository.NewPageRepository(testDB.DB)
		linkRepo := repository.NewPageLinkRepository(testDB.DB)

		recorder := businessflow.NewClickRecorderFlow(store)
		analytics := businessflow.NewClickAnalyticsFlow(store, pageRepo, linkRepo)
		pages := businessflow.NewPageFlow(pageRepo, linkRepo, testDB.DB)

		page, err := pages.CreatePage(ctx, "owner-1", &dto.CreatePageRequest{Slug: testingutil.RandomSlug("e2e"), Title: "E2E"})
		require.NoError(t, err)
		link, err := pages.AddLink(ctx, "owner-1", page.Slug, &dto.PageLinkRequest{Preset: "telegram", URL: "https://t.me/e2e", IsGated: true})
		require.NoError(t, err)
		assert.Equal(t, 0, link.Position)

		for i := 0; i < 3; i++ {
			require.NoError(t, recorder.Record(ctx, &dto.RecordClickRequest{Slug: page.Slug, ItemID: link.UUID, IsGated: utils.ToPtr(true)}))
		}

		list, err := analytics.ListClicks(ctx, "owner-1", &dto.ListClicksRequest{Slug: page.Slug})
		require.NoError(t, err)
		assert.Equal(t, 3, list.Count)

		counts, err := analytics.ItemClickCounts(ctx, "owner-1", page.Slug, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts.Counts[link.UUID])

		_, err = analytics.ListClicks(ctx, "owner-2", &dto.ListClicksRequest{Slug: page.Slug})
		assert.True(t, businessflow.IsPageAccessDenied(err))
		return nil
	})
	if errors.Is(err, testingutil.ErrTestDBUnavailable) {
		t.Skipf("skipping: %v", err)
	}
	require.NoError(t, err)
}
