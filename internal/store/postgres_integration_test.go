//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/devyassinepro/ebay-importer/internal/store"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ebayimp_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testImport(shop string) *domain.ImportRecord {
	return &domain.ImportRecord{
		Shop:         shop,
		EbayItemID:   "195777777777",
		SourceURL:    "https://www.ebay.com/itm/195777777777",
		Title:        "Vintage Film Camera 35mm",
		Price:        120.50,
		Currency:     "USD",
		ImageCount:   4,
		VariantCount: 6,
		Status:       domain.ImportPending,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_CreateAndGetImport(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("create fills generated fields", func(t *testing.T) {
		rec := testImport("demo.myshopify.com")
		require.NoError(t, s.CreateImport(ctx, rec))
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
		assert.False(t, rec.UpdatedAt.IsZero())
	})

	t.Run("get round-trips fields", func(t *testing.T) {
		rec := testImport("demo.myshopify.com")
		require.NoError(t, s.CreateImport(ctx, rec))

		got, err := s.GetImport(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, "Vintage Film Camera 35mm", got.Title)
		assert.InDelta(t, 120.50, got.Price, 0.01)
		assert.Equal(t, domain.ImportPending, got.Status)
		assert.Nil(t, got.LastSyncedAt)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		got, err := s.GetImport(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPostgresStore_UpdateImportResult(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	rec := testImport("demo.myshopify.com")
	require.NoError(t, s.CreateImport(ctx, rec))

	err := s.UpdateImportResult(ctx, rec.ID, domain.ImportSuccess, "gid://shopify/Product/42", "")
	require.NoError(t, err)

	got, err := s.GetImport(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSuccess, got.Status)
	assert.Equal(t, "gid://shopify/Product/42", got.ShopifyProductID)
	assert.Empty(t, got.ErrorText)
}

func TestPostgresStore_ListImports(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := testImport("list.myshopify.com")
		require.NoError(t, s.CreateImport(ctx, rec))
		if i == 0 {
			require.NoError(t, s.UpdateImportResult(ctx, rec.ID, domain.ImportFailed, "", "listing not found"))
		}
	}
	other := testImport("other.myshopify.com")
	require.NoError(t, s.CreateImport(ctx, other))

	t.Run("filter by shop", func(t *testing.T) {
		shop := "list.myshopify.com"
		records, total, err := s.ListImports(ctx, &store.ImportQuery{Shop: &shop})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, records, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		shop, status := "list.myshopify.com", "failed"
		records, total, err := s.ListImports(ctx, &store.ImportQuery{Shop: &shop, Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "listing not found", records[0].ErrorText)
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		shop := "list.myshopify.com"
		records, total, err := s.ListImports(ctx, &store.ImportQuery{Shop: &shop, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, records, 2)
	})
}

func TestPostgresStore_SyncableImports(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	shop := "sync.myshopify.com"

	synced := testImport(shop)
	require.NoError(t, s.CreateImport(ctx, synced))
	require.NoError(t, s.UpdateImportResult(ctx, synced.ID, domain.ImportSuccess, "gid://shopify/Product/1", ""))
	require.NoError(t, s.MarkImportSynced(ctx, synced.ID, 120.50, time.Now()))

	stale := testImport(shop)
	require.NoError(t, s.CreateImport(ctx, stale))
	require.NoError(t, s.UpdateImportResult(ctx, stale.ID, domain.ImportSuccess, "gid://shopify/Product/2", ""))

	failed := testImport(shop)
	require.NoError(t, s.CreateImport(ctx, failed))
	require.NoError(t, s.UpdateImportResult(ctx, failed.ID, domain.ImportFailed, "", "boom"))

	// Only the never-synced successful import qualifies.
	got, err := s.ListSyncableImports(ctx, shop, time.Now().Add(-time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stale.ID, got[0].ID)
}

func TestPostgresStore_DeleteImports(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("single delete", func(t *testing.T) {
		rec := testImport("del.myshopify.com")
		require.NoError(t, s.CreateImport(ctx, rec))
		require.NoError(t, s.DeleteImport(ctx, rec.ID))

		got, err := s.GetImport(ctx, rec.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("bulk delete reports count", func(t *testing.T) {
		a := testImport("del.myshopify.com")
		b := testImport("del.myshopify.com")
		require.NoError(t, s.CreateImport(ctx, a))
		require.NoError(t, s.CreateImport(ctx, b))

		deleted, err := s.DeleteImports(ctx, []string{a.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		deleted, err := s.DeleteImports(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestPostgresStore_Settings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("missing settings return nil", func(t *testing.T) {
		got, err := s.GetSettings(ctx, "fresh.myshopify.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upsert then get", func(t *testing.T) {
		settings := domain.DefaultSettings("cfg.myshopify.com")
		settings.Pricing = domain.PricingRule{Type: domain.MarkupPercent, Amount: 35}
		settings.DefaultStatus = domain.ProductActive
		require.NoError(t, s.UpsertSettings(ctx, settings))
		assert.False(t, settings.CreatedAt.IsZero())

		got, err := s.GetSettings(ctx, "cfg.myshopify.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.MarkupPercent, got.Pricing.Type)
		assert.InDelta(t, 35.0, got.Pricing.Amount, 0.001)
		assert.Equal(t, domain.ProductActive, got.DefaultStatus)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		settings := domain.DefaultSettings("cfg.myshopify.com")
		settings.ImportVariants = false
		require.NoError(t, s.UpsertSettings(ctx, settings))

		got, err := s.GetSettings(ctx, "cfg.myshopify.com")
		require.NoError(t, err)
		assert.False(t, got.ImportVariants)
	})
}
