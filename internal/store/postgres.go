package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n)
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateImport inserts a new import record, filling in its generated ID
// and timestamps.
func (s *PostgresStore) CreateImport(ctx context.Context, rec *domain.ImportRecord) error {
	args := pgx.NamedArgs{
		"shop":               rec.Shop,
		"ebay_item_id":       rec.EbayItemID,
		"source_url":         rec.SourceURL,
		"title":              rec.Title,
		"price":              rec.Price,
		"currency":           rec.Currency,
		"image_count":        rec.ImageCount,
		"variant_count":      rec.VariantCount,
		"shopify_product_id": rec.ShopifyProductID,
		"status":             string(rec.Status),
		"error_text":         rec.ErrorText,
	}

	err := s.pool.QueryRow(ctx, queryCreateImport, args).Scan(
		&rec.ID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating import: %w", err)
	}
	return nil
}

// GetImport retrieves an import record by its UUID. Returns (nil, nil)
// when no such record exists.
func (s *PostgresStore) GetImport(ctx context.Context, id string) (*domain.ImportRecord, error) {
	rec := &domain.ImportRecord{}
	err := scanImport(s.pool.QueryRow(ctx, queryGetImport, id), rec)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting import: %w", err)
	}
	return rec, nil
}

// ListImports queries import history with optional filters, returning
// results and total count.
func (s *PostgresStore) ListImports(
	ctx context.Context,
	opts *ImportQuery,
) ([]domain.ImportRecord, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting imports: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	var records []domain.ImportRecord
	for rows.Next() {
		var rec domain.ImportRecord
		if err := scanImport(rows, &rec); err != nil {
			return nil, 0, fmt.Errorf("scanning import: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating imports: %w", err)
	}

	return records, total, nil
}

// UpdateImportResult records the outcome of an import attempt.
func (s *PostgresStore) UpdateImportResult(
	ctx context.Context,
	id string,
	status domain.ImportStatus,
	shopifyProductID string,
	errorText string,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateImportResult,
		id, string(status), shopifyProductID, errorText,
	)
	if err != nil {
		return fmt.Errorf("updating import result: %w", err)
	}
	return nil
}

// MarkImportSynced stamps an import with its current price and the time
// of its last price sync.
func (s *PostgresStore) MarkImportSynced(ctx context.Context, id string, price float64, syncedAt time.Time) error {
	_, err := s.pool.Exec(ctx, queryMarkImportSynced, id, price, syncedAt)
	if err != nil {
		return fmt.Errorf("marking import synced: %w", err)
	}
	return nil
}

// ListSyncableImports returns successful imports for a shop whose prices
// have not been re-synced since syncedBefore, oldest sync first.
func (s *PostgresStore) ListSyncableImports(
	ctx context.Context,
	shop string,
	syncedBefore time.Time,
	limit int,
) ([]domain.ImportRecord, error) {
	rows, err := s.pool.Query(ctx, queryListSyncableImports, shop, syncedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("querying syncable imports: %w", err)
	}
	defer rows.Close()

	var records []domain.ImportRecord
	for rows.Next() {
		var rec domain.ImportRecord
		if err := scanImport(rows, &rec); err != nil {
			return nil, fmt.Errorf("scanning syncable import: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating syncable imports: %w", err)
	}

	return records, nil
}

// DeleteImport removes a single import record.
func (s *PostgresStore) DeleteImport(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteImport, id)
	if err != nil {
		return fmt.Errorf("deleting import: %w", err)
	}
	return nil
}

// DeleteImports removes a batch of import records, returning how many
// rows were actually deleted.
func (s *PostgresStore) DeleteImports(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.pool.Exec(ctx, queryDeleteImports, ids)
	if err != nil {
		return 0, fmt.Errorf("deleting imports: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetSettings retrieves settings for a shop. Returns (nil, nil) when the
// shop has never saved any.
func (s *PostgresStore) GetSettings(ctx context.Context, shop string) (*domain.ShopSettings, error) {
	settings := &domain.ShopSettings{}
	var pricingJSON []byte

	err := s.pool.QueryRow(ctx, queryGetSettings, shop).Scan(
		&settings.Shop, &pricingJSON, &settings.DefaultStatus,
		&settings.ImportImages, &settings.ImportVariants,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	if err := json.Unmarshal(pricingJSON, &settings.Pricing); err != nil {
		return nil, fmt.Errorf("unmarshaling pricing rule: %w", err)
	}

	return settings, nil
}

// UpsertSettings inserts or updates a shop's settings by shop domain.
func (s *PostgresStore) UpsertSettings(ctx context.Context, settings *domain.ShopSettings) error {
	pricingJSON, err := json.Marshal(settings.Pricing)
	if err != nil {
		return fmt.Errorf("marshaling pricing rule: %w", err)
	}

	args := pgx.NamedArgs{
		"shop":            settings.Shop,
		"pricing":         pricingJSON,
		"default_status":  string(settings.DefaultStatus),
		"import_images":   settings.ImportImages,
		"import_variants": settings.ImportVariants,
	}

	err = s.pool.QueryRow(ctx, queryUpsertSettings, args).Scan(
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}

// scanner abstracts pgx.Row and pgx.Rows so scanImport serves both.
type scanner interface {
	Scan(dest ...any) error
}

func scanImport(row scanner, rec *domain.ImportRecord) error {
	return row.Scan(
		&rec.ID, &rec.Shop, &rec.EbayItemID, &rec.SourceURL, &rec.Title,
		&rec.Price, &rec.Currency, &rec.ImageCount, &rec.VariantCount,
		&rec.ShopifyProductID, &rec.Status, &rec.ErrorText,
		&rec.LastSyncedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
}
