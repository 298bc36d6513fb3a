// Package store defines the datastore abstraction for ebay-importer.
// Business logic depends on the Store interface, never on concrete
// implementations, so handlers and the importer are testable without a
// running database.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// ImportQuery defines optional filters for import-history queries. Results
// are always newest-first.
type ImportQuery struct {
	Shop   *string
	Status *string
	Search *string // matches title, case-insensitive
	Limit  int     // default 50, capped at 500
	Offset int
}

// ToSQL builds the WHERE/LIMIT/OFFSET fragments for the data and count
// queries, plus the positional parameters shared by both.
func (q *ImportQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Shop != nil {
		conditions = append(conditions, fmt.Sprintf("shop = $%d", paramIdx))
		args = append(args, *q.Shop)
		paramIdx++
	}

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.Search != nil {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.Search+"%")
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	q.Limit = limit

	dataSQL = baseImportsSelect + whereClause +
		" ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT %d OFFSET %d", limit, q.Offset)
	countSQL = countImportsSelect + whereClause

	return dataSQL, countSQL, args
}

// Store defines all data access operations for ebay-importer.
// Lookups return (nil, nil) when the row does not exist.
type Store interface {
	// Import history
	CreateImport(ctx context.Context, rec *domain.ImportRecord) error
	GetImport(ctx context.Context, id string) (*domain.ImportRecord, error)
	ListImports(ctx context.Context, q *ImportQuery) ([]domain.ImportRecord, int, error)
	UpdateImportResult(
		ctx context.Context,
		id string,
		status domain.ImportStatus,
		shopifyProductID string,
		errorText string,
	) error
	MarkImportSynced(ctx context.Context, id string, price float64, syncedAt time.Time) error
	ListSyncableImports(
		ctx context.Context,
		shop string,
		syncedBefore time.Time,
		limit int,
	) ([]domain.ImportRecord, error)
	DeleteImport(ctx context.Context, id string) error
	DeleteImports(ctx context.Context, ids []string) (int64, error)

	// Settings
	GetSettings(ctx context.Context, shop string) (*domain.ShopSettings, error)
	UpsertSettings(ctx context.Context, s *domain.ShopSettings) error

	Ping(ctx context.Context) error
}
