package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devyassinepro/ebay-importer/internal/store"
	domain "github.com/devyassinepro/ebay-importer/pkg/types"
)

// HistoryHandler handles import-history query and delete endpoints.
type HistoryHandler struct {
	store    store.Store
	importer ImportService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store, imp ImportService) *HistoryHandler {
	return &HistoryHandler{store: s, importer: imp}
}

// --- Input/Output types ---

// ListImportsInput is the input for listing import history with filters.
type ListImportsInput struct {
	Shop   string `query:"shop"   doc:"Filter by shop domain"`
	Status string `query:"status" doc:"Filter by import status"   enum:"pending,success,failed,"`
	Search string `query:"search" doc:"Match against product titles"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListImportsOutput is the response for listing import history.
type ListImportsOutput struct {
	Body struct {
		Imports []domain.ImportRecord `json:"imports"`
		Total   int                   `json:"total"`
		Limit   int                   `json:"limit"`
		Offset  int                   `json:"offset"`
	}
}

// GetImportInput is the input for getting a single import.
type GetImportInput struct {
	ID string `path:"id" doc:"Import UUID"`
}

// GetImportOutput is the response for getting a single import.
type GetImportOutput struct {
	Body domain.ImportRecord
}

// DeleteImportInput is the input for deleting a single import.
type DeleteImportInput struct {
	ID                string `path:"id"                 doc:"Import UUID"`
	RemoveFromShopify bool   `query:"remove_from_shopify" doc:"Also delete the created Shopify product"`
}

// StatusResponse acknowledges an operation with no other payload.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// DeleteImportOutput is the response for deleting a single import.
type DeleteImportOutput struct {
	Body StatusResponse
}

// BulkDeleteInput is the input for deleting a batch of imports.
type BulkDeleteInput struct {
	Body struct {
		IDs []string `json:"ids" doc:"Import UUIDs to delete" minItems:"1"`
	}
}

// BulkDeleteOutput reports how many records were deleted.
type BulkDeleteOutput struct {
	Body struct {
		Deleted int64 `json:"deleted"`
	}
}

// --- Handlers ---

// ListImports returns import history with optional shop, status, and title
// filters, newest first.
func (h *HistoryHandler) ListImports(
	ctx context.Context,
	input *ListImportsInput,
) (*ListImportsOutput, error) {
	q := &store.ImportQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}

	if input.Shop != "" {
		q.Shop = &input.Shop
	}

	if input.Status != "" {
		q.Status = &input.Status
	}

	if input.Search != "" {
		q.Search = &input.Search
	}

	records, total, err := h.store.ListImports(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("import query failed: " + err.Error())
	}

	resp := &ListImportsOutput{}
	resp.Body.Imports = records
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetImport returns a single import record by ID.
func (h *HistoryHandler) GetImport(
	ctx context.Context,
	input *GetImportInput,
) (*GetImportOutput, error) {
	rec, err := h.store.GetImport(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("import lookup failed: " + err.Error())
	}
	if rec == nil {
		return nil, huma.Error404NotFound("import not found")
	}

	return &GetImportOutput{Body: *rec}, nil
}

// DeleteImport removes an import from the history, optionally deleting the
// created product from Shopify as well.
func (h *HistoryHandler) DeleteImport(
	ctx context.Context,
	input *DeleteImportInput,
) (*DeleteImportOutput, error) {
	if err := h.importer.Delete(ctx, input.ID, input.RemoveFromShopify); err != nil {
		return nil, huma.Error500InternalServerError("delete failed: " + err.Error())
	}

	resp := &DeleteImportOutput{}
	resp.Body.Status = "deleted"
	return resp, nil
}

// BulkDelete removes a batch of imports from the history. Shopify products
// are left untouched.
func (h *HistoryHandler) BulkDelete(
	ctx context.Context,
	input *BulkDeleteInput,
) (*BulkDeleteOutput, error) {
	deleted, err := h.store.DeleteImports(ctx, input.Body.IDs)
	if err != nil {
		return nil, huma.Error500InternalServerError("bulk delete failed: " + err.Error())
	}

	resp := &BulkDeleteOutput{}
	resp.Body.Deleted = deleted
	return resp, nil
}

// RegisterHistoryRoutes registers import-history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-imports",
		Method:      http.MethodGet,
		Path:        "/api/v1/imports",
		Summary:     "List import history",
		Description: "Returns import history with optional shop, status, and title filters.",
		Tags:        []string{"imports"},
	}, h.ListImports)

	huma.Register(api, huma.Operation{
		OperationID: "get-import",
		Method:      http.MethodGet,
		Path:        "/api/v1/imports/{id}",
		Summary:     "Get an import by ID",
		Description: "Returns a single import record by its UUID.",
		Tags:        []string{"imports"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetImport)

	huma.Register(api, huma.Operation{
		OperationID: "delete-import",
		Method:      http.MethodDelete,
		Path:        "/api/v1/imports/{id}",
		Summary:     "Delete an import",
		Description: "Removes an import from the history, optionally deleting the Shopify product too.",
		Tags:        []string{"imports"},
	}, h.DeleteImport)

	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-imports",
		Method:      http.MethodPost,
		Path:        "/api/v1/imports/bulk-delete",
		Summary:     "Delete a batch of imports",
		Description: "Removes a batch of imports from the history by ID.",
		Tags:        []string{"imports"},
	}, h.BulkDelete)
}
