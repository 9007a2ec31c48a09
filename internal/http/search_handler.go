package http

import (
	"context"
	"net/http"

	"booktracker/internal/entity"
	"booktracker/internal/httpx"
)

// CatalogSearcher is the outbound contract to the external book catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

type SearchHandler struct {
	catalog CatalogSearcher
}

func NewSearchHandler(catalog CatalogSearcher) *SearchHandler {
	return &SearchHandler{catalog: catalog}
}

// Search proxies a free-text query to the external catalog and returns the
// normalized results. Any upstream failure maps to 502; the caller may retry.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "query", Message: "query is required"},
		})
		return
	}

	results, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Error calling book catalog", nil)
		return
	}

	httpx.JSONSuccess(w, results, nil)
}
