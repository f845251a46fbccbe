package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/contentcatalog/internal/common"
	"github.com/mugiliam/contentcatalog/internal/httpx"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

func catalogFromRequest(r *http.Request) (*catalog.Catalog, error) {
	c := common.CatalogFromContext(r.Context())
	if c == nil {
		return nil, httpx.ErrInternal("catalog not loaded")
	}
	return c, nil
}

func getRecordId(r *http.Request) (types.RecordId, error) {
	raw := chi.URLParam(r, "recordId")
	id, ok := types.ParseRecordId(raw)
	if !ok {
		return 0, httpx.ErrInvalidRequest("invalid record id '" + raw + "'")
	}
	return id, nil
}

// getFilter reads the category and classification query parameters. An
// empty parameter is the same as an absent one.
func getFilter(r *http.Request) catalog.Filter {
	q := r.URL.Query()
	f := catalog.Filter{}
	if v := q.Get("category"); v != "" {
		f.Category.Set(v)
	}
	if v := q.Get("classification"); v != "" {
		f.Classification.Set(v)
	}
	return f
}
