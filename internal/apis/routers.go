package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/common"
	"github.com/mugiliam/contentcatalog/internal/httpx"
	"github.com/mugiliam/contentcatalog/internal/observability"
	"github.com/mugiliam/contentcatalog/internal/viewstore"
)

// API serves the catalogs of a registry. Views hold the per-client
// selection state.
type API struct {
	Registry *catalogmanager.Registry
	Views    viewstore.Store
	Metrics  *observability.Metrics
}

type handlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

// catalogHandlers are mounted under /{catalogName}.
func (a *API) catalogHandlers() []handlerParam {
	return []handlerParam{
		{
			Method:  http.MethodGet,
			Path:    "/",
			Handler: a.getCatalog,
		},
		{
			Method:  http.MethodGet,
			Path:    "/records",
			Handler: a.getRecords,
		},
		{
			Method:  http.MethodGet,
			Path:    "/records/{recordId}",
			Handler: a.getRecord,
		},
		{
			Method:  http.MethodGet,
			Path:    "/routes/*",
			Handler: a.getRoute,
		},
		{
			Method:  http.MethodGet,
			Path:    "/counts",
			Handler: a.getCounts,
		},
		{
			Method:  http.MethodPost,
			Path:    "/views",
			Handler: a.createView,
		},
		{
			Method:  http.MethodGet,
			Path:    "/views/{viewId}",
			Handler: a.getView,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/views/{viewId}",
			Handler: a.deleteView,
		},
		{
			Method:  http.MethodPost,
			Path:    "/views/{viewId}/toggle/{recordId}",
			Handler: a.toggleView,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/views/{viewId}/selection",
			Handler: a.clearView,
		},
	}
}

// Router mounts the catalog API on r.
func (a *API) Router(r chi.Router) {
	r.Get("/", httpx.WrapHttpRsp(a.getCatalogs))
	r.Route("/{catalogName}", func(r chi.Router) {
		r.Use(a.LoadCatalogContext)
		for _, handler := range a.catalogHandlers() {
			r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
		}
	})
}

// LoadCatalogContext resolves {catalogName} against the registry and stores
// the catalog in the request context.
func (a *API) LoadCatalogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := chi.URLParam(r, "catalogName")
		c, ok := a.Registry.Get(name)
		if !ok {
			err := catalogmanager.ErrCatalogNotFound.Msg("catalog '" + name + "' not found")
			httpx.SendJsonRsp(ctx, w, http.StatusNotFound, httpx.ToHttpxError(err))
			return
		}
		ctx = common.SetCatalogInContext(ctx, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
