package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/httpx"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
)

func (a *API) getCatalogs(r *http.Request) (*httpx.Response, error) {
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   api.GetCatalogsRsp{Catalogs: a.Registry.Directory()},
	}, nil
}

func (a *API) getCatalog(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	rsp := api.GetCatalogRsp{
		CatalogSummary: catalogmanager.Summarize(c),
		Levels:         []string{},
		Categories:     []api.CategorySummary{},
	}
	for _, l := range c.Scheme().Levels() {
		rsp.Levels = append(rsp.Levels, string(l))
	}
	ix := c.Index()
	for _, cat := range ix.Categories() {
		rsp.Categories = append(rsp.Categories, api.CategorySummary{
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
			RecordCount: len(ix.ByCategory(cat.Name)),
			Levels:      ix.Summary(cat.Name),
		})
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

func (a *API) getRecords(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	f := getFilter(r)
	a.Metrics.ObserveQuery(c.Name(), f.Category.Valid || f.Classification.Valid)
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   api.NewRecordsRsp(c, f),
	}, nil
}

func (a *API) getRecord(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := getRecordId(r)
	if err != nil {
		return nil, err
	}
	rec, ok := c.Get(id)
	if !ok {
		return nil, catalogmanager.ErrRecordNotFound.Msg("record " + id.String() + " not found")
	}
	return recordRsp(c, rec), nil
}

// getRoute resolves a route token. Tokens may contain slashes.
func (a *API) getRoute(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	token := chi.URLParam(r, "*")
	rec, ok := c.ByRoute(token)
	if !ok {
		return nil, catalogmanager.ErrRecordNotFound.Msg("no record at route '" + token + "'")
	}
	return recordRsp(c, rec), nil
}

func recordRsp(c *catalog.Catalog, rec catalog.Record) *httpx.Response {
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: api.GetRecordRsp{
			Catalog: c.Name(),
			Record:  api.NewRecordView(c, rec),
			Related: api.NewRecordViews(c, c.Related(rec.Id)),
		},
	}
}

// getCounts reports records per classification level, for one category or
// for the whole catalog.
func (a *API) getCounts(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   api.NewCountsRsp(c, r.URL.Query().Get("category")),
	}, nil
}
