package apis

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/contentcatalog/internal/httpx"
	"github.com/mugiliam/contentcatalog/internal/viewstore"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// views returns the view store restricted to the catalog of the request.
func (a *API) views(c *catalog.Catalog) viewstore.Scoped {
	return viewstore.NewScoped(a.Views, c.Name())
}

func (a *API) createView(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	v, err := a.views(c).Create(ctx, c.Name())
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Str("view", v.Id).Str("catalog", c.Name()).Msg("view created")
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   path.Join("/catalogs", c.Name(), "views", v.Id),
		Response:   api.CreateViewRsp{ViewId: v.Id, Catalog: c.Name()},
	}, nil
}

func (a *API) getView(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	v, err := a.views(c).Get(r.Context(), chi.URLParam(r, "viewId"))
	if err != nil {
		return nil, err
	}
	return viewRsp(c, v), nil
}

func (a *API) deleteView(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	if err := a.views(c).Delete(r.Context(), chi.URLParam(r, "viewId")); err != nil {
		return nil, err
	}
	return nil, nil
}

// toggleView expands the record, or collapses it when it is already
// expanded. Ids the catalog does not know are accepted and resolve to no
// record.
func (a *API) toggleView(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := getRecordId(r)
	if err != nil {
		return nil, err
	}
	v, err := viewstore.Toggle(r.Context(), a.views(c), chi.URLParam(r, "viewId"), id)
	if err != nil {
		return nil, err
	}
	a.Metrics.ObserveToggle(c.Name(), v.State.ExpandedId.Valid)
	return viewRsp(c, v), nil
}

func (a *API) clearView(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	v, err := viewstore.Clear(r.Context(), a.views(c), chi.URLParam(r, "viewId"))
	if err != nil {
		return nil, err
	}
	return viewRsp(c, v), nil
}

func viewRsp(c *catalog.Catalog, v *viewstore.View) *httpx.Response {
	rsp := api.GetViewRsp{
		ViewId:     v.Id,
		Catalog:    v.Catalog,
		ExpandedId: v.State.ExpandedId,
	}
	if rec, ok := c.Resolve(v.Selection()); ok {
		rv := api.NewRecordView(c, rec)
		rsp.Expanded = &rv
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}
}
