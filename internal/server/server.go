package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mugiliam/contentcatalog/internal/apis"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/config"
	"github.com/mugiliam/contentcatalog/internal/httpx"
	"github.com/mugiliam/contentcatalog/internal/observability"
	"github.com/mugiliam/contentcatalog/internal/server/middleware"
	"github.com/mugiliam/contentcatalog/internal/viewstore"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ServerVersion = "ContentCatalog: 1.0.0"

type CatalogServer struct {
	Router   *chi.Mux
	Registry *catalogmanager.Registry
	Sources  catalogmanager.Sources
	Views    viewstore.Store
	Metrics  *observability.Metrics
	Config   *config.Config
}

type ServerOption func(*CatalogServer)

func WithRegistry(reg *catalogmanager.Registry) ServerOption {
	return func(s *CatalogServer) {
		s.Registry = reg
	}
}

// WithSources sets what POST /catalogs/reload reads.
func WithSources(src catalogmanager.Sources) ServerOption {
	return func(s *CatalogServer) {
		s.Sources = src
	}
}

func WithViews(v viewstore.Store) ServerOption {
	return func(s *CatalogServer) {
		s.Views = v
	}
}

func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *CatalogServer) {
		s.Metrics = m
	}
}

func WithConfig(cfg *config.Config) ServerOption {
	return func(s *CatalogServer) {
		s.Config = cfg
	}
}

func CreateNewServer(opts ...ServerOption) (*CatalogServer, error) {
	s := &CatalogServer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.Config == nil {
		s.Config = config.Current()
	}
	if s.Registry == nil {
		s.Registry = catalogmanager.NewRegistry()
	}
	if s.Views == nil {
		s.Views = viewstore.NewMemoryStore(s.Config.Views.TTL)
	}
	if s.Metrics == nil {
		s.Metrics = observability.NewMetrics()
	}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *CatalogServer) MountHandlers() {
	s.Router.Use(middleware.RequestLogger(log.Logger))
	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(s.Metrics.Middleware)
	if origins := s.Config.Server.CORSOrigins; len(origins) > 0 {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID", "Location"},
			MaxAge:         300,
		}))
	}
	s.Router.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	s.Router.Route("/catalogs", s.mountResourceHandlers)
	if zerolog.GlobalLevel() == zerolog.TraceLevel {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			log.Trace().Str("method", method).Str("route", route).Msg("route")
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			log.Error().Err(err).Msg("unable to walk routes")
		}
	}
}

func (s *CatalogServer) mountResourceHandlers(r chi.Router) {
	r.Get("/version", s.getVersion)
	r.With(middleware.LoadScopedDB).Post("/reload", httpx.WrapHttpRsp(s.reload))
	a := &apis.API{
		Registry: s.Registry,
		Views:    s.Views,
		Metrics:  s.Metrics,
	}
	a.Router(r)
}

func (s *CatalogServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &api.GetVersionRsp{
		ServerVersion: ServerVersion,
		ApiVersion:    api.ApiVersion_1_0,
		Catalogs:      s.Registry.Len(),
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

// reload re-reads every source and replaces the served catalogs. A failed
// reload keeps the current set.
func (s *CatalogServer) reload(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	if s.Sources.Empty() {
		return nil, httpx.ErrInvalidRequest("no catalog sources configured")
	}
	err := s.Sources.Reload(ctx, s.Registry)
	s.Metrics.ObserveLoad(s.Registry.Len(), err)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   api.GetCatalogsRsp{Catalogs: s.Registry.Directory()},
	}, nil
}

// ListenAndServe serves until ctx is cancelled, then drains open requests.
func (s *CatalogServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Config.Address(),
		Handler:      s.Router,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Ctx(ctx).Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
