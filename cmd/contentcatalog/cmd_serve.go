package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/internal/observability"
	"github.com/mugiliam/contentcatalog/internal/server"
	"github.com/mugiliam/contentcatalog/internal/viewstore"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalogs over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve()
		},
	}
}

func (a *app) serve() error {
	ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.connectDB(false); err != nil {
		return err
	}
	defer db.Shutdown()

	metrics := observability.NewMetrics()
	src := a.sources()
	reg, err := a.registry()
	if err != nil {
		metrics.ObserveLoad(0, err)
		return err
	}
	metrics.ObserveLoad(reg.Len(), nil)
	log.Ctx(ctx).Info().Strs("catalogs", reg.Names()).Msg("catalogs loaded")

	views, err := viewstore.New(ctx, a.cfg.ViewStore())
	if err != nil {
		return err
	}
	defer views.Close()

	if a.cfg.Catalogs.Watch {
		w, err := catalogmanager.NewWatcher(a.cfg.Catalogs.Dir, catalogmanager.DefaultDebounce, func(ctx context.Context) error {
			err := src.Reload(ctx, reg)
			metrics.ObserveLoad(reg.Len(), err)
			return err
		})
		if err != nil {
			return err
		}
		w.Start(ctx)
		defer w.Stop()
	}

	s, err := server.CreateNewServer(
		server.WithConfig(a.cfg),
		server.WithRegistry(reg),
		server.WithSources(src),
		server.WithViews(views),
		server.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	s.MountHandlers()
	return s.ListenAndServe(ctx)
}
