package main

import (
	"context"
	"errors"
	"time"

	"github.com/mugiliam/contentcatalog/catalogs"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/internal/config"
	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	dir        string
	noEmbedded bool

	cfg *config.Config
	ctx context.Context
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "contentcatalog",
		Short:         "Serve and browse catalogs of classified reference records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.dir, "dir", "", "directory of catalog documents")
	rootCmd.PersistentFlags().BoolVar(&a.noEmbedded, "no-embedded", false, "do not serve the built-in catalogs")

	rootCmd.AddCommand(
		a.serveCmd(),
		a.listCmd(),
		a.showCmd(),
		a.queryCmd(),
		a.countsCmd(),
		a.validateCmd(),
		a.importCmd(),
		a.exportCmd(),
		a.deleteCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.dir != "" {
		cfg.Catalogs.Dir = a.dir
	}
	if a.noEmbedded {
		cfg.Catalogs.Embedded = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)
	a.cfg = cfg

	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.ctx = log.Logger.WithContext(ctx)
	return nil
}

// sources describes where catalogs come from. The database is used only
// when it was connected with connectDB.
func (a *app) sources() catalogmanager.Sources {
	src := catalogmanager.Sources{
		Dir:      a.cfg.Catalogs.Dir,
		Database: db.Configured(),
	}
	if a.cfg.Catalogs.Embedded {
		src.Embedded = catalogs.FS
	}
	return src
}

func (a *app) registry() (*catalogmanager.Registry, error) {
	loaded, err := a.sources().Load(a.ctx)
	if err != nil {
		return nil, err
	}
	return catalogmanager.NewRegistry(loaded...), nil
}

func (a *app) resource(name string) (schemamanager.ResourceManager, error) {
	rms, err := a.sources().Resources(a.ctx)
	if err != nil {
		return nil, err
	}
	for _, rm := range rms {
		if rm.Name() == name {
			return rm, nil
		}
	}
	return nil, catalogmanager.ErrCatalogNotFound.Msg("catalog '" + name + "' not found")
}

// connectDB connects to PostgreSQL when a DSN is configured. required makes
// a missing DSN an error.
func (a *app) connectDB(required bool) error {
	if a.cfg.Database.DSN == "" {
		if required {
			return catalogmanager.ErrStorageUnavailable.Msg("database.dsn or CATALOG_DATABASE_DSN is required")
		}
		return nil
	}
	if err := db.Init(a.ctx, a.cfg.DB()); err != nil {
		return err
	}
	return catalogmanager.WithConn(a.ctx, func(ctx context.Context) error {
		return db.DB(ctx).Migrate(ctx)
	})
}

// errorText renders err with every cause it carries.
func errorText(err error) string {
	var ae apperrors.Error
	if errors.As(err, &ae) {
		return ae.ErrorAll()
	}
	return err.Error()
}
