package db

import (
	"context"
	"sync"

	"github.com/mugiliam/contentcatalog/internal/db/dbmanager"
	"github.com/mugiliam/contentcatalog/internal/db/dberror"
	"github.com/mugiliam/contentcatalog/internal/db/models"
	"github.com/mugiliam/contentcatalog/internal/db/postgresql"
	"github.com/rs/zerolog/log"
)

// DB_ is the document store as seen by one request. It wraps a pooled
// connection that is returned by Close.
type DB_ interface {
	CreateCatalogDocument(ctx context.Context, doc *models.CatalogDocument) error
	UpsertCatalogDocument(ctx context.Context, doc *models.CatalogDocument) (bool, error)
	GetCatalogDocument(ctx context.Context, name string) (*models.CatalogDocument, error)
	ListCatalogDocuments(ctx context.Context) ([]models.CatalogDocument, error)
	DeleteCatalogDocument(ctx context.Context, name string) error

	// Migrate creates the tables when they do not exist.
	Migrate(ctx context.Context) error

	// Close the connection to the database.
	Close(ctx context.Context)
}

var (
	pool   dbmanager.Db
	poolMu sync.RWMutex
)

// Init connects the package level pool. It is not called from init so
// that binaries without a database never dial one.
func Init(ctx context.Context, cfg dbmanager.Config) error {
	if cfg.DSN == "" {
		return dberror.ErrNotConfigured
	}
	pg := dbmanager.NewDb(ctx, "postgresql", cfg)
	if pg == nil {
		return dberror.ErrDatabase.Msg("unable to create db pool")
	}
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		pool.Close()
	}
	pool = pg
	return nil
}

func Configured() bool {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return pool != nil
}

func Shutdown() {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		pool.Close()
		pool = nil
	}
}

func Conn(ctx context.Context) dbmanager.Conn {
	poolMu.RLock()
	defer poolMu.RUnlock()
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
	}
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "ContentCatalogDb"

// ConnCtx acquires a connection and stores it in the returned context. The
// connection is released by DB(ctx).Close(ctx).
func ConnCtx(ctx context.Context) context.Context {
	conn := Conn(ctx)
	if conn == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxDbKey, conn)
}

// InContext reports whether ctx already carries a connection.
func InContext(ctx context.Context) bool {
	_, ok := ctx.Value(ctxDbKey).(dbmanager.Conn)
	return ok
}

func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.Conn); ok {
		return postgresql.NewCatalogDb(conn)
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
