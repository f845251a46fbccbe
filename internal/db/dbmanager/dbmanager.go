package dbmanager

import (
	"context"

	"github.com/rs/zerolog/log"
)

type Db interface {
	// Conn acquires a connection from the pool. The caller must Close it.
	Conn(ctx context.Context) (Conn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
	Close()
}

type Conn interface {
	Conn() any
	Close(ctx context.Context)
}

type Config struct {
	DSN      string
	MaxConns int32
}

func NewDb(ctx context.Context, dbtype string, cfg Config) Db {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb(ctx, cfg)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	log.Ctx(ctx).Error().Str("type", dbtype).Msg("unsupported database type")
	return nil
}
