package dbmanager

import (
	"context"
	"sync/atomic"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

type postgresqlDb struct {
	pool     *pgxpool.Pool
	requests atomic.Uint64
	returns  atomic.Uint64
}

type postgresqlConn struct {
	conn *pgxpool.Conn
	db   *postgresqlDb
}

func NewPostgresqlDb(ctx context.Context, cfg Config) (*postgresqlDb, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.ConnectConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().
		Str("host", pcfg.ConnConfig.Host).
		Str("database", pcfg.ConnConfig.Database).
		Int32("max_conns", pcfg.MaxConns).
		Msg("connected to postgresql")
	return &postgresqlDb{pool: pool}, nil
}

func (p *postgresqlDb) Conn(ctx context.Context) (Conn, error) {
	p.requests.Add(1)
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		p.returns.Add(1)
		return nil, err
	}
	return &postgresqlConn{conn: c, db: p}, nil
}

func (p *postgresqlDb) Stats() (requests, returns uint64) {
	return p.requests.Load(), p.returns.Load()
}

func (p *postgresqlDb) Close() {
	p.pool.Close()
}

// Conn returns the underlying *pgxpool.Conn.
func (c *postgresqlConn) Conn() any {
	return c.conn
}

func (c *postgresqlConn) Close(ctx context.Context) {
	if c.conn == nil {
		return
	}
	c.conn.Release()
	c.conn = nil
	c.db.returns.Add(1)
}
