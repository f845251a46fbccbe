package postgresql

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mugiliam/contentcatalog/internal/db/dbmanager"
	"github.com/mugiliam/contentcatalog/internal/db/dberror"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

type catalogDb struct {
	c dbmanager.Conn
}

func NewCatalogDb(conn dbmanager.Conn) *catalogDb {
	return &catalogDb{c: conn}
}

func (h *catalogDb) conn() *pgxpool.Conn {
	return h.c.Conn().(*pgxpool.Conn)
}

// Migrate applies the embedded schema files in name order. Every statement
// is idempotent.
func (h *catalogDb) Migrate(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	sort.Strings(files)
	for _, f := range files {
		stmt, err := migrations.ReadFile(f)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		if _, err := h.conn().Exec(ctx, string(stmt)); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("file", f).Msg("failed to apply migration")
			return dberror.ErrDatabase.Err(err)
		}
		log.Ctx(ctx).Debug().Str("file", f).Msg("applied migration")
	}
	return nil
}

func (h *catalogDb) Close(ctx context.Context) {
	h.c.Close(ctx)
}
