package catalogmanager

import (
	"context"
	"io/fs"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// Sources lists where catalogs are read from. When two sources define the
// same catalog name, the later one wins: embedded, then Dir, then Database.
type Sources struct {
	Embedded fs.FS
	Dir      string
	Database bool
}

func (s Sources) Empty() bool {
	return s.Embedded == nil && s.Dir == "" && !s.Database
}

// Resources reads every configured source and returns one resource per
// catalog name, in first-seen order. A failure in any source fails the whole
// read so that a reload never serves a partial set.
func (s Sources) Resources(ctx context.Context) ([]schemamanager.ResourceManager, error) {
	var ordered []schemamanager.ResourceManager

	if s.Embedded != nil {
		rms, err := LoadFS(ctx, s.Embedded)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, rms...)
	}
	if s.Dir != "" {
		rms, err := LoadDir(ctx, s.Dir)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, rms...)
	}
	if s.Database {
		err := WithConn(ctx, func(ctx context.Context) error {
			rms, err := LoadAllResources(ctx)
			if err != nil {
				return err
			}
			ordered = append(ordered, rms...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	index := make(map[string]int, len(ordered))
	var out []schemamanager.ResourceManager
	for _, rm := range ordered {
		if i, ok := index[rm.Name()]; ok {
			log.Ctx(ctx).Info().Str("catalog", rm.Name()).Str("source", rm.Source()).Msg("catalog overridden")
			out[i] = rm
			continue
		}
		index[rm.Name()] = len(out)
		out = append(out, rm)
	}
	return out, nil
}

// Load is Resources reduced to the catalogs.
func (s Sources) Load(ctx context.Context) ([]*catalog.Catalog, error) {
	rms, err := s.Resources(ctx)
	if err != nil {
		return nil, err
	}
	return Catalogs(rms), nil
}

// Reload loads the sources and replaces the registry contents. On error the
// registry is left untouched.
func (s Sources) Reload(ctx context.Context, reg *Registry) error {
	catalogs, err := s.Load(ctx)
	if err != nil {
		return err
	}
	reg.Replace(catalogs)
	return nil
}
