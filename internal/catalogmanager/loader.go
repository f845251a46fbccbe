package catalogmanager

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// IsDocumentFile reports whether name looks like a catalog document.
func IsDocumentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadFS reads every document under fsys and builds its catalog. All
// problems are collected; if any document fails nothing is returned.
func LoadFS(ctx context.Context, fsys fs.FS, options ...schemamanager.Options) ([]schemamanager.ResourceManager, error) {
	var (
		rms      []schemamanager.ResourceManager
		problems []error
	)
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsDocumentFile(p) || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		doc, err := fs.ReadFile(fsys, p)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", p, err))
			return nil
		}
		opts := append([]schemamanager.Options{schemamanager.WithSource(p)}, options...)
		rm, err := NewResource(ctx, doc, opts...)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("file", p).Msg("invalid catalog document")
			problems = append(problems, fmt.Errorf("%s: %w", p, err))
			return nil
		}
		if prev, ok := seen[rm.Name()]; ok {
			problems = append(problems, ErrDuplicateCatalog.Msg(
				fmt.Sprintf("catalog %q defined in %s and %s", rm.Name(), prev, p)))
			return nil
		}
		seen[rm.Name()] = p
		rms = append(rms, rm)
		return nil
	})
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	if len(problems) > 0 {
		return nil, ErrUnableToLoad.Err(problems...)
	}
	log.Ctx(ctx).Debug().Int("catalogs", len(rms)).Msg("loaded catalog documents")
	return rms, nil
}

// LoadDir is LoadFS over a directory on disk.
func LoadDir(ctx context.Context, dir string, options ...schemamanager.Options) ([]schemamanager.ResourceManager, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	if !st.IsDir() {
		return nil, ErrUnableToLoad.Msg(dir + " is not a directory")
	}
	return LoadFS(ctx, os.DirFS(dir), options...)
}

func Catalogs(rms []schemamanager.ResourceManager) []*catalog.Catalog {
	out := make([]*catalog.Catalog, 0, len(rms))
	for _, rm := range rms {
		out = append(out, rm.Catalog())
	}
	return out
}
