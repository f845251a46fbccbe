package catalogmanager

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager/v1/resource"
	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/internal/db/dberror"
	"github.com/mugiliam/contentcatalog/internal/db/models"
	"github.com/mugiliam/contentcatalog/pkg/api/schemastore"
	"github.com/rs/zerolog/log"
)

const sourcePostgresql = "postgresql"

func dbFromContext(ctx context.Context) (db.DB_, error) {
	if !db.Configured() {
		return nil, ErrStorageUnavailable
	}
	d := db.DB(ctx)
	if d == nil {
		return nil, ErrStorageUnavailable
	}
	return d, nil
}

// WithConn runs fn with a pooled connection in its context. A connection
// already present in ctx is reused and left open.
func WithConn(ctx context.Context, fn func(context.Context) error) error {
	if !db.Configured() {
		return ErrStorageUnavailable
	}
	if db.InContext(ctx) {
		return fn(ctx)
	}
	cctx := db.ConnCtx(ctx)
	if cctx == ctx {
		return ErrStorageUnavailable.Msg("unable to get db connection")
	}
	defer db.DB(cctx).Close(cctx)
	return fn(cctx)
}

// SaveResource stores the document of rm. Saving a document identical to
// the stored one is a no-op and reports changed as false.
func SaveResource(ctx context.Context, rm schemamanager.ResourceManager) (hash string, changed bool, err error) {
	d, err := dbFromContext(ctx)
	if err != nil {
		return "", false, err
	}
	s := rm.StorageRepresentation()
	if s == nil {
		return "", false, ErrUnableToSave.Msg("unable to serialize catalog")
	}
	hash = s.GetHash()
	compressed, err := s.Compressed()
	if err != nil {
		return "", false, ErrUnableToSave.Err(err)
	}
	info, err := json.Marshal(rm.Catalog().Metadata())
	if err != nil {
		return "", false, ErrUnableToSave.Err(err)
	}

	doc := &models.CatalogDocument{
		Name:     s.Name,
		Version:  s.Version,
		Kind:     s.Kind,
		Scheme:   string(s.Scheme),
		Hash:     hash,
		Document: compressed,
		Info:     pgtype.JSONB{Bytes: info, Status: pgtype.Present},
	}
	changed, err = d.UpsertCatalogDocument(ctx, doc)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("catalog", s.Name).Msg("failed to save catalog")
		return "", false, ErrUnableToSave.Err(err)
	}
	log.Ctx(ctx).Info().Str("catalog", s.Name).Bool("changed", changed).Msg("saved catalog")
	return hash, changed, nil
}

// LoadResource rebuilds a stored catalog by name.
func LoadResource(ctx context.Context, name string) (schemamanager.ResourceManager, error) {
	d, err := dbFromContext(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := d.GetCatalogDocument(ctx, name)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}
	return loadDocument(ctx, doc)
}

// LoadAllResources rebuilds every stored catalog.
func LoadAllResources(ctx context.Context) ([]schemamanager.ResourceManager, error) {
	d, err := dbFromContext(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := d.ListCatalogDocuments(ctx)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	rms := make([]schemamanager.ResourceManager, 0, len(docs))
	for i := range docs {
		rm, err := loadDocument(ctx, &docs[i])
		if err != nil {
			return nil, ErrUnableToLoad.Err(err)
		}
		rms = append(rms, rm)
	}
	return rms, nil
}

func loadDocument(ctx context.Context, doc *models.CatalogDocument) (schemamanager.ResourceManager, error) {
	s, err := schemastore.FromCompressed(doc.Document)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("catalog", doc.Name).Msg("corrupt stored catalog")
		return nil, ErrUnableToLoad.Err(err)
	}
	return resource.LoadV1ResourceManager(ctx, s, schemamanager.WithSource(sourcePostgresql))
}

func DeleteResource(ctx context.Context, name string) error {
	d, err := dbFromContext(ctx)
	if err != nil {
		return err
	}
	if err := d.DeleteCatalogDocument(ctx, name); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrCatalogNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("catalog", name).Msg("failed to delete catalog")
		return err
	}
	return nil
}
