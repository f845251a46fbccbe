package resource

import (
	"context"
	"encoding/json"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/pkg/api/schemastore"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/schemas"
	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/rs/zerolog/log"
)

type V1ResourceManager struct {
	schema  *schemas.CatalogSchema
	catalog *catalog.Catalog
	source  string
}

var _ schemamanager.ResourceManager = &V1ResourceManager{} // Ensure V1ResourceManager implements schemamanager.ResourceManager

// NewV1ResourceManager builds a catalog from a YAML or JSON document.
func NewV1ResourceManager(ctx context.Context, doc []byte, options ...schemamanager.Options) (*V1ResourceManager, error) {
	o := schemamanager.OptionsConfig{}
	for _, option := range options {
		option(&o)
	}

	var (
		cs  *schemas.CatalogSchema
		err error
	)
	if o.Validate {
		cs, err = schemas.ReadCatalogSchema(doc)
	} else {
		var j []byte
		if j, err = schemas.ToJSON(doc); err == nil {
			cs, err = schemas.ParseCatalogSchema(j)
		}
	}
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("source", o.Source).Msg("invalid catalog document")
		return nil, err
	}
	if cs.Version != types.CatalogVersion {
		return nil, schemaerr.ErrInvalidVersion
	}
	return buildResourceManager(ctx, cs, o)
}

// LoadV1ResourceManager rebuilds a catalog from its storage representation.
func LoadV1ResourceManager(ctx context.Context, s *schemastore.DocumentStorageRepresentation, options ...schemamanager.Options) (*V1ResourceManager, error) {
	if s == nil || len(s.Document) == 0 {
		return nil, schemaerr.ErrEmptySchema
	}
	return NewV1ResourceManager(ctx, s.Document, options...)
}

func buildResourceManager(ctx context.Context, cs *schemas.CatalogSchema, o schemamanager.OptionsConfig) (*V1ResourceManager, error) {
	if cs.Kind != types.CatalogKind {
		return nil, schemaerr.ErrInvalidKind
	}

	categories := make([]catalog.Category, 0, len(cs.Spec.Categories))
	for _, c := range cs.Spec.Categories {
		categories = append(categories, catalog.Category{
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}

	var opts []catalog.StoreOption
	if len(categories) > 0 {
		opts = append(opts, catalog.WithCategories(categories...))
	}

	c, err := catalog.New(metadataOf(cs), types.Scheme(cs.Spec.Scheme), recordsOf(cs), opts...)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("catalog", cs.Metadata.Name).Str("source", o.Source).Msg("unable to build catalog")
		return nil, err
	}
	return &V1ResourceManager{
		schema:  cs,
		catalog: c,
		source:  o.Source,
	}, nil
}

func metadataOf(cs *schemas.CatalogSchema) catalog.Metadata {
	m := cs.Metadata
	return catalog.Metadata{
		Name:        m.Name,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		Level:       types.Classification(m.Level),
	}
}

func recordsOf(cs *schemas.CatalogSchema) []catalog.Record {
	records := make([]catalog.Record, 0, len(cs.Spec.Records))
	for _, r := range cs.Spec.Records {
		rec := catalog.Record{
			Id:             types.RecordId(r.Id),
			PrimaryText:    r.PrimaryText,
			DetailText:     r.DetailText,
			Classification: types.Classification(r.Classification),
			Category:       r.Category,
			Route:          r.Route,
			UseCases:       r.UseCases,
			Related:        r.Related,
		}
		for _, e := range r.Examples {
			rec.Examples = append(rec.Examples, catalog.Example{
				Title:       e.Title,
				Code:        e.Code,
				Explanation: e.Explanation,
				Output:      e.Output,
			})
		}
		records = append(records, rec)
	}
	return records
}

func (rm *V1ResourceManager) Version() string {
	return rm.schema.Version
}

func (rm *V1ResourceManager) Kind() string {
	return rm.schema.Kind
}

func (rm *V1ResourceManager) Name() string {
	return rm.schema.Metadata.Name
}

func (rm *V1ResourceManager) Source() string {
	return rm.source
}

func (rm *V1ResourceManager) Schema() *schemas.CatalogSchema {
	return rm.schema
}

func (rm *V1ResourceManager) Catalog() *catalog.Catalog {
	return rm.catalog
}

func (rm *V1ResourceManager) StorageRepresentation() *schemastore.DocumentStorageRepresentation {
	j, err := json.Marshal(rm.schema)
	if err != nil {
		return nil
	}
	return &schemastore.DocumentStorageRepresentation{
		Version:  rm.schema.Version,
		Kind:     rm.schema.Kind,
		Name:     rm.schema.Metadata.Name,
		Scheme:   types.Scheme(rm.schema.Spec.Scheme),
		Document: j,
	}
}
