package catalogmanager

import (
	"context"
	"encoding/json"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager/v1/resource"
	"github.com/mugiliam/contentcatalog/pkg/schemas"
	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/rs/zerolog/log"
)

type VersionHeader struct {
	Version string `json:"version"`
}

// NewResource builds a catalog from a YAML or JSON document, dispatching on
// the document version.
func NewResource(ctx context.Context, doc []byte, options ...schemamanager.Options) (schemamanager.ResourceManager, error) {
	j, err := schemas.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	var version VersionHeader
	if err := json.Unmarshal(j, &version); err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("failed to unmarshal version header")
		return nil, schemaerr.ErrInvalidSchema.Err(err)
	}
	if version.Version == "" {
		return nil, schemaerr.ErrSchemaValidation.Msg(schemaerr.ErrMissingRequiredAttribute("version").Error())
	}

	switch version.Version {
	case "v1":
		rm, err := resource.NewV1ResourceManager(ctx, j, append([]schemamanager.Options{schemamanager.WithValidation()}, options...)...)
		if err != nil {
			return nil, err
		}
		return rm, nil
	default:
		return nil, schemaerr.ErrInvalidVersion.Msg("unsupported version " + schemaerr.InQuotes(version.Version))
	}
}
