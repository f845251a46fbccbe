package schemamanager

import (
	"github.com/mugiliam/contentcatalog/pkg/api/schemastore"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/schemas"
)

type ResourceManager interface {
	Version() string
	Kind() string
	Name() string
	Source() string
	Schema() *schemas.CatalogSchema
	Catalog() *catalog.Catalog
	StorageRepresentation() *schemastore.DocumentStorageRepresentation
}
