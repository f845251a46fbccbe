// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/mugiliam/contentcatalog/pkg/catalog"
)

// ctxCatalogKeyType represents the key type for the resolved catalog in the context.
type ctxCatalogKeyType string

const ctxCatalogKey ctxCatalogKeyType = "ContentCatalogCatalog"

// SetCatalogInContext sets the catalog addressed by the request in the provided context.
func SetCatalogInContext(ctx context.Context, c *catalog.Catalog) context.Context {
	return context.WithValue(ctx, ctxCatalogKey, c)
}

// CatalogFromContext retrieves the catalog from the provided context.
func CatalogFromContext(ctx context.Context) *catalog.Catalog {
	if c, ok := ctx.Value(ctxCatalogKey).(*catalog.Catalog); ok {
		return c
	}
	return nil
}
