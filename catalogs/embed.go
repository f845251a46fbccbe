// Package catalogs holds the catalog documents compiled into the binary.
package catalogs

import "embed"

//go:embed *.yaml
var FS embed.FS
