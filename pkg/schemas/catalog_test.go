package schemas

import (
	"errors"
	"testing"

	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
version: v1
kind: Catalog
metadata:
  name: observables
  title: Observable Patterns
  color: "#10B981"
  level: easy
spec:
  scheme: difficulty
  categories:
    - name: Creation
      description: Ways to create streams
  records:
    - id: 1
      primaryText: What is an Observable?
      detailText: A lazy push collection of values.
      classification: easy
      category: Creation
      route: observables/basics
      related: [observables/of]
      examples:
        - title: of
          code: "of(1, 2, 3)"
`

func TestReadCatalogSchema(t *testing.T) {
	cs, err := ReadCatalogSchema([]byte(validCatalog))
	require.NoError(t, err)
	assert.Equal(t, "observables", cs.Metadata.Name)
	assert.Equal(t, "difficulty", cs.Spec.Scheme)
	require.Len(t, cs.Spec.Records, 1)
	assert.Equal(t, 1, cs.Spec.Records[0].Id)
	assert.Equal(t, "observables/basics", cs.Spec.Records[0].Route)
	assert.Equal(t, []string{"observables/of"}, cs.Spec.Records[0].Related)

	j, err := cs.ToJSON()
	require.NoError(t, err)
	again, err := ReadCatalogSchema(j)
	require.NoError(t, err)
	assert.Equal(t, cs, again)
}

func TestReadCatalogSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
		contains string
	}{
		{
			name:     "empty",
			doc:      "",
			sentinel: schemaerr.ErrEmptySchema,
		},
		{
			name:     "null document",
			doc:      "~",
			sentinel: schemaerr.ErrEmptySchema,
		},
		{
			name:     "bad yaml",
			doc:      "version: [v1",
			sentinel: schemaerr.ErrInvalidSchema,
		},
		{
			name: "unsupported version",
			doc: `
version: v2
kind: Catalog
metadata: {name: x}
spec: {scheme: difficulty}`,
			sentinel: schemaerr.ErrInvalidVersion,
			contains: "'v2'",
		},
		{
			name: "unsupported kind",
			doc: `
version: v1
kind: Workspace
metadata: {name: x}
spec: {scheme: difficulty}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "kind: unsupported kind 'Workspace'",
		},
		{
			name: "unknown attribute",
			doc: `
version: v1
kind: Catalog
metadata: {name: x, owner: me}
spec: {scheme: difficulty}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "metadata",
		},
		{
			name: "wrong id type",
			doc: `
version: v1
kind: Catalog
metadata: {name: x}
spec:
  scheme: difficulty
  records:
    - {id: one, primaryText: a, detailText: b, classification: easy, category: c}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "spec.records.0.id",
		},
		{
			name: "bad name",
			doc: `
version: v1
kind: Catalog
metadata: {name: "my catalog"}
spec: {scheme: difficulty}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "metadata.name: invalid name format 'my catalog'",
		},
		{
			name: "bad scheme",
			doc: `
version: v1
kind: Catalog
metadata: {name: x}
spec: {scheme: stars}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "spec.scheme: unsupported classification scheme 'stars'",
		},
		{
			name: "bad color",
			doc: `
version: v1
kind: Catalog
metadata: {name: x, color: red}
spec: {scheme: difficulty}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "metadata.color: invalid color",
		},
		{
			name: "record problems",
			doc: `
version: v1
kind: Catalog
metadata: {name: x}
spec:
  scheme: difficulty
  records:
    - {id: 0, primaryText: a, detailText: b, classification: easy, category: c}
    - {id: 2, primaryText: "", detailText: b, classification: expert, category: c, route: "bad route"}`,
			sentinel: schemaerr.ErrInvalidSchema,
			contains: "spec.records[0].id: must be a positive integer; " +
				"spec.records[1].primaryText: missing required attribute; " +
				"spec.records[1].classification: invalid classification 'expert'; " +
				"spec.records[1].route: invalid route token 'bad route'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := ReadCatalogSchema([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, cs)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.True(t, errors.Is(err, schemaerr.ErrSchemaValidation))
			if tt.contains != "" {
				var ves schemaerr.ValidationErrors
				if errors.As(err, &ves) {
					assert.Contains(t, ves.Error(), tt.contains)
				} else {
					assert.Contains(t, err.Error(), tt.contains)
				}
			}
		})
	}
}

func TestValidateDocumentJSON(t *testing.T) {
	ves := ValidateDocumentJSON([]byte(`{"version":"v1","kind":"Catalog","metadata":{"name":"x"},"spec":{"scheme":"easy"}}`))
	assert.Nil(t, ves)

	ves = ValidateDocumentJSON([]byte(`{"version":"v1","kind":"Catalog","metadata":{"name":"x"}}`))
	require.Len(t, ves, 1)
	assert.Equal(t, "", ves[0].Field)
	assert.Contains(t, ves[0].ErrStr, "spec")
}
