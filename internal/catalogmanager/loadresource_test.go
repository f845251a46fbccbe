package catalogmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/mugiliam/contentcatalog/internal/catalogmanager/schemamanager"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionsDoc = `
version: v1
kind: Catalog
metadata:
  name: questions
  title: Questions
  level: beginner
spec:
  scheme: difficulty
  records:
    - {id: 1, primaryText: Q1, detailText: A1, classification: easy, category: X}
    - {id: 2, primaryText: Q2, detailText: A2, classification: hard, category: "Y"}
    - {id: 3, primaryText: Q3, detailText: A3, classification: medium, category: X}
`

func TestNewResource(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())

	rm, err := NewResource(ctx, []byte(questionsDoc), schemamanager.WithSource("test"))
	require.NoError(t, err)
	assert.Equal(t, "questions", rm.Name())
	assert.Equal(t, "v1", rm.Version())
	assert.Equal(t, "Catalog", rm.Kind())
	assert.Equal(t, "test", rm.Source())

	c := rm.Catalog()
	assert.Equal(t, types.SchemeDifficulty, c.Scheme())
	assert.Equal(t, 3, c.Store().Len())
	assert.Equal(t, types.Classification("beginner"), c.Metadata().Level)

	var ids []types.RecordId
	for _, r := range c.Query(catalog.WithCategory("X")) {
		ids = append(ids, r.Id)
	}
	assert.Equal(t, []types.RecordId{1, 3}, ids)
	assert.Len(t, c.Query(catalog.WithCategory("Y")), 1)

	s := rm.StorageRepresentation()
	require.NotNil(t, s)
	assert.Equal(t, "questions", s.Name)
	assert.Equal(t, types.SchemeDifficulty, s.Scheme)

	// the stored form rebuilds the same catalog
	again, err := NewResource(ctx, s.Document)
	require.NoError(t, err)
	assert.Equal(t, s.GetHash(), again.StorageRepresentation().GetHash())
}

func TestNewResourceErrors(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())

	tests := []struct {
		name     string
		doc      string
		sentinel error
	}{
		{"empty", "", schemaerr.ErrEmptySchema},
		{"missing version", "kind: Catalog", schemaerr.ErrSchemaValidation},
		{"unsupported version", "version: v9\nkind: Catalog", schemaerr.ErrInvalidVersion},
		{
			name: "duplicate ids",
			doc: `
version: v1
kind: Catalog
metadata: {name: dup}
spec:
  scheme: difficulty
  records:
    - {id: 1, primaryText: Q1, detailText: A1, classification: easy, category: X}
    - {id: 1, primaryText: Q2, detailText: A2, classification: easy, category: X}`,
			sentinel: catalog.ErrDuplicateRecordId,
		},
		{
			name: "level outside scheme",
			doc: `
version: v1
kind: Catalog
metadata: {name: mixed}
spec:
  scheme: experience
  records:
    - {id: 1, primaryText: Q1, detailText: A1, classification: easy, category: X}`,
			sentinel: catalog.ErrInvalidClassification,
		},
		{
			name: "undeclared category",
			doc: `
version: v1
kind: Catalog
metadata: {name: cats}
spec:
  scheme: difficulty
  categories: [{name: X}]
  records:
    - {id: 1, primaryText: Q1, detailText: A1, classification: easy, category: "Y"}`,
			sentinel: catalog.ErrUnknownCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, err := NewResource(ctx, []byte(tt.doc))
			assert.Nil(t, rm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestNewResourceBooleanLikeLabels(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	doc := func(category string) string {
		return `
version: v1
kind: Catalog
metadata: {name: labels}
spec:
  scheme: difficulty
  records:
    - {id: 1, primaryText: Q1, detailText: A1, classification: easy, category: ` + category + `}
`
	}

	tests := []struct {
		name     string
		category string
		label    string
		valid    bool
	}{
		{"quoted Y", `"Y"`, "Y", true},
		{"quoted no", `'no'`, "no", true},
		{"quoted on", `"on"`, "on", true},
		{"plain label", `X`, "X", true},
		{"unquoted Y", `Y`, "", false},
		{"unquoted off", `off`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, err := NewResource(ctx, []byte(doc(tt.category)))
			if !tt.valid {
				require.Error(t, err)
				assert.ErrorIs(t, err, schemaerr.ErrSchemaValidation)
				return
			}
			require.NoError(t, err)
			r, ok := rm.Catalog().Get(1)
			require.True(t, ok)
			assert.Equal(t, tt.label, r.Category)
		})
	}
}
