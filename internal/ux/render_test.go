package ux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	records := []catalog.Record{
		{
			Id: 1, PrimaryText: "map", DetailText: "Transforms each value", Classification: types.Beginner,
			Category: "Transformation", Route: "map", Related: []string{"switchMap"},
			UseCases: []string{"Reshaping API responses"},
			Examples: []catalog.Example{{Title: "Double", Code: "of(1, 2).pipe(map(x => x * 2))\n", Output: "2\n4"}},
		},
		{Id: 2, PrimaryText: "switchMap", DetailText: "Cancels the previous inner observable", Classification: types.Intermediate, Category: "Transformation", Route: "switchMap"},
		{Id: 3, PrimaryText: "filter", DetailText: "Emits values that pass a test", Classification: types.Beginner, Category: "Filtering"},
	}
	c, err := catalog.New(catalog.Metadata{Name: "operators", Title: "Operators"}, types.SchemeExperience, records)
	require.NoError(t, err)
	return c
}

func TestCatalog(t *testing.T) {
	c := testCatalog(t)
	r := NewRenderer(&bytes.Buffer{})

	tests := []struct {
		name     string
		records  []catalog.Record
		expand   types.RecordId
		contains []string
		absent   []string
	}{
		{
			name:     "collapsed",
			records:  c.Query(),
			contains: []string{"Operators", "Transformation", "Filtering", "map", "switchMap", "beginner 1", "intermediate 1"},
			absent:   []string{"Transforms each value"},
		},
		{
			name:     "expanded",
			records:  c.Query(),
			expand:   1,
			contains: []string{"Transforms each value", "Reshaping API responses", "Double", "of(1, 2).pipe(map(x => x * 2))", "Related: switchMap"},
			absent:   []string{"Cancels the previous inner observable"},
		},
		{
			name:     "filtered",
			records:  c.Query(catalog.WithCategory("Filtering")),
			contains: []string{"filter"},
			absent:   []string{"Transformation"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := c.NewSelection()
			if tt.expand != 0 {
				sel.Toggle(tt.expand)
			}
			out := r.Catalog(c, tt.records, sel)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestDirectory(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	out := r.Directory([]api.CatalogSummary{
		{Name: "operators", Title: "RxJS Operators", Subtitle: "Common operators", RecordCount: 20, Scheme: types.SchemeExperience},
		{Name: "plain", RecordCount: 1, Scheme: types.SchemeDifficulty},
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "RxJS Operators")
	assert.Contains(t, lines[1], "(20 records, experience)")
	assert.Contains(t, lines[2], "Common operators")
	assert.Contains(t, lines[3], "plain")
}

func TestCounts(t *testing.T) {
	c := testCatalog(t)
	r := NewRenderer(&bytes.Buffer{})
	out := r.Counts(c.Index().Summary("Transformation"))
	assert.Equal(t, "beginner 1  intermediate 1  advanced 0", out)
}
