package catalog

import (
	"testing"

	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int, category string, cls types.Classification) Record {
	return Record{
		Id:             types.RecordId(id),
		PrimaryText:    "question " + types.RecordId(id).String(),
		DetailText:     "answer " + types.RecordId(id).String(),
		Classification: cls,
		Category:       category,
	}
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name     string
		scheme   types.Scheme
		records  []Record
		opts     []StoreOption
		expected error
	}{
		{
			name:    "valid store",
			scheme:  types.SchemeDifficulty,
			records: []Record{rec(1, "X", types.Easy), rec(2, "X", types.Hard), rec(3, "Y", types.Easy)},
		},
		{
			name:    "empty store",
			scheme:  types.SchemeExperience,
			records: nil,
		},
		{
			name:     "duplicate id",
			scheme:   types.SchemeDifficulty,
			records:  []Record{rec(5, "X", types.Easy), rec(5, "Y", types.Medium)},
			expected: ErrDuplicateRecordId,
		},
		{
			name:     "unknown scheme",
			scheme:   types.Scheme("colour"),
			records:  []Record{rec(1, "X", types.Easy)},
			expected: ErrUnknownScheme,
		},
		{
			name:     "classification from another scheme",
			scheme:   types.SchemeDifficulty,
			records:  []Record{rec(1, "X", types.Beginner)},
			expected: ErrInvalidClassification,
		},
		{
			name:   "missing primary text",
			scheme: types.SchemeDifficulty,
			records: []Record{{
				Id: 1, DetailText: "d", Classification: types.Easy, Category: "X",
			}},
			expected: ErrMissingField,
		},
		{
			name:     "non positive id",
			scheme:   types.SchemeDifficulty,
			records:  []Record{rec(0, "X", types.Easy)},
			expected: ErrInvalidRecordId,
		},
		{
			name:     "undeclared category",
			scheme:   types.SchemeDifficulty,
			records:  []Record{rec(1, "X", types.Easy), rec(2, "Z", types.Easy)},
			opts:     []StoreOption{WithCategories(Category{Name: "X"})},
			expected: ErrUnknownCategory,
		},
		{
			name:     "category declared twice",
			scheme:   types.SchemeDifficulty,
			records:  []Record{rec(1, "X", types.Easy)},
			opts:     []StoreOption{WithCategories(Category{Name: "X"}, Category{Name: "X"})},
			expected: ErrDuplicateCategory,
		},
		{
			name:   "duplicate route",
			scheme: types.SchemeExperience,
			records: func() []Record {
				a, b := rec(1, "X", types.Beginner), rec(2, "X", types.Advanced)
				a.Route, b.Route = "map", "map"
				return []Record{a, b}
			}(),
			expected: ErrDuplicateRoute,
		},
		{
			name:   "malformed route",
			scheme: types.SchemeExperience,
			records: func() []Record {
				a := rec(1, "X", types.Beginner)
				a.Route = "/bad route"
				return []Record{a}
			}(),
			expected: ErrInvalidRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(tt.scheme, tt.records, tt.opts...)
			if tt.expected == nil {
				require.NoError(t, err)
				require.NotNil(t, s)
				assert.Equal(t, len(tt.records), s.Len())
				return
			}
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewStoreReportsEveryProblem(t *testing.T) {
	_, err := NewStore(types.SchemeDifficulty, []Record{
		rec(1, "X", types.Easy),
		rec(1, "X", types.Easy),
		rec(2, "X", types.Advanced),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRecordId)
	assert.ErrorIs(t, err, ErrInvalidClassification)
}

func TestStoreGetAll(t *testing.T) {
	records := []Record{rec(3, "Y", types.Easy), rec(1, "X", types.Easy), rec(2, "X", types.Hard)}
	s, err := NewStore(types.SchemeDifficulty, records)
	require.NoError(t, err)

	all := s.All()
	require.Len(t, all, 3)
	for i := range records {
		assert.Equal(t, records[i].Id, all[i].Id, "insertion order is display order")
	}

	r, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, types.Hard, r.Classification)

	_, ok = s.Get(42)
	assert.False(t, ok)

	// callers cannot reorder the store through the returned slice
	all[0], all[1] = all[1], all[0]
	assert.Equal(t, types.RecordId(3), s.All()[0].Id)
}

func TestStoreCategories(t *testing.T) {
	s, err := NewStore(types.SchemeDifficulty, []Record{
		rec(1, "B", types.Easy), rec(2, "A", types.Easy), rec(3, "B", types.Easy),
	})
	require.NoError(t, err)
	assert.Equal(t, []Category{{Name: "B"}, {Name: "A"}}, s.Categories())

	declared := []Category{{Name: "A", Icon: "fas fa-a"}, {Name: "B", Description: "bees"}}
	s, err = NewStore(types.SchemeDifficulty, []Record{rec(1, "B", types.Easy)}, WithCategories(declared...))
	require.NoError(t, err)
	assert.Equal(t, declared, s.Categories(), "declared order wins even for empty categories")
}

func TestStoreRecordsAreCopies(t *testing.T) {
	r := rec(1, "X", types.Easy)
	r.Route = "one"
	r.UseCases = []string{"original"}
	r.Examples = []Example{{Title: "t", Code: "of(1)"}}
	r.Related = []string{"two"}
	two := rec(2, "X", types.Hard)
	two.Route = "two"
	s, err := NewStore(types.SchemeDifficulty, []Record{r, two})
	require.NoError(t, err)
	ix := NewIndex(s)

	tests := []struct {
		name   string
		mutate func()
	}{
		{"input slice", func() { r.UseCases[0] = "changed"; r.Related[0] = "changed" }},
		{"Get", func() {
			got, _ := s.Get(1)
			got.UseCases[0] = "changed"
			got.Examples[0].Code = "changed"
		}},
		{"ByRoute", func() {
			got, _ := s.ByRoute("one")
			got.Related[0] = "changed"
		}},
		{"All", func() { s.All()[0].UseCases[0] = "changed" }},
		{"ByCategory", func() { ix.ByCategory("X")[0].Related[0] = "changed" }},
		{"Query", func() { ix.Query(WithClassification(types.Easy))[0].Examples[0].Title = "changed" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()
			got, ok := s.Get(1)
			require.True(t, ok)
			assert.Equal(t, []string{"original"}, got.UseCases)
			assert.Equal(t, []Example{{Title: "t", Code: "of(1)"}}, got.Examples)
			assert.Equal(t, []string{"two"}, got.Related)
		})
	}
}
