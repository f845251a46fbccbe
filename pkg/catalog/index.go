package catalog

import "github.com/mugiliam/contentcatalog/pkg/types"

// Index groups the records of a store by category. The store never changes,
// so the grouping is computed once and never invalidated.
type Index struct {
	store      *Store
	positions  map[string][]int
	counts     map[string]map[types.Classification]int
	categories map[string]Category
}

// LevelCount is the number of records at one classification level.
type LevelCount struct {
	Classification types.Classification `json:"classification"`
	Count          int                  `json:"count"`
	Color          string               `json:"color"`
}

func NewIndex(s *Store) *Index {
	ix := &Index{
		store:      s,
		positions:  make(map[string][]int),
		counts:     make(map[string]map[types.Classification]int),
		categories: make(map[string]Category, len(s.categories)),
	}
	for _, c := range s.categories {
		ix.categories[c.Name] = c
	}
	for i, r := range s.records {
		ix.positions[r.Category] = append(ix.positions[r.Category], i)
		m, ok := ix.counts[r.Category]
		if !ok {
			m = make(map[types.Classification]int)
			ix.counts[r.Category] = m
		}
		m[r.Classification]++
	}
	return ix
}

func (ix *Index) Store() *Store {
	return ix.store
}

// ByCategory returns the records of a category in store order. An unknown
// label yields an empty slice.
func (ix *Index) ByCategory(label string) []Record {
	pos := ix.positions[label]
	out := make([]Record, 0, len(pos))
	for _, i := range pos {
		out = append(out, ix.store.records[i].clone())
	}
	return out
}

// CountByClassification counts the records of a category whose
// classification equals c exactly.
func (ix *Index) CountByClassification(label string, c types.Classification) int {
	return ix.counts[label][c]
}

// Summary returns the per-level counts of a category in scheme order,
// including levels with no records.
func (ix *Index) Summary(label string) []LevelCount {
	scheme := ix.store.scheme
	levels := scheme.Levels()
	out := make([]LevelCount, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelCount{
			Classification: l,
			Count:          ix.counts[label][l],
			Color:          scheme.Color(l),
		})
	}
	return out
}

// Categories returns the category metadata in display order.
func (ix *Index) Categories() []Category {
	return ix.store.Categories()
}

func (ix *Index) Category(label string) (Category, bool) {
	c, ok := ix.categories[label]
	return c, ok
}
