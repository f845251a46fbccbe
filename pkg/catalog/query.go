package catalog

import "github.com/mugiliam/contentcatalog/pkg/types"

type queryConfig struct {
	category       types.NullableString
	classification types.NullableString
}

type QueryOption func(*queryConfig)

// WithCategory restricts a query to one category.
func WithCategory(label string) QueryOption {
	return func(cfg *queryConfig) {
		cfg.category.Set(label)
	}
}

// WithClassification restricts a query to one classification level.
func WithClassification(c types.Classification) QueryOption {
	return func(cfg *queryConfig) {
		cfg.classification.Set(string(c))
	}
}

// Filter carries optional filter values, typically decoded from a request.
type Filter struct {
	Category       types.NullableString `json:"category"`
	Classification types.NullableString `json:"classification"`
}

func (f Filter) Options() []QueryOption {
	var opts []QueryOption
	if f.Category.Valid {
		opts = append(opts, WithCategory(f.Category.Value))
	}
	if f.Classification.Valid {
		opts = append(opts, WithClassification(types.Classification(f.Classification.Value)))
	}
	return opts
}

// Query returns the records matching every given filter, in store order.
// Without options it returns the whole store. The result is never nil.
func (ix *Index) Query(opts ...QueryOption) []Record {
	cfg := queryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var candidates []Record
	if cfg.category.Valid {
		candidates = ix.ByCategory(cfg.category.Value)
	} else {
		candidates = ix.store.All()
	}
	if !cfg.classification.Valid {
		return candidates
	}

	out := candidates[:0]
	for _, r := range candidates {
		if string(r.Classification) == cfg.classification.Value {
			out = append(out, r)
		}
	}
	return out
}
