package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/contentcatalog/pkg/schemas/schemavalidator"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

// Store holds an immutable, ordered sequence of records. Insertion order is
// the display order. Records are copied in and out, so a Store is safe for
// concurrent readers.
type Store struct {
	scheme     types.Scheme
	records    []Record
	byId       map[types.RecordId]int
	byRoute    map[string]int
	categories []Category
}

type storeConfig struct {
	categories []Category
}

type StoreOption func(*storeConfig)

// WithCategories declares the categories of the store in display order.
// Records referring to a category outside the list are rejected.
func WithCategories(categories ...Category) StoreOption {
	return func(cfg *storeConfig) {
		cfg.categories = append(cfg.categories, categories...)
	}
}

// NewStore validates records and builds a store. Every problem found is
// reported in the returned error; on error no store is created.
func NewStore(scheme types.Scheme, records []Record, opts ...StoreOption) (*Store, error) {
	cfg := storeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !scheme.IsValid() {
		return nil, ErrUnknownScheme.Msg(fmt.Sprintf("unknown classification scheme %q", scheme))
	}

	s := &Store{
		scheme:  scheme,
		records: make([]Record, 0, len(records)),
		byId:    make(map[types.RecordId]int, len(records)),
		byRoute: make(map[string]int),
	}

	var problems []error

	declared := make(map[string]bool, len(cfg.categories))
	for _, c := range cfg.categories {
		if c.Name == "" {
			problems = append(problems, ErrMissingField.Msg("category name is required"))
			continue
		}
		if declared[c.Name] {
			problems = append(problems, ErrDuplicateCategory.Msg(fmt.Sprintf("category %q declared more than once", c.Name)))
			continue
		}
		declared[c.Name] = true
		s.categories = append(s.categories, c)
	}

	for pos, r := range records {
		if err := validateRecord(pos, r); err != nil {
			problems = append(problems, err...)
			continue
		}
		if !scheme.Contains(r.Classification) {
			problems = append(problems, ErrInvalidClassification.Msg(
				fmt.Sprintf("record %d: classification %q is not a %s level", r.Id, r.Classification, scheme)))
		}
		if len(cfg.categories) > 0 && !declared[r.Category] {
			problems = append(problems, ErrUnknownCategory.Msg(
				fmt.Sprintf("record %d: category %q is not declared", r.Id, r.Category)))
		}
		if prev, ok := s.byId[r.Id]; ok {
			problems = append(problems, ErrDuplicateRecordId.Msg(
				fmt.Sprintf("record id %d used at positions %d and %d", r.Id, prev, pos)))
			continue
		}
		if r.Route != "" {
			if !schemavalidator.ValidateRouteToken(r.Route) {
				problems = append(problems, ErrInvalidRoute.Msg(fmt.Sprintf("record %d: route %q", r.Id, r.Route)))
			} else if other, ok := s.byRoute[r.Route]; ok {
				problems = append(problems, ErrDuplicateRoute.Msg(
					fmt.Sprintf("route %q used by records %d and %d", r.Route, s.records[other].Id, r.Id)))
			} else {
				s.byRoute[r.Route] = len(s.records)
			}
		}
		s.byId[r.Id] = len(s.records)
		s.records = append(s.records, r.clone())
	}

	if len(problems) > 0 {
		return nil, ErrInvalidCatalog.Err(problems...)
	}

	if len(cfg.categories) == 0 {
		seen := make(map[string]bool)
		for _, r := range s.records {
			if !seen[r.Category] {
				seen[r.Category] = true
				s.categories = append(s.categories, Category{Name: r.Category})
			}
		}
	}
	return s, nil
}

func validateRecord(pos int, r Record) []error {
	err := schemavalidator.V().Struct(r)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []error{ErrInvalidCatalog.Err(err)}
	}
	var problems []error
	for _, e := range ve {
		switch e.Tag() {
		case "gt":
			problems = append(problems, ErrInvalidRecordId.Msg(fmt.Sprintf("record at position %d: id %v", pos, e.Value())))
		default:
			problems = append(problems, ErrMissingField.Msg(fmt.Sprintf("record %d: %s is required", r.Id, e.Field())))
		}
	}
	return problems
}

func (s *Store) Scheme() types.Scheme {
	return s.scheme
}

func (s *Store) Len() int {
	return len(s.records)
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.clone())
	}
	return out
}

// Get looks up a record by id. A miss is reported with ok == false.
func (s *Store) Get(id types.RecordId) (Record, bool) {
	i, ok := s.byId[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i].clone(), true
}

// ByRoute looks up a record by its navigation token.
func (s *Store) ByRoute(token string) (Record, bool) {
	i, ok := s.byRoute[token]
	if !ok {
		return Record{}, false
	}
	return s.records[i].clone(), true
}

// Categories returns the store's categories in display order.
func (s *Store) Categories() []Category {
	return slices.Clone(s.categories)
}
