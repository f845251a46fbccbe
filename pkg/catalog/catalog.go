package catalog

import (
	"github.com/mugiliam/contentcatalog/pkg/types"
)

// Metadata describes a catalog as a whole.
type Metadata struct {
	Name        string               `json:"name"`
	Title       string               `json:"title,omitempty"`
	Subtitle    string               `json:"subtitle,omitempty"`
	Description string               `json:"description,omitempty"`
	Icon        string               `json:"icon,omitempty"`
	Color       string               `json:"color,omitempty"`
	Level       types.Classification `json:"level,omitempty"`
}

// Catalog bundles a record store with its index and metadata. Selection
// state is owned by each view and created with NewSelection.
type Catalog struct {
	meta  Metadata
	store *Store
	index *Index
}

// New builds a catalog, failing if the metadata or any record is invalid.
func New(meta Metadata, scheme types.Scheme, records []Record, opts ...StoreOption) (*Catalog, error) {
	if meta.Name == "" {
		return nil, ErrMissingField.Msg("catalog name is required")
	}
	s, err := NewStore(scheme, records, opts...)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		meta:  meta,
		store: s,
		index: NewIndex(s),
	}, nil
}

func (c *Catalog) Name() string {
	return c.meta.Name
}

func (c *Catalog) Metadata() Metadata {
	return c.meta
}

func (c *Catalog) Scheme() types.Scheme {
	return c.store.scheme
}

func (c *Catalog) Store() *Store {
	return c.store
}

func (c *Catalog) Index() *Index {
	return c.index
}

func (c *Catalog) Query(opts ...QueryOption) []Record {
	return c.index.Query(opts...)
}

func (c *Catalog) Get(id types.RecordId) (Record, bool) {
	return c.store.Get(id)
}

func (c *Catalog) ByRoute(token string) (Record, bool) {
	return c.store.ByRoute(token)
}

// Route returns the navigation token of a record, or "" when the record is
// unknown or has none. The catalog never navigates by itself.
func (c *Catalog) Route(id types.RecordId) string {
	r, ok := c.store.Get(id)
	if !ok {
		return ""
	}
	return r.Route
}

// Related resolves the related route tokens of a record. Tokens that match
// no record are skipped.
func (c *Catalog) Related(id types.RecordId) []Record {
	r, ok := c.store.Get(id)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(r.Related))
	for _, token := range r.Related {
		if rel, ok := c.store.ByRoute(token); ok {
			out = append(out, rel)
		}
	}
	return out
}

func (c *Catalog) NewSelection() *Selection {
	return NewSelection()
}

// Resolve returns the record a selection points at. A collapsed selection,
// or one holding an id this catalog does not know, yields ok == false.
func (c *Catalog) Resolve(sel *Selection) (Record, bool) {
	id, ok := sel.Expanded()
	if !ok {
		return Record{}, false
	}
	return c.store.Get(id)
}

// Color returns the display color of a classification in this catalog's scheme.
func (c *Catalog) Color(cls types.Classification) string {
	return c.store.scheme.Color(cls)
}
