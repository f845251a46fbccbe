package catalogmanager

import (
	"sort"
	"sync"

	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
)

// Registry holds the catalogs being served, by name. Catalogs themselves
// are immutable; a reload swaps whole catalogs.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*catalog.Catalog
}

func NewRegistry(catalogs ...*catalog.Catalog) *Registry {
	r := &Registry{catalogs: make(map[string]*catalog.Catalog, len(catalogs))}
	for _, c := range catalogs {
		r.catalogs[c.Name()] = c
	}
	return r
}

// Put adds or replaces one catalog.
func (r *Registry) Put(c *catalog.Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs[c.Name()] = c
}

// Replace swaps the full set of catalogs in one step.
func (r *Registry) Replace(catalogs []*catalog.Catalog) {
	m := make(map[string]*catalog.Catalog, len(catalogs))
	for _, c := range catalogs {
		m[c.Name()] = c
	}
	r.mu.Lock()
	r.catalogs = m
	r.mu.Unlock()
}

func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.catalogs[name]; !ok {
		return false
	}
	delete(r.catalogs, name)
	return true
}

func (r *Registry) Get(name string) (*catalog.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[name]
	return c, ok
}

// Names returns the catalog names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.catalogs))
	for name := range r.catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.catalogs)
}

// Directory describes every catalog in name order.
func (r *Registry) Directory() []api.CatalogSummary {
	names := r.Names()
	out := make([]api.CatalogSummary, 0, len(names))
	for _, name := range names {
		if c, ok := r.Get(name); ok {
			out = append(out, Summarize(c))
		}
	}
	return out
}

// Summarize returns the directory entry of c.
func Summarize(c *catalog.Catalog) api.CatalogSummary {
	m := c.Metadata()
	cats := c.Index().Categories()
	labels := make([]string, 0, len(cats))
	for _, cat := range cats {
		labels = append(labels, cat.Name)
	}
	return api.CatalogSummary{
		Name:        m.Name,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		Level:       string(m.Level),
		Scheme:      c.Scheme(),
		RecordCount: c.Store().Len(),
		Categories:  labels,
	}
}
