package viewstore

import (
	"context"
	"errors"
)

// Scoped restricts a Store to the views of one catalog. Views of any other
// catalog behave as if they did not exist.
type Scoped struct {
	Store
	Catalog string
}

func NewScoped(s Store, catalogName string) Scoped {
	return Scoped{Store: s, Catalog: catalogName}
}

// Create starts a view of the scoped catalog; catalogName is ignored.
func (s Scoped) Create(ctx context.Context, _ string) (*View, error) {
	return s.Store.Create(ctx, s.Catalog)
}

func (s Scoped) Get(ctx context.Context, id string) (*View, error) {
	v, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Catalog != s.Catalog {
		return nil, ErrViewNotFound
	}
	return v, nil
}

func (s Scoped) Update(ctx context.Context, id string, fn func(*View) error) (*View, error) {
	return s.Store.Update(ctx, id, func(v *View) error {
		if v.Catalog != s.Catalog {
			return ErrViewNotFound
		}
		return fn(v)
	})
}

func (s Scoped) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		if errors.Is(err, ErrViewNotFound) {
			return nil
		}
		return err
	}
	return s.Store.Delete(ctx, id)
}
