// Package viewstore keeps the selection state of presentation views between
// requests.
package viewstore

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentcatalog/pkg/apperrors"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

var (
	ErrViewStore    apperrors.Error = apperrors.New("view store error").SetStatusCode(http.StatusInternalServerError)
	ErrViewNotFound apperrors.Error = ErrViewStore.New("view not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidView  apperrors.Error = ErrViewStore.New("invalid view").SetStatusCode(http.StatusBadRequest)
	ErrConflict     apperrors.Error = ErrViewStore.New("view modified concurrently").SetStatusCode(http.StatusConflict)
)

// View is the state of one presentation of a catalog.
type View struct {
	Id        string                 `json:"id"`
	Catalog   string                 `json:"catalog"`
	State     catalog.SelectionState `json:"state"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func newView(catalogName string) *View {
	now := time.Now().UTC()
	return &View{
		Id:        uuid.NewString(),
		Catalog:   catalogName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Selection returns the state machine of the view.
func (v *View) Selection() *catalog.Selection {
	return catalog.RestoreSelection(v.State)
}

type Store interface {
	// Create starts a view with nothing expanded.
	Create(ctx context.Context, catalogName string) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	// Update applies fn to the stored view and saves the result. fn sees a
	// consistent copy; concurrent updates of the same view are serialized.
	Update(ctx context.Context, id string, fn func(*View) error) (*View, error)
	// Delete discards the view. Deleting an unknown view is not an error.
	Delete(ctx context.Context, id string) error
	Close() error
}

// Toggle applies the expand/collapse transition for id to a stored view.
func Toggle(ctx context.Context, s Store, viewId string, id types.RecordId) (*View, error) {
	return s.Update(ctx, viewId, func(v *View) error {
		sel := v.Selection()
		sel.Toggle(id)
		v.State = sel.State()
		return nil
	})
}

// Clear collapses whatever a stored view has expanded.
func Clear(ctx context.Context, s Store, viewId string) (*View, error) {
	return s.Update(ctx, viewId, func(v *View) error {
		sel := v.Selection()
		sel.Clear()
		v.State = sel.State()
		return nil
	})
}

func validId(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
