package catalog

import (
	"slices"

	"github.com/mugiliam/contentcatalog/pkg/types"
)

// Record is one static entry of a catalog: an interview question, an
// operator, an observable. Records are read-only once added to a store.
type Record struct {
	Id             types.RecordId       `json:"id" validate:"gt=0"`
	PrimaryText    string               `json:"primaryText" validate:"required"`
	DetailText     string               `json:"detailText" validate:"required"`
	Classification types.Classification `json:"classification" validate:"required"`
	Category       string               `json:"category" validate:"required"`
	Route          string               `json:"route,omitempty"`
	UseCases       []string             `json:"useCases,omitempty"`
	Examples       []Example            `json:"examples,omitempty"`
	Related        []string             `json:"related,omitempty"`
}

// Example is a runnable snippet attached to a record's detail view.
type Example struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Explanation string `json:"explanation,omitempty"`
	Output      string `json:"output,omitempty"`
}

// Category is a named group of records with optional display metadata.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

func (r Record) clone() Record {
	r.UseCases = slices.Clone(r.UseCases)
	r.Examples = slices.Clone(r.Examples)
	r.Related = slices.Clone(r.Related)
	return r
}
