package schemas

import (
	"bytes"
	"encoding/json"

	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/mugiliam/contentcatalog/pkg/schemas/schemavalidator"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

// CatalogSchema is a catalog document:
//
//	version: v1
//	kind: Catalog
//	metadata:
//	  name: operators
//	spec:
//	  scheme: experience
//	  records: [...]
type CatalogSchema struct {
	ResourceHeader
	Metadata CatalogMetadata `json:"metadata"`
	Spec     CatalogSpec     `json:"spec"`
}

type CatalogMetadata struct {
	Name        string `json:"name" validate:"required,nameFormatValidator"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty" validate:"omitempty,colorValidator"`
	Level       string `json:"level,omitempty" validate:"omitempty,classificationValidator"`
}

type CatalogSpec struct {
	Scheme     string         `json:"scheme" validate:"required,schemeValidator"`
	Categories []CategorySpec `json:"categories,omitempty" validate:"dive"`
	Records    []RecordSpec   `json:"records" validate:"dive"`
}

type CategorySpec struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type RecordSpec struct {
	Id             int           `json:"id" validate:"gt=0"`
	PrimaryText    string        `json:"primaryText" validate:"required"`
	DetailText     string        `json:"detailText" validate:"required"`
	Classification string        `json:"classification" validate:"required,classificationValidator"`
	Category       string        `json:"category" validate:"required"`
	Route          string        `json:"route,omitempty" validate:"omitempty,routeTokenValidator"`
	UseCases       []string      `json:"useCases,omitempty"`
	Examples       []ExampleSpec `json:"examples,omitempty" validate:"dive"`
	Related        []string      `json:"related,omitempty" validate:"dive,routeTokenValidator"`
}

type ExampleSpec struct {
	Title       string `json:"title" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Explanation string `json:"explanation,omitempty"`
	Output      string `json:"output,omitempty"`
}

// ReadCatalogSchema decodes and validates a catalog document given as YAML
// or JSON. Structural problems and attribute problems are both reported as
// ErrInvalidSchema wrapping ValidationErrors.
func ReadCatalogSchema(doc []byte) (*CatalogSchema, error) {
	j, err := ToJSON(doc)
	if err != nil {
		return nil, err
	}
	rh, err := ReadHeader(j)
	if err != nil {
		return nil, err
	}
	if ves := rh.Validate(); ves != nil {
		return nil, ves.Err()
	}
	if rh.Version != types.CatalogVersion {
		return nil, schemaerr.ErrInvalidVersion.Msg("unsupported version " + schemaerr.InQuotes(rh.Version))
	}
	if ves := ValidateDocumentJSON(j); ves != nil {
		return nil, ves.Err()
	}

	cs, err := ParseCatalogSchema(j)
	if err != nil {
		return nil, err
	}
	if ves := cs.Validate(); ves != nil {
		return nil, ves.Err()
	}
	return cs, nil
}

// ParseCatalogSchema decodes a JSON catalog document without validating
// it. It is used for documents that were validated before being stored.
func ParseCatalogSchema(j []byte) (*CatalogSchema, error) {
	cs := &CatalogSchema{}
	dec := json.NewDecoder(bytes.NewReader(j))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cs); err != nil {
		return nil, schemaerr.ErrInvalidSchema.Err(err)
	}
	return cs, nil
}

func (cs *CatalogSchema) Validate() schemaerr.ValidationErrors {
	var ves schemaerr.ValidationErrors
	ves = append(ves, cs.ResourceHeader.Validate()...)
	ves = append(ves, collect("metadata.", schemavalidator.V().Struct(&cs.Metadata))...)
	ves = append(ves, collect("spec.", schemavalidator.V().Struct(&cs.Spec))...)
	if len(ves) == 0 {
		return nil
	}
	return ves
}

// ToJSON renders the schema back into its canonical JSON document.
func (cs *CatalogSchema) ToJSON() ([]byte, error) {
	return json.Marshal(cs)
}
