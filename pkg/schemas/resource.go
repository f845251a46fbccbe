// Package schemas reads and validates catalog documents. Documents are YAML
// or JSON; YAML is converted to JSON with YAML 1.1 scalar rules before any
// validation. Under those rules the plain scalars y, Y, yes, n, N, no, on,
// off, true and false (also Yes, YES, Off and so on) are booleans, so labels
// with those spellings must be quoted:
//
//	records:
//	  - {id: 2, primaryText: Q2, detailText: A2, classification: hard, category: "Y"}
//
// An unquoted one is rejected with a type error on the field.
package schemas

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/mugiliam/contentcatalog/pkg/schemas/schemavalidator"
	"sigs.k8s.io/yaml"
)

type ResourceHeader struct {
	Version string `json:"version" validate:"required"`
	Kind    string `json:"kind" validate:"required,kindValidator"`
}

// ResourceSchema is the generic shape of every document.
type ResourceSchema struct {
	ResourceHeader
	Metadata json.RawMessage `json:"metadata"`
	Spec     json.RawMessage `json:"spec"`
}

func (rh *ResourceHeader) Validate() schemaerr.ValidationErrors {
	return collect("", schemavalidator.V().Struct(rh))
}

// ToJSON accepts a YAML or JSON document and returns its JSON form.
func ToJSON(doc []byte) ([]byte, error) {
	if len(doc) == 0 {
		return nil, schemaerr.ErrEmptySchema
	}
	j, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, schemaerr.ErrInvalidSchema.Err(err)
	}
	if string(j) == "null" {
		return nil, schemaerr.ErrEmptySchema
	}
	return j, nil
}

// ReadHeader decodes the version and kind of a JSON document without
// looking at the rest of it.
func ReadHeader(j []byte) (*ResourceHeader, error) {
	rh := &ResourceHeader{}
	if err := json.Unmarshal(j, rh); err != nil {
		return nil, schemaerr.ErrInvalidSchema.Err(err)
	}
	return rh, nil
}

// collect converts validator errors into ValidationErrors. Field paths are
// the JSON paths of the offending attributes, prefixed with prefix.
func collect(prefix string, err error) schemaerr.ValidationErrors {
	if err == nil {
		return nil
	}
	var ves schemaerr.ValidationErrors
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return append(ves, schemaerr.ErrInvalidFieldSchema(prefix))
	}
	for _, e := range ve {
		path := prefix + schemavalidator.FieldPath(e.Namespace())
		val, _ := e.Value().(string)
		switch e.Tag() {
		case "required":
			ves = append(ves, schemaerr.ErrMissingRequiredAttribute(path))
		case "kindValidator":
			ves = append(ves, schemaerr.ErrUnsupportedKind(path, val))
		case "nameFormatValidator":
			ves = append(ves, schemaerr.ErrInvalidNameFormat(path, val))
		case "routeTokenValidator":
			ves = append(ves, schemaerr.ErrInvalidRouteToken(path, val))
		case "schemeValidator":
			ves = append(ves, schemaerr.ErrUnsupportedScheme(path, val))
		case "classificationValidator":
			ves = append(ves, schemaerr.ErrInvalidClassification(path, val))
		case "colorValidator":
			ves = append(ves, schemaerr.ErrInvalidColor(path, val))
		case "gt":
			ves = append(ves, schemaerr.ValidationError{
				Field:  path,
				Value:  e.Value(),
				ErrStr: "must be a positive integer",
			})
		default:
			ves = append(ves, schemaerr.ErrValidationFailed(path, e.Value()))
		}
	}
	return ves
}
