package schemas

import (
	"strings"
	"sync"

	schemaerr "github.com/mugiliam/contentcatalog/pkg/schemas/errors"
	"github.com/xeipuuv/gojsonschema"
)

// catalogDocumentSchema describes the shape of a v1 catalog document. It
// only checks structure; attribute formats are checked by the validator tags.
const catalogDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "kind", "metadata", "spec"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "kind": {"type": "string"},
    "metadata": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "subtitle": {"type": "string"},
        "description": {"type": "string"},
        "icon": {"type": "string"},
        "color": {"type": "string"},
        "level": {"type": "string"}
      }
    },
    "spec": {
      "type": "object",
      "required": ["scheme"],
      "additionalProperties": false,
      "properties": {
        "scheme": {"type": "string"},
        "categories": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name"],
            "additionalProperties": false,
            "properties": {
              "name": {"type": "string"},
              "description": {"type": "string"},
              "icon": {"type": "string"}
            }
          }
        },
        "records": {
          "type": "array",
          "items": {"$ref": "#/definitions/record"}
        }
      }
    }
  },
  "definitions": {
    "record": {
      "type": "object",
      "required": ["id", "primaryText", "detailText", "classification", "category"],
      "additionalProperties": false,
      "properties": {
        "id": {"type": "integer"},
        "primaryText": {"type": "string"},
        "detailText": {"type": "string"},
        "classification": {"type": "string"},
        "category": {"type": "string"},
        "route": {"type": "string"},
        "useCases": {"type": "array", "items": {"type": "string"}},
        "related": {"type": "array", "items": {"type": "string"}},
        "examples": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title", "code"],
            "additionalProperties": false,
            "properties": {
              "title": {"type": "string"},
              "code": {"type": "string"},
              "explanation": {"type": "string"},
              "output": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var (
	documentSchema     *gojsonschema.Schema
	documentSchemaOnce sync.Once
)

func loadDocumentSchema() *gojsonschema.Schema {
	documentSchemaOnce.Do(func() {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(catalogDocumentSchema))
		if err != nil {
			panic("invalid catalog document schema: " + err.Error())
		}
		documentSchema = s
	})
	return documentSchema
}

// ValidateDocumentJSON checks the structure of a JSON catalog document.
func ValidateDocumentJSON(j []byte) schemaerr.ValidationErrors {
	result, err := loadDocumentSchema().Validate(gojsonschema.NewBytesLoader(j))
	if err != nil {
		return schemaerr.ValidationErrors{schemaerr.ErrInvalidFieldSchema("")}
	}
	if result.Valid() {
		return nil
	}
	var ves schemaerr.ValidationErrors
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			field = ""
		}
		field = strings.TrimPrefix(field, "(root).")
		ves = append(ves, schemaerr.ValidationError{
			Field:  field,
			Value:  re.Value(),
			ErrStr: re.Description(),
		})
	}
	return ves
}
