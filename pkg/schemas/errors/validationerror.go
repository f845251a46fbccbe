package errors

import (
	"net/http"
	"strings"

	"github.com/mugiliam/contentcatalog/pkg/apperrors"
)

var (
	ErrSchemaValidation apperrors.Error = apperrors.New("error validating schema").SetStatusCode(http.StatusBadRequest)
	ErrInvalidSchema    apperrors.Error = ErrSchemaValidation.New("invalid schema")
	ErrEmptySchema      apperrors.Error = ErrSchemaValidation.New("empty schema")
	ErrInvalidVersion   apperrors.Error = ErrSchemaValidation.New("invalid version")
	ErrInvalidKind      apperrors.Error = ErrSchemaValidation.New("unsupported kind")
)

// ValidationError reports one invalid attribute of a document.
type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.ErrStr
	}
	return ve.Field + ": " + ve.ErrStr
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	s := make([]string, 0, len(ves))
	for _, ve := range ves {
		s = append(s, ve.Error())
	}
	return strings.Join(s, "; ")
}

// Err wraps the list into ErrInvalidSchema, or returns nil for an empty list.
func (ves ValidationErrors) Err() error {
	if len(ves) == 0 {
		return nil
	}
	return ErrInvalidSchema.Err(ves)
}

func InQuotes(s string) string {
	return "'" + s + "'"
}
