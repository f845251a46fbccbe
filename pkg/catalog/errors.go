package catalog

import (
	"net/http"

	"github.com/mugiliam/contentcatalog/pkg/apperrors"
)

var (
	ErrInvalidCatalog        apperrors.Error = apperrors.New("invalid catalog").SetStatusCode(http.StatusBadRequest)
	ErrUnknownScheme         apperrors.Error = ErrInvalidCatalog.New("unknown classification scheme")
	ErrMissingField          apperrors.Error = ErrInvalidCatalog.New("missing required field")
	ErrInvalidRecordId       apperrors.Error = ErrInvalidCatalog.New("record id must be positive")
	ErrDuplicateRecordId     apperrors.Error = ErrInvalidCatalog.New("duplicate record id")
	ErrInvalidClassification apperrors.Error = ErrInvalidCatalog.New("classification not in scheme")
	ErrUnknownCategory       apperrors.Error = ErrInvalidCatalog.New("category not declared")
	ErrDuplicateCategory     apperrors.Error = ErrInvalidCatalog.New("duplicate category")
	ErrDuplicateRoute        apperrors.Error = ErrInvalidCatalog.New("duplicate route token")
	ErrInvalidRoute          apperrors.Error = ErrInvalidCatalog.New("invalid route token")
)
