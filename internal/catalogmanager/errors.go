package catalogmanager

import (
	"net/http"

	"github.com/mugiliam/contentcatalog/pkg/apperrors"
)

var (
	ErrCatalogError       apperrors.Error = apperrors.New("error in processing catalog")
	ErrCatalogNotFound    apperrors.Error = ErrCatalogError.New("catalog not found").SetStatusCode(http.StatusNotFound)
	ErrRecordNotFound     apperrors.Error = ErrCatalogError.New("record not found").SetStatusCode(http.StatusNotFound)
	ErrDuplicateCatalog   apperrors.Error = ErrCatalogError.New("catalog defined more than once").SetStatusCode(http.StatusBadRequest)
	ErrUnableToLoad       apperrors.Error = ErrCatalogError.New("unable to load catalogs")
	ErrUnableToSave       apperrors.Error = ErrCatalogError.New("unable to save catalog").SetStatusCode(http.StatusInternalServerError)
	ErrStorageUnavailable apperrors.Error = ErrCatalogError.New("catalog storage not configured").SetStatusCode(http.StatusServiceUnavailable)
)
