package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/contentcatalog/catalogs"
	"github.com/mugiliam/contentcatalog/internal/catalogmanager"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the embedded catalogs from an in-memory view store.
func newTestServer(t *testing.T) *CatalogServer {
	ctx := log.Logger.WithContext(context.Background())
	src := catalogmanager.Sources{Embedded: catalogs.FS}
	loaded, err := src.Load(ctx)
	require.NoError(t, err, "load embedded catalogs")

	s, err := CreateNewServer(
		WithRegistry(catalogmanager.NewRegistry(loaded...)),
		WithSources(src),
	)
	require.NoError(t, err, "create new server")
	s.MountHandlers()
	return s
}

func executeTestRequest(t *testing.T, s *CatalogServer, req *http.Request) *httptest.ResponseRecorder {
	if s == nil {
		s = newTestServer(t)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}

func decodeJson(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}
