package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := NewMetrics()

	m.ObserveQuery("operators", true)
	m.ObserveQuery("operators", true)
	m.ObserveQuery("operators", false)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("operators", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("operators", "false")))

	m.ObserveToggle("operators", true)
	m.ObserveToggle("operators", false)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toggles.WithLabelValues("operators", "expanded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toggles.WithLabelValues("operators", "collapsed")))

	m.ObserveLoad(3, nil)
	m.ObserveLoad(0, errors.New("bad document"))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.catalogs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("error")))
}

func TestHandlerAndMiddleware(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/catalogs/{catalogName}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/catalogs/nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `contentcatalog_http_request_duration_seconds_count{method="GET",route="/catalogs/{catalogName}",status="404"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
