package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/crocdb/gateway/catalog"
	"github.com/stretchr/testify/assert"
)

func TestBackendFailure_ProductionNeverLeaks(t *testing.T) {
	e, cat := setupTestServer(t)
	cat.err = errors.New("pq: connection refused on shard 3")

	rec := do(e, http.MethodGet, "/info", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "shard")
}

func TestBackendFailure_DebugSurfacesDetail(t *testing.T) {
	e, cat := setupTestServer(t, withDebug())
	cat.err = errors.New("pq: connection refused on shard 3")

	rec := do(e, http.MethodGet, "/info", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "shard 3")
}

func TestDeclaredStatusPassesThrough(t *testing.T) {
	e, cat := setupTestServer(t)
	cat.err = catalog.NewStatusError(http.StatusNotFound, "no entry with that slug")

	rec := do(e, http.MethodPost, "/entry", `{"slug": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestServiceUnavailablePassesThrough(t *testing.T) {
	e, cat := setupTestServer(t)
	cat.err = catalog.NewStatusError(http.StatusServiceUnavailable, "maintenance window")

	rec := do(e, http.MethodGet, "/platforms", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Service Unavailable"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := do(e, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestWrongMethod(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := do(e, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}
