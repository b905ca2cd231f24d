package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearch_ForwardsFilters(t *testing.T) {
	var got SearchFilters

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode upstream body: %v", err)
		}
		w.Write([]byte(`{"results":[],"current_results":0}`))
	}))
	defer upstream.Close()

	c, err := NewClient(upstream.URL)
	require.NoError(t, err)

	raw, err := c.Search(context.Background(), SearchFilters{
		SearchKey:  "mario",
		Platforms:  []string{"snes"},
		Regions:    []string{"eu"},
		MaxResults: 100,
		Page:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, "mario", got.SearchKey)
	assert.Equal(t, []string{"snes"}, got.Platforms)
	assert.Equal(t, []string{"eu"}, got.Regions)
	assert.Equal(t, 100, got.MaxResults)
	assert.Equal(t, 1, got.Page)
	assert.JSONEq(t, `{"results":[],"current_results":0}`, string(raw))
}

func TestClientEntry_PassthroughPreservesBytes(t *testing.T) {
	// Key order must survive the round trip, so the body is compared raw.
	const payload = `{"slug":"mario-64","title":"Mario 64","platform":"n64"}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req entryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode upstream body: %v", err)
		}
		assert.Equal(t, "mario-64", req.Slug)
		assert.False(t, req.Random)
		w.Write([]byte(payload))
	}))
	defer upstream.Close()

	c, err := NewClient(upstream.URL)
	require.NoError(t, err)

	raw, err := c.Entry(context.Background(), "mario-64", false)
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestClientEntry_Random(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req entryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode upstream body: %v", err)
		}
		assert.True(t, req.Random)
		assert.Empty(t, req.Slug)
		w.Write([]byte(`{"slug":"random-pick"}`))
	}))
	defer upstream.Close()

	c, err := NewClient(upstream.URL)
	require.NoError(t, err)

	_, err = c.Entry(context.Background(), "", true)
	require.NoError(t, err)
}

func TestClientUpstreamError_BecomesStatusError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such entry", http.StatusNotFound)
	}))
	defer upstream.Close()

	c, err := NewClient(upstream.URL)
	require.NoError(t, err)

	_, err = c.Entry(context.Background(), "missing", false)
	require.Error(t, err)

	se, ok := err.(*StatusError)
	require.True(t, ok, "expected *StatusError, got %T", err)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Message, "no such entry")
}

func TestClientUnreachable(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.Info(context.Background())
	require.Error(t, err)
	_, ok := err.(*StatusError)
	assert.False(t, ok, "transport failures must not carry a declared status")
}
