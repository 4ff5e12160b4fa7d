package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentRevisions(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/d1/revisions", r.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "r2", "pageId": "p1", "documentId": "d1", "created": "2024-02-01T00:00:00Z"},
			{"id": "r1", "pageId": "p1", "documentId": "d1", "created": "2024-01-01T00:00:00Z"},
		})
	}))

	revisions, err := c.GetDocumentRevisions(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, "r2", revisions[0].ID)
	assert.Equal(t, 2024, revisions[1].Created.Year())
}

func TestGetPageRevisions(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/d1/pages/p1/revisions", r.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "r1", "pageId": "p1"}})
	}))

	revisions, err := c.GetPageRevisions(context.Background(), "d1", "p1")
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "p1", revisions[0].PageID)
}

func TestGetPageRevisionDiff(t *testing.T) {
	t.Run("returns the diff text", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/documents/d1/pages/p1/revisions/r1", r.URL.Path)
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<ins>added</ins>"))
		}))

		assert.Equal(t, "<ins>added</ins>", c.GetPageRevisionDiff(context.Background(), "d1", "p1", "r1"))
	})

	t.Run("failure yields empty string", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		assert.Equal(t, "", c.GetPageRevisionDiff(context.Background(), "d1", "p1", "r1"))
	})

	t.Run("missing ids yield empty string without a request", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request to %s", r.URL.Path)
			writeJSON(w, http.StatusOK, []map[string]any{{"id": "r1"}})
		}))

		assert.Equal(t, "", c.GetPageRevisionDiff(context.Background(), "d1", "p1", ""))
		assert.Equal(t, "", c.GetPageRevisionDiff(context.Background(), "d1", "", "r1"))
		assert.Equal(t, "", c.GetPageRevisionDiff(context.Background(), "", "p1", "r1"))
	})
}

func TestRollbackPage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents/d1/pages/p1/revisions/r1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	resp, err := c.RollbackPage(context.Background(), "d1", "p1", "r1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
