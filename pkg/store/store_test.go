package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/docview/pkg/models"
)

// decodeJSON mirrors how the client decodes response bodies.
func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var out map[string]any
	require.NoError(t, dec.Decode(&out))
	return out
}

func TestNormalize(t *testing.T) {
	s := New(hclog.NewNullLogger())

	t.Run("canonicalizes keys and extracts id", func(t *testing.T) {
		rec, err := s.Normalize(TypePage, map[string]any{
			"id":          "p1",
			"document_id": "d1",
			"Title":       "Intro",
		})
		require.NoError(t, err)

		assert.Equal(t, TypePage, rec.Type)
		assert.Equal(t, "p1", rec.ID)
		assert.Equal(t, "d1", rec.Attributes["documentId"])
		assert.Equal(t, "Intro", rec.Attributes["title"])
	})

	t.Run("numeric id", func(t *testing.T) {
		rec, err := s.Normalize(TypeDocument, decodeJSON(t, `{"id": 42}`))
		require.NoError(t, err)
		assert.Equal(t, "42", rec.ID)
	})

	t.Run("page meta is identified by page id", func(t *testing.T) {
		rec, err := s.Normalize(TypePageMeta, map[string]any{"pageId": "p1", "documentId": "d1"})
		require.NoError(t, err)
		assert.Equal(t, "p1", rec.ID)
		assert.Equal(t, "p1", rec.Attributes["id"])
	})

	t.Run("missing identity", func(t *testing.T) {
		_, err := s.Normalize(TypePage, map[string]any{"title": "no id"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})

	t.Run("nil record", func(t *testing.T) {
		_, err := s.Normalize(TypeFolder, nil)
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := s.Normalize(Type("widget"), map[string]any{"id": "w1"})
		assert.ErrorIs(t, err, ErrUnknownType)
	})
}

func TestPush_Identity(t *testing.T) {
	s := New(hclog.NewNullLogger())

	first, err := PushAs[*models.Page](s, TypePage, map[string]any{
		"id": "p1", "title": "Draft", "body": "<p>hello</p>", "sequence": 1024,
	})
	require.NoError(t, err)

	var last *models.Page
	for i := 0; i < 5; i++ {
		last, err = PushAs[*models.Page](s, TypePage, map[string]any{
			"id": "p1", "title": fmt.Sprintf("Title %d", i), "sequence": 2048 + i,
		})
		require.NoError(t, err)
		assert.Same(t, first, last)
	}

	assert.Equal(t, 1, s.Len(TypePage))
	assert.Equal(t, "Title 4", last.Title)
	assert.Equal(t, float64(2052), last.Sequence)
	// Fields absent from later pushes keep their cached values.
	assert.Equal(t, "<p>hello</p>", last.Body)

	cached, ok := GetAs[*models.Page](s, TypePage, "p1")
	require.True(t, ok)
	assert.Same(t, first, cached)

	t.Run("explicit null clears the field", func(t *testing.T) {
		s := New(hclog.NewNullLogger())

		old, err := PushAs[*models.Page](s, TypePage, map[string]any{"id": "p", "body": "old", "title": "T"})
		require.NoError(t, err)

		cleared, err := PushAs[*models.Page](s, TypePage, map[string]any{"id": "p", "body": nil})
		require.NoError(t, err)
		assert.Same(t, old, cleared)
		assert.Equal(t, "", cleared.Body)
		assert.Equal(t, "T", cleared.Title)

		_, err = PushAs[*models.Page](s, TypePage, map[string]any{"id": "p", "body": "new"})
		require.NoError(t, err)
		_, err = PushAs[*models.Page](s, TypePage, map[string]any{"id": "p", "title": "U"})
		require.NoError(t, err)
		assert.Equal(t, "new", old.Body)
		assert.Equal(t, "U", old.Title)
	})
}

func TestPush_WeakTyping(t *testing.T) {
	s := New(hclog.NewNullLogger())

	page, err := PushAs[*models.Page](s, TypePage, decodeJSON(t, `{
		"id": "p1",
		"documentId": 7,
		"level": "2",
		"sequence": 1536.5,
		"status": 2,
		"created": "2024-03-01 10:20:30",
		"revised": 1700000000
	}`))
	require.NoError(t, err)

	assert.Equal(t, "7", page.DocumentID)
	assert.Equal(t, 2, page.Level)
	assert.Equal(t, 1536.5, page.Sequence)
	assert.Equal(t, models.ChangeStateUnderReview, page.Status)
	assert.Equal(t, 2024, page.Created.Year())
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), page.Revised)
}

func TestPush_MalformedRecordLeavesInstanceUntouched(t *testing.T) {
	s := New(hclog.NewNullLogger())

	page, err := PushAs[*models.Page](s, TypePage, map[string]any{"id": "p1", "title": "Good"})
	require.NoError(t, err)

	_, err = PushAs[*models.Page](s, TypePage, map[string]any{
		"id": "p1", "title": "Bad", "level": []any{"not", "a", "number"},
	})
	require.Error(t, err)

	assert.Equal(t, "Good", page.Title)
}

func TestPush_OpaqueRecords(t *testing.T) {
	s := New(hclog.NewNullLogger())

	perm, err := PushAs[*models.SpacePermission](s, TypeSpacePermission, map[string]any{
		"spaceId": "s1", "spaceView": true, "spaceManage": false,
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", perm.ID)
	assert.Equal(t, true, perm.Attributes["spaceView"])
	assert.Equal(t, false, perm.Attributes["spaceManage"])
}

func TestPush_DerivedTypesRejectRecords(t *testing.T) {
	s := New(hclog.NewNullLogger())

	rec, err := s.Normalize(TypePageContainer, map[string]any{"id": "p1"})
	require.NoError(t, err)

	_, err = s.Push(rec)
	assert.Error(t, err)
}

func TestUpsert(t *testing.T) {
	s := New(hclog.NewNullLogger())

	first, err := Upsert(s, TypePageContainer, &models.PageContainer{ID: "p1"})
	require.NoError(t, err)

	second, err := Upsert(s, TypePageContainer, &models.PageContainer{
		ID:                    "p1",
		UserHasNewPagePending: true,
	})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.UserHasNewPagePending)
	assert.Equal(t, 1, s.Len(TypePageContainer))

	_, err = Upsert(s, TypePagePending, &models.PagePending{})
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestPush_ConcurrentLastWriterWins(t *testing.T) {
	s := New(hclog.NewNullLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := PushAs[*models.Document](s, TypeDocument, map[string]any{
				"id": "d1", "name": fmt.Sprintf("v%d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len(TypeDocument))
	doc, ok := GetAs[*models.Document](s, TypeDocument, "d1")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(doc.Title, "v"))
}

func TestClear(t *testing.T) {
	s := New(hclog.NewNullLogger())

	_, err := PushAs[*models.Folder](s, TypeFolder, map[string]any{"id": "f1", "name": "Eng"})
	require.NoError(t, err)

	s.Clear()

	_, ok := s.Get(TypeFolder, "f1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len(TypeFolder))
}
