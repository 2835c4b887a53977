package panel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/models"
)

type recordingBackend struct {
	mu       sync.Mutex
	requests []string
	handler  http.HandlerFunc
	server   *httptest.Server
}

func newRecordingBackend(t *testing.T, handler http.HandlerFunc) *recordingBackend {
	t.Helper()

	rb := &recordingBackend{handler: handler}
	rb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rb.mu.Lock()
		rb.requests = append(rb.requests, r.Method+" "+r.URL.Path)
		rb.mu.Unlock()
		rb.handler(w, r)
	}))
	t.Cleanup(rb.server.Close)
	return rb
}

func (rb *recordingBackend) calls() []string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	out := make([]string, len(rb.requests))
	copy(out, rb.requests)
	return out
}

func (rb *recordingBackend) client() *backend.Client {
	return backend.NewClient(rb.server.URL, rb.server.Client())
}

func TestControllerLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the items envelope", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[{"reviewer_name":"Alice","rating":5}]}`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		items, err := c.Load(ctx, "token", nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Alice", items[0].ReviewerName)
	})

	t.Run("falls back to a bare array", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"reviewer_name":"Bob"},{"reviewer_name":"Carol"}]`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		items, err := c.Load(ctx, "token", nil)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("failure leaves the prior list untouched", func(t *testing.T) {
		fail := false
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			if fail {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"boom"}`))
				return
			}
			w.Write([]byte(`{"items":[{"reviewer_name":"Alice"}]}`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		_, err := c.Load(ctx, "token", nil)
		require.NoError(t, err)

		fail = true
		_, err = c.Load(ctx, "token", nil)
		require.Error(t, err)

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, "Alice", snapshot[0].ReviewerName)
	})

	t.Run("stale response is discarded in favor of the newer load", func(t *testing.T) {
		firstArrived := make(chan struct{})
		releaseFirst := make(chan struct{})

		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("page") {
			case "1":
				close(firstArrived)
				<-releaseFirst
				w.Write([]byte(`{"items":[{"reviewer_name":"stale"}]}`))
			default:
				w.Write([]byte(`{"items":[{"reviewer_name":"fresh"}]}`))
			}
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.Load(ctx, "token", url.Values{"page": {"1"}})
			// The slow load returns the applied state, not its own stale rows.
			assert.NoError(t, err)
			assert.Len(t, items, 1)
			assert.Equal(t, "fresh", items[0].ReviewerName)
		}()

		<-firstArrived
		_, err := c.Load(ctx, "token", url.Values{"page": {"2"}})
		require.NoError(t, err)

		close(releaseFirst)
		wg.Wait()

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, "fresh", snapshot[0].ReviewerName)
	})
}

func TestControllerCreate(t *testing.T) {
	ctx := context.Background()

	rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"reviewer_name":"Dana","rating":4}`))
			return
		}
		w.Write([]byte(`{"items":[{"reviewer_name":"Dana","rating":4}]}`))
	})
	c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

	created, err := c.Create(ctx, "token", map[string]any{"name": "Dana", "rating": 4})
	require.NoError(t, err)
	assert.Equal(t, "Dana", created.ReviewerName)

	assert.Equal(t, []string{"POST /reviews", "GET /reviews"}, rb.calls())
	assert.Len(t, c.Snapshot(), 1)
}

func TestControllerUpdateVerbs(t *testing.T) {
	ctx := context.Background()

	t.Run("patch by default", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		_, err := c.Update(ctx, "token", "r1", map[string]any{"rating": 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"PATCH /reviews/r1", "GET /reviews"}, rb.calls())
	})

	t.Run("put for the panels that use it upstream", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		})
		c := NewController[models.NewsletterSubscription](rb.client(), "newsletter", "/newsletter", UpdateWithPut)

		_, err := c.Update(ctx, "token", "n1", map[string]any{"email": "x@y.z"})
		require.NoError(t, err)
		assert.Equal(t, []string{"PUT /newsletter/n1", "GET /newsletter"}, rb.calls())
	})
}

func TestControllerRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("declined confirmation makes zero backend calls", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		err := c.Remove(ctx, "token", "r1", false)
		assert.ErrorIs(t, err, ErrCanceled)
		assert.Empty(t, rb.calls())
	})

	t.Run("confirmed delete issues one delete and one reload", func(t *testing.T) {
		rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		})
		c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

		require.NoError(t, c.Remove(ctx, "token", "r1", true))
		assert.Equal(t, []string{"DELETE /reviews/r1", "GET /reviews"}, rb.calls())
	})
}

func TestControllerReloadKeepsFilters(t *testing.T) {
	ctx := context.Background()

	var queries []string
	rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Write([]byte(`{"items":[]}`))
	})
	c := NewController[models.Review](rb.client(), "reviews", "/reviews", UpdateWithPatch)

	_, err := c.Load(ctx, "token", url.Values{"status": {"published"}})
	require.NoError(t, err)

	_, err = c.Reload(ctx, "token")
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "status=published", queries[1])
}

func TestRegistry(t *testing.T) {
	rb := newRecordingBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	registry := NewRegistry(rb.client())

	first := registry.Get("sid-1")
	assert.Same(t, first, registry.Get("sid-1"), "set is reused per session")
	assert.NotSame(t, first, registry.Get("sid-2"), "sessions do not share panel state")

	registry.Drop("sid-1")
	assert.NotSame(t, first, registry.Get("sid-1"), "dropped session starts fresh")
}
