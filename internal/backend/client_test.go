package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name: "string body wins",
			err:  &APIError{Status: 400, Body: []byte(`"Car not found"`)},
			want: "Car not found",
		},
		{
			name: "error field beats message field",
			err:  &APIError{Status: 422, Body: []byte(`{"error":"bad brand","message":"ignored"}`)},
			want: "bad brand",
		},
		{
			name: "message field when no error field",
			err:  &APIError{Status: 422, Body: []byte(`{"message":"validation failed"}`)},
			want: "validation failed",
		},
		{
			name: "plain text body",
			err:  &APIError{Status: 500, Body: []byte("upstream exploded")},
			want: "upstream exploded",
		},
		{
			name:     "json body without usable fields falls back",
			err:      &APIError{Status: 500, Body: []byte(`{"code":13}`)},
			fallback: "Failed to load cars.",
			want:     "Failed to load cars.",
		},
		{
			name:     "transport error text",
			err:      errors.New("dial tcp: connection refused"),
			fallback: "Failed to load cars.",
			want:     "dial tcp: connection refused",
		},
		{
			name:     "empty api error uses fallback",
			err:      &APIError{Status: 502},
			fallback: "Failed to save.",
			want:     "Failed to save.",
		},
		{
			name: "no fallback uses the fixed default",
			err:  &APIError{Status: 502},
			want: "Request failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorMessage(tc.err, tc.fallback))
		})
	}
}

func TestClientGetJSON(t *testing.T) {
	t.Run("sends bearer token and query", func(t *testing.T) {
		var gotAuth, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"items":[]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		var out map[string]any
		err := client.GetJSON(context.Background(), "/cars", "bearer-1", url.Values{"page": {"2"}}, &out)

		require.NoError(t, err)
		assert.Equal(t, "Bearer bearer-1", gotAuth)
		assert.Equal(t, "page=2", gotQuery)
	})

	t.Run("non-2xx becomes an APIError carrying the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no such car"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		err := client.GetJSON(context.Background(), "/cars/x", "", nil, nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "no such car", ErrorMessage(err, ""))
	})

	t.Run("omits authorization header without a token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		require.NoError(t, client.GetJSON(context.Background(), "/profile", "", nil, nil))
		assert.Empty(t, gotAuth)
	})
}

func TestClientVerbs(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client())
	ctx := context.Background()

	require.NoError(t, client.PostJSON(ctx, "/reviews", "t", map[string]any{"x": 1}, nil))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/reviews", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	require.NoError(t, client.PatchJSON(ctx, "/reviews/1", "t", map[string]any{}, nil))
	assert.Equal(t, http.MethodPatch, gotMethod)

	require.NoError(t, client.PutJSON(ctx, "/newsletter/1", "t", map[string]any{}, nil))
	assert.Equal(t, http.MethodPut, gotMethod)

	require.NoError(t, client.Delete(ctx, "/reviews/1", "t"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/reviews/1", gotPath)
}

func TestClientPostMultipart(t *testing.T) {
	type received struct {
		files  map[string][]string
		fields url.Values
	}
	var got received

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got.fields = r.MultipartForm.Value
		got.files = map[string][]string{}
		for field, headers := range r.MultipartForm.File {
			for _, h := range headers {
				got.files[field] = append(got.files[field], h.Filename)
			}
		}
		w.Write([]byte(`{"uploaded":2}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	files := []FilePart{
		{Field: "images", Filename: "front.jpg", Content: []byte("jpegdata")},
		{Field: "images", Filename: "rear.jpg", Content: []byte("jpegdata2")},
		{Field: "inspection_report", Filename: "report.pdf", Content: []byte("pdfdata")},
	}
	fields := [][2]string{
		{"images_view_type_0", "gallery"},
		{"images_gallery_category_0", "exterior"},
		{"images_kind_0", "exterior"},
		{"images_view_type_1", "gallery"},
		{"images_gallery_category_1", "interior"},
		{"images_kind_1", "interior"},
	}

	var out map[string]any
	err := client.PostMultipart(context.Background(), "/cars/c1/media", "bearer", files, fields, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"front.jpg", "rear.jpg"}, got.files["images"])
	assert.Equal(t, []string{"report.pdf"}, got.files["inspection_report"])
	assert.Equal(t, "exterior", got.fields.Get("images_gallery_category_0"))
	assert.Equal(t, "interior", got.fields.Get("images_kind_1"))
	assert.Equal(t, float64(2), out["uploaded"])
}
