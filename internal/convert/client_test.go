package convert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpget/wp-downloader/internal/model"
)

func epubRequest() model.EpubRequest {
	return model.EpubRequest{
		StoryID:       999,
		IsEmbedImages: true,
		Cookies: []model.Cookie{
			{Name: "token", Value: "abc123", Domain: ".wattpad.com"},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, GeneratePath, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.EpubRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(999), req.StoryID)
		assert.True(t, req.IsEmbedImages)
		require.Len(t, req.Cookies, 1)
		assert.Equal(t, "token", req.Cookies[0].Name)

		w.Header().Set("Content-Type", "application/epub+zip")
		w.Header().Set("Content-Disposition", `attachment; filename="My Tale.epub"`)
		_, _ = w.Write([]byte("epub-bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Generate(context.Background(), epubRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, "My Tale.epub", result.Filename)
	assert.Equal(t, []byte("epub-bytes"), result.Data)
}

func TestGenerate_Utf8Disposition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="a b.epub"; filename*=UTF-8''a%20b.epub`)
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Generate(context.Background(), epubRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, "a b.epub", result.Filename)
}

func TestGenerate_FilenameFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Title known: sanitized title wins
	result, err := client.Generate(context.Background(), epubRequest(), "My Tale")
	require.NoError(t, err)
	assert.Equal(t, "My Tale.epub", result.Filename)

	// Nothing known: id-based fallback
	result, err = client.Generate(context.Background(), epubRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, "story-999.epub", result.Filename)
}

func TestGenerate_BackendErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), epubRequest(), "")
	require.Error(t, err)

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
	assert.Contains(t, backendErr.Error(), "quota exceeded")
}

func TestGenerate_BackendErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), epubRequest(), "")
	require.Error(t, err)

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "Service Unavailable", backendErr.Error())
}

func TestGenerate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), epubRequest(), "")
	require.Error(t, err)

	var backendErr *BackendError
	assert.False(t, errors.As(err, &backendErr), "transport errors are not backend errors")
}

func TestNewClient_DefaultURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBackendURL, client.baseURL)
}
