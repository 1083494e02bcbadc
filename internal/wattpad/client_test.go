package wattpad

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryGroupID(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v3/story_parts/555", r.URL.Path)
		assert.Equal(t, "groupId", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"groupId": 999}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	groupID, err := client.StoryGroupID(context.Background(), "555")
	require.NoError(t, err)
	assert.Equal(t, "999", groupID)
	assert.Equal(t, 1, calls)
}

func TestStoryGroupID_StringID(t *testing.T) {
	// Some API variants quote the id; both forms must resolve.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"groupId": "999"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	groupID, err := client.StoryGroupID(context.Background(), "555")
	require.NoError(t, err)
	assert.Equal(t, "999", groupID)
}

func TestStoryGroupID_MissingGroupID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.StoryGroupID(context.Background(), "555")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no groupId")
}

func TestStoryGroupID_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.StoryGroupID(context.Background(), "555")
	require.Error(t, err)
}

func TestStoryGroupID_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.StoryGroupID(context.Background(), "555")
	require.Error(t, err)
}

func TestStoryTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/stories/999", r.URL.Path)
		assert.Equal(t, "title", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"title": "My Tale"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	title, err := client.StoryTitle(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "My Tale", title)
}

func TestStoryTitle_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title": ""}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.StoryTitle(context.Background(), "999")
	require.Error(t, err)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
