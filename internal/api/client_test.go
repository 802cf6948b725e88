package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		BaseURL:        srv.URL,
		Timeout:        5 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, logger)
}

func TestRegister_SendsForm(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "User 1", r.PostForm.Get("name"))
		require.Equal(t, "user@example.com", r.PostForm.Get("email"))
		require.Equal(t, "secret123", r.PostForm.Get("password"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"User created"}`))
	}))

	resp, err := client.Register(context.Background(), "User 1", "user@example.com", "secret123")
	require.NoError(t, err)
	require.False(t, resp.Error)
	require.Equal(t, "User created", resp.Message)
}

func TestLogin_DecodesResult(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":false,"message":"success","loginResult":{"userId":"user-1","name":"User 1","token":"abc"}}`))
	}))

	resp, err := client.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, resp.LoginResult)
	require.Equal(t, "abc", resp.LoginResult.Token)
	require.Equal(t, "User 1", resp.LoginResult.Name)
}

func TestStories_SetsBearerAndQuery(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "5", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(`{"error":false,"message":"ok","listStory":[{"id":"story-1","name":"User 1"}]}`))
	}))

	resp, err := client.Stories(context.Background(), "abc", 2, 5)
	require.NoError(t, err)
	require.Len(t, resp.ListStory, 1)
	require.Equal(t, "story-1", resp.ListStory[0].ID)
}

func TestStoriesWithLocation_SetsQuery(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("location"))
		_, _ = w.Write([]byte(`{"error":false,"message":"ok","listStory":[]}`))
	}))

	_, err := client.StoriesWithLocation(context.Background(), "abc")
	require.NoError(t, err)
}

func TestFetchPage_UnwrapsLogicalFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":true,"message":"token expired","listStory":[]}`))
	}))

	_, err := client.FetchPage(context.Background(), "abc", 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "token expired")
}

func TestFetchPage_RetriesOnServerError(t *testing.T) {
	var calls int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"error":false,"message":"ok","listStory":[{"id":"story-1"}]}`))
	}))

	items, err := client.FetchPage(context.Background(), "abc", 1, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, calls)
}

func TestDo_NonOKReturnsTransportError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true,"message":"Missing authentication"}`))
	}))

	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	require.Equal(t, http.StatusUnauthorized, transport.StatusCode)
	require.Contains(t, string(transport.Body), "Missing authentication")
}

func TestPostStory_SendsMultipart(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/stories", r.URL.Path)
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(2<<20))
		require.Equal(t, "a sunny day", r.FormValue("description"))
		require.Equal(t, "-6.2", r.FormValue("lat"))
		require.Equal(t, "106.8", r.FormValue("lon"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "photo.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"error":false,"message":"Story created"}`))
	}))

	lat, lon := -6.2, 106.8
	resp, err := client.PostStory(context.Background(), "abc", []byte{0xff, 0xd8}, "photo.jpg", "a sunny day", &lat, &lon)
	require.NoError(t, err)
	require.Equal(t, "Story created", resp.Message)
}

func TestPostStory_OmitsMissingCoordinates(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(2<<20))
		_, hasLat := r.MultipartForm.Value["lat"]
		_, hasLon := r.MultipartForm.Value["lon"]
		require.False(t, hasLat)
		require.False(t, hasLon)
		_, _ = w.Write([]byte(`{"error":false,"message":"Story created"}`))
	}))

	_, err := client.PostStory(context.Background(), "abc", []byte{0xff, 0xd8}, "photo.jpg", "no location", nil, nil)
	require.NoError(t, err)
}
