package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemount/pagemount/internal/domain"
)

func TestClient_Get(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{UserAgent: "pagemount-test"})

	resp, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok": true}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.ContentType)
	assert.Equal(t, server.URL, resp.URL)
	assert.Equal(t, "pagemount-test", gotUserAgent)
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(DefaultClientOptions())

	resp, err := client.Get(context.Background(), server.URL)

	assert.Nil(t, resp)
	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestClient_Get_TransportFailure(t *testing.T) {
	client := NewClient(DefaultClientOptions())

	resp, err := client.Get(context.Background(), "http://127.0.0.1:1")

	assert.Nil(t, resp)
	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
}

func TestClient_Get_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
	}))
	defer server.Close()

	client := NewClient(DefaultClientOptions())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, server.URL)

	assert.Error(t, err)
}
