package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exists":
			w.Write([]byte("hello"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewHTTPClient(Options{})
	require.NoError(t, err)

	text, err := client.Text(context.Background(), server.URL+"/exists")
	require.NoError(t, err)
	require.Equal(t, "hello", text)

	_, err = client.Text(context.Background(), server.URL+"/missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPClientCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("listing"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(Options{CacheSize: 16})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		text, err := client.Text(context.Background(), server.URL+"/dir/")
		require.NoError(t, err)
		require.Equal(t, "listing", text)
	}
	require.Equal(t, 1, hits)
}
