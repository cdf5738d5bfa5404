package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	hnhttp "github.com/fwojciec/hndigest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("<html>hello</html>"))
		}))
		defer srv.Close()

		fetcher := hnhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html>hello</html>", html)
	})

	t.Run("sends browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := hnhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, hnhttp.DefaultUserAgent, gotUA)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.Error(w, "gone", nethttp.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := hnhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("follows redirects by default", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		mux.HandleFunc("/target", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("landed"))
		})
		mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.Redirect(w, r, "/target", nethttp.StatusFound)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		fetcher := hnhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "landed", html)
	})

	t.Run("WithoutRedirects turns a redirect into an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.Redirect(w, r, "/elsewhere", nethttp.StatusMovedPermanently)
		}))
		defer srv.Close()

		fetcher := hnhttp.NewFetcher(hnhttp.WithoutRedirects())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 301")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		fetcher := hnhttp.NewFetcher(hnhttp.WithTimeout(30 * time.Second))
		defer fetcher.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := fetcher.Fetch(ctx, srv.URL)

		require.Error(t, err)
	})
}
