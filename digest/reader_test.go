package digest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/hndigest/digest"
	"github.com/fwojciec/hndigest/mock"
	"github.com/stretchr/testify/assert"
)

func TestPageReader_ReadWebpage(t *testing.T) {
	t.Parallel()

	t.Run("returns extracted text", func(t *testing.T) {
		t.Parallel()

		reader := &digest.PageReader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html><p>body</p></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractTextFn: func(html string) (string, error) {
					return "body", nil
				},
			},
		}

		text := reader.ReadWebpage(context.Background(), "https://example.com")

		assert.Equal(t, "body", text)
	})

	t.Run("fetch failure becomes an in-band error string", func(t *testing.T) {
		t.Parallel()

		reader := &digest.PageReader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
			Extractor: &mock.Extractor{
				ExtractTextFn: func(html string) (string, error) {
					t.Fatal("extractor must not be called after a fetch failure")
					return "", nil
				},
			},
		}

		text := reader.ReadWebpage(context.Background(), "https://down.example.com")

		assert.Equal(t, "Error fetching https://down.example.com: connection refused", text)
	})

	t.Run("extract failure becomes an in-band error string", func(t *testing.T) {
		t.Parallel()

		reader := &digest.PageReader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractTextFn: func(html string) (string, error) {
					return "", errors.New("bad markup")
				},
			},
		}

		text := reader.ReadWebpage(context.Background(), "https://example.com")

		assert.Contains(t, text, "Error fetching https://example.com: bad markup")
	})
}
