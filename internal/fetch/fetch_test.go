package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchStoresByContentHash(t *testing.T) {
	body := "SECTION 1: Identification\nProduct Name: Acetone\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheDir: t.TempDir()}, nil)
	res, err := f.Fetch(context.Background(), srv.URL+"/sheets/acetone.txt")
	require.NoError(t, err)

	assert.Len(t, res.ContentHash, 64)
	assert.True(t, strings.HasSuffix(res.Path, res.ContentHash+".txt"))
	assert.Equal(t, int64(len(body)), res.Size)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	// same content fetched twice lands on the same path
	res2, err := f.Fetch(context.Background(), srv.URL+"/sheets/acetone.txt")
	require.NoError(t, err)
	assert.Equal(t, res.Path, res2.Path)
}

func TestFetchRejectsOversizedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheDir: t.TempDir(), MaxSizeBytes: 1024}, nil)
	_, err := f.Fetch(context.Background(), srv.URL+"/big.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size cap")
}

func TestFetchRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheDir: t.TempDir()}, nil)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchRejectsUnsupportedExtension(t *testing.T) {
	f := NewFetcher(Config{CacheDir: t.TempDir()}, nil)
	_, err := f.Fetch(context.Background(), "https://example.com/sheet.docx")
	require.Error(t, err)
}

func TestFetchDefaultsExtensionlessURLToPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheDir: t.TempDir()}, nil)
	res, err := f.Fetch(context.Background(), srv.URL+"/download")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Path, ".pdf"))
}

func TestHashFileMatchesFetchHash(t *testing.T) {
	body := "same bytes either way"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewFetcher(Config{CacheDir: t.TempDir()}, nil)
	res, err := f.Fetch(context.Background(), srv.URL+"/a.txt")
	require.NoError(t, err)

	hash, size, err := HashFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, res.ContentHash, hash)
	assert.Equal(t, res.Size, size)
}
