package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/qrsafety/sds-pipeline/constants"
)

type Config struct {
	Timeout      time.Duration // default 60s
	MaxSizeBytes int64         // default 25MB
	CacheDir     string        // default "./tmp"
}

// Result describes a downloaded source document.
type Result struct {
	Path        string
	ContentHash string // sha256 hex, used for dedup
	Size        int64
	ContentType string
}

type Fetcher struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxSizeBytes <= 0 {
		cfg.MaxSizeBytes = 25 << 20
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "./tmp"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Fetch downloads a source document and stores it in the cache dir keyed by
// content hash. The extension is taken from the URL path so the extractor can
// pick its strategy.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Result, error) {
	start := time.Now()

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Result{}, fmt.Errorf("unsupported source url %q", rawURL)
	}

	ext := constants.NormalizeExt(path.Ext(u.Path))
	if ext == "" {
		ext = constants.PDFExt
	}
	if !constants.IsAllowedExt(ext) {
		return Result{}, fmt.Errorf("unsupported document extension %q", ext)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("fetch.download_error", "url", rawURL, "error", err)
		return Result{}, fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.logger.Warn("fetch.body_close_error", "url", rawURL, "error", cerr)
		}
	}()

	if resp.StatusCode/100 != 2 {
		f.logger.Error("fetch.bad_status", "url", rawURL, "status", resp.StatusCode)
		return Result{}, fmt.Errorf("download %s: status %d", rawURL, resp.StatusCode)
	}

	if err := os.MkdirAll(f.cfg.CacheDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.cfg.CacheDir, "fetch-*")
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	h := sha256.New()
	// +1 so we can tell "exactly at cap" from "over cap"
	n, err := io.Copy(io.MultiWriter(tmp, h), io.LimitReader(resp.Body, f.cfg.MaxSizeBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Result{}, fmt.Errorf("read body: %w", err)
	}
	if n > f.cfg.MaxSizeBytes {
		return Result{}, fmt.Errorf("document exceeds size cap (%d bytes)", f.cfg.MaxSizeBytes)
	}
	if n == 0 {
		return Result{}, fmt.Errorf("empty document at %s", rawURL)
	}

	hashHex := hex.EncodeToString(h.Sum(nil))
	final := filepath.Join(f.cfg.CacheDir, hashHex+"."+ext)
	if err := os.Rename(tmp.Name(), final); err != nil {
		return Result{}, fmt.Errorf("store document: %w", err)
	}

	f.logger.Info("fetch.ok",
		"url", rawURL,
		"bytes", n,
		"hash", hashHex[:12],
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Path:        final,
		ContentHash: hashHex,
		Size:        n,
		ContentType: strings.TrimSpace(resp.Header.Get("Content-Type")),
	}, nil
}

// HashFile computes the content hash for an already-local file, so directory
// ingest and URL ingest dedup against the same key.
func HashFile(path string) (string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = file.Close() }()

	h := sha256.New()
	n, err := io.Copy(h, file)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
