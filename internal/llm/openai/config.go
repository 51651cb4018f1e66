package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the field-enhancement client. Safety sheets produce long
// prompts, so the default timeout is sized for a multi-page round trip
// rather than a chat exchange.
type Config struct {
	APIKey      string        // falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // default gpt-4o-mini, enough for gap filling
	Temperature float32       // 0..2; extraction wants this near zero
	Timeout     time.Duration // per-call HTTP timeout
	// StrictOptional fails the enhancement when the model mangles an
	// optional field. Left unset, such fields are sanitized away and
	// the rest of the response is kept.
	StrictOptional bool
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
