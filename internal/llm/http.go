package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/internal/common"
)

// sheetRoundTripTimeout bounds one enhancement call when the caller did
// not bring its own client. A multi-page safety sheet prompt plus its
// completion can take well over a minute on slower models.
const sheetRoundTripTimeout = 90 * time.Second

// SendJSON posts one JSON payload to a model endpoint and returns the raw
// response body and status code. Callers pick the URL and headers, so
// nothing here is provider specific. The request id is taken from the
// context when the RPC layer set one, keeping enhancement logs joinable
// with the rest of the pipeline.
func SendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: sheetRoundTripTimeout}
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		logger.Error("llm.request.encode_failed", "req_id", rid, "error", err)
		return nil, 0, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logger.Error("llm.request.build_failed", "req_id", rid, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Info("llm.request.sent",
		"req_id", rid,
		"url", url,
		"payload_bytes", len(payload),
	)

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("llm.request.failed",
			"req_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("llm.response.close_failed", "req_id", rid, "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	logger.Info("llm.response.received",
		"req_id", rid,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("model endpoint returned %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
