package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner abstracts the external extraction tools (pdftotext, pdftoppm,
// tesseract) so tests can substitute canned output for a real install.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

// stderrCap keeps tesseract's page-by-page chatter from flooding the log
// when a long scanned sheet goes through OCR.
const stderrCap = 4 << 10

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		slog.Error("ocr.tool.failed",
			"tool", name,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
			"stderr", clipStderr(stderr.String()),
		)
		return stdout.Bytes(), stderr.Bytes(), err
	}

	slog.Debug("ocr.tool.ok",
		"tool", name,
		"args", strings.Join(args, " "),
		"elapsed_ms", elapsed.Milliseconds(),
		"stdout_bytes", stdout.Len(),
	)
	return stdout.Bytes(), stderr.Bytes(), nil
}

func clipStderr(s string) string {
	if len(s) <= stderrCap {
		return s
	}
	return s[:stderrCap] + "... (clipped)"
}
