package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const embeddedSDSText = `SECTION 1: Identification
Product Name: Acetone
CAS Number: 67-64-1
SECTION 2: Hazard Identification
Signal Word: Danger
H225 Highly flammable liquid and vapor
SECTION 4: First Aid Measures
Eye Contact: Rinse cautiously with water for several minutes.
` + "\f" + `SECTION 8: Exposure Controls
Eye Protection: Safety glasses with side shields.
`

// fakeRunner scripts responses per binary name.
type fakeRunner struct {
	pdftotextOut string
	pdftotextErr error
	tesseractOut string
	calls        []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch {
	case strings.Contains(name, "pdftotext"):
		if f.pdftotextErr != nil {
			return nil, []byte("pdftotext failed"), f.pdftotextErr
		}
		return []byte(f.pdftotextOut), nil, nil
	case strings.Contains(name, "pdftoppm"):
		// emulate page rendering: last arg is the output prefix
		prefix := args[len(args)-1]
		for i := 1; i <= 2; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, []byte(err.Error()), err
			}
		}
		return nil, nil, nil
	case strings.Contains(name, "tesseract"):
		return []byte(f.tesseractOut), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractPDFUsesEmbeddedText(t *testing.T) {
	r := &fakeRunner{pdftotextOut: embeddedSDSText}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "/tmp/acetone.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "Product Name: Acetone")
	assert.Equal(t, []string{"pdftotext"}, r.calls)
	assert.Greater(t, res.Confidence, float32(0.7))
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	r := &fakeRunner{
		pdftotextOut: "  \f  ", // no usable text layer
		tesseractOut: embeddedSDSText,
	}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "/tmp/scanned.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "CAS Number: 67-64-1")
	assert.Contains(t, r.calls, "pdftoppm")
	assert.Contains(t, r.calls, "tesseract")
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.txt")
	require.NoError(t, os.WriteFile(path, []byte(embeddedSDSText), 0o644))

	e := newTestExtractor(&fakeRunner{})
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "plain-text", res.Method)
	assert.Contains(t, res.Text, "Signal Word: Danger")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&fakeRunner{})
	_, err := e.Extract(context.Background(), "/tmp/sheet.docx")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "Product\tName:   Acetone\r\n\r\n\r\n\r\nSection 2   \n"
	out := Normalize(in)
	assert.Equal(t, "Product Name: Acetone\n\nSection 2", out)
}

func TestHeuristicConfidence(t *testing.T) {
	full := heuristicConfidence(embeddedSDSText)
	bare := heuristicConfidence("hello world")
	assert.Greater(t, full, bare)
	assert.LessOrEqual(t, full, float32(1.0))
	assert.Equal(t, float32(0.2), bare)
}
