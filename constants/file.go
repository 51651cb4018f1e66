package constants

import "strings"

// Format identifies the source document format for an ExtractJob.
const (
	PDF = "PDF"
	TXT = "TXT"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{PDF, TXT}

// AllowedExtensions holds the allowed file extensions for SDS ingestion.
// SDS sheets arrive as PDFs; plain text is accepted for pre-extracted
// documents coming from the storage bucket.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// PDFExt is the default extension assumed for extension-less source URLs.
const PDFExt = "pdf"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a normalized extension is ingestible.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a normalized extension to an ExtractJob format,
// returning "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	default:
		return ""
	}
}
