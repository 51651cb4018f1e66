package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/qrsafety/sds-pipeline/internal/common"
	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/ghs"
	"github.com/qrsafety/sds-pipeline/internal/ocr"
	"github.com/qrsafety/sds-pipeline/internal/validation"
)

// runextract runs text extraction plus rule-based field extraction over a
// single local file and prints the result as JSON. No database involved;
// handy for eyeballing extraction quality on a new sheet.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: runextract <path-to-sds-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ocrRes, err := extractor.Extract(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	res := ghs.Extract(ocrRes.Text)
	doc := &entity.SDSDocument{
		ProductName:             res.Identification.ProductName,
		Manufacturer:            res.Identification.Manufacturer,
		CASNumber:               res.Identification.CASNumber,
		SignalWord:              res.Hazards.SignalWord,
		HCodes:                  res.Hazards.HCodes,
		Pictograms:              res.Hazards.Pictograms,
		PPERequirements:         &res.PPE,
		HMISCodes:               res.HMIS,
		NFPACodes:               res.NFPA,
		PrecautionaryStatements: res.Hazards.PrecautionaryStatements,
		FirstAid:                &res.FirstAid,
		HandlingStorage:         res.Handling,
		PhysicalState:           res.Physical.PhysicalState,
		FlashPoint:              res.Physical.FlashPoint,
		ExtractionQualityScore:  res.QualityScore,
		IsReadable:              res.IsReadable,
	}
	report := validation.Validate(doc)

	out := map[string]any{
		"method":        ocrRes.Method,
		"pages":         ocrRes.Pages,
		"confidence":    ocrRes.Confidence,
		"warnings":      ocrRes.Warnings,
		"quality_score": res.QualityScore,
		"is_readable":   res.IsReadable,
		"document":      doc,
		"validation":    report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
