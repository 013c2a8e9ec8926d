// Package pdf renders numerology readings as single-page A4 documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

const (
	// Title is printed at the top of every report.
	Title = "Numerology Report"

	margin    = 50.0
	titleSize = 20.0
	bodySize  = 14.0
	footSize  = 9.0
	lineGap   = 8.0
)

var _ ports.ReportRenderer = (*Renderer)(nil)

// Renderer implements ports.ReportRenderer with fpdf.
type Renderer struct {
	author   string
	now      func() time.Time
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(r *Renderer) { r.author = author }
}

// WithClock overrides the time printed in the footer.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithCompression toggles stream compression. Uncompressed output keeps the
// page text searchable in the raw bytes.
func WithCompression(enabled bool) Option {
	return func(r *Renderer) { r.compress = enabled }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{author: "numerology-service", now: time.Now, compress: true}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render lays out the reading and returns the encoded PDF.
func (r *Renderer) Render(ctx context.Context, reading *domain.Reading) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generatedAt := r.now().UTC()

	doc := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitPoint, fpdf.PageSizeA4, "")
	// Resource dictionaries are map-backed; sorting keeps output byte-stable.
	doc.SetCatalogSort(true)
	doc.SetCompression(r.compress)
	doc.SetCreationDate(generatedAt)
	doc.SetModificationDate(generatedAt)
	doc.SetTitle(Title, true)
	doc.SetAuthor(r.author, true)
	doc.SetCreator(r.author, true)
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)

	// The core fonts are cp1252; names with accents go through the translator.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-margin)
		doc.SetFont("Helvetica", "I", footSize)
		doc.CellFormat(0, footSize+2, "Generated "+generatedAt.Format(time.RFC1123), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, titleSize+lineGap, Title, "", 1, "C", false, 0, "")
	doc.Ln(titleSize)

	doc.SetFont("Helvetica", "", bodySize)

	for _, line := range lines(reading) {
		doc.CellFormat(0, bodySize+lineGap, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func lines(reading *domain.Reading) []string {
	return []string{
		"Name: " + reading.Name,
		"Date of Birth: " + reading.DateOfBirth,
		"Life Path Number: " + label(reading.LifePathNumber),
		"Expression Number: " + label(reading.ExpressionNumber),
		"Soul Urge Number: " + label(reading.SoulUrgeNumber),
	}
}

func label(n int) string {
	if numerology.IsMaster(n) {
		return fmt.Sprintf("%d (master number)", n)
	}

	return fmt.Sprint(n)
}
