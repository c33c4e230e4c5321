// Package extract decodes uploaded documents into plain text.
//
// Supported formats:
//   - .txt   — plain text (UTF-8, with a Windows-1252 fallback)
//   - .doc   — legacy Word (OLE compound file → WordDocument stream)
//   - .docx  — modern Word (archive/zip → word/document.xml)
//   - .pdf   — PDF (page-model extraction with a content-stream fallback)
//
// Usage:
//
//	eng := extract.New(extract.Config{})
//	res, err := eng.Extract(ctx, extract.File{Name: "hw.pdf", MediaType: "application/pdf", Size: int64(len(b)), Data: b})
package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/schoolbrain/docforge/fileformat"
)

// File is the upload record handed in by the hosting application. The
// engine never persists it.
type File struct {
	Name      string
	MediaType string
	Size      int64
	Data      []byte
}

// Result carries successfully extracted text. Text is always non-empty
// after trimming and meets the per-format minimum length.
type Result struct {
	Text   string
	Format fileformat.Format
}

type decoderFunc func(f File) (string, error)

// Engine is the extraction orchestrator. Stateless across calls; safe for
// concurrent use.
type Engine struct {
	cfg      Config
	logger   *slog.Logger
	decoders map[fileformat.Format]decoderFunc

	// pdf chain stages, split out so the primary→fallback decision is
	// testable in isolation.
	pdfPrimary  func(f File) (string, error)
	pdfFallback func(data []byte) (string, error)
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	cfg.defaults()
	e := &Engine{
		cfg:    cfg,
		logger: cfg.Logger,
	}
	e.pdfPrimary = e.pdfPageModelText
	e.pdfFallback = pdfContentStreamText
	e.decoders = map[fileformat.Format]decoderFunc{
		fileformat.PlainText:  e.decodePlainText,
		fileformat.LegacyWord: e.decodeLegacyWord,
		fileformat.ModernWord: e.decodeModernWord,
		fileformat.PDF:        e.decodePDF,
	}
	return e
}

// Extract decodes a file into plain text. Failures are reported as a typed
// *Error whose message is safe to show to the uploader.
func (e *Engine) Extract(ctx context.Context, f File) (Result, error) {
	start := time.Now()

	format, ok := fileformat.Detect(f.Name, f.MediaType)
	if !ok {
		err := newError(KindUnsupportedFormat, f, "", nil)
		e.logOutcome(ctx, f, "", start, err)
		return Result{}, err
	}

	// The size gate runs before any decoder touches the bytes.
	if max := fileformat.MaxBytes(format); f.Size > max {
		err := newError(KindTooLarge, f, format, nil)
		e.logOutcome(ctx, f, format, start, err)
		return Result{}, err
	}

	text, err := e.decoders[format](f)
	if err != nil {
		err = e.upgrade(err, f, format)
		e.logOutcome(ctx, f, format, start, err)
		return Result{}, err
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < e.minLen(format) {
		err := newError(KindNoReadableText, f, format, nil)
		e.logOutcome(ctx, f, format, start, err)
		return Result{}, err
	}

	e.logOutcome(ctx, f, format, start, nil)
	return Result{Text: text, Format: format}, nil
}

// minLen returns the minimum trimmed rune count for a format.
func (e *Engine) minLen(format fileformat.Format) int {
	if format == fileformat.PlainText {
		return e.cfg.MinPlainTextLen
	}
	return e.cfg.MinTextLen
}

// upgrade maps a decoder failure onto the typed taxonomy. Decoders may
// already return *Error; those pass through untouched so specificity is
// never lost.
func (e *Engine) upgrade(err error, f File, format fileformat.Format) error {
	if KindOf(err) != 0 {
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "password") || strings.Contains(msg, "encrypt"):
		return newError(KindPasswordProtected, f, format, err)
	case strings.Contains(msg, "zip") || strings.Contains(msg, "xref") ||
		strings.Contains(msg, "not a valid") || strings.Contains(msg, "eof"):
		return newError(KindMalformed, f, format, err)
	default:
		return newError(KindTransient, f, format, err)
	}
}

func (e *Engine) logOutcome(ctx context.Context, f File, format fileformat.Format, start time.Time, err error) {
	attrs := []any{
		"file", f.Name,
		"bytes", f.Size,
		"format", string(format),
		"elapsed", time.Since(start),
	}
	if err != nil {
		attrs = append(attrs, "outcome", KindOf(err).String())
		e.logger.WarnContext(ctx, "extraction failed", attrs...)
		return
	}
	attrs = append(attrs, "outcome", "ok")
	e.logger.InfoContext(ctx, "extraction complete", attrs...)
}
