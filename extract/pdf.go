package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/schoolbrain/docforge/fileformat"
)

// decodePDF runs the two-stage PDF extraction chain.
//
// Stage one walks the page model and concatenates positioned text runs in
// physical page order. Stage two, entered only when stage one's trimmed
// output is under the minimum length, re-reads the whole buffer through
// the content-stream scanner and replaces (never supplements) the primary
// output. Only when both stages come up short does the chain fail.
func (e *Engine) decodePDF(f File) (string, error) {
	primary, perr := e.pdfPrimary(f)
	if perr == nil && e.clearsMinimum(primary) {
		return primary, nil
	}

	e.logger.Debug("pdf primary stage under minimum, trying fallback",
		"file", f.Name, "primary_len", len(strings.TrimSpace(primary)), "error", perr)

	fallback, ferr := e.pdfFallback(f.Data)
	if ferr == nil && e.clearsMinimum(fallback) {
		return fallback, nil
	}

	// Both stages came up short; classify the failure. An encryption
	// signal from either reader wins over a structural one.
	for _, kind := range []Kind{KindPasswordProtected, KindMalformed} {
		for _, stageErr := range []error{perr, ferr} {
			if kindErr := classifyPDFError(stageErr, f); kindErr != nil && kindErr.Kind == kind {
				return "", kindErr
			}
		}
	}
	return "", newError(KindNoReadableText, f, fileformat.PDF, ferr)
}

// clearsMinimum reports whether trimmed text meets the binary-format
// minimum length.
func (e *Engine) clearsMinimum(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= e.cfg.MinTextLen
}

// pdfPageModelText extracts text via the page model, pages strictly in
// physical order 1..N. A page that fails or panics is logged and skipped;
// the document only fails outright when the reader itself cannot open it.
func (e *Engine) pdfPageModelText(f File) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(f.Data), f.Size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	var pages []string
	for n := 1; n <= total; n++ {
		pageText, perr := pdfPageText(reader, n)
		if perr != nil {
			e.logger.Warn("pdf page extraction failed, skipping page",
				"file", f.Name, "page", n, "error", perr)
			continue
		}
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

// pdfPageText extracts one page's positioned text runs. Runs on the same
// row are joined by a single space; a row change emits a newline. The
// library panics on some malformed pages, so the page is the recovery
// unit.
func pdfPageText(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d panic: %v", n, r)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d is null", n)
	}

	content := page.Content()
	var sb strings.Builder
	lastY := 0.0
	haveY := false
	for _, run := range content.Text {
		s := strings.TrimSpace(run.S)
		if s == "" {
			continue
		}
		if haveY && run.Y != lastY {
			sb.WriteByte('\n')
		} else if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
		lastY = run.Y
		haveY = true
	}
	return strings.TrimSpace(sb.String()), nil
}

// classifyPDFError maps reader failures onto the typed taxonomy. Returns
// nil when the failure carries no container-level signal.
func classifyPDFError(err error, f File) *Error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "encrypt") || strings.Contains(msg, "password"):
		return newError(KindPasswordProtected, f, fileformat.PDF, err)
	case strings.Contains(msg, "malformed") || strings.Contains(msg, "xref") ||
		strings.Contains(msg, "not a pdf") || strings.Contains(msg, "trailer") ||
		strings.Contains(msg, "corrupt") || strings.Contains(msg, "header") ||
		strings.Contains(msg, "eof"):
		return newError(KindMalformed, f, fileformat.PDF, err)
	}
	return nil
}
