package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/schoolbrain/docforge/fileformat"
)

func newFile(name, mediaType string, data []byte) File {
	return File{Name: name, MediaType: mediaType, Size: int64(len(data)), Data: data}
}

func TestExtractPlainText(t *testing.T) {
	eng := New(Config{})
	f := newFile("notes.txt", "text/plain", []byte("  Photosynthesis converts light to energy.  \r\n"))

	res, err := eng.Extract(context.Background(), f)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Format != fileformat.PlainText {
		t.Errorf("format = %q, want %q", res.Format, fileformat.PlainText)
	}
	if res.Text != "Photosynthesis converts light to energy." {
		t.Errorf("text = %q", res.Text)
	}
}

func TestExtractPlainTextLatin1(t *testing.T) {
	// "résumé" in Latin-1 bytes is not valid UTF-8 and must be recovered,
	// not rejected.
	eng := New(Config{})
	data := []byte("Un r\xe9sum\xe9 de la le\xe7on d'aujourd'hui")
	f := newFile("lecon.txt", "text/plain", data)

	res, err := eng.Extract(context.Background(), f)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(res.Text, "résumé") {
		t.Errorf("text = %q, want it to contain %q", res.Text, "résumé")
	}
}

func TestExtractEmptyPlainText(t *testing.T) {
	eng := New(Config{})
	f := newFile("empty.txt", "text/plain", nil)

	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindNoReadableText {
		t.Fatalf("kind = %v, want KindNoReadableText (err: %v)", KindOf(err), err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	eng := New(Config{})
	f := newFile("photo.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindUnsupportedFormat {
		t.Fatalf("kind = %v, want KindUnsupportedFormat", KindOf(err))
	}
}

func TestExtractTooLargeSkipsDecoder(t *testing.T) {
	eng := New(Config{})

	calls := 0
	eng.decoders[fileformat.PDF] = func(File) (string, error) {
		calls++
		return "stub", nil
	}

	f := File{
		Name:      "big.pdf",
		MediaType: "application/pdf",
		Size:      fileformat.MaxBytes(fileformat.PDF) + 1,
		Data:      []byte("%PDF-1.4"),
	}
	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindTooLarge {
		t.Fatalf("kind = %v, want KindTooLarge", KindOf(err))
	}
	if calls != 0 {
		t.Fatalf("decoder was invoked %d times for an oversize file", calls)
	}
}

func TestExtractDocx(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Fractions Worksheet</w:t></w:r></w:p>
    <w:p><w:r><w:t>Solve the problems below.</w:t></w:r></w:p>
  </w:body>
</w:document>`))
	w.Close()

	eng := New(Config{})
	f := newFile("fractions.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		buf.Bytes())

	res, err := eng.Extract(context.Background(), f)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(res.Text, "Fractions Worksheet") {
		t.Errorf("text = %q, missing first paragraph", res.Text)
	}
	if !strings.Contains(res.Text, "Solve the problems below.") {
		t.Errorf("text = %q, missing second paragraph", res.Text)
	}
	// Paragraphs must stay separated.
	if strings.Contains(res.Text, "WorksheetSolve") {
		t.Errorf("paragraphs ran together: %q", res.Text)
	}
}

func TestExtractDocxNotAZip(t *testing.T) {
	eng := New(Config{})
	f := newFile("broken.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		[]byte("this is not a zip archive at all"))

	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindMalformed {
		t.Fatalf("kind = %v, want KindMalformed (err: %v)", KindOf(err), err)
	}
}

func TestExtractDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/styles.xml")
	fw.Write([]byte("<styles/>"))
	w.Close()

	eng := New(Config{})
	f := newFile("odd.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		buf.Bytes())

	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindMalformed {
		t.Fatalf("kind = %v, want KindMalformed (err: %v)", KindOf(err), err)
	}
}

func TestErrorMessagesAreDisplaySafe(t *testing.T) {
	// The user-facing message must not leak the decoder diagnostic.
	cause := errors.New("pdfcpu: dict parse error at offset 0x41")
	err := newError(KindMalformed, File{Name: "x.pdf"}, fileformat.PDF, cause)

	if strings.Contains(err.Error(), "pdfcpu") {
		t.Fatalf("message leaks internals: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause must stay reachable for logging via errors.Is")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte("min_text_len: 25\nmin_plain_text_len: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinTextLen != 25 || cfg.MinPlainTextLen != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig([]byte("min_text_len: [oops")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
