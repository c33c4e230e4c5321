package extract

import (
	"context"
	"encoding/binary"
	"strings"
	"testing"
)

func TestExtractDocNotOLE(t *testing.T) {
	eng := New(Config{})
	f := newFile("old.doc", "application/msword", []byte("plain bytes, no OLE header"))

	_, err := eng.Extract(context.Background(), f)
	if KindOf(err) != KindMalformed {
		t.Fatalf("kind = %v, want KindMalformed (err: %v)", KindOf(err), err)
	}
}

func TestScanCP1252Runs(t *testing.T) {
	// Prose separated by binary garbage; \r is Word's paragraph mark.
	stream := []byte("\x00\x01Spelling practice for week three.\r" +
		"Write each word five times.\x00\x00\xfa\x02ok\x00")

	got := scanCP1252Runs(stream)
	if !strings.Contains(got, "Spelling practice for week three.") {
		t.Errorf("missing first sentence: %q", got)
	}
	if !strings.Contains(got, "Write each word five times.") {
		t.Errorf("missing second sentence: %q", got)
	}
	// "ok" is below the run threshold and must be dropped.
	if strings.Contains(got, "ok") {
		t.Errorf("short incidental run survived: %q", got)
	}
}

func TestScanCP1252RunsDecodesWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252.
	stream := []byte("\x93Show your work\x94 on every problem")
	got := scanCP1252Runs(stream)
	if !strings.Contains(got, "“Show your work”") {
		t.Errorf("curly quotes not decoded: %q", got)
	}
}

func TestScanUTF16Runs(t *testing.T) {
	text := "Reading comprehension quiz"
	stream := make([]byte, 0, len(text)*2+8)
	stream = append(stream, 0xFF, 0x01, 0x00, 0x00) // leading binary noise
	for _, r := range text {
		var u [2]byte
		binary.LittleEndian.PutUint16(u[:], uint16(r))
		stream = append(stream, u[0], u[1])
	}

	got := scanUTF16Runs(stream)
	if !strings.Contains(got, text) {
		t.Errorf("scanUTF16Runs = %q, want to contain %q", got, text)
	}
}

func TestScanWordStreamTextPrefersRicherDecoding(t *testing.T) {
	// A wide-text stream also yields incidental narrow runs; the scan must
	// pick the decoding that recovers more text.
	text := "The water cycle has four main stages in total"
	stream := make([]byte, 0, len(text)*2)
	for _, r := range text {
		var u [2]byte
		binary.LittleEndian.PutUint16(u[:], uint16(r))
		stream = append(stream, u[0], u[1])
	}

	got := scanWordStreamText(stream)
	if !strings.Contains(got, "water cycle") {
		t.Errorf("scanWordStreamText = %q", got)
	}
}
