package extract

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"
	"golang.org/x/text/encoding/charmap"
)

// fibEncryptedFlag is bit fEncrypted in the FIB flags word at offset 0x0A
// of the WordDocument stream.
const fibEncryptedFlag = 0x0100

// decodeLegacyWord parses a .doc upload: OLE compound file container,
// WordDocument stream, then a printable-run scan of the stream bytes.
// Full piece-table reconstruction is deliberately out of reach here; the
// run scan recovers paragraph text from every non-encrypted .doc we have
// seen in uploads.
func (e *Engine) decodeLegacyWord(f File) (string, error) {
	doc, err := mscfb.New(bytes.NewReader(f.Data))
	if err != nil {
		return "", newError(KindMalformed, f, "", fmt.Errorf("open ole container: %w", err))
	}

	var stream []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		stream, err = io.ReadAll(entry)
		if err != nil {
			return "", newError(KindMalformed, f, "", fmt.Errorf("read WordDocument stream: %w", err))
		}
		break
	}
	if stream == nil {
		return "", newError(KindMalformed, f, "", fmt.Errorf("no WordDocument stream in container"))
	}

	if len(stream) >= 12 {
		flags := binary.LittleEndian.Uint16(stream[0x0A:0x0C])
		if flags&fibEncryptedFlag != 0 {
			return "", newError(KindPasswordProtected, f, "", nil)
		}
	}

	text := scanWordStreamText(stream)
	return text, nil
}

// scanWordStreamText recovers text runs from a WordDocument stream.
// Word stores text either as UTF-16LE or as CP-1252 bytes; both are
// scanned and the richer result wins.
func scanWordStreamText(stream []byte) string {
	wide := scanUTF16Runs(stream)
	narrow := scanCP1252Runs(stream)
	if len([]rune(wide)) >= len([]rune(narrow)) {
		return wide
	}
	return narrow
}

// minRunChars filters out incidental printable bytes inside binary
// structures; real prose comes in much longer runs.
const minRunChars = 4

// scanUTF16Runs extracts printable UTF-16LE sequences.
func scanUTF16Runs(stream []byte) string {
	var sb strings.Builder
	var run []uint16

	flush := func() {
		if len(run) >= minRunChars {
			for _, r := range utf16.Decode(run) {
				sb.WriteRune(r)
			}
			sb.WriteByte('\n')
		}
		run = run[:0]
	}

	for i := 0; i+1 < len(stream); i += 2 {
		u := binary.LittleEndian.Uint16(stream[i : i+2])
		switch {
		case u == '\r' || u == 0x07: // paragraph / cell mark
			run = append(run, '\n')
		case u == '\t':
			run = append(run, '\t')
		case u >= 0x20 && u != 0x7F && u < 0xFFFE:
			run = append(run, u)
		default:
			flush()
		}
	}
	flush()
	return strings.TrimSpace(sb.String())
}

// scanCP1252Runs extracts printable single-byte sequences decoded as
// Windows-1252.
func scanCP1252Runs(stream []byte) string {
	var sb strings.Builder
	var run []byte

	decoder := charmap.Windows1252.NewDecoder()
	flush := func() {
		if len(run) >= minRunChars {
			if decoded, err := decoder.Bytes(run); err == nil {
				sb.Write(decoded)
			} else {
				sb.Write(run)
			}
			sb.WriteByte('\n')
		}
		run = run[:0]
	}

	for _, b := range stream {
		switch {
		case b == '\r' || b == 0x07:
			run = append(run, '\n')
		case b == '\t':
			run = append(run, '\t')
		case b >= 0x20 && b != 0x7F:
			run = append(run, b)
		default:
			flush()
		}
	}
	flush()
	return strings.TrimSpace(sb.String())
}
