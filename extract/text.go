package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodePlainText decodes a plain-text upload. Valid UTF-8 passes through;
// anything else is re-decoded as Windows-1252, which covers the Latin-1
// exports older word processors produce.
func (e *Engine) decodePlainText(f File) (string, error) {
	text := string(f.Data)
	if !utf8.ValidString(text) {
		decoded, err := charmap.Windows1252.NewDecoder().String(text)
		if err == nil {
			text = decoded
		} else {
			text = strings.ToValidUTF8(text, "")
		}
	}
	return normalizeText(text), nil
}

// normalizeText unifies line endings and strips control characters that
// carry no text content. Interior whitespace is otherwise preserved.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			sb.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) || r == '�' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
