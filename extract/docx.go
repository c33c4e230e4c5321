package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// decodeModernWord parses a .docx upload by reading word/document.xml from
// the ZIP container and walking its token stream for paragraph text.
func (e *Engine) decodeModernWord(f File) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(f.Data), f.Size)
	if err != nil {
		return "", newError(KindMalformed, f, "", fmt.Errorf("open zip: %w", err))
	}

	var docFile *zip.File
	for _, zf := range r.File {
		if zf.Name == "word/document.xml" {
			docFile = zf
			break
		}
	}
	if docFile == nil {
		return "", newError(KindMalformed, f, "", fmt.Errorf("word/document.xml not found in archive"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", newError(KindMalformed, f, "", fmt.Errorf("open document.xml: %w", err))
	}
	defer rc.Close()

	text, warnings := wordMarkupText(rc)
	for _, w := range warnings {
		e.logger.Debug("docx reader warning", "file", f.Name, "warning", w)
	}
	return text, nil
}

// wordMarkupText extracts raw paragraph text from WordprocessingML.
// Paragraphs end with a newline, tabs and explicit breaks are preserved.
// Malformed trailing markup is reported as a warning, not a failure; the
// caller's minimum-length gate decides whether the result is usable.
func wordMarkupText(r io.Reader) (string, []string) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	var warnings []string
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("token stream ended early: %v", err))
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				inParagraph = false
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inParagraph {
				sb.Write(t)
			}
		}
	}

	return sb.String(), warnings
}
