// Package fileformat is the registry of upload formats the extraction
// engine can process. The registry is the single source of truth for
// media-type mapping, extension mapping, display names and per-format
// size ceilings; UI collaborators read it to present "supported formats"
// text and pre-validate uploads client side.
package fileformat

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	PlainText  Format = "txt"
	LegacyWord Format = "doc"
	ModernWord Format = "docx"
	PDF        Format = "pdf"
)

// Spec describes one supported format.
type Spec struct {
	Format        Format   `json:"format"`
	MediaType     string   `json:"media_type"`      // canonical MIME type
	AltMediaTypes []string `json:"alt_media_types"` // variants seen in the wild
	Extensions    []string `json:"extensions"`      // lower case, with dot
	DisplayName   string   `json:"display_name"`
	MaxBytes      int64    `json:"max_bytes"`
}

const (
	maxBinaryBytes = 10 << 20 // pdf, doc, docx
	maxTextBytes   = 5 << 20
)

// registry is defined once at process start and never mutated.
var registry = []Spec{
	{
		Format:      PlainText,
		MediaType:   "text/plain",
		Extensions:  []string{".txt", ".text"},
		DisplayName: "Plain text",
		MaxBytes:    maxTextBytes,
	},
	{
		Format:        LegacyWord,
		MediaType:     "application/msword",
		AltMediaTypes: []string{"application/vnd.ms-word"},
		Extensions:    []string{".doc"},
		DisplayName:   "Word document (legacy)",
		MaxBytes:      maxBinaryBytes,
	},
	{
		Format:        ModernWord,
		MediaType:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Extensions:    []string{".docx"},
		DisplayName:   "Word document",
		MaxBytes:      maxBinaryBytes,
	},
	{
		Format:        PDF,
		MediaType:     "application/pdf",
		AltMediaTypes: []string{"application/x-pdf"},
		Extensions:    []string{".pdf"},
		DisplayName:   "PDF document",
		MaxBytes:      maxBinaryBytes,
	},
}

// Registry returns a copy of the format table.
func Registry() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the Spec for a format.
func Lookup(f Format) (Spec, bool) {
	for _, s := range registry {
		if s.Format == f {
			return s, true
		}
	}
	return Spec{}, false
}

// ByMediaType resolves a declared media type to a format. Matching is
// case-insensitive and ignores parameters ("text/plain; charset=utf-8").
func ByMediaType(mediaType string) (Format, bool) {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "" {
		return "", false
	}
	for _, s := range registry {
		if mt == s.MediaType {
			return s.Format, true
		}
		for _, alt := range s.AltMediaTypes {
			if mt == alt {
				return s.Format, true
			}
		}
	}
	return "", false
}

// ByFileName resolves a file name to a format via its extension.
func ByFileName(name string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	for _, s := range registry {
		for _, e := range s.Extensions {
			if ext == e {
				return s.Format, true
			}
		}
	}
	return "", false
}

// Detect resolves a format from the declared media type, falling back to
// the file-name extension when the media type is unknown or generic.
func Detect(name, mediaType string) (Format, bool) {
	if f, ok := ByMediaType(mediaType); ok {
		return f, true
	}
	return ByFileName(name)
}

// MaxBytes returns the size ceiling for a format, 0 if unknown.
func MaxBytes(f Format) int64 {
	if s, ok := Lookup(f); ok {
		return s.MaxBytes
	}
	return 0
}

// Extension returns the primary file extension for a format, with dot.
func Extension(f Format) string {
	if s, ok := Lookup(f); ok && len(s.Extensions) > 0 {
		return s.Extensions[0]
	}
	return ""
}
