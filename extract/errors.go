package extract

import (
	"errors"

	"github.com/schoolbrain/docforge/fileformat"
)

// Kind classifies an extraction failure.
type Kind int

const (
	KindUnsupportedFormat Kind = iota + 1
	KindTooLarge
	KindMalformed
	KindPasswordProtected
	KindNoReadableText
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "unsupported_format"
	case KindTooLarge:
		return "too_large"
	case KindMalformed:
		return "malformed"
	case KindPasswordProtected:
		return "password_protected"
	case KindNoReadableText:
		return "no_readable_text"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by the extraction engine. Its message
// is safe to show to an end user; the underlying decoder diagnostic (if any)
// is kept as the wrapped cause for logs only.
type Error struct {
	Kind   Kind
	File   string
	Format fileformat.Format

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnsupportedFormat:
		return "this file type is not supported"
	case KindTooLarge:
		return "this file is too large to process"
	case KindMalformed:
		return "this file appears to be damaged or is not a valid document"
	case KindPasswordProtected:
		return "this file is password protected; remove the password and try again"
	case KindNoReadableText:
		return "no readable text was found in this file; scanned or image-only documents are not supported"
	case KindTransient:
		return "the file could not be processed right now; please try again"
	default:
		return "the file could not be processed"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// newError builds a typed extraction error for the given file.
func newError(kind Kind, f File, format fileformat.Format, cause error) *Error {
	return &Error{Kind: kind, File: f.Name, Format: format, cause: cause}
}

// KindOf returns the failure kind of err, or 0 if err is not an
// extraction error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
