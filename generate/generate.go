// Package generate turns freeform generated text into downloadable
// study documents. It classifies the text into a document type, infers
// subject/grade/theme metadata, separates an embedded answer key from the
// student-facing body, and renders the result as a paginated PDF or a
// flat text file.
package generate

import "time"

// DocType is the inferred or requested document type.
type DocType string

const (
	Worksheet    DocType = "worksheet"
	PracticeTest DocType = "practice_test"
	Activity     DocType = "activity"
	Summary      DocType = "summary"
	Custom       DocType = "custom"
)

// ParseDocType maps a caller-supplied string onto a DocType. Unknown or
// empty values return ok=false, which callers treat as "infer from text".
func ParseDocType(s string) (DocType, bool) {
	switch DocType(s) {
	case Worksheet, PracticeTest, Activity, Summary, Custom:
		return DocType(s), true
	}
	return "", false
}

// OutputFormat selects the rendered file type.
type OutputFormat string

const (
	OutputPDF  OutputFormat = "pdf"
	OutputText OutputFormat = "txt"
)

// Request describes one document to render. Zero-value optional fields
// mean "infer from the content".
type Request struct {
	Title   string
	Content string

	// Type, Subject, Grade and Theme override classification when set.
	Type    DocType
	Subject string
	Grade   string
	Theme   string

	// IncludeAnswers renders the answer key (when one is present in the
	// content) on its own page after the body.
	IncludeAnswers bool

	Output OutputFormat

	// Now stamps the document; the zero value means time.Now(). Kept
	// injectable so filenames and timestamps are deterministic in tests.
	Now time.Time
}

// GeneratedFile is the rendered output. Constructed once; the caller owns
// it from then on.
type GeneratedFile struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Classified is the outcome of content classification. Empty strings mean
// the field could not be inferred, which is distinct from an explicitly
// empty value supplied by a caller.
type Classified struct {
	Type    DocType
	Subject string
	Grade   string
	Theme   string
}

// SplitContent separates student-facing body text from an answer key.
type SplitContent struct {
	Body         string
	AnswerKey    string
	HasAnswerKey bool
}
