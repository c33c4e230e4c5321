package generate

import (
	"fmt"
	"strings"
	"time"
)

// Render lays out a generation request into a downloadable file. Missing
// type/subject/grade/theme fields are inferred from the content; an
// embedded answer key is split out and, when requested, rendered after
// the body. Empty or whitespace-only content produces a header-only
// document rather than an error.
func Render(req Request) (GeneratedFile, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	inferred := Classify(req.Title + "\n" + req.Content)
	docType := req.Type
	if docType == "" {
		docType = inferred.Type
	}
	subject := req.Subject
	if subject == "" {
		subject = inferred.Subject
	}
	grade := req.Grade
	if grade == "" {
		grade = inferred.Grade
	}
	theme := req.Theme
	if theme == "" {
		theme = inferred.Theme
	}

	split := Split(req.Content)

	doc := layout{
		Title:     strings.TrimSpace(req.Title),
		Meta:      metadataLine(subject, grade, theme),
		Timestamp: now.Format("January 2, 2006"),
		Body:      split.Body,
		DocType:   docType,
	}
	if req.IncludeAnswers && split.HasAnswerKey {
		doc.AnswerKey = split.AnswerKey
	}

	output := req.Output
	if output == "" {
		output = OutputPDF
	}

	var data []byte
	var mime string
	var err error
	switch output {
	case OutputPDF:
		data, err = renderPDF(doc)
		mime = "application/pdf"
	case OutputText:
		data = renderText(doc)
		mime = "text/plain; charset=utf-8"
	default:
		return GeneratedFile{}, fmt.Errorf("unknown output format %q", output)
	}
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("render %s: %w", output, err)
	}

	return GeneratedFile{
		Data:     data,
		Filename: Filename(docType, subject, theme, now, output),
		MIMEType: mime,
	}, nil
}

// layout is the resolved set of sections both renderers share.
type layout struct {
	Title     string
	Meta      string
	Timestamp string
	Body      string
	DocType   DocType
	AnswerKey string
}

// metadataLine joins the set fields with a separator; unset fields are
// omitted entirely.
func metadataLine(subject, grade, theme string) string {
	var parts []string
	if subject != "" {
		parts = append(parts, subject)
	}
	if grade != "" {
		parts = append(parts, "Grade "+grade)
	}
	if theme != "" {
		parts = append(parts, theme)
	}
	return strings.Join(parts, " | ")
}

// Filename derives the deterministic download name:
// {type}_{subject?}_{theme?}_{date}.{ext}. Subject and theme appear only
// when set, lower-cased with whitespace collapsed to underscores.
func Filename(t DocType, subject, theme string, date time.Time, out OutputFormat) string {
	parts := []string{slug(string(t))}
	if subject != "" {
		parts = append(parts, slug(subject))
	}
	if theme != "" {
		parts = append(parts, slug(theme))
	}
	parts = append(parts, date.Format("2006-01-02"))

	ext := "pdf"
	if out == OutputText {
		ext = "txt"
	}
	return strings.Join(parts, "_") + "." + ext
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}
