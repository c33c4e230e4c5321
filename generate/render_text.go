package generate

import "strings"

// renderText lays the document out as flat newline-delimited text with the
// same logical sections as the PDF mode, no pagination.
func renderText(doc layout) []byte {
	var sb strings.Builder

	if doc.Title != "" {
		sb.WriteString(doc.Title)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("-", len([]rune(doc.Title))))
		sb.WriteByte('\n')
	}
	if doc.Meta != "" {
		sb.WriteString(doc.Meta)
		sb.WriteByte('\n')
	}
	sb.WriteString("Generated on ")
	sb.WriteString(doc.Timestamp)
	sb.WriteString("\n\n")

	if doc.Body != "" {
		sb.WriteString(doc.Body)
		sb.WriteByte('\n')
	}

	if doc.AnswerKey != "" {
		sb.WriteString("\nAnswer Key\n----------\n")
		sb.WriteString(doc.AnswerKey)
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}
