package generate

import (
	"regexp"
	"strings"
)

// Explicit answer-key delimiters. Generation prompts emit these around the
// key so the splitter never has to guess; the heading fallback below covers
// text produced without them.
const (
	AnswerKeyStartMarker = "[ANSWER_KEY_START]"
	AnswerKeyEndMarker   = "[ANSWER_KEY_END]"
)

// answerHeadingRe matches an "Answer Key" / "Answers" heading on its own
// line, optional colon.
var answerHeadingRe = regexp.MustCompile(`(?mi)^[ \t]*(?:answer key|answers)[ \t]*:?[ \t]*$`)

// Split separates an embedded answer key from the student-facing body.
//
// The explicit marker pair wins when both markers are present in order;
// everything between them (markers excluded) becomes the key. Otherwise a
// heading line starting the key claims everything to the end of the text.
// With no match the body is the trimmed input and the key is absent.
//
// Split is idempotent: re-splitting a returned body yields the same body
// with no key.
func Split(text string) SplitContent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return SplitContent{}
	}

	start := strings.Index(trimmed, AnswerKeyStartMarker)
	end := strings.Index(trimmed, AnswerKeyEndMarker)
	if start >= 0 && end > start {
		key := strings.TrimSpace(trimmed[start+len(AnswerKeyStartMarker) : end])
		body := strings.TrimSpace(trimmed[:start] + trimmed[end+len(AnswerKeyEndMarker):])
		return SplitContent{Body: body, AnswerKey: key, HasAnswerKey: key != ""}
	}

	if loc := answerHeadingRe.FindStringIndex(trimmed); loc != nil {
		key := strings.TrimSpace(trimmed[loc[1]:])
		body := strings.TrimSpace(trimmed[:loc[0]])
		return SplitContent{Body: body, AnswerKey: key, HasAnswerKey: key != ""}
	}

	return SplitContent{Body: trimmed}
}
