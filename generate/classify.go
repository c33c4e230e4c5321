package generate

import (
	"regexp"
	"strings"
)

// Document-type rules, evaluated first-match-wins. The order is a frozen
// contract: worksheet beats test beats activity beats summary, so text
// mentioning both "worksheet" and "quiz" classifies as a worksheet. Keep
// the order stable; classify_test.go pins it.
var docTypeRules = []struct {
	re      *regexp.Regexp
	docType DocType
}{
	{regexp.MustCompile(`(?i)\b(worksheets?|fill[ -]in[ -]the[ -]blanks?|practice problems|handout)\b`), Worksheet},
	{regexp.MustCompile(`(?i)\b(tests?|quiz(zes)?|exams?|assessments?|multiple choice)\b`), PracticeTest},
	{regexp.MustCompile(`(?i)\b(activit(y|ies)|games?|puzzles?|crafts?|scavenger hunt|coloring)\b`), Activity},
	{regexp.MustCompile(`(?i)\b(summar(y|ies)|reviews?|study guide|overviews?|recap)\b`), Summary},
}

// Subject rules. Independent group, first match wins and later patterns
// are not evaluated.
var subjectRules = []struct {
	re      *regexp.Regexp
	subject string
}{
	{regexp.MustCompile(`(?i)\b(math|mathematics|arithmetic|addition|subtraction|multiplication|division|fractions?|algebra|geometry|counting|numbers)\b`), "Math"},
	{regexp.MustCompile(`(?i)\b(reading|phonics|comprehension|sight words|vocabulary|spelling)\b`), "Reading"},
	{regexp.MustCompile(`(?i)\b(science|biology|chemistry|physics|experiments?|water cycle|photosynthesis|habitats?)\b`), "Science"},
	{regexp.MustCompile(`(?i)\b(history|historical|ancient|presidents?|civil war|explorers|geography)\b`), "History"},
	{regexp.MustCompile(`(?i)\b(language arts|grammar|writing|punctuation|sentences?|paragraphs?)\b`), "Language Arts"},
}

// Theme rules: kid-appeal topics for display and filenames.
var themeRules = []struct {
	re    *regexp.Regexp
	theme string
}{
	{regexp.MustCompile(`(?i)\b(dinosaurs?|t-?rex|jurassic)\b`), "Dinosaurs"},
	{regexp.MustCompile(`(?i)\b(space|planets?|solar system|astronauts?|rockets?|galaxy)\b`), "Space"},
	{regexp.MustCompile(`(?i)\b(oceans?|sea creatures?|underwater|marine|sharks?|whales?)\b`), "Ocean"},
	{regexp.MustCompile(`(?i)\b(animals?|zoo|wildlife|pets?|insects?|birds?)\b`), "Animals"},
	{regexp.MustCompile(`(?i)\b(robots?|machines?|inventions?)\b`), "Robots"},
	{regexp.MustCompile(`(?i)\b(superheroe?s?|comic book)\b`), "Superheroes"},
	{regexp.MustCompile(`(?i)\b(pirates?|treasure)\b`), "Pirates"},
	{regexp.MustCompile(`(?i)\b(weather|seasons?|rainbows?)\b`), "Weather"},
	{regexp.MustCompile(`(?i)\b(sports?|soccer|basketball|baseball)\b`), "Sports"},
	{regexp.MustCompile(`(?i)\b(holidays?|christmas|halloween|thanksgiving|easter)\b`), "Holidays"},
}

var (
	gradeNumberRe  = regexp.MustCompile(`(?i)\bgrade\s*(\d{1,2})\b`)
	numberGradeRe  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)[\s-]*grade\b`)
	kindergartenRe = regexp.MustCompile(`(?i)\b(kindergarten|pre-?k)\b`)
)

// Classify infers a document type and optional subject/grade/theme tags
// from generated text. Pure function; empty or whitespace-only input
// degrades to Custom with no tags.
func Classify(text string) Classified {
	c := Classified{Type: Custom}
	if strings.TrimSpace(text) == "" {
		return c
	}

	for _, rule := range docTypeRules {
		if rule.re.MatchString(text) {
			c.Type = rule.docType
			break
		}
	}
	for _, rule := range subjectRules {
		if rule.re.MatchString(text) {
			c.Subject = rule.subject
			break
		}
	}
	for _, rule := range themeRules {
		if rule.re.MatchString(text) {
			c.Theme = rule.theme
			break
		}
	}
	c.Grade = inferGrade(text)
	return c
}

// inferGrade recognises "grade 3", "3rd grade", kindergarten and pre-K.
func inferGrade(text string) string {
	if m := gradeNumberRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := numberGradeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := kindergartenRe.FindString(text); m != "" {
		if strings.HasPrefix(strings.ToLower(m), "pre") {
			return "Pre-K"
		}
		return "K"
	}
	return ""
}
