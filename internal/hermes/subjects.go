package hermes

import "strings"

const (
	StreamName     = "TENDER_EVENTS"
	StreamSubjects = "tender.>"
	StreamMaxAge   = "720h" // 30 days
)

func SubjectQuoteScored(evaluationID string) string {
	return "tender.quote." + token(evaluationID) + ".scored"
}

func SubjectSheetEvaluated(sheetID string) string {
	return "tender.sheet." + token(sheetID) + ".evaluated"
}

func SubjectBuyerAnalyzed(slug string) string {
	return "tender.buyer." + token(slug) + ".analyzed"
}

// token makes s safe as a single subject token.
func token(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, s)
}
