package hermes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "tender.quote.abc.scored", SubjectQuoteScored("abc"))
	assert.Equal(t, "tender.sheet.s1.evaluated", SubjectSheetEvaluated("s1"))
	assert.Equal(t, "tender.buyer.generic-corp.analyzed", SubjectBuyerAnalyzed("generic-corp"))
}

func TestSubjectTokensAreSanitized(t *testing.T) {
	assert.Equal(t, "tender.buyer.acme_inc_.analyzed", SubjectBuyerAnalyzed("acme.inc*"))
	assert.Equal(t, "tender.buyer.a_b.analyzed", SubjectBuyerAnalyzed("a b"))
	assert.Equal(t, "tender.quote._.scored", SubjectQuoteScored("  "))
}
