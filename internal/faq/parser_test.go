package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/pkg/models"
)

func TestParsePairs(t *testing.T) {
	items := Parse("Q: What is X?\nA: X is Y.\n\nQ: How?\nA: Like this.\nMore detail.")

	require.Len(t, items, 2)
	assert.Equal(t, models.FAQItem{Question: "What is X?", Answer: "X is Y."}, items[0])
	assert.Equal(t, models.FAQItem{Question: "How?", Answer: "Like this. More detail."}, items[1])
}

func TestParseLongPrefixes(t *testing.T) {
	items := Parse("Question: What is pricing?\nAnswer: See the pricing page.")

	require.Len(t, items, 1)
	assert.Equal(t, "What is pricing?", items[0].Question)
	assert.Equal(t, "See the pricing page.", items[0].Answer)
}

func TestParseCaseInsensitive(t *testing.T) {
	items := Parse("q: lower?\na: yes.\nQUESTION: upper?\nANSWER: also yes.")

	require.Len(t, items, 2)
	assert.Equal(t, "lower?", items[0].Question)
	assert.Equal(t, "upper?", items[1].Question)
}

func TestParseQuestionWithoutAnswer(t *testing.T) {
	assert.Empty(t, Parse("Q: Anyone there?"))
	assert.Empty(t, Parse("Q: First?\nQ: Second?"))
}

func TestParseAnswerOverwrites(t *testing.T) {
	items := Parse("Q: Which one?\nA: The first.\nA: The second.")

	require.Len(t, items, 1)
	assert.Equal(t, "The second.", items[0].Answer)
}

func TestParseContinuationRequiresAnswer(t *testing.T) {
	// stray text between a question and its answer is not a continuation
	items := Parse("Q: What?\nnot an answer yet\nA: This.")

	require.Len(t, items, 1)
	assert.Equal(t, "This.", items[0].Answer)
}

func TestParseMarkersOnlyAtLineStart(t *testing.T) {
	// an indented marker lookalike is answer text, not a new question
	items := Parse("Q: What?\nA: Ans.\n  Q: literal text in answer")

	require.Len(t, items, 1)
	assert.Equal(t, "What?", items[0].Question)
	assert.Equal(t, "Ans. Q: literal text in answer", items[0].Answer)

	// same for an indented answer marker
	items = Parse("Q: What?\nA: Ans.\n  A: also literal")
	require.Len(t, items, 1)
	assert.Equal(t, "Ans. A: also literal", items[0].Answer)
}

func TestParseBlankLinesIgnored(t *testing.T) {
	items := Parse("\n\nQ: What?\n\nA: This.\n\nAnd more.\n\n")

	require.Len(t, items, 1)
	assert.Equal(t, "This. And more.", items[0].Answer)
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("no markers at all\njust prose"))
}
