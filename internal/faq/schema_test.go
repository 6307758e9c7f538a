package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/pkg/models"
)

func TestBuildPage(t *testing.T) {
	page := BuildPage([]models.FAQItem{
		{Question: "What is X?", Answer: "X is Y."},
		{Question: "How?", Answer: "Like this."},
	})

	assert.Equal(t, "https://schema.org", page.Context)
	assert.Equal(t, "FAQPage", page.Type)
	require.Len(t, page.MainEntity, 2)

	first := page.MainEntity[0]
	assert.Equal(t, "Question", first.Type)
	assert.Equal(t, "What is X?", first.Name)
	assert.Equal(t, Answer{Type: "Answer", Text: "X is Y."}, first.AcceptedAnswer)

	assert.Equal(t, "How?", page.MainEntity[1].Name)
}

func TestRenderPage(t *testing.T) {
	out, err := Render(BuildPage([]models.FAQItem{{Question: "Q?", Answer: "A."}}))
	require.NoError(t, err)

	want := `{
  "@context": "https://schema.org",
  "@type": "FAQPage",
  "mainEntity": [
    {
      "@type": "Question",
      "name": "Q?",
      "acceptedAnswer": {
        "@type": "Answer",
        "text": "A."
      }
    }
  ]
}`
	assert.Equal(t, want, out)
}

func TestFragment(t *testing.T) {
	out := Fragment([]models.FAQItem{
		{Question: "What is <b>bold</b>?", Answer: "Tags & entities."},
	})

	assert.Contains(t, out, `<div class="faq-section">`)
	assert.Contains(t, out, `<div class="faq-item">`)
	assert.Contains(t, out, `<div class="faq-question">What is &lt;b&gt;bold&lt;/b&gt;?</div>`)
	assert.Contains(t, out, `<div class="faq-answer">Tags &amp; entities.</div>`)
}

func TestFragmentEmpty(t *testing.T) {
	assert.Equal(t, "<div class=\"faq-section\">\n</div>", Fragment(nil))
}
