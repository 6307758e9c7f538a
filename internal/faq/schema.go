package faq

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/net/html"

	"schemaforge/pkg/models"
)

const schemaContext = "https://schema.org"

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Page is the emitted FAQPage document.
type Page struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// BuildPage maps parsed items to an FAQPage, preserving input order.
func BuildPage(items []models.FAQItem) Page {
	entities := make([]Question, 0, len(items))
	for _, it := range items {
		entities = append(entities, Question{
			Type: "Question",
			Name: it.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: it.Answer,
			},
		})
	}
	return Page{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: entities,
	}
}

// Render serializes the page with the same 2-space indentation as the
// composed schema output.
func Render(p Page) (string, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal faq page: %w", err)
	}
	return string(b), nil
}

// Fragment renders the items as a block-editor-compatible HTML fragment.
// Question and answer text is escaped before embedding.
func Fragment(items []models.FAQItem) string {
	var b strings.Builder
	b.WriteString("<div class=\"faq-section\">\n")
	for _, it := range items {
		b.WriteString("  <div class=\"faq-item\">\n")
		b.WriteString("    <div class=\"faq-question\">" + html.EscapeString(it.Question) + "</div>\n")
		b.WriteString("    <div class=\"faq-answer\">" + html.EscapeString(it.Answer) + "</div>\n")
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}
