package models

// FAQItem is one parsed question/answer pair. Both strings are non-empty
// after a successful parse; order follows the source text.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
