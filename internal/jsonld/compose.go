package jsonld

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrNoSelection signals an empty document set. The presentation layer
// renders placeholder text instead of output.
var ErrNoSelection = errors.New("no schema types selected")

type graph struct {
	Context string     `json:"@context"`
	Graph   []Document `json:"@graph"`
}

// Compose renders the document set as pretty-printed JSON-LD text. A single
// document is emitted verbatim, context included. Multiple documents are
// wrapped in an @graph whose outer object carries the only @context; each
// member has its own @context stripped. Output is deterministic: same set
// in, same bytes out.
func Compose(docs []Document) (string, error) {
	if len(docs) == 0 {
		return "", ErrNoSelection
	}

	var payload any
	if len(docs) == 1 {
		payload = docs[0]
	} else {
		members := make([]Document, len(docs))
		for i, d := range docs {
			members[i] = d.withoutContext()
		}
		payload = graph{Context: SchemaContext, Graph: members}
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(b), nil
}

// WrapScript frames JSON-LD text in the script tag used for HTML embedding.
func WrapScript(jsonText string) string {
	return "<script type=\"application/ld+json\">\n" + jsonText + "\n</script>"
}
