// Package faq parses Q:/A: delimited text into question/answer pairs and
// renders them as an FAQPage document or a block-editor HTML fragment.
package faq

import (
	"strings"

	"schemaforge/pkg/models"
)

// stripPrefix returns the rest of the line after a case-insensitive prefix,
// trimmed, and whether the prefix matched at the start of the line.
func stripPrefix(line string, prefixes ...string) (string, bool) {
	lower := strings.ToLower(line)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

// Parse walks the text line by line. "Q:"/"Question:" at the very start of
// a line begins a new pair, flushing the previous one if it is complete.
// "A:"/"Answer:" at line start sets the current answer, overwriting any
// prior value. Other non-blank lines, indented marker lookalikes included,
// extend the answer with a single joining space, but only once both a
// question and a non-empty answer exist. Blank lines change nothing. A
// pending complete pair is flushed at end of input.
//
// Zero items is a valid result; callers decide how to report it.
func Parse(text string) []models.FAQItem {
	var (
		items    []models.FAQItem
		question string
		answer   string
	)

	flush := func() {
		if question != "" && answer != "" {
			items = append(items, models.FAQItem{Question: question, Answer: answer})
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		// markers only count at line start; an indented "Q:" is plain text
		if rest, ok := stripPrefix(raw, "q:", "question:"); ok {
			flush()
			question = rest
			answer = ""
			continue
		}
		if rest, ok := stripPrefix(raw, "a:", "answer:"); ok {
			answer = rest
			continue
		}
		if line := strings.TrimSpace(raw); line != "" && question != "" && answer != "" {
			answer += " " + line
		}
	}
	flush()

	return items
}
