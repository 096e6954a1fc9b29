package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
)

// Completer suggests ES|QL keywords, plus live index names when the cursor
// sits in a FROM clause.
type Completer struct {
	indices indexLister
}

func newCompleter(indices indexLister) *Completer {
	return &Completer{indices: indices}
}

// Complete adapts the provider to go-prompt's callback signature.
func (c *Completer) Complete(d prompt.Document) []prompt.Suggest {
	return c.suggest(d.TextBeforeCursor(), d.GetWordBeforeCursor())
}

// suggest computes the candidate list for the given input. Index candidates
// (or a single inert error candidate when the lookup fails) come first,
// keyword candidates always follow. The list is recomputed from scratch on
// every call.
func (c *Completer) suggest(text, word string) []prompt.Suggest {
	fromContext := inFromContext(text)

	// Outside a FROM clause, wait for at least one typed character before
	// suggesting anything.
	if word == "" && !fromContext {
		return []prompt.Suggest{}
	}

	var suggestions []prompt.Suggest
	if fromContext {
		suggestions = c.indexSuggestions(word)
	}
	return append(suggestions, prompt.FilterHasPrefix(esqlKeywords, word, true)...)
}

// indexSuggestions fetches index names from the cluster and keeps those with
// the current word as a case-sensitive prefix. A failed lookup degrades to a
// visible but inert candidate so the input loop never breaks mid-keystroke.
func (c *Completer) indexSuggestions(word string) []prompt.Suggest {
	names, err := c.indices.ListIndices(context.Background())
	if err != nil {
		return []prompt.Suggest{{
			Text:        fmt.Sprintf("Error fetching indices: %v", err),
			Description: "Error",
		}}
	}

	var suggestions []prompt.Suggest
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, prompt.Suggest{Text: name, Description: "Index"})
		}
	}
	return suggestions
}

// inFromContext reports whether one of the last two whitespace-delimited
// tokens before the cursor is FROM. This is a heuristic, not a parser: it
// can misfire inside string literals, and that is accepted.
func inFromContext(text string) bool {
	fields := strings.Fields(strings.ToUpper(text))
	if len(fields) > 2 {
		fields = fields[len(fields)-2:]
	}
	for _, field := range fields {
		if field == "FROM" {
			return true
		}
	}
	return false
}
