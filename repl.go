package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c-bata/go-prompt"
)

// session holds the interactive loop's state: the executor it runs queries
// through, the output format, and the persisted input history.
type session struct {
	executor queryExecutor
	indices  indexLister
	format   string
	history  []string
}

func newSession(executor queryExecutor, indices indexLister, format string) *session {
	return &session{executor: executor, indices: indices, format: format}
}

// run drives the REPL until an exit command or end of input. History is
// persisted when the loop ends; the caller owns client teardown.
func (s *session) run() {
	s.loadHistory()

	completer := newCompleter(s.indices)

	p := prompt.New(
		func(input string) { s.execute(input) },
		completer.Complete,
		prompt.OptionPrefix("ESQL> "),
		prompt.OptionTitle("Elasticsearch ES|QL CLI"),
		prompt.OptionHistory(s.history),
		prompt.OptionMaxSuggestion(10),
		prompt.OptionCompletionOnDown(),
		prompt.OptionSetExitCheckerOnInput(func(input string, breakline bool) bool {
			return breakline && isExitCommand(input)
		}),
	)

	p.Run()
	s.saveHistory()
}

// execute handles one line of input. Empty input and exit commands are
// no-ops here (the exit checker ends the loop); everything else is a query.
// Query failures are reported and the loop stays alive.
func (s *session) execute(input string) {
	input = strings.TrimSpace(input)
	if input == "" || isExitCommand(input) {
		return
	}

	if fields := strings.Fields(input); strings.ToLower(fields[0]) == ".format" {
		s.setFormat(input)
		return
	}

	s.addToHistory(input)

	result, err := s.executor.Execute(context.Background(), input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	renderResult(result, s.format)
}

func (s *session) setFormat(input string) {
	parts := strings.Fields(input)
	if len(parts) == 1 {
		fmt.Printf("Current output format: %s\n", s.format)
		return
	}
	switch format := strings.ToLower(parts[1]); format {
	case "table", "csv", "json":
		s.format = format
		fmt.Printf("Output format set to: %s\n", format)
	default:
		fmt.Println("Usage: .format [table|csv|json]")
	}
}

func isExitCommand(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "exit" || input == "quit"
}

func historyFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".esql_history"
	}
	return filepath.Join(homeDir, ".esql_history")
}

func (s *session) loadHistory() {
	data, err := os.ReadFile(historyFile())
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			s.history = append(s.history, line)
		}
	}
}

func (s *session) addToHistory(query string) {
	query = strings.TrimSpace(query)
	if query != "" {
		s.history = append(s.history, query)
	}
}

func (s *session) saveHistory() {
	content := strings.Join(s.history, "\n")
	os.WriteFile(historyFile(), []byte(content), 0644)
}
