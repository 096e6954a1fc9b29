package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	var (
		query  = flag.String("query", "", "ES|QL query to execute (one-shot mode)")
		format = flag.String("format", "table", "Output format: table, csv, json")
		debug  = flag.Bool("debug", false, "Enable debug mode")
		help   = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *format != "table" && *format != "csv" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Invalid format '%s'. Supported formats: table, csv, json\n", *format)
		os.Exit(1)
	}

	cfg := loadConfig()

	if *query != "" {
		runOneShot(cfg, *query, *format, *debug)
		return
	}

	if isPipedInput() {
		runPipedMode(cfg, *format)
		return
	}

	runInteractiveMode(cfg, *format)
}

// runOneShot posts a single query over the direct HTTP transport and exits.
// Every failure is fatal here: there is no loop to recover into.
func runOneShot(cfg Config, query, format string, debug bool) {
	if cfg.APIKey == "" {
		fmt.Println("Error: API key not found. Please set ELASTICSEARCH_API_KEY in your environment or .env file.")
		os.Exit(1)
	}

	executor := newHTTPExecutor(cfg, debug)
	result, err := executor.Execute(context.Background(), query)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	renderResult(result, format)
}

// runInteractiveMode connects, checks liveness, and hands control to the
// REPL. The farewell and client release run on every exit path.
func runInteractiveMode(cfg Config, format string) {
	fmt.Println("--- Elasticsearch ES|QL CLI ---")
	fmt.Printf("Connecting to %s...\n", cfg.URL)

	client, err := NewESClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to Elasticsearch: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		fmt.Println("\nExiting ES|QL CLI. Goodbye!")
		client.Close()
	}()

	if err := client.Ping(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to Elasticsearch: %v\n", err)
		return
	}
	fmt.Println("Successfully connected to Elasticsearch.")

	newSession(client, client, format).run()
}

// runPipedMode executes each stdin line as a query, reporting errors per
// line without aborting the stream.
func runPipedMode(cfg Config, format string) {
	client, err := NewESClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to Elasticsearch: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	s := newSession(client, client, format)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExitCommand(line) {
			break
		}
		s.execute(line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}
}

func isPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func showHelp() {
	fmt.Println("Usage: esql [options]")
	fmt.Println("       esql -query \"FROM index | LIMIT 10\"")
	fmt.Println("       echo 'FROM index | STATS COUNT(*)' | esql")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -query \"QUERY\": Execute a single ES|QL query and exit (requires ELASTICSEARCH_API_KEY)")
	fmt.Println("  -format FORMAT: Output format - table, csv, json (default: table)")
	fmt.Println("  -debug: Show debug messages (HTTP requests, response bodies)")
	fmt.Println("")
	fmt.Println("Environment:")
	fmt.Println("  ELASTICSEARCH_URL: Cluster base URL (default: http://localhost:9200)")
	fmt.Println("  ELASTICSEARCH_API_KEY: API key credential (optional for a local cluster)")
	fmt.Println("  Both may also be set in a .env file in the working directory.")
	fmt.Println("")
	fmt.Println("Interactive mode:")
	fmt.Println("  esql                                # Start the REPL")
	fmt.Println("  ESQL> FROM logs-* | LIMIT 5")
	fmt.Println("  ESQL> .format csv                   # Switch output format")
	fmt.Println("  ESQL> exit")
	fmt.Println("")
	fmt.Println("Interactive features:")
	fmt.Println("  • Command history (persisted in ~/.esql_history)")
	fmt.Println("  • Tab completion for ES|QL keywords and index names after FROM")
	fmt.Println("  • Exit with 'exit', 'quit', or Ctrl-D")
}
