package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxCellWidth caps a column's width; longer values wrap onto continuation
// lines instead of being truncated.
const maxCellWidth = 60

// renderResult prints a query result to stdout in the chosen format.
func renderResult(result *QueryResult, format string) {
	if len(result.Values) == 0 {
		fmt.Println("Query returned no results.")
		return
	}

	switch format {
	case "csv":
		renderCSV(result)
	case "json":
		renderJSON(result)
	default:
		renderTable(result)
	}
}

func renderTable(result *QueryResult) {
	columns := result.Columns
	rows := make([][]string, len(result.Values))
	for i, row := range result.Values {
		cells := make([]string, len(columns))
		for j := range columns {
			if j < len(row) {
				cells[j] = formatValue(row[j])
			}
		}
		rows[i] = cells
	}

	// Column width is the widest of header and cells, capped so that wide
	// values wrap instead of blowing out the table.
	widths := make([]int, len(columns))
	numeric := make([]bool, len(columns))
	for j, col := range columns {
		widths[j] = len(col.Name)
		numeric[j] = isColumnNumeric(result.Values, j)
	}
	for _, cells := range rows {
		for j, cell := range cells {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	for j := range widths {
		if widths[j] > maxCellWidth {
			widths[j] = maxCellWidth
		}
	}

	printBorder("┌", "┬", "┐", widths)

	fmt.Print("│")
	for j, col := range columns {
		printCell(col.Name, widths[j], numeric[j])
	}
	fmt.Println()

	printBorder("├", "┼", "┤", widths)

	for _, cells := range rows {
		// Wrap every cell, then emit as many physical lines as the
		// tallest cell needs.
		wrapped := make([][]string, len(cells))
		height := 1
		for j, cell := range cells {
			wrapped[j] = wrapCell(cell, widths[j])
			if len(wrapped[j]) > height {
				height = len(wrapped[j])
			}
		}
		for line := 0; line < height; line++ {
			fmt.Print("│")
			for j := range cells {
				part := ""
				if line < len(wrapped[j]) {
					part = wrapped[j][line]
				}
				printCell(part, widths[j], numeric[j])
			}
			fmt.Println()
		}
	}

	printBorder("└", "┴", "┘", widths)
	fmt.Printf("\n(%d rows)\n", len(rows))
}

func printBorder(left, mid, right string, widths []int) {
	fmt.Print(left)
	for j, w := range widths {
		fmt.Print(strings.Repeat("─", w+2))
		if j < len(widths)-1 {
			fmt.Print(mid)
		}
	}
	fmt.Println(right)
}

func printCell(value string, width int, rightAlign bool) {
	if rightAlign {
		fmt.Printf(" %*s │", width, value)
	} else {
		fmt.Printf(" %-*s │", width, value)
	}
}

// wrapCell splits a value into chunks of at most width bytes, breaking only
// on rune boundaries. The whole value is always emitted; nothing is cut off.
func wrapCell(value string, width int) []string {
	if len(value) <= width {
		return []string{value}
	}
	var lines []string
	start := 0
	for i, r := range value {
		if i-start+utf8.RuneLen(r) > width && i > start {
			lines = append(lines, value[start:i])
			start = i
		}
	}
	return append(lines, value[start:])
}

func renderCSV(result *QueryResult) {
	for j, col := range result.Columns {
		if j > 0 {
			fmt.Print(",")
		}
		fmt.Print(escapeCSVField(col.Name))
	}
	fmt.Println()

	for _, row := range result.Values {
		for j := range result.Columns {
			if j > 0 {
				fmt.Print(",")
			}
			if j < len(row) {
				fmt.Print(escapeCSVField(formatValue(row[j])))
			}
		}
		fmt.Println()
	}
}

func renderJSON(result *QueryResult) {
	rows := make([]map[string]any, 0, len(result.Values))
	for _, row := range result.Values {
		record := make(map[string]any, len(result.Columns))
		for j, col := range result.Columns {
			if j < len(row) {
				record[col.Name] = row[j]
			}
		}
		rows = append(rows, record)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", rows)
		return
	}
	fmt.Println(string(data))
}

// escapeCSVField quotes a field containing commas, quotes, or newlines.
func escapeCSVField(field string) string {
	if strings.ContainsAny(field, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}

// isColumnNumeric reports whether more than 80% of a column's non-null
// values are numbers; numeric columns are right-aligned.
func isColumnNumeric(values [][]any, col int) bool {
	numericCount := 0
	totalCount := 0
	for _, row := range values {
		if col >= len(row) || row[col] == nil {
			continue
		}
		totalCount++
		switch row[col].(type) {
		case float64, int64, int:
			numericCount++
		}
	}
	return totalCount > 0 && float64(numericCount)/float64(totalCount) > 0.8
}

func formatValue(value any) string {
	if value == nil {
		return "NULL"
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%.0f", v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return fmt.Sprintf("%d", v)
	case int:
		return fmt.Sprintf("%d", v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
