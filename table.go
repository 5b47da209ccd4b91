package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TableArgs represents the arguments for the generate_table tool
type TableArgs struct {
	Headers         []string   `json:"headers" jsonschema:"description=Column headers (e.g. ['Feature', 'Option A', 'Option B']),required,minItems=1"`
	Rows            [][]string `json:"rows" jsonschema:"description=Row data; each row must match the header count,required,minItems=1"`
	Title           string     `json:"title,omitempty" jsonschema:"description=Optional table title"`
	Format          string     `json:"format,omitempty" jsonschema:"description=Output format,enum=markdown,enum=html"`
	Style           string     `json:"style,omitempty" jsonschema:"description=Visual style for HTML output,enum=default,enum=dark,enum=kakao"`
	HighlightColumn *int       `json:"highlight_column,omitempty" jsonschema:"description=Column index to highlight (0-based)"`
}

// TableDimensions echoes the table shape.
type TableDimensions struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// TableResult is the structured result of a table request.
type TableResult struct {
	Success    bool            `json:"success"`
	Type       string          `json:"type"`
	Format     string          `json:"format"`
	Title      string          `json:"title"`
	Table      string          `json:"table"`
	Dimensions TableDimensions `json:"dimensions"`
}

// generateTable validates the table shape and renders it in the requested
// format. Validation failures are reported with the first offending row's
// 1-based position; there is no partial output.
func generateTable(args TableArgs) (TableResult, error) {
	if len(args.Headers) == 0 || len(args.Rows) == 0 {
		return TableResult{}, errors.New("Headers and rows cannot be empty.")
	}

	colCount := len(args.Headers)
	for i, row := range args.Rows {
		if len(row) != colCount {
			return TableResult{}, fmt.Errorf("Row %d column count mismatch.", i+1)
		}
	}

	format := args.Format
	if format == "" {
		format = "markdown"
	}

	var table string
	if format == "markdown" {
		table = renderMarkdownTable(args)
	} else {
		table = renderHTMLTable(args, getTableStyle(args.Style))
	}

	return TableResult{
		Success:    true,
		Type:       "table",
		Format:     format,
		Title:      args.Title,
		Table:      table,
		Dimensions: TableDimensions{Columns: colCount, Rows: len(args.Rows)},
	}, nil
}

// renderMarkdownTable emits a header row, a separator row with a
// center-aligned marker for the highlighted column, and one row per data
// row with the highlighted cell in bold.
func renderMarkdownTable(args TableArgs) string {
	var lines []string
	if args.Title != "" {
		lines = append(lines, fmt.Sprintf("### %s\n", args.Title))
	}

	lines = append(lines, "| "+strings.Join(args.Headers, " | ")+" |")

	separators := make([]string, len(args.Headers))
	for i := range separators {
		if args.HighlightColumn != nil && *args.HighlightColumn == i {
			separators[i] = ":---:"
		} else {
			separators[i] = "---"
		}
	}
	lines = append(lines, "| "+strings.Join(separators, " | ")+" |")

	for _, row := range args.Rows {
		cells := row
		if args.HighlightColumn != nil {
			cells = make([]string, len(row))
			for i, cell := range row {
				if i == *args.HighlightColumn {
					cells[i] = fmt.Sprintf("**%s**", cell)
				} else {
					cells[i] = cell
				}
			}
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

// renderHTMLTable emits an inline-styled table. Header cells use the style's
// header colors except the highlighted column, which uses the highlight
// background; body cells get the highlight background and bold weight only
// in the highlighted column.
func renderHTMLTable(args TableArgs, style TableStyle) string {
	highlighted := func(i int) bool {
		return args.HighlightColumn != nil && *args.HighlightColumn == i
	}

	var lines []string
	if args.Title != "" {
		lines = append(lines, fmt.Sprintf("<h3>%s</h3>", args.Title))
	}

	lines = append(lines, `<table style="border-collapse: collapse; width: 100%;">`)
	lines = append(lines, "  <thead><tr>")
	for i, header := range args.Headers {
		bg := style.HeaderBg
		if highlighted(i) {
			bg = style.HighlightBg
		}
		lines = append(lines, fmt.Sprintf(
			`    <th style="border: 1px solid %s; padding: 8px; background-color: %s; color: %s;">%s</th>`,
			style.Border, bg, style.HeaderColor, header))
	}
	lines = append(lines, "  </tr></thead><tbody>")

	for _, row := range args.Rows {
		lines = append(lines, "    <tr>")
		for i, cell := range row {
			bg, weight := "transparent", "normal"
			if highlighted(i) {
				bg, weight = style.HighlightBg, "bold"
			}
			lines = append(lines, fmt.Sprintf(
				`      <td style="border: 1px solid %s; padding: 8px; background-color: %s; font-weight: %s;">%s</td>`,
				style.Border, bg, weight, cell))
		}
		lines = append(lines, "    </tr>")
	}
	lines = append(lines, "  </tbody></table>")

	return strings.Join(lines, "\n")
}

func registerTableTool(srv *server.MCPServer) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args TableArgs
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		result, err := generateTable(args)
		if err != nil {
			return mcp.NewToolResultJSON(errorResult{Error: err.Error()})
		}
		return mcp.NewToolResultJSON(result)
	}

	tool := mcp.NewTool(
		"generate_table",
		mcp.WithDescription(`Generates a structured comparison table as formatted text.

Use this tool for comparing options, organizing information,
or presenting pros and cons.

Output formats:
  markdown : pipe-delimited table, highlighted column center-aligned and bold
  html     : inline-styled table element using the selected visual style

Every row must have exactly as many cells as there are headers; the first
offending row is reported by its 1-based position.`),
		mcp.WithInputSchema[TableArgs](),
	)

	srv.AddTool(tool, handler)
}
