package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// ExecutorOptions contains options for tool execution
type ExecutorOptions struct {
	Format OutputFormat
	Quiet  bool
	Out    io.Writer
}

// ToolExecutor runs control surface tools and prints their results.
type ToolExecutor struct {
	client  *Client
	options ExecutorOptions
}

// NewToolExecutor creates an executor over client.
func NewToolExecutor(client *Client, options ExecutorOptions) *ToolExecutor {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	return &ToolExecutor{client: client, options: options}
}

// Connect establishes connection to the control server
func (e *ToolExecutor) Connect(ctx context.Context) error {
	return e.client.Connect(ctx)
}

// Close closes the connection
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	result, err := e.client.CallTool(ctx, toolName, arguments)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}

	body := resultText(result)
	if result.IsError {
		return fmt.Errorf("%s", body)
	}
	return e.formatOutput(body)
}

// ListTools prints the tools the server offers.
func (e *ToolExecutor) ListTools(ctx context.Context) error {
	tools, err := e.client.ListTools(ctx)
	if err != nil {
		return err
	}
	items := make([]interface{}, 0, len(tools))
	for _, tool := range tools {
		items = append(items, map[string]interface{}{"name": tool.Name, "description": tool.Description})
	}
	data, err := json.Marshal(map[string]interface{}{"tools": items, "total": len(items)})
	if err != nil {
		return err
	}
	return e.formatOutput(string(data))
}

// formatOutput formats the tool output according to the specified format
func (e *ToolExecutor) formatOutput(body string) error {
	if body == "" {
		if !e.options.Quiet {
			fmt.Fprintln(e.options.Out, "No results")
		}
		return nil
	}

	switch e.options.Format {
	case OutputFormatJSON:
		fmt.Fprintln(e.options.Out, body)
		return nil
	case OutputFormatYAML:
		return e.outputYAML(body)
	case OutputFormatTable:
		return e.outputTable(body)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// outputYAML converts JSON to YAML and prints it. Plain text passes through.
func (e *ToolExecutor) outputYAML(body string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		fmt.Fprintln(e.options.Out, body)
		return nil
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	fmt.Fprint(e.options.Out, string(yamlData))
	return nil
}

// outputTable renders JSON results as tables; plain messages are printed as is.
func (e *ToolExecutor) outputTable(body string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		fmt.Fprintln(e.options.Out, body)
		return nil
	}

	switch d := data.(type) {
	case map[string]interface{}:
		return e.formatTableFromObject(d)
	case []interface{}:
		return e.formatTableFromArray(d)
	default:
		fmt.Fprintln(e.options.Out, body)
		return nil
	}
}

// formatTableFromObject unwraps {"<items>": [...], "total": N} results and
// prints everything else as key-value pairs.
func (e *ToolExecutor) formatTableFromObject(data map[string]interface{}) error {
	arrayKey := e.findArrayKey(data)
	if arrayKey == "" {
		return e.formatKeyValueTable(data)
	}

	if err := e.formatTableFromArray(data[arrayKey].([]interface{})); err != nil {
		return err
	}
	if total, ok := data["total"]; ok && !e.options.Quiet {
		fmt.Fprintf(e.options.Out, "\n%s %v %s\n",
			text.FgHiBlue.Sprint("Total:"),
			text.FgHiWhite.Sprint(total),
			arrayKey)
	}
	return nil
}

// findArrayKey looks for the list key of wrapped results.
func (e *ToolExecutor) findArrayKey(data map[string]interface{}) string {
	for _, key := range []string{"themes", "tools", "skills", "projects"} {
		if value, exists := data[key]; exists {
			if _, isArray := value.([]interface{}); isArray {
				if _, hasTotal := data["total"]; hasTotal {
					return key
				}
			}
		}
	}
	return ""
}

// formatTableFromArray creates a table from an array of objects
func (e *ToolExecutor) formatTableFromArray(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(e.options.Out, text.FgYellow.Sprint("No items found"))
		return nil
	}

	firstObj, ok := data[0].(map[string]interface{})
	if !ok {
		return e.formatSimpleList(data)
	}

	columns := e.columns(firstObj)

	t := e.newTable()
	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, item := range data {
		if itemMap, ok := item.(map[string]interface{}); ok {
			row := make(table.Row, len(columns))
			for i, col := range columns {
				row[i] = e.formatCellValue(col, itemMap[col])
			}
			t.AppendRow(row)
		}
	}

	t.Render()
	return nil
}

// columns orders the known fields first, then the rest alphabetically.
func (e *ToolExecutor) columns(sample map[string]interface{}) []string {
	priority := []string{"name", "level", "percentage", "description", "featured"}
	var columns []string
	used := map[string]bool{}
	for _, col := range priority {
		if _, ok := sample[col]; ok {
			columns = append(columns, col)
			used[col] = true
		}
	}
	var rest []string
	for key := range sample {
		if !used[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

// formatCellValue formats individual cell values with appropriate styling
func (e *ToolExecutor) formatCellValue(column string, value interface{}) interface{} {
	if value == nil {
		return text.FgHiBlack.Sprint("-")
	}

	switch v := value.(type) {
	case []interface{}:
		return e.formatList(column, v)
	case map[string]interface{}:
		return e.formatNested(v)
	case bool:
		if v {
			return text.FgGreen.Sprint("yes")
		}
		return text.FgHiBlack.Sprint("no")
	}

	strValue := fmt.Sprintf("%v", value)
	switch strings.ToLower(column) {
	case "percentage":
		return fmt.Sprintf("%s%%", strValue)
	case "description", "bio":
		return e.formatDescription(strValue)
	case "theme", "id":
		return text.FgCyan.Sprint(strValue)
	default:
		return strValue
	}
}

// formatList summarizes nested lists such as a profile's skills.
func (e *ToolExecutor) formatList(column string, items []interface{}) interface{} {
	if len(items) == 0 {
		return text.FgHiBlack.Sprint("none")
	}
	var names []string
	for _, item := range items {
		switch v := item.(type) {
		case map[string]interface{}:
			if name, ok := v["name"]; ok {
				names = append(names, fmt.Sprintf("%v", name))
			}
		default:
			names = append(names, fmt.Sprintf("%v", v))
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("[%d %s]", len(items), column)
	}
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(names[:3], ", "), len(names)-3)
}

// formatNested renders small objects such as contact info or theme variables inline.
func (e *ToolExecutor) formatNested(m map[string]interface{}) interface{} {
	if len(m) == 0 {
		return text.FgHiBlack.Sprint("-")
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, "\n")
}

// formatDescription truncates long descriptions appropriately
func (e *ToolExecutor) formatDescription(desc string) interface{} {
	if len(desc) <= 60 {
		return desc
	}
	return desc[:57] + text.FgHiBlack.Sprint("...")
}

// formatKeyValueTable formats an object as key-value pairs
func (e *ToolExecutor) formatKeyValueTable(data map[string]interface{}) error {
	t := e.newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.AppendRow(table.Row{
			text.FgYellow.Sprint(key),
			e.formatCellValue(key, data[key]),
		})
	}

	t.Render()
	return nil
}

// formatSimpleList formats an array of simple values
func (e *ToolExecutor) formatSimpleList(data []interface{}) error {
	for _, item := range data {
		fmt.Fprintln(e.options.Out, item)
	}
	return nil
}

func (e *ToolExecutor) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(e.options.Out)
	t.SetStyle(table.StyleRounded)
	return t
}
