package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	NotFound     = "(not found)"
	Masked       = constants.MaskedValue

	// JSON formatting.
	defaultJSONIndent = 2
)

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderTable func(out io.Writer, data T) error
}

// Render outputs data in the format selected by the output setting.
func (o *OutputRenderer[T]) Render(out io.Writer, data T) error {
	switch format := outputFormat(); format {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, data)
	case constants.FormatTable, "":
		return o.RenderTable(out, data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

func outputFormat() string {
	return strings.ToLower(viper.GetString("output"))
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](out io.Writer, data T) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](out io.Writer, data T) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderPropertyTable renders name/value rows, skipping empty values.
func renderPropertyTable(out io.Writer, rows [][2]string) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, row := range rows {
		if row[1] == "" {
			continue
		}

		_ = table.Append(row[0], row[1])
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderRowsTable renders a header and rows, or a notice when rows is empty.
func renderRowsTable(out io.Writer, empty string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(out, empty)

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []any {
	converted := make([]any, len(values))
	for i, value := range values {
		converted[i] = value
	}

	return converted
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-3]) + "..."
}

func namedOrNA(named *graph.NamedObject) string {
	if named == nil || named.Name == "" {
		return NotAvailable
	}

	return named.Name
}

func formatCount(count int64) string {
	return strconv.FormatInt(count, 10)
}

// formatValue renders a decoded JSON value for a table cell.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return truncate(v, constants.MaxMessageDisplay)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return truncate(string(data), constants.MaxMessageDisplay)
	}
}

// sortedKeys returns the union of keys of rows in sorted order.
func sortedKeys(rows []map[string]any) []string {
	seen := map[string]struct{}{}

	for _, row := range rows {
		for key := range row {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// splitIDs accepts ids as separate arguments or comma-separated lists.
func splitIDs(args []string) []string {
	var ids []string

	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	return ids
}
