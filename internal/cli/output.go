package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pfrederiksen/fbdb-scores/internal/boxscore"
	"github.com/pfrederiksen/fbdb-scores/internal/standings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
)

// ParseOutputFormat maps a format selector onto an OutputFormat. Only "json" selects
// JSON. In lenient mode every other value means FormatDefault; in strict mode values
// other than "json", "default" and "" are rejected.
func ParseOutputFormat(s string, strict bool) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatDefault, "":
		return FormatDefault, nil
	}

	if strict {
		return "", fmt.Errorf("invalid format: %s (must be 'json' or 'default')", s)
	}
	return FormatDefault, nil
}

// RenderGames renders results in the given format. The default format is one
// result per line with no trailing newline.
func RenderGames(games []boxscore.GameResult, format OutputFormat) (string, error) {
	if format == FormatJSON {
		if games == nil {
			games = []boxscore.GameResult{}
		}
		return renderJSON(games)
	}

	lines := make([]string, len(games))
	for i, g := range games {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n"), nil
}

// RenderStandings renders team records as JSON or as a table for any other format
func RenderStandings(records []standings.Record, format OutputFormat) (string, error) {
	if format == FormatJSON {
		if records == nil {
			records = []standings.Record{}
		}
		return renderJSON(records)
	}

	var buf bytes.Buffer
	standings.WriteTable(&buf, records)
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// renderJSON outputs v as indented JSON without the encoder's trailing newline
func renderJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
