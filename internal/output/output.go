// Package output renders schedule results to a writer.
package output

import (
	"bytes"
	"encoding/csv"
	stdjson "encoding/json"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/mlbcal/internal/domain/games"
)

// Format selects how records are rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

const indent = "  "

var json = jsoniter.Config{
	IndentionStep: len(indent),
	EscapeHTML:    false,
}.Froze()

// WriteGames renders records in format. An empty result is still a valid
// document: "[]" for JSON, a lone header row for CSV.
func WriteGames(w io.Writer, format Format, records []games.Game) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, records)
	case FormatCSV:
		return writeCSV(w, records)
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}

func writeJSON(w io.Writer, records []games.Game) error {
	if records == nil {
		records = []games.Game{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("output: encode games: %w", err)
	}
	return writeLine(w, data)
}

// writeCSV emits a header row from games.Columns followed by one row per
// record. Rows end in CRLF.
func writeCSV(w io.Writer, records []games.Game) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(games.Columns); err != nil {
		return fmt.Errorf("output: write header: %w", err)
	}
	for _, g := range records {
		if err := cw.Write(g.Values()); err != nil {
			return fmt.Errorf("output: write game %d: %w", g.GameID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("output: flush csv: %w", err)
	}
	return nil
}

// WriteRaw renders raw upstream game objects as an indented JSON array. The
// objects keep their upstream key order.
func WriteRaw(w io.Writer, raw []stdjson.RawMessage) error {
	if raw == nil {
		raw = []stdjson.RawMessage{}
	}
	compact, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(raw)
	if err != nil {
		return fmt.Errorf("output: encode raw games: %w", err)
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, compact, "", indent); err != nil {
		return fmt.Errorf("output: indent raw games: %w", err)
	}
	return writeLine(w, buf.Bytes())
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
