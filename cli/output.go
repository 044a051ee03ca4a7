package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetFormat resolves the output format. auto picks text on a terminal and
// JSON when stdout is piped.
func GetFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(FlagFormat)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	case FormatAuto:
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return FormatText, nil
		}
		return FormatJSON, nil
	default:
		return "", errors.Errorf("unknown output format %q", format)
	}
}

func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// KV is one row of a two-column key/value table.
type KV struct {
	Key   string
	Value string
}

func WriteKVTable(w io.Writer, rows []KV) {
	table := tablewriter.NewWriter(w)
	for _, row := range rows {
		table.Append([]string{row.Key, row.Value})
	}
	table.Render()
}

func WriteTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// Render writes v as JSON, or calls text to render it for a terminal.
func Render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	format, err := GetFormat(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if format == FormatJSON {
		return WriteJSON(w, v)
	}
	text(w)
	return nil
}
