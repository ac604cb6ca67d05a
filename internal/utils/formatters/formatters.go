// Package formatters provides JSON formatting for terminal output.
package formatters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
)

// marshalIndent is used by FormatAsJson; tests may override to simulate marshal failure.
var marshalIndent = json.MarshalIndent

// formatterMarshal is used by PrintPrettyJson; tests may override to simulate formatter marshal failure.
var formatterMarshal = func(f *colorjson.Formatter, obj interface{}) ([]byte, error) { return f.Marshal(obj) }

// FormatAsJson formats v as indented JSON.
func FormatAsJson(v interface{}) (string, error) {
	jsonData, err := marshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(jsonData), nil
}

// PrintPrettyJson takes a JSON string, unmarshals it into an object, and writes it to w with
// colored formatting. Alternate colors are used for keys and strings when useAltColors is
// provided and set to true.
func PrintPrettyJson(w io.Writer, data string, useAltColors ...bool) error {
	var obj interface{}

	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 4

	if len(useAltColors) > 0 && useAltColors[0] {
		f.KeyColor = color.New(color.FgHiCyan)
		f.StringColor = color.New(color.FgHiMagenta)
	}

	s, err := formatterMarshal(f, obj)
	if err != nil {
		return fmt.Errorf("failed to marshal formatted JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(s))
	return err
}
