// Package exporters writes plugin results and discovered profiles to the terminal.
package exporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ondrovic/edge-profiles/internal/jsonrpc"
	"github.com/ondrovic/edge-profiles/internal/types"
	"github.com/ondrovic/edge-profiles/internal/utils/formatters"
)

// DisplayResponse writes the host response to w. In quiet mode it is the exact single-line
// JSON the host would read; otherwise it is indented and colored for a human.
func DisplayResponse(w io.Writer, quiet bool, resp types.Response, formatFunc func(interface{}) (string, error)) error {
	if quiet {
		return jsonrpc.Encode(w, resp)
	}
	return display(w, resp, formatFunc)
}

// DisplayProfiles writes the discovered profiles to w, plain JSON when quiet.
func DisplayProfiles(w io.Writer, quiet bool, ps []types.Profile, formatFunc func(interface{}) (string, error)) error {
	if quiet {
		if err := json.NewEncoder(w).Encode(ps); err != nil {
			return fmt.Errorf("error while attempting to encode profiles: %w", err)
		}
		return nil
	}
	return display(w, ps, formatFunc)
}

func display(w io.Writer, v interface{}, formatFunc func(interface{}) (string, error)) error {
	jsonResults, err := formatFunc(v)
	if err != nil {
		return fmt.Errorf("error while attempting to format results: %w", err)
	}
	return formatters.PrintPrettyJson(w, jsonResults)
}
