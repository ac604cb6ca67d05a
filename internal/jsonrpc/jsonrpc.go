// Package jsonrpc reads host requests and writes plugin responses in the launcher's JSON-RPC
// format.
package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ondrovic/edge-profiles/internal/types"
)

// Method names the host may call.
const (
	MethodQuery         = "query"
	MethodLaunchProfile = "launch_profile"
)

// ErrEmptyRequest is returned when the request argument is blank.
var ErrEmptyRequest = errors.New("empty request")

// Decode parses the request passed as the plugin's command-line argument.
func Decode(arg string) (types.Request, error) {
	var req types.Request
	if strings.TrimSpace(arg) == "" {
		return req, ErrEmptyRequest
	}
	if err := json.Unmarshal([]byte(arg), &req); err != nil {
		return req, fmt.Errorf("failed to decode request: %w", err)
	}
	if req.Method == "" {
		return req, fmt.Errorf("failed to decode request: missing method")
	}
	return req, nil
}

// Encode writes resp as a single JSON line. HTML escaping is off so paths and quotes reach the
// host unchanged.
func Encode(w io.Writer, resp types.Response) error {
	if resp.Result == nil {
		resp.Result = []types.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// StringParam returns the i-th positional parameter as a string, or "" when there is none.
func StringParam(req types.Request, i int) string {
	if i < 0 || i >= len(req.Parameters) {
		return ""
	}
	switch v := req.Parameters[i].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
