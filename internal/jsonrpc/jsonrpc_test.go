package jsonrpc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrovic/edge-profiles/internal/types"
)

func TestDecode_Query(t *testing.T) {
	req, err := Decode(`{"method":"query","parameters":["work"],"settings":{"foo":"bar"}}`)

	require.NoError(t, err)
	assert.Equal(t, MethodQuery, req.Method)
	assert.Equal(t, "work", StringParam(req, 0))
	assert.Equal(t, "bar", req.Settings["foo"])
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "blank", arg: "  ", want: "empty request"},
		{name: "not json", arg: "query work", want: "failed to decode request"},
		{name: "no method", arg: `{"parameters":[]}`, want: "missing method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.arg)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDecode_BlankIsErrEmptyRequest(t *testing.T) {
	_, err := Decode("")

	assert.ErrorIs(t, err, ErrEmptyRequest)
}

func TestStringParam(t *testing.T) {
	req := types.Request{Parameters: []any{"Profile 2", 3.0, nil, true}}

	assert.Equal(t, "Profile 2", StringParam(req, 0))
	assert.Equal(t, "3", StringParam(req, 1))
	assert.Equal(t, "", StringParam(req, 2))
	assert.Equal(t, "true", StringParam(req, 3))
	assert.Equal(t, "", StringParam(req, 4))
	assert.Equal(t, "", StringParam(req, -1))
}

func TestEncode_SingleLineNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	resp := types.Response{Result: []types.Result{{
		Title:    "No matching profiles found",
		SubTitle: "No Edge profiles match '<work>'.",
		IcoPath:  "Images/app.png",
	}}}

	require.NoError(t, Encode(&buf, resp))

	assert.Equal(t,
		`{"result":[{"Title":"No matching profiles found","SubTitle":"No Edge profiles match '<work>'.","IcoPath":"Images/app.png","JsonRPCAction":null}]}`+"\n",
		buf.String())
}

func TestEncode_NilResultIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, types.Response{}))

	assert.JSONEq(t, `{"result":[]}`, buf.String())
}
