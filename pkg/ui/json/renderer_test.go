package json

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/resultmap/pkg/resolver"
	"github.com/arthur-debert/resultmap/pkg/resultpath"
	"github.com/arthur-debert/resultmap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.Resolution{
		Input:  resolver.Descriptor{Path: "/x", Value: "<home>"},
		Result: resultpath.New("/index"),
	}))

	assert.JSONEq(t, `{
		"input": {"path": "/x", "value": "<home>"},
		"result": {"path": "/index"}
	}`, buf.String())
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(&buf)

	require.NoError(t, r.RenderError(stderrors.New("boom")))
	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "boom", got["error"])

	buf.Reset()
	require.NoError(t, r.RenderMessage("hi"))
	assert.JSONEq(t, `{"message":"hi"}`, buf.String())
}
