// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize("info", "json", &buf))

	Logger.Info("palette generated", "steps", 11)
	Logger.Debug("hidden")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "palette generated", entry["msg"])
	assert.Equal(t, float64(11), entry["steps"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInitializeDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize("DEBUG", "logfmt", &buf))
	Logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestInitializeRejectsBadInput(t *testing.T) {
	assert.Error(t, Initialize("loud", "text", nil))
	assert.Error(t, Initialize("info", "xml", nil))
}
