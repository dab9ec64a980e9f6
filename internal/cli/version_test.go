package cli

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/buildinfo"
)

func TestVersionCmd_HumanReadable(t *testing.T) {
	resetRootCmd(t)

	stdout, stderr, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	info := buildinfo.GetInfo()
	assert.Equal(t, info.String()+"\n", stdout)
	assert.Contains(t, stdout, "stencil v")
	assert.Contains(t, stdout, runtime.Version())
}

func TestVersionCmd_JSON(t *testing.T) {
	resetRootCmd(t)

	stdout, _, err := runCmd(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\n  \"version\"", "JSON output is indented")

	var got buildinfo.Info
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, buildinfo.GetInfo(), got)
}

func TestVersionCmd_JSONFlagDoesNotLeak(t *testing.T) {
	resetRootCmd(t)
	_, _, err := runCmd(t, "version", "--json")
	require.NoError(t, err)

	resetRootCmd(t)
	stdout, _, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "{")
}

func TestVersionCmd_RejectsExtraArgs(t *testing.T) {
	resetRootCmd(t)

	_, _, err := runCmd(t, "version", "extra")
	assert.Error(t, err)
}
