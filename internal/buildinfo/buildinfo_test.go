package buildinfo

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", Commit)
	assert.Equal(t, "unknown", Date)
}

func TestGetInfo_RuntimeFields(t *testing.T) {
	t.Parallel()

	info := GetInfo()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, Commit, info.Commit)
	assert.Equal(t, Date, info.Date)
	assert.NotEmpty(t, info.Version)
}

func TestResolveVersion(t *testing.T) {
	t.Parallel()

	withMain := func(v string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: v}}, true
		}
	}
	unavailable := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name    string
		stamped string
		read    func() (*debug.BuildInfo, bool)
		want    string
	}{
		{name: "stamp wins", stamped: "1.2.0", read: withMain("v9.9.9"), want: "1.2.0"},
		{name: "module version", stamped: "dev", read: withMain("v0.3.1"), want: "0.3.1"},
		{name: "devel build", stamped: "dev", read: withMain("(devel)"), want: "dev"},
		{name: "empty module version", stamped: "dev", read: withMain(""), want: "dev"},
		{name: "no build info", stamped: "dev", read: unavailable, want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolveVersion(tt.stamped, tt.read))
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "full",
			info: Info{Version: "1.2.0", Commit: "a1b2c3d", Date: "2026-02-17T10:00:00Z", GoVersion: "go1.24.2", Platform: "linux/amd64"},
			want: "stencil v1.2.0 (commit: a1b2c3d, built: 2026-02-17T10:00:00Z, go1.24.2 linux/amd64)",
		},
		{
			name: "no runtime fields",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown"},
			want: "stencil vdev (commit: unknown, built: unknown)",
		},
		{
			name: "go version without platform",
			info: Info{Version: "1.0.0", Commit: "c", Date: "d", GoVersion: "go1.24.2"},
			want: "stencil v1.0.0 (commit: c, built: d, go1.24.2)",
		},
		{
			name: "zero value",
			want: "stencil v (commit: , built: )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestInfoJSON_Keys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Info{Version: "1", Commit: "c", Date: "d", GoVersion: "go", Platform: "p"})
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]string{
		"version":    "1",
		"commit":     "c",
		"date":       "d",
		"go_version": "go",
		"platform":   "p",
	}, m)
}
