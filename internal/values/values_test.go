package values

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	doc := `
packageName: com.example.demo
version: 1.0
count: 3
quoted: "true"
testImports: |
  import org.junit.jupiter.api.Test
newTestInfrastructure: true
jupiterAvailable: false
`
	ctx, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"packageName": "com.example.demo",
		"version":     "1.0",
		"count":       "3",
		"quoted":      "true",
		"testImports": "import org.junit.jupiter.api.Test\n",
	}, ctx.Values())
	assert.Equal(t, map[string]bool{
		"newTestInfrastructure": true,
		"jupiterAvailable":      false,
	}, ctx.Flags())
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	ctx, err := Parse([]byte(`{"packageName": "io.acme", "jupiterAvailable": true}`), FormatYAML)
	require.NoError(t, err)

	v, ok := ctx.Value("packageName")
	assert.True(t, ok)
	assert.Equal(t, "io.acme", v)
	f, ok := ctx.Flag("jupiterAvailable")
	assert.True(t, ok)
	assert.True(t, f)
}

func TestParse_TOML(t *testing.T) {
	t.Parallel()

	doc := `
packageName = "com.example.demo"
retries = 3
newTestInfrastructure = false
`
	ctx, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"packageName": "com.example.demo", "retries": "3"}, ctx.Values())
	assert.Equal(t, map[string]bool{"newTestInfrastructure": false}, ctx.Flags())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatYAML, FormatTOML} {
		ctx, err := Parse(nil, f)
		require.NoError(t, err, f.String())
		assert.Empty(t, ctx.Names(), f.String())
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{name: "yaml sequence root", format: FormatYAML, doc: "- a\n- b\n"},
		{name: "yaml nested map", format: FormatYAML, doc: "a:\n  b: c\n"},
		{name: "yaml list value", format: FormatYAML, doc: "a: [1, 2]\n"},
		{name: "yaml null", format: FormatYAML, doc: "a:\n"},
		{name: "yaml syntax", format: FormatYAML, doc: "a: [\n"},
		{name: "toml table", format: FormatTOML, doc: "[a]\nb = 1\n"},
		{name: "toml array", format: FormatTOML, doc: "a = [1, 2]\n"},
		{name: "toml syntax", format: FormatTOML, doc: "a = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatTOML, FormatForPath("values.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("VALUES.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("values.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("values.json"))
	assert.Equal(t, FormatYAML, FormatForPath("values"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "values.toml")
	require.NoError(t, os.WriteFile(path, []byte("applicationName = \"DemoApplication\"\n"), 0o644))

	ctx, err := Load(path)
	require.NoError(t, err)
	v, _ := ctx.Value("applicationName")
	assert.Equal(t, "DemoApplication", v)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load("  ")
	assert.Error(t, err)
}

func TestAssignments(t *testing.T) {
	t.Parallel()

	ctx, err := Assignments(
		[]string{"packageName=com.example", "empty=", "expr=a=b"},
		[]string{"jupiterAvailable", "newTestInfrastructure=false"},
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"packageName": "com.example", "empty": "", "expr": "a=b"}, ctx.Values())
	assert.Equal(t, map[string]bool{"jupiterAvailable": true, "newTestInfrastructure": false}, ctx.Flags())
}

func TestAssignments_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sets  []string
		flags []string
	}{
		{name: "missing equals", sets: []string{"packageName"}},
		{name: "empty value name", sets: []string{"=x"}},
		{name: "empty flag name", flags: []string{"=true"}},
		{name: "bad bool", flags: []string{"on=maybe"}},
		{name: "conflict", sets: []string{"p=x"}, flags: []string{"p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Assignments(tt.sets, tt.flags)
			assert.Error(t, err)
		})
	}
}

func TestAssignments_ConflictIsTyped(t *testing.T) {
	t.Parallel()

	_, err := Assignments([]string{"p=x"}, []string{"p"})
	var conflict *template.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "p", conflict.Name)
}
