package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/config"
)

// writeStencilToml writes a stencil.toml into dir and returns its path.
func writeStencilToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigCmd_NoSubcommand_ShowsHelp(t *testing.T) {
	resetRootCmd(t)

	stdout, _, err := runCmd(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "validate")
}

func TestConfigShowCmd_DefaultsOnly(t *testing.T) {
	resetRootCmd(t)
	chdirTemp(t)

	stdout, _, err := runCmd(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Resolved Configuration")
	assert.Contains(t, stdout, "Config file: none found")
	assert.Contains(t, stdout, "[project]")
	assert.Contains(t, stdout, "[test]")
	assert.Contains(t, stdout, "[generate]")
	assert.Contains(t, stdout, `"demo"`)
	assert.Contains(t, stdout, "(source: default)")
	assert.NotContains(t, stdout, "(source: file)")
}

func TestConfigShowCmd_FileEnvAndAlias(t *testing.T) {
	resetRootCmd(t)
	dir := chdirTemp(t)
	writeStencilToml(t, dir, "[project]\nname = \"orders\"\nlanguage = \"java\"\n")
	t.Setenv("STENCIL_PACKAGING", "war")

	stdout, _, err := runCmd(t, "config", "debug")
	require.NoError(t, err)

	assert.Contains(t, stdout, config.ConfigFileName)
	assert.Regexp(t, `name\s+= "orders"\s+\(source: file\)`, stdout)
	assert.Regexp(t, `language\s+= "java"\s+\(source: file\)`, stdout)
	assert.Regexp(t, `packaging\s+= "war"\s+\(source: env\)`, stdout)
}

func TestConfigShowCmd_ExplicitConfigFlag(t *testing.T) {
	resetRootCmd(t)
	chdirTemp(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project]\nname = \"billing\"\n"), 0o644))

	stdout, _, err := runCmd(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: "+path)
	assert.Contains(t, stdout, `"billing"`)
}

func TestConfigShowCmd_ExplicitConfigMissing(t *testing.T) {
	resetRootCmd(t)

	_, _, err := runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	resetRootCmd(t)
	dir := chdirTemp(t)
	writeStencilToml(t, dir, "[project]\nname = \"orders\"\n")

	stdout, _, err := runCmd(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found.")
}

func TestConfigValidateCmd_Errors(t *testing.T) {
	resetRootCmd(t)
	dir := chdirTemp(t)
	writeStencilToml(t, dir, "[project]\nlanguage = \"scala\"\npackaging = \"ear\"\n")

	stdout, _, err := runCmd(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error(s)")
	assert.Contains(t, stdout, "[project.language]")
	assert.Contains(t, stdout, "[project.packaging]")
}

func TestConfigValidateCmd_UnknownKeyWarning(t *testing.T) {
	resetRootCmd(t)
	dir := chdirTemp(t)
	writeStencilToml(t, dir, "[project]\nname = \"orders\"\nflavour = \"vanilla\"\n")

	stdout, _, err := runCmd(t, "config", "validate")
	require.NoError(t, err, "warnings alone do not fail validation")
	assert.Contains(t, stdout, "Warnings:")
	assert.Contains(t, stdout, "[project.flavour] unknown configuration key")
	assert.Contains(t, stdout, "0 error(s), 1 warning(s)")
}

func TestLoadAndResolveConfig_Overrides(t *testing.T) {
	resetRootCmd(t)
	dir := chdirTemp(t)
	writeStencilToml(t, dir, "[project]\nname = \"orders\"\n")

	name := "cli"
	rc, meta, err := loadAndResolveConfig(&config.CLIOverrides{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "cli", rc.Config.Project.Name)
	assert.Equal(t, config.SourceCLI, rc.Sources["project.name"])
	assert.NotEmpty(t, rc.Path)
}

func TestPrintField_EmptySourceIsDefault(t *testing.T) {
	var buf bytes.Buffer
	printField(&buf, "name", `"x"`, "")
	assert.Contains(t, buf.String(), "(source: default)")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, `"a b"`, fmtStr("a b"))
	assert.Equal(t, "[]", fmtSlice(nil))
	assert.Equal(t, `["@A", "@B"]`, fmtSlice([]string{"@A", "@B"}))
	assert.Equal(t, "false", fmtBool(nil))
	assert.Equal(t, "true", fmtBool(config.BoolPtr(true)))
}
