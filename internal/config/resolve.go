package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ConfigSource identifies where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value came from built-in defaults.
	SourceDefault ConfigSource = "default"
	// SourceFile indicates the value came from the stencil.toml config file.
	SourceFile ConfigSource = "file"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceCLI indicates the value came from a CLI flag.
	SourceCLI ConfigSource = "cli"
)

// ResolvedConfig holds the fully-resolved configuration with source tracking.
// The Config field contains the merged values; Sources tracks where each came from.
type ResolvedConfig struct {
	Config  *Config
	Sources map[string]ConfigSource // key is dotted path, e.g., "project.name"
	Path    string                  // path to the config file used (empty if none)
}

// CLIOverrides captures flag values that can override configuration.
// Nil values mean "not set" (do not override).
type CLIOverrides struct {
	Name                  *string
	PackageName           *string
	ApplicationName       *string
	Language              *string
	Packaging             *string
	NewTestInfrastructure *bool
	JupiterAvailable      *bool
	TestAnnotations       []string
	OutputDir             *string
	Concurrency           *int
	Force                 *bool
}

// EnvFunc is a function that looks up environment variables.
// Default implementation is os.LookupEnv. Injected for testability.
type EnvFunc func(key string) (string, bool)

// Resolve merges configuration from all sources in priority order:
// CLI flags > environment variables > config file > defaults.
//
// A nil defaults, fileConfig, envFn or overrides is treated as empty. The
// boolean fields of the returned Config are never nil.
func Resolve(defaults *Config, fileConfig *Config, envFn EnvFunc, overrides *CLIOverrides) *ResolvedConfig {
	rc := &ResolvedConfig{
		Config:  &Config{},
		Sources: make(map[string]ConfigSource),
	}

	if defaults == nil {
		defaults = &Config{}
	}
	if envFn == nil {
		envFn = func(string) (string, bool) { return "", false }
	}
	if overrides == nil {
		overrides = &CLIOverrides{}
	}

	// Layer 1: defaults.
	mergeLayer(rc, defaults, SourceDefault, true)

	// Layer 2: file (only keys actually present override).
	if fileConfig != nil {
		mergeLayer(rc, fileConfig, SourceFile, false)
	}

	// Layer 3: environment.
	resolveFromEnv(rc, envFn)

	// Layer 4: CLI flags.
	resolveFromCLI(rc, overrides)

	t := &rc.Config.Test
	if t.NewInfrastructure == nil {
		t.NewInfrastructure = BoolPtr(false)
	}
	if t.JupiterAvailable == nil {
		t.JupiterAvailable = BoolPtr(false)
	}
	if rc.Config.Generate.Force == nil {
		rc.Config.Generate.Force = BoolPtr(false)
	}

	return rc
}

// mergeLayer copies layer into rc. With always set every field is taken,
// even when empty; otherwise only non-zero fields override.
func mergeLayer(rc *ResolvedConfig, layer *Config, src ConfigSource, always bool) {
	p, lp := &rc.Config.Project, &layer.Project
	mergeString(&p.Name, lp.Name, "project.name", src, always, rc.Sources)
	mergeString(&p.PackageName, lp.PackageName, "project.package_name", src, always, rc.Sources)
	mergeString(&p.ApplicationName, lp.ApplicationName, "project.application_name", src, always, rc.Sources)
	mergeString(&p.Language, lp.Language, "project.language", src, always, rc.Sources)
	mergeString(&p.Packaging, lp.Packaging, "project.packaging", src, always, rc.Sources)

	t, lt := &rc.Config.Test, &layer.Test
	mergeBool(&t.NewInfrastructure, lt.NewInfrastructure, "test.new_infrastructure", src, rc.Sources)
	mergeBool(&t.JupiterAvailable, lt.JupiterAvailable, "test.jupiter_available", src, rc.Sources)
	if always || len(lt.Annotations) > 0 {
		t.Annotations = copyStrings(lt.Annotations)
		rc.Sources["test.annotations"] = src
	}

	g, lg := &rc.Config.Generate, &layer.Generate
	mergeString(&g.OutputDir, lg.OutputDir, "generate.output_dir", src, always, rc.Sources)
	if always || lg.Concurrency != 0 {
		g.Concurrency = lg.Concurrency
		rc.Sources["generate.concurrency"] = src
	}
	mergeBool(&g.Force, lg.Force, "generate.force", src, rc.Sources)
}

// Environment variable mapping:
//
//	STENCIL_NAME                     -> project.name
//	STENCIL_PACKAGE_NAME             -> project.package_name
//	STENCIL_APPLICATION_NAME         -> project.application_name
//	STENCIL_LANGUAGE                 -> project.language
//	STENCIL_PACKAGING                -> project.packaging
//	STENCIL_NEW_TEST_INFRASTRUCTURE  -> test.new_infrastructure
//	STENCIL_JUPITER_AVAILABLE        -> test.jupiter_available
//	STENCIL_OUTPUT_DIR               -> generate.output_dir
func resolveFromEnv(rc *ResolvedConfig, envFn EnvFunc) {
	strVars := []struct {
		key    string
		path   string
		target *string
	}{
		{"STENCIL_NAME", "project.name", &rc.Config.Project.Name},
		{"STENCIL_PACKAGE_NAME", "project.package_name", &rc.Config.Project.PackageName},
		{"STENCIL_APPLICATION_NAME", "project.application_name", &rc.Config.Project.ApplicationName},
		{"STENCIL_LANGUAGE", "project.language", &rc.Config.Project.Language},
		{"STENCIL_PACKAGING", "project.packaging", &rc.Config.Project.Packaging},
		{"STENCIL_OUTPUT_DIR", "generate.output_dir", &rc.Config.Generate.OutputDir},
	}
	for _, v := range strVars {
		if val, ok := envFn(v.key); ok {
			*v.target = val
			rc.Sources[v.path] = SourceEnv
		}
	}

	boolVars := []struct {
		key    string
		path   string
		target **bool
	}{
		{"STENCIL_NEW_TEST_INFRASTRUCTURE", "test.new_infrastructure", &rc.Config.Test.NewInfrastructure},
		{"STENCIL_JUPITER_AVAILABLE", "test.jupiter_available", &rc.Config.Test.JupiterAvailable},
	}
	for _, v := range boolVars {
		val, ok := envFn(v.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			log.Warn("ignoring invalid boolean environment variable", "key", v.key, "value", val)
			continue
		}
		*v.target = BoolPtr(b)
		rc.Sources[v.path] = SourceEnv
	}
}

func resolveFromCLI(rc *ResolvedConfig, o *CLIOverrides) {
	p := &rc.Config.Project
	overrideString(&p.Name, o.Name, "project.name", rc.Sources)
	overrideString(&p.PackageName, o.PackageName, "project.package_name", rc.Sources)
	overrideString(&p.ApplicationName, o.ApplicationName, "project.application_name", rc.Sources)
	overrideString(&p.Language, o.Language, "project.language", rc.Sources)
	overrideString(&p.Packaging, o.Packaging, "project.packaging", rc.Sources)

	t := &rc.Config.Test
	mergeBool(&t.NewInfrastructure, o.NewTestInfrastructure, "test.new_infrastructure", SourceCLI, rc.Sources)
	mergeBool(&t.JupiterAvailable, o.JupiterAvailable, "test.jupiter_available", SourceCLI, rc.Sources)
	if o.TestAnnotations != nil {
		t.Annotations = copyStrings(o.TestAnnotations)
		rc.Sources["test.annotations"] = SourceCLI
	}

	g := &rc.Config.Generate
	overrideString(&g.OutputDir, o.OutputDir, "generate.output_dir", rc.Sources)
	if o.Concurrency != nil {
		g.Concurrency = *o.Concurrency
		rc.Sources["generate.concurrency"] = SourceCLI
	}
	mergeBool(&g.Force, o.Force, "generate.force", SourceCLI, rc.Sources)
}

// --- Helpers ---

// mergeString overwrites the target when always is set or value is non-empty.
// For file-layer merging, an empty string in the file means "not set in file",
// so it does not override the default.
func mergeString(target *string, value string, path string, source ConfigSource, always bool, sources map[string]ConfigSource) {
	if always || value != "" {
		*target = value
		sources[path] = source
	}
}

// mergeBool overwrites the target only when value is set.
func mergeBool(target **bool, value *bool, path string, source ConfigSource, sources map[string]ConfigSource) {
	if value != nil {
		*target = BoolPtr(*value)
		sources[path] = source
	}
}

// overrideString applies a CLI override when one was given.
func overrideString(target *string, value *string, path string, sources map[string]ConfigSource) {
	if value != nil {
		*target = *value
		sources[path] = SourceCLI
	}
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
