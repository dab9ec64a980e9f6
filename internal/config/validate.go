package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// ValidationSeverity indicates whether a validation issue is an error or warning.
type ValidationSeverity string

const (
	// SeverityError indicates a fatal validation issue; the configuration is unusable.
	SeverityError ValidationSeverity = "error"
	// SeverityWarning indicates an informational validation issue; the configuration works
	// but may have problems.
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity
	Field    string // dotted path, e.g., "project.name"
	Message  string
}

// ValidationResult holds all validation findings.
type ValidationResult struct {
	Issues []ValidationIssue
}

// HasErrors returns true if any issue has error severity.
func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has warning severity.
func (vr *ValidationResult) HasWarnings() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns only error-severity issues.
func (vr *ValidationResult) Errors() []ValidationIssue {
	var errs []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Warnings returns only warning-severity issues.
func (vr *ValidationResult) Warnings() []ValidationIssue {
	var warns []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			warns = append(warns, issue)
		}
	}
	return warns
}

// recognizedLanguages is the set of valid values for project.language.
var recognizedLanguages = map[string]bool{
	"":       true,
	"java":   true,
	"kotlin": true,
}

// recognizedPackagings is the set of valid values for project.packaging.
var recognizedPackagings = map[string]bool{
	"":    true,
	"jar": true,
	"war": true,
}

var (
	identifierRe          = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)
	qualifiedIdentifierRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*(\.[\p{L}_][\p{L}\p{N}_]*)*$`)
)

// maxConcurrency caps generate.concurrency; a project has only a handful of
// files to render.
const maxConcurrency = 64

// Validate checks the configuration for correctness and completeness.
// It performs structural validation, semantic validation, and unknown key detection.
//
// Parameters:
//   - cfg: the configuration to validate
//   - meta: TOML metadata from BurntSushi/toml (may be nil if no file was loaded)
//
// Returns validation results. Check HasErrors() to determine if the config is usable.
func Validate(cfg *Config, meta *toml.MetaData) *ValidationResult {
	vr := &ValidationResult{}

	if cfg == nil {
		addError(vr, "", "configuration is nil")
		return vr
	}

	validateProject(vr, &cfg.Project)
	validateTest(vr, &cfg.Test)
	validateGenerate(vr, &cfg.Generate)
	validateUnknownKeys(vr, meta)

	return vr
}

// validateProject checks the [project] section for errors and warnings.
func validateProject(vr *ValidationResult, p *ProjectConfig) {
	// Warning: an empty name falls back to "demo".
	if strings.TrimSpace(p.Name) == "" {
		addWarning(vr, "project.name", "is empty; \"demo\" will be used")
	}

	if !recognizedLanguages[p.Language] {
		addError(vr, "project.language",
			fmt.Sprintf("unrecognized language %q; must be one of: java, kotlin, or empty", p.Language))
	}

	if !recognizedPackagings[p.Packaging] {
		addError(vr, "project.packaging",
			fmt.Sprintf("unrecognized packaging %q; must be one of: jar, war, or empty", p.Packaging))
	}

	if p.PackageName != "" && !qualifiedIdentifierRe.MatchString(p.PackageName) {
		addError(vr, "project.package_name",
			fmt.Sprintf("invalid package name %q; must be dot-separated identifiers", p.PackageName))
	}

	if p.ApplicationName != "" && !identifierRe.MatchString(p.ApplicationName) {
		addError(vr, "project.application_name",
			fmt.Sprintf("invalid class name %q", p.ApplicationName))
	}
}

// validateTest checks the [test] section.
func validateTest(vr *ValidationResult, t *TestConfig) {
	for i, a := range t.Annotations {
		if strings.TrimSpace(a) == "" {
			addError(vr, fmt.Sprintf("test.annotations[%d]", i), "must not be an empty string")
		}
	}

	// Warning: jupiter availability has no effect on the legacy runner.
	if t.NewInfrastructure != nil && !*t.NewInfrastructure && Bool(t.JupiterAvailable, false) {
		addWarning(vr, "test.jupiter_available",
			"ignored when test.new_infrastructure is false")
	}
}

// validateGenerate checks the [generate] section.
func validateGenerate(vr *ValidationResult, g *GenerateConfig) {
	if g.Concurrency < 0 || g.Concurrency > maxConcurrency {
		addError(vr, "generate.concurrency",
			fmt.Sprintf("must be between 0 and %d, got %d", maxConcurrency, g.Concurrency))
	}

	// Warning: output_dir exists but is not a directory.
	if g.OutputDir != "" {
		if info, err := os.Stat(g.OutputDir); err == nil && !info.IsDir() {
			addWarning(vr, "generate.output_dir",
				fmt.Sprintf("%q exists and is not a directory", g.OutputDir))
		}
	}
}

// validateUnknownKeys checks for TOML keys that did not map to any config struct field.
func validateUnknownKeys(vr *ValidationResult, meta *toml.MetaData) {
	if meta == nil {
		return
	}

	for _, key := range meta.Undecoded() {
		path := strings.Join(key, ".")
		addWarning(vr, path, "unknown configuration key")
	}
}

// addError appends an error-severity issue to the validation result.
func addError(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
	})
}

// addWarning appends a warning-severity issue to the validation result.
func addWarning(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
	})
}
