// Package project turns a project description into rendered source files.
//
// It resolves the per-file template Context (package and class names,
// import blocks, test-infrastructure flags), chooses which bundled templates
// apply to the description, and writes the rendered files into a project
// tree.
package project

import (
	"fmt"
	"strings"
	"unicode"
)

// Language identifiers.
const (
	LanguageJava   = "java"
	LanguageKotlin = "kotlin"
)

// Packaging identifiers.
const (
	PackagingJar = "jar"
	PackagingWar = "war"
)

const (
	defaultName        = "demo"
	defaultPackageBase = "com.example"
	applicationSuffix  = "Application"
)

// Description is the resolved configuration of a project to generate.
type Description struct {
	// Name is the project name (e.g. "demo").
	Name string
	// PackageName is the root package (e.g. "com.example.demo").
	PackageName string
	// ApplicationName is the main class name (e.g. "DemoApplication").
	ApplicationName string
	// Language is LanguageJava or LanguageKotlin.
	Language string
	// Packaging is PackagingJar or PackagingWar.
	Packaging string
	// NewTestInfrastructure selects @SpringBootTest over the legacy
	// SpringApplicationConfiguration runner.
	NewTestInfrastructure bool
	// JupiterAvailable reports whether the JUnit Jupiter runner is on the
	// test classpath.
	JupiterAvailable bool
	// TestAnnotations are extra annotations placed on the test class.
	TestAnnotations []string
}

// DefaultDescription returns the description used when nothing is
// configured.
func DefaultDescription() Description {
	return Description{
		Name:                  defaultName,
		PackageName:           DerivePackageName(defaultName),
		ApplicationName:       DeriveApplicationName(defaultName),
		Language:              LanguageKotlin,
		Packaging:             PackagingJar,
		NewTestInfrastructure: true,
		JupiterAvailable:      true,
	}
}

// Normalize fills empty fields from Name and the defaults.
func (d Description) Normalize() Description {
	if strings.TrimSpace(d.Name) == "" {
		d.Name = defaultName
	}
	if d.PackageName == "" {
		d.PackageName = DerivePackageName(d.Name)
	}
	if d.ApplicationName == "" {
		d.ApplicationName = DeriveApplicationName(d.Name)
	}
	if d.Language == "" {
		d.Language = LanguageKotlin
	}
	if d.Packaging == "" {
		d.Packaging = PackagingJar
	}
	return d
}

// Validate checks that the description can be rendered.
func (d Description) Validate() error {
	switch d.Language {
	case LanguageJava, LanguageKotlin:
	default:
		return fmt.Errorf("unsupported language %q; must be one of: java, kotlin", d.Language)
	}
	switch d.Packaging {
	case PackagingJar, PackagingWar:
	default:
		return fmt.Errorf("unsupported packaging %q; must be one of: jar, war", d.Packaging)
	}
	if !isQualifiedIdentifier(d.PackageName) {
		return fmt.Errorf("invalid package name %q", d.PackageName)
	}
	if !isIdentifier(d.ApplicationName) {
		return fmt.Errorf("invalid application name %q", d.ApplicationName)
	}
	return nil
}

// DeriveApplicationName builds a main class name from a project name:
// "my-cool app" becomes "MyCoolAppApplication". Names without any usable
// characters yield "Application".
func DeriveApplicationName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !isIdentPart(r) || r == '_' {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	base := b.String()
	if strings.HasSuffix(base, applicationSuffix) {
		return base
	}
	return base + applicationSuffix
}

// DerivePackageName builds a package name below com.example from a project
// name, dropping characters that cannot appear in an identifier. Names
// without any usable characters yield "com.example.demo".
func DerivePackageName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if !isIdentPart(r) {
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return defaultPackageBase + "." + defaultName
	}
	return defaultPackageBase + "." + b.String()
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !isIdentPart(r) || (i == 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func isQualifiedIdentifier(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}
