// Package resources bundles Stencil's source-file templates and exposes them
// by name. Names are slash-separated paths below the embedded templates
// directory, e.g. "kotlin/ApplicationTests.kt".
package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

//go:embed all:templates
var embedded embed.FS

// templatesRoot is the directory inside the embedded FS holding all
// templates.
const templatesRoot = "templates"

// ErrNotFound is returned when a named template is not bundled.
var ErrNotFound = errors.New("template not found")

// parsed memoizes parsed resources for the lifetime of the process.
var parsed = template.NewCache()

func root() fs.FS {
	sub, err := fs.Sub(embedded, templatesRoot)
	if err != nil {
		// templatesRoot is a compile-time embed directory.
		panic(fmt.Sprintf("resources: embedded templates missing: %v", err))
	}
	return sub
}

// List returns the sorted names of bundled templates matching the doublestar
// pattern. An empty pattern matches everything.
func List(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid template pattern %q", pattern)
	}

	matches, err := doublestar.Glob(root(), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing templates matching %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Exists reports whether name refers to a bundled template file.
func Exists(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(root(), name)
	return err == nil && !info.IsDir()
}

// Source returns the raw text of the named template.
func Source(name string) (string, error) {
	if !Exists(name) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := fs.ReadFile(root(), name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}

// Load returns the parsed form of the named template. Each template is
// parsed once per process and shared read-only afterwards.
func Load(name string) (*template.Template, error) {
	src, err := Source(name)
	if err != nil {
		return nil, err
	}
	return parsed.Get(name, src)
}

// LoadFile parses a template stored on disk. It shares the cache used for
// bundled templates; the cache key includes a hash of the contents, so an
// edited file is parsed again.
func LoadFile(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}
	return parsed.Get(path, string(data))
}
