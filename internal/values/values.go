// Package values builds template contexts from user input: value files in
// YAML, JSON or TOML, and name=value assignments given on the command line.
//
// A value file is a flat mapping. Booleans become predicate flags; strings
// and numbers become placeholder values, spelled exactly as written in the
// file. Nested mappings and sequences are rejected.
//
//	packageName: com.example.demo
//	testImports: |
//	  import org.junit.jupiter.api.Test
//	newTestInfrastructure: true
package values

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

// Format is the encoding of a value file.
type Format int

const (
	// FormatYAML covers YAML and JSON documents.
	FormatYAML Format = iota
	// FormatTOML is a TOML document.
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatForPath picks the format from a file extension. Anything that is
// not .toml is read as YAML, which also accepts JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads the value file at path.
func Load(path string) (template.Context, error) {
	if strings.TrimSpace(path) == "" {
		return template.Context{}, fmt.Errorf("values path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return template.Context{}, fmt.Errorf("read values %s: %w", path, err)
	}
	ctx, err := Parse(data, FormatForPath(path))
	if err != nil {
		return template.Context{}, fmt.Errorf("parse values %s: %w", path, err)
	}
	return ctx, nil
}

// Parse decodes a value document.
func Parse(data []byte, format Format) (template.Context, error) {
	switch format {
	case FormatTOML:
		return parseTOML(data)
	default:
		return parseYAML(data)
	}
}

func parseYAML(data []byte) (template.Context, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return template.Context{}, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return template.Context{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return template.Context{}, fmt.Errorf("line %d: top level must be a mapping", root.Line)
	}

	vals := make(map[string]string)
	flags := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		name := key.Value
		if node.Kind == yaml.AliasNode {
			node = node.Alias
		}
		if node.Kind != yaml.ScalarNode {
			return template.Context{}, fmt.Errorf("line %d: %q must be a string, number or boolean", node.Line, name)
		}
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return template.Context{}, fmt.Errorf("line %d: %q: %w", node.Line, name, err)
			}
			flags[name] = b
		case "!!null":
			return template.Context{}, fmt.Errorf("line %d: %q has no value", node.Line, name)
		default:
			vals[name] = node.Value
		}
	}
	return template.NewContext(vals, flags)
}

func parseTOML(data []byte) (template.Context, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return template.Context{}, err
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	vals := make(map[string]string)
	flags := make(map[string]bool)
	for _, name := range names {
		switch v := doc[name].(type) {
		case bool:
			flags[name] = v
		case string:
			vals[name] = v
		case int64, float64:
			vals[name] = fmt.Sprint(v)
		default:
			return template.Context{}, fmt.Errorf("%q must be a string, number or boolean", name)
		}
	}
	return template.NewContext(vals, flags)
}
