package project

import (
	"sort"
	"strings"
)

const (
	importJUnit4Test     = "org.junit.Test"
	importJupiterTest    = "org.junit.jupiter.api.Test"
	importRunWith        = "org.junit.runner.RunWith"
	importSpringBootTest = "org.springframework.boot.test.context.SpringBootTest"
	importSpringRunner   = "org.springframework.test.context.junit4.SpringRunner"
	importAppConfig      = "org.springframework.boot.test.SpringApplicationConfiguration"
	importJUnit4Runner   = "org.springframework.test.context.junit4.SpringJUnit4ClassRunner"
)

// TestImports returns the sorted imports required by the test class.
func (d Description) TestImports() []string {
	var imports []string
	switch {
	case !d.NewTestInfrastructure:
		imports = []string{importJUnit4Test, importRunWith, importAppConfig, importJUnit4Runner}
	case d.JupiterAvailable:
		imports = []string{importJupiterTest, importSpringBootTest}
	default:
		imports = []string{importJUnit4Test, importRunWith, importSpringBootTest, importSpringRunner}
	}
	sort.Strings(imports)
	return imports
}

// formatImports renders one import statement per line in the syntax of
// language, followed by a blank line. No imports yields "".
func formatImports(language string, imports []string) string {
	if len(imports) == 0 {
		return ""
	}
	terminator := ""
	if language == LanguageJava {
		terminator = ";"
	}
	var b strings.Builder
	for _, imp := range imports {
		b.WriteString("import ")
		b.WriteString(imp)
		b.WriteString(terminator)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// formatAnnotations renders one annotation per line.
func formatAnnotations(annotations []string) string {
	var b strings.Builder
	for _, a := range annotations {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if !strings.HasPrefix(a, "@") {
			b.WriteByte('@')
		}
		b.WriteString(a)
		b.WriteByte('\n')
	}
	return b.String()
}
