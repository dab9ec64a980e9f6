package config

// Config is the top-level configuration structure mapping to stencil.toml.
type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Test     TestConfig     `toml:"test"`
	Generate GenerateConfig `toml:"generate"`
}

// ProjectConfig maps to the [project] section in stencil.toml.
type ProjectConfig struct {
	Name            string `toml:"name"`
	PackageName     string `toml:"package_name"`
	ApplicationName string `toml:"application_name"`
	Language        string `toml:"language"`
	Packaging       string `toml:"packaging"`
}

// TestConfig maps to the [test] section in stencil.toml. Boolean fields are
// pointers so that an absent key can be told apart from false.
type TestConfig struct {
	NewInfrastructure *bool    `toml:"new_infrastructure"`
	JupiterAvailable  *bool    `toml:"jupiter_available"`
	Annotations       []string `toml:"annotations"`
}

// GenerateConfig maps to the [generate] section in stencil.toml.
type GenerateConfig struct {
	OutputDir   string `toml:"output_dir"`
	Concurrency int    `toml:"concurrency"`
	Force       *bool  `toml:"force"`
}

// Bool dereferences p, returning def when p is nil.
func Bool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}
