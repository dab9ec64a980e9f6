package config

// NewDefaults returns a Config populated with all default values.
// These defaults describe a Kotlin jar project using @SpringBootTest and
// JUnit Jupiter.
func NewDefaults() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:      "demo",
			Language:  "kotlin",
			Packaging: "jar",
		},
		Test: TestConfig{
			NewInfrastructure: BoolPtr(true),
			JupiterAvailable:  BoolPtr(true),
		},
		Generate: GenerateConfig{
			OutputDir:   ".",
			Concurrency: 4,
			Force:       BoolPtr(false),
		},
	}
}
