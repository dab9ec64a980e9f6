package project

import (
	"path"
	"strings"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

// Context value and flag names shared by the bundled templates.
const (
	KeyPackageName            = "packageName"
	KeyApplicationName        = "applicationName"
	KeyTestImports            = "testImports"
	KeyTestAnnotations        = "testAnnotations"
	FlagNewTestInfrastructure = "newTestInfrastructure"
	FlagJupiterAvailable      = "jupiterAvailable"
)

// Asset is one source file contributed to a generated project.
type Asset struct {
	// Template is the bundled template name, e.g. "kotlin/ApplicationTests.kt".
	Template string
	// Path is the slash-separated destination relative to the project root.
	Path string
	// Context holds the resolved inputs for rendering Template.
	Context template.Context
}

// Plan returns the assets contributed for d, in a stable order: main
// application class, servlet initializer (war only), test class.
func Plan(d Description) ([]Asset, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}

	ext := "kt"
	if d.Language == LanguageJava {
		ext = "java"
	}
	pkgDir := strings.ReplaceAll(d.PackageName, ".", "/")
	mainDir := path.Join("src", "main", d.Language, pkgDir)
	testDir := path.Join("src", "test", d.Language, pkgDir)

	base := map[string]string{
		KeyPackageName:     d.PackageName,
		KeyApplicationName: d.ApplicationName,
	}

	assets := make([]Asset, 0, 3)

	mainCtx, err := template.NewContext(base, nil)
	if err != nil {
		return nil, err
	}
	assets = append(assets, Asset{
		Template: d.Language + "/Application." + ext,
		Path:     path.Join(mainDir, d.ApplicationName+"."+ext),
		Context:  mainCtx,
	})

	if d.Packaging == PackagingWar {
		assets = append(assets, Asset{
			Template: d.Language + "/ServletInitializer." + ext,
			Path:     path.Join(mainDir, "ServletInitializer."+ext),
			Context:  mainCtx,
		})
	}

	testCtx, err := d.TestContext()
	if err != nil {
		return nil, err
	}
	assets = append(assets, Asset{
		Template: d.Language + "/ApplicationTests." + ext,
		Path:     path.Join(testDir, d.ApplicationName+"Tests."+ext),
		Context:  testCtx,
	})

	return assets, nil
}

// TestContext returns the Context for the test-class template.
func (d Description) TestContext() (template.Context, error) {
	return template.NewContext(
		map[string]string{
			KeyPackageName:     d.PackageName,
			KeyApplicationName: d.ApplicationName,
			KeyTestImports:     formatImports(d.Language, d.TestImports()),
			KeyTestAnnotations: formatAnnotations(d.TestAnnotations),
		},
		map[string]bool{
			FlagNewTestInfrastructure: d.NewTestInfrastructure,
			FlagJupiterAvailable:      d.JupiterAvailable,
		},
	)
}
