package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrWizardCancelled is returned when the user aborts the interactive wizard.
var ErrWizardCancelled = errors.New("wizard cancelled by user")

// wizardWidth is the fixed form width used by the wizard.
const wizardWidth = 80

// RunWizard prompts for a project description, starting from defaults.
//
// The wizard has two pages:
//  1. Project: name, package, application class, language, packaging
//  2. Testing: test infrastructure and JUnit Jupiter availability
//
// Empty package and application names are derived from the project name.
func RunWizard(defaults Description) (Description, error) {
	d := defaults.Normalize()
	// Derived names are cleared so they follow an edited project name.
	if d.PackageName == DerivePackageName(d.Name) {
		d.PackageName = ""
	}
	if d.ApplicationName == DeriveApplicationName(d.Name) {
		d.ApplicationName = ""
	}

	if err := projectForm(&d).Run(); err != nil {
		return Description{}, mapWizardErr(err)
	}
	if err := testingForm(&d).Run(); err != nil {
		return Description{}, mapWizardErr(err)
	}

	d.Name = strings.TrimSpace(d.Name)
	d.PackageName = strings.TrimSpace(d.PackageName)
	d.ApplicationName = strings.TrimSpace(d.ApplicationName)
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return Description{}, fmt.Errorf("wizard: %w", err)
	}
	return d, nil
}

func projectForm(d *Description) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&d.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Package name").
				Description("Leave empty to derive from the project name").
				Value(&d.PackageName).
				Validate(validatePackageName),
			huh.NewInput().
				Title("Application class").
				Description("Leave empty to derive from the project name").
				Value(&d.ApplicationName).
				Validate(validateApplicationName),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("Kotlin", LanguageKotlin),
					huh.NewOption("Java", LanguageJava),
				).
				Value(&d.Language),
			huh.NewSelect[string]().
				Title("Packaging").
				Options(
					huh.NewOption("Jar", PackagingJar),
					huh.NewOption("War", PackagingWar),
				).
				Value(&d.Packaging),
		),
	).
		WithTheme(huh.ThemeCharm()).
		WithWidth(wizardWidth)
}

func testingForm(d *Description) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use @SpringBootTest test infrastructure?").
				Affirmative("Yes").
				Negative("Legacy").
				Value(&d.NewTestInfrastructure),
			huh.NewConfirm().
				Title("Is JUnit Jupiter available?").
				Value(&d.JupiterAvailable),
		),
	).
		WithTheme(huh.ThemeCharm()).
		WithWidth(wizardWidth)
}

// mapWizardErr converts huh's abort error into ErrWizardCancelled.
func mapWizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrWizardCancelled
	}
	return fmt.Errorf("wizard: %w", err)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func validatePackageName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || isQualifiedIdentifier(s) {
		return nil
	}
	return errors.New("must be a dot-separated list of identifiers")
}

func validateApplicationName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || isIdentifier(s) {
		return nil
	}
	return errors.New("must be a valid class name")
}
