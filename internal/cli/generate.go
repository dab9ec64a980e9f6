package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/config"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/logging"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/project"
)

// generateFlags holds the flag values of the generate subcommand.
type generateFlags struct {
	name            string
	packageName     string
	applicationName string
	language        string
	packaging       string
	newInfra        bool
	jupiter         bool
	annotations     []string
	outputDir       string
	concurrency     int
	force           bool
	interactive     bool
}

var genFlags generateFlags

// generateCmd implements "stencil generate".
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the application, servlet initializer and test classes",
	Long: `Generate the Spring Boot source files of a project: the main application
class, the ServletInitializer (war packaging only) and the test class.

Values come from flags, STENCIL_* environment variables, stencil.toml and
built-in defaults, in that order of precedence. Existing files are kept
unless --force is given.

Examples:
  stencil generate
  stencil generate --name orders --language java --packaging war
  stencil generate --jupiter=false -o ./orders
  stencil generate --interactive`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.name, "name", "n", "", "Project name (env: STENCIL_NAME)")
	f.StringVar(&genFlags.packageName, "package-name", "", "Root package, derived from the name when empty (env: STENCIL_PACKAGE_NAME)")
	f.StringVar(&genFlags.applicationName, "application-name", "", "Main class name, derived from the name when empty (env: STENCIL_APPLICATION_NAME)")
	f.StringVarP(&genFlags.language, "language", "l", "", "Source language: java or kotlin (env: STENCIL_LANGUAGE)")
	f.StringVar(&genFlags.packaging, "packaging", "", "Packaging: jar or war (env: STENCIL_PACKAGING)")
	f.BoolVar(&genFlags.newInfra, "new-test-infrastructure", true, "Use @SpringBootTest instead of the legacy SpringApplicationConfiguration runner")
	f.BoolVar(&genFlags.jupiter, "jupiter", true, "JUnit Jupiter is on the test classpath")
	f.StringArrayVar(&genFlags.annotations, "annotation", nil, "Extra annotation on the test class (repeatable)")
	f.StringVarP(&genFlags.outputDir, "output", "o", "", "Destination directory (env: STENCIL_OUTPUT_DIR)")
	f.IntVarP(&genFlags.concurrency, "concurrency", "j", 0, "Number of files rendered in parallel")
	f.BoolVarP(&genFlags.force, "force", "f", false, "Overwrite existing files")
	f.BoolVarP(&genFlags.interactive, "interactive", "i", false, "Prompt for the project description")

	_ = generateCmd.RegisterFlagCompletionFunc("language", cobra.FixedCompletions(
		[]string{project.LanguageJava, project.LanguageKotlin}, cobra.ShellCompDirectiveNoFileComp))
	_ = generateCmd.RegisterFlagCompletionFunc("packaging", cobra.FixedCompletions(
		[]string{project.PackagingJar, project.PackagingWar}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(generateCmd)
}

// generateOverrides converts the flags that were set on cmd into config
// overrides. Unset flags stay nil so lower layers apply.
func generateOverrides(cmd *cobra.Command, gf *generateFlags) *config.CLIOverrides {
	f := cmd.Flags()
	o := &config.CLIOverrides{}
	if f.Changed("name") {
		o.Name = &gf.name
	}
	if f.Changed("package-name") {
		o.PackageName = &gf.packageName
	}
	if f.Changed("application-name") {
		o.ApplicationName = &gf.applicationName
	}
	if f.Changed("language") {
		o.Language = &gf.language
	}
	if f.Changed("packaging") {
		o.Packaging = &gf.packaging
	}
	if f.Changed("new-test-infrastructure") {
		o.NewTestInfrastructure = config.BoolPtr(gf.newInfra)
	}
	if f.Changed("jupiter") {
		o.JupiterAvailable = config.BoolPtr(gf.jupiter)
	}
	if f.Changed("annotation") {
		o.TestAnnotations = gf.annotations
	}
	if f.Changed("output") {
		o.OutputDir = &gf.outputDir
	}
	if f.Changed("concurrency") {
		o.Concurrency = &gf.concurrency
	}
	if f.Changed("force") {
		o.Force = config.BoolPtr(gf.force)
	}
	return o
}

// descriptionFromConfig maps resolved configuration onto a project
// description. Empty names are derived by Normalize.
func descriptionFromConfig(cfg *config.Config) project.Description {
	return project.Description{
		Name:                  cfg.Project.Name,
		PackageName:           cfg.Project.PackageName,
		ApplicationName:       cfg.Project.ApplicationName,
		Language:              cfg.Project.Language,
		Packaging:             cfg.Project.Packaging,
		NewTestInfrastructure: config.Bool(cfg.Test.NewInfrastructure, true),
		JupiterAvailable:      config.Bool(cfg.Test.JupiterAvailable, true),
		TestAnnotations:       cfg.Test.Annotations,
	}.Normalize()
}

// wizardFunc runs the interactive wizard. Tests replace it.
var wizardFunc = project.RunWizard

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New("generate")

	resolved, meta, err := loadAndResolveConfig(generateOverrides(cmd, &genFlags))
	if err != nil {
		return err
	}

	vr := config.Validate(resolved.Config, meta)
	for _, w := range vr.Warnings() {
		logger.Warn(w.Message, "field", w.Field)
	}
	if vr.HasErrors() {
		printValidationResult(cmd.ErrOrStderr(), vr)
		return fmt.Errorf("configuration has %d error(s)", len(vr.Errors()))
	}

	desc := descriptionFromConfig(resolved.Config)
	if genFlags.interactive {
		desc, err = wizardFunc(desc)
		if err != nil {
			if errors.Is(err, project.ErrWizardCancelled) {
				logger.Info("generation cancelled")
				return nil
			}
			return err
		}
	}

	gen := resolved.Config.Generate
	destDir := gen.OutputDir
	if destDir == "" {
		destDir = "."
	}

	res, err := project.Generate(cmd.Context(), desc, destDir, project.Options{
		Force:       config.Bool(gen.Force, false),
		DryRun:      flagDryRun,
		Concurrency: gen.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("generating project: %w", err)
	}

	printGenerateResult(cmd.ErrOrStderr(), desc, destDir, res, flagDryRun)
	return nil
}

// printGenerateResult summarises a generate run on the diagnostics stream.
func printGenerateResult(out io.Writer, d project.Description, destDir string, res *project.Result, dryRun bool) {
	verb := "Generated"
	if dryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(out, "%s %s (%s, %s) in %s\n", verb,
		styleHeader.Render(d.ApplicationName), d.Language, d.Packaging, destDir)

	for _, p := range res.Written {
		fmt.Fprintf(out, "  %s %s\n", styleSuccess.Render("+"), p)
	}
	for _, p := range res.Skipped {
		fmt.Fprintf(out, "  %s %s %s\n", styleWarnLbl.Render("="), p, styleMuted.Render("(exists, use --force to overwrite)"))
	}
}
