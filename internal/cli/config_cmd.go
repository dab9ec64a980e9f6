package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/config"
)

// configCmd groups the show and validate subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  "Inspect and validate Stencil configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// configShowCmd implements "stencil config show".
var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"debug"},
	Short:   "Show resolved configuration with source annotations",
	Long: `Display the fully-resolved configuration showing each value and
the source where it came from (cli flag, environment variable, config file, or default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, _, err := loadAndResolveConfig(nil)
		if err != nil {
			return err
		}
		printResolvedConfig(cmd.OutOrStdout(), resolved)
		return nil
	},
}

// configValidateCmd implements "stencil config validate".
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and report issues",
	Long:  "Check the resolved configuration for errors and warnings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, meta, err := loadAndResolveConfig(nil)
		if err != nil {
			return err
		}
		result := config.Validate(resolved.Config, meta)
		printValidationResult(cmd.OutOrStdout(), result)
		if result.HasErrors() {
			return fmt.Errorf("configuration has %d error(s)", len(result.Errors()))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadAndResolveConfig resolves the configuration from defaults, the config
// file (--config, or stencil.toml found upward from the working directory),
// the environment and the given flag overrides. The TOML metadata is nil
// when no file was loaded.
func loadAndResolveConfig(overrides *config.CLIOverrides) (*config.ResolvedConfig, *toml.MetaData, error) {
	fileCfg, meta, path, err := config.Locate(flagConfig, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	resolved := config.Resolve(config.NewDefaults(), fileCfg, os.LookupEnv, overrides)
	resolved.Path = path
	return resolved, meta, nil
}

// sourceStyle colours a source annotation. Under --no-color the root
// command switches lipgloss to the Ascii profile and the colour is dropped.
func sourceStyle(src config.ConfigSource) lipgloss.Style {
	switch src {
	case config.SourceFile:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	case config.SourceEnv:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case config.SourceCLI:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
}

var (
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleSection  = lipgloss.NewStyle().Bold(true)
	styleErrorLbl = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarnLbl  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleMuted    = lipgloss.NewStyle().Faint(true)
)

const fieldWidth = 20

// printHeader writes a bold title underlined with '='.
func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out, styleHeader.Render(title))
	fmt.Fprintln(out, strings.Repeat("=", len(title)))
	fmt.Fprintln(out)
}

// printResolvedConfig writes every resolved value with its source.
func printResolvedConfig(out io.Writer, rc *config.ResolvedConfig) {
	printHeader(out, "Resolved Configuration")

	if rc.Path != "" {
		fmt.Fprintf(out, "Config file: %s\n", rc.Path)
	} else {
		fmt.Fprintln(out, "Config file: none found")
	}
	fmt.Fprintln(out)

	p := rc.Config.Project
	fmt.Fprintln(out, styleSection.Render("[project]"))
	printField(out, "name", fmtStr(p.Name), rc.Sources["project.name"])
	printField(out, "package_name", fmtStr(p.PackageName), rc.Sources["project.package_name"])
	printField(out, "application_name", fmtStr(p.ApplicationName), rc.Sources["project.application_name"])
	printField(out, "language", fmtStr(p.Language), rc.Sources["project.language"])
	printField(out, "packaging", fmtStr(p.Packaging), rc.Sources["project.packaging"])
	fmt.Fprintln(out)

	t := rc.Config.Test
	fmt.Fprintln(out, styleSection.Render("[test]"))
	printField(out, "new_infrastructure", fmtBool(t.NewInfrastructure), rc.Sources["test.new_infrastructure"])
	printField(out, "jupiter_available", fmtBool(t.JupiterAvailable), rc.Sources["test.jupiter_available"])
	printField(out, "annotations", fmtSlice(t.Annotations), rc.Sources["test.annotations"])
	fmt.Fprintln(out)

	g := rc.Config.Generate
	fmt.Fprintln(out, styleSection.Render("[generate]"))
	printField(out, "output_dir", fmtStr(g.OutputDir), rc.Sources["generate.output_dir"])
	printField(out, "concurrency", fmt.Sprintf("%d", g.Concurrency), rc.Sources["generate.concurrency"])
	printField(out, "force", fmtBool(g.Force), rc.Sources["generate.force"])
}

// printField writes a single key = value (source: ...) line.
func printField(out io.Writer, name, value string, src config.ConfigSource) {
	if src == "" {
		src = config.SourceDefault
	}
	label := sourceStyle(src).Render(fmt.Sprintf("(source: %s)", src))
	fmt.Fprintf(out, "  %-*s = %-40s %s\n", fieldWidth, name, value, label)
}

func fmtStr(s string) string {
	return fmt.Sprintf("%q", s)
}

func fmtBool(b *bool) string {
	return fmt.Sprintf("%t", config.Bool(b, false))
}

func fmtSlice(ss []string) string {
	if len(ss) == 0 {
		return "[]"
	}
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// printValidationResult writes the validation report.
func printValidationResult(out io.Writer, result *config.ValidationResult) {
	printHeader(out, "Configuration Validation")

	errs := result.Errors()
	warns := result.Warnings()

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(out, styleSuccess.Render("No issues found."))
		return
	}

	if len(errs) > 0 {
		fmt.Fprintln(out, styleErrorLbl.Render("Errors:"))
		for _, issue := range errs {
			fmt.Fprintf(out, "  [%s] %s\n", issue.Field, issue.Message)
		}
		fmt.Fprintln(out)
	}

	if len(warns) > 0 {
		fmt.Fprintln(out, styleWarnLbl.Render("Warnings:"))
		for _, issue := range warns {
			fmt.Fprintf(out, "  [%s] %s\n", issue.Field, issue.Message)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d error(s), %d warning(s)\n", len(errs), len(warns))
}
