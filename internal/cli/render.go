package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/logging"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/resources"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/values"
)

var (
	renderValuesFile string
	renderSets       []string
	renderFlags      []string
	renderProject    bool
	renderOutput     string
)

// renderCmd implements "stencil render <template>".
var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a single template to stdout",
	Long: `Render one template with explicitly supplied values and flags.

The template is a bundled template name (see "stencil templates list") or,
when no bundled template has that name, a path to a template file.

Inputs are applied in order, later ones winning:
  --project   the test-class context of the configured project
  --values    a YAML, JSON or TOML file; booleans become flags
  --set       name=value placeholder bindings
  --flag      name or name=bool predicate bindings

Examples:
  stencil render kotlin/ApplicationTests.kt --project
  stencil render java/Application.java --set packageName=io.acme --set applicationName=AcmeApplication
  stencil render ./Banner.txt --values banner.yaml --flag colour=false`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names, err := resources.List("")
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveDefault
	},
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderValuesFile, "values", "", "YAML, JSON or TOML file of values and flags")
	f.StringArrayVar(&renderSets, "set", nil, "Bind a placeholder value, name=value (repeatable)")
	f.StringArrayVar(&renderFlags, "flag", nil, "Bind a predicate, name or name=bool (repeatable)")
	f.BoolVar(&renderProject, "project", false, "Start from the test-class context of the configured project")
	f.StringVarP(&renderOutput, "output", "o", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := logging.New("render")

	tmpl, err := loadTemplate(args[0])
	if err != nil {
		return err
	}

	ctx, err := renderContext()
	if err != nil {
		return err
	}
	logger.Debug("rendering", "template", tmpl.Name, "names", len(ctx.Names()))

	out, err := template.Render(tmpl, ctx)
	if err != nil {
		return err
	}

	if renderOutput != "" {
		if flagDryRun {
			logger.Info("would write file", "path", renderOutput, "bytes", len(out))
			return nil
		}
		if err := os.WriteFile(renderOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOutput, err)
		}
		logger.Info("wrote file", "path", renderOutput)
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// loadTemplate resolves name to a bundled template, falling back to a file
// on disk.
func loadTemplate(name string) (*template.Template, error) {
	if resources.Exists(name) {
		return resources.Load(name)
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%w: %q is neither a bundled template nor a readable file", resources.ErrNotFound, name)
	}
	return resources.LoadFile(name)
}

// renderContext layers the project context, the values file and the
// command-line bindings.
func renderContext() (template.Context, error) {
	var ctx template.Context

	if renderProject {
		resolved, _, err := loadAndResolveConfig(nil)
		if err != nil {
			return template.Context{}, err
		}
		d := descriptionFromConfig(resolved.Config)
		if err := d.Validate(); err != nil {
			return template.Context{}, fmt.Errorf("project configuration: %w", err)
		}
		if ctx, err = d.TestContext(); err != nil {
			return template.Context{}, err
		}
	}

	if renderValuesFile != "" {
		fileCtx, err := values.Load(renderValuesFile)
		if err != nil {
			return template.Context{}, err
		}
		if ctx, err = ctx.Merge(fileCtx); err != nil {
			return template.Context{}, fmt.Errorf("values file %s: %w", renderValuesFile, err)
		}
	}

	cliCtx, err := values.Assignments(renderSets, renderFlags)
	if err != nil {
		return template.Context{}, err
	}
	if ctx, err = ctx.Merge(cliCtx); err != nil {
		return template.Context{}, err
	}
	return ctx, nil
}
