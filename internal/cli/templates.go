package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/resources"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

var templatesShowSource bool

// templatesCmd groups the bundled-template subcommands.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect bundled templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// templatesListCmd implements "stencil templates list [pattern]".
var templatesListCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List bundled templates",
	Long: `List the bundled templates, optionally filtered by a glob pattern
supporting ** (e.g. "java/*" or "**/*Tests.*").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		names, err := resources.List(pattern)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no templates match %q", pattern)
		}
		out := cmd.OutOrStdout()
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	},
}

// templatesShowCmd implements "stencil templates show <name>".
var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the placeholders and predicates of a template",
	Long: `Show the placeholders and predicates a template references in any
branch. With --source the raw template text is printed as well.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names, _ := resources.List("")
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		tmpl, err := resources.Load(name)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printTemplateSummary(out, tmpl)
		if templatesShowSource {
			src, err := resources.Source(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, styleSection.Render("Source:"))
			fmt.Fprint(out, src)
		}
		return nil
	},
}

func init() {
	templatesShowCmd.Flags().BoolVar(&templatesShowSource, "source", false, "Print the raw template text")
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}

// printTemplateSummary writes the names a template needs.
func printTemplateSummary(out io.Writer, t *template.Template) {
	printHeader(out, t.Name)
	fmt.Fprintf(out, "%s %s\n", styleSection.Render("Placeholders:"), joinOrNone(t.Placeholders()))
	fmt.Fprintf(out, "%s   %s\n", styleSection.Render("Predicates:"), joinOrNone(t.Predicates()))
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return styleMuted.Render("(none)")
	}
	return strings.Join(names, ", ")
}
