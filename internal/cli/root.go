package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagDir     string
	flagDryRun  bool
	flagNoColor bool
)

// rootCmd is the base command for Stencil.
var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Render Spring Boot project scaffolds from conditional templates",
	Long: `Stencil renders the source files of a Spring Boot project scaffold from
conditional-section templates: the application class, the servlet
initializer, and the test class whose imports and runner depend on the
test infrastructure in use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		if !root.Changed("verbose") && os.Getenv("STENCIL_VERBOSE") != "" {
			flagVerbose = true
		}
		if !root.Changed("quiet") && os.Getenv("STENCIL_QUIET") != "" {
			flagQuiet = true
		}
		if !root.Changed("no-color") && (os.Getenv("NO_COLOR") != "" || os.Getenv("STENCIL_NO_COLOR") != "") {
			flagNoColor = true
		}

		format, err := logging.ParseFormat(os.Getenv("STENCIL_LOG_FORMAT"))
		if err != nil {
			return fmt.Errorf("STENCIL_LOG_FORMAT: %w", err)
		}
		logging.Setup(flagVerbose, flagQuiet, format)

		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		if flagDir != "" {
			if err := os.Chdir(flagDir); err != nil {
				return fmt.Errorf("changing directory to %s: %w", flagDir, err)
			}
		}

		return nil
	},
}

func init() {
	registerPersistentFlags(rootCmd, true)
}

// registerPersistentFlags declares the global flags on cmd. When bind is set
// the flags write to the package-level variables used by the subcommands.
func registerPersistentFlags(cmd *cobra.Command, bind bool) {
	pf := cmd.PersistentFlags()
	const (
		verboseUsage = "Enable verbose (debug) output (env: STENCIL_VERBOSE)"
		quietUsage   = "Suppress all output except errors (env: STENCIL_QUIET)"
		configUsage  = "Path to stencil.toml config file"
		dirUsage     = "Override working directory"
		dryRunUsage  = "Show planned actions without writing files"
		noColorUsage = "Disable colored output (env: STENCIL_NO_COLOR, NO_COLOR)"
	)
	if bind {
		pf.BoolVarP(&flagVerbose, "verbose", "v", false, verboseUsage)
		pf.BoolVarP(&flagQuiet, "quiet", "q", false, quietUsage)
		pf.StringVar(&flagConfig, "config", "", configUsage)
		pf.StringVar(&flagDir, "dir", "", dirUsage)
		pf.BoolVar(&flagDryRun, "dry-run", false, dryRunUsage)
		pf.BoolVar(&flagNoColor, "no-color", false, noColorUsage)
		return
	}
	pf.BoolP("verbose", "v", false, verboseUsage)
	pf.BoolP("quiet", "q", false, quietUsage)
	pf.String("config", "", configUsage)
	pf.String("dir", "", dirUsage)
	pf.Bool("dry-run", false, dryRunUsage)
	pf.Bool("no-color", false, noColorUsage)
}

// Execute runs the root command and returns the exit code.
// An interrupt cancels the command's context.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a fresh root command carrying the same flags and
// subcommands as the one Execute runs. The completion and man page
// generators under scripts/ use it.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}
	registerPersistentFlags(cmd, false)
	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}
