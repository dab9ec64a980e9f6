package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/config"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/project"
)

var (
	initFlagName  string
	initFlagForce bool
)

// initCmd implements "stencil init".
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a stencil.toml for the current directory",
	Long: `Write a stencil.toml holding the default project description so it can
be edited and reused by "stencil generate". The project name defaults to the
name of the current directory. An existing stencil.toml is preserved unless
--force is supplied.

Examples:
  stencil init
  stencil init --name orders
  stencil init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFlagName, "name", "n", "", "Project name (defaults to current directory name)")
	initCmd.Flags().BoolVar(&initFlagForce, "force", false, "Overwrite an existing stencil.toml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	destDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	name := initFlagName
	if name == "" {
		name = filepath.Base(destDir)
	}

	cfg := config.NewDefaults()
	cfg.Project.Name = name
	cfg.Project.PackageName = project.DerivePackageName(name)
	cfg.Project.ApplicationName = project.DeriveApplicationName(name)

	path := filepath.Join(destDir, config.ConfigFileName)
	if flagDryRun {
		return config.Encode(cmd.OutOrStdout(), cfg)
	}
	if err := config.WriteFile(path, cfg, initFlagForce); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists in %s; use --force to overwrite", config.ConfigFileName, destDir)
		}
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Wrote %s for project %q\n\n", path, name)
	fmt.Fprintln(stderr, "Next steps:")
	fmt.Fprintf(stderr, "  1. Edit %s to describe your project\n", config.ConfigFileName)
	fmt.Fprintln(stderr, "  2. Run: stencil generate")
	return nil
}
