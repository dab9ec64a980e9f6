// Command gen-completions writes stencil's shell completion scripts into a
// directory so release archives can ship them.
//
// Usage:
//
//	go run ./scripts/gen-completions [output-dir]
//
// The default output directory is "completions".
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/cli"
)

// scripts maps each output file name to its cobra generator.
var scripts = []struct {
	file string
	gen  func(root *cobra.Command, w io.Writer) error
}{
	{"stencil.bash", func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) }},
	{"_stencil", func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) }},
	{"stencil.fish", func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) }},
	{"stencil.ps1", func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) }},
}

func main() {
	outDir := "completions"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := run(outDir); err != nil {
		fmt.Fprintln(os.Stderr, "gen-completions:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %q: %w", outDir, err)
	}

	root := cli.NewRootCmd()
	for _, s := range scripts {
		path := filepath.Join(outDir, s.file)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %q: %w", path, err)
		}
		if err := s.gen(root, f); err != nil {
			f.Close()
			return fmt.Errorf("generating %q: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %q: %w", path, err)
		}
		fmt.Printf("Generated %s\n", path)
	}
	return nil
}
