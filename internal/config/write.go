package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

const fileHeader = `# Stencil configuration.
# Values here are overridden by STENCIL_* environment variables and flags.
# Run "stencil config show" to see where each resolved value comes from.

`

// Encode writes cfg as a commented stencil.toml document. Nil boolean
// fields are left out.
func Encode(w io.Writer, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile encodes cfg to path. An existing file is only replaced when
// overwrite is set.
func WriteFile(path string, cfg *Config, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
