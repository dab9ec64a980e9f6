// Command stencil renders Spring Boot project scaffolds from conditional
// templates.
package main

import (
	"os"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
