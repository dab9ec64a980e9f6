// Package cli implements the stencil command tree.
//
// Every subcommand registers itself on the root command from an init
// function. Execute is the single entry point used by cmd/stencil.
package cli
