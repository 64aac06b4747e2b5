package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

// InspectCmd decodes a transaction bundle and dumps the typed result,
// useful for debugging bundle files.
type InspectCmd struct {
	File FileOrStdin `help:"Transaction bundle filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *InspectCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	contents, err := cmd.File.Read()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	bundle, err := DecodeBundle(contents)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(bundle)
	return nil
}
