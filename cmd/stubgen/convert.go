package main

import (
	"fmt"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/CadenKruckeberg/stubgen/convert"
	"github.com/CadenKruckeberg/stubgen/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	conv := &convert.Converter{
		Parser:   deps.Parser,
		Renderer: deps.Renderer,
	}
	writer := fs.NewWriter(c.Out)

	for _, path := range c.Files {
		stub, err := conv.ConvertFile(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stubgen.ErrorMessage(err))
			return err
		}

		if c.Stdout {
			fmt.Fprintln(deps.Stdout, stub.Content)
			continue
		}

		if err := writer.WriteStub(deps.Ctx, stub); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stubgen.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Wrote %s\n", stub.Filename())
	}

	return nil
}
