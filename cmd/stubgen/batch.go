package main

import (
	"fmt"
	"log/slog"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/CadenKruckeberg/stubgen/convert"
	"github.com/CadenKruckeberg/stubgen/fs"
	stubslog "github.com/CadenKruckeberg/stubgen/slog"
)

// Run executes the batch command.
func (b *BatchCmd) Run(deps *Dependencies) error {
	parser := deps.Parser
	if b.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		parser = stubslog.NewLoggingParser(parser, logger)
	}

	conv := &convert.Converter{
		Parser:      parser,
		Renderer:    deps.Renderer,
		Writer:      fs.NewWriter(b.Out),
		Concurrency: b.Concurrency,
	}

	result, err := conv.ConvertDir(deps.Ctx, b.Dir, func(ev convert.ProgressEvent) {
		switch ev.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Converting %d class pages...\n", ev.Total)
		case convert.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s -> %s.java\n", ev.Completed, ev.Total, ev.Path, ev.ClassName)
		case convert.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "[%d/%d] skipped %s (not a class page)\n", ev.Completed, ev.Total, ev.Path)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", ev.Completed, ev.Total, ev.Path, stubgen.ErrorMessage(ev.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stubgen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d classes (%d skipped, %d failed)\n", result.Converted, result.Skipped, result.Failed)

	if result.Failed > 0 {
		return stubgen.Errorf(stubgen.EINTERNAL, "%d pages failed to convert", result.Failed)
	}
	return nil
}
