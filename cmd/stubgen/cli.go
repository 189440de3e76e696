package main

import (
	"context"
	"io"

	"github.com/CadenKruckeberg/stubgen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Parser   stubgen.ClassParser
	Renderer stubgen.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert Javadoc class pages to stub files"`
	Batch   BatchCmd   `cmd:"" help:"Convert every class page under a Javadoc output tree"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files  []string `arg:"" help:"Javadoc HTML class pages to convert"`
	Out    string   `short:"o" default:"." help:"Output directory"`
	Stdout bool     `help:"Print stubs instead of writing files"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string `arg:"" help:"Root of a Javadoc output tree"`
	Out         string `short:"o" default:"." help:"Output directory"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent conversion limit"`
	Verbose     bool   `short:"v" help:"Log parse details"`
}
