// Package slog provides logging decorators for stubgen interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/CadenKruckeberg/stubgen"
)

// Ensure LoggingParser implements stubgen.ClassParser.
var _ stubgen.ClassParser = (*LoggingParser)(nil)

// LoggingParser wraps a ClassParser with per-page parse logging.
type LoggingParser struct {
	next   stubgen.ClassParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next stubgen.ClassParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseClass delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseClass(html string) (*stubgen.Class, error) {
	begin := time.Now()

	cls, err := p.next.ParseClass(html)
	if err != nil {
		p.logger.Info("parse failed",
			"code", stubgen.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	p.logger.Info("parsed class",
		"class", cls.Name,
		"fields", len(cls.Fields),
		"constructors", len(cls.Constructors),
		"methods", len(cls.Methods),
		"duration", time.Since(begin),
	)

	return cls, nil
}
