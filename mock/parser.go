package mock

import "github.com/CadenKruckeberg/stubgen"

var _ stubgen.ClassParser = (*ClassParser)(nil)

// ClassParser is a mock implementation of stubgen.ClassParser.
type ClassParser struct {
	ParseClassFn func(html string) (*stubgen.Class, error)
}

func (p *ClassParser) ParseClass(html string) (*stubgen.Class, error) {
	return p.ParseClassFn(html)
}
