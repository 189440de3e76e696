package mock

import "github.com/CadenKruckeberg/stubgen"

var _ stubgen.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of stubgen.Renderer.
type Renderer struct {
	RenderFn func(cls *stubgen.Class) (string, error)
}

func (r *Renderer) Render(cls *stubgen.Class) (string, error) {
	return r.RenderFn(cls)
}
