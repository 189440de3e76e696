package mock

import (
	"context"

	"github.com/CadenKruckeberg/stubgen"
)

var _ stubgen.StubWriter = (*StubWriter)(nil)

// StubWriter is a mock implementation of stubgen.StubWriter.
type StubWriter struct {
	WriteStubFn func(ctx context.Context, stub *stubgen.Stub) error
}

func (w *StubWriter) WriteStub(ctx context.Context, stub *stubgen.Stub) error {
	return w.WriteStubFn(ctx, stub)
}
