package stubgen

import "context"

// Stub represents a rendered Java stub file.
type Stub struct {
	// ClassName determines the output file name.
	ClassName string

	// Source is the path of the HTML page the stub was generated from.
	// May be empty when rendering from memory.
	Source string

	// Content is the Java source text.
	Content string
}

// Filename returns the output file name for the stub.
func (s *Stub) Filename() string {
	return s.ClassName + ".java"
}

// Validate returns an error if the stub contains invalid fields.
func (s *Stub) Validate() error {
	if s.ClassName == "" {
		return Errorf(EINVALID, "stub class name required")
	}
	if s.Content == "" {
		return Errorf(EINVALID, "stub content required")
	}
	return nil
}

// StubWriter persists rendered stubs.
type StubWriter interface {
	WriteStub(ctx context.Context, stub *Stub) error
}
