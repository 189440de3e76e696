package stubgen

// Renderer renders a parsed class as Java source text.
type Renderer interface {
	// Render produces a stub with javadoc comments, correct signatures
	// and default-valued method bodies.
	Render(cls *Class) (string, error)
}
