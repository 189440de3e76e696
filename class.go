package stubgen

// Class represents a Java class extracted from a Javadoc HTML page.
type Class struct {
	// Simple class name, e.g. "Stack". Also names the output file.
	Name string

	// Declaration signature, e.g. "public class Stack implements Iterable<E>".
	Signature string

	// Class description as the inner HTML of the javadoc block.
	// Javadoc comments legitimately contain inline markup, so it is
	// carried into the stub as-is.
	Doc string

	Fields       []Field
	Constructors []Method
	Methods      []Method
}

// Validate returns an error if the class is missing required parts.
func (c *Class) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "class name required")
	}
	if c.Signature == "" {
		return Errorf(EINVALID, "class signature required")
	}
	return nil
}

// Field represents a field declaration.
type Field struct {
	Modifiers string
	Type      string
	Name      string
	Doc       string
}

// Method represents a method or constructor declaration.
// Constructors have an empty ReturnType.
type Method struct {
	Modifiers  string
	ReturnType string
	Name       string

	// Parenthesized parameter list as written in the member signature,
	// e.g. "(int index, String value)". Always at least "()".
	Parameters string

	// Description as the inner HTML of the javadoc block.
	Doc string

	Notes Notes
}

// Notes holds the javadoc notes attached to a method or constructor.
type Notes struct {
	// Params holds "name - description" entries for the @param tags.
	Params []string

	// Throws holds "ExceptionType - description" entries. The leading
	// type name also feeds the throws clause of the signature.
	Throws []string

	// Returns is the @return description, empty when absent.
	Returns string

	// Overrides reports whether the method overrides a supertype method.
	Overrides bool
}
