package stubgen

// ClassParser parses a Javadoc HTML class page into a Class.
type ClassParser interface {
	// ParseClass extracts the class signature, fields, constructors and
	// methods from the page markup.
	// Returns EINVALID if the page is not a Javadoc class page.
	ParseClass(html string) (*Class, error)
}
