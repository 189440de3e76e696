// Package java renders parsed classes as Java stub source.
package java

import (
	"regexp"
	"strings"

	"github.com/CadenKruckeberg/stubgen"
)

// Ensure Renderer implements stubgen.Renderer at compile time.
var _ stubgen.Renderer = (*Renderer)(nil)

// exceptionNameRe matches the leading exception type name in a throws
// note, e.g. "IOException - if reading fails".
var exceptionNameRe = regexp.MustCompile(`^[A-Za-z]+`)

// defaultReturns maps primitive return types to their zero-value
// literals. Reference types fall back to null.
var defaultReturns = map[string]string{
	"byte":    "0",
	"short":   "0",
	"int":     "0",
	"long":    "0L",
	"float":   "0.0f",
	"double":  "0.0d",
	"char":    `'\u0000'`,
	"boolean": "false",
}

// Renderer emits Java stub source from parsed classes.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the stub source for a class: the class javadoc and
// declaration, then fields, constructors and methods, each with its
// javadoc, and a closing brace.
func (r *Renderer) Render(cls *stubgen.Class) (string, error) {
	if err := cls.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder

	writeJavadoc(&b, cls.Doc, nil)
	b.WriteString(cls.Signature)
	b.WriteString(" {\n\n")

	for _, f := range cls.Fields {
		writeField(&b, f)
	}
	for _, m := range cls.Constructors {
		writeMethod(&b, m)
	}
	for _, m := range cls.Methods {
		writeMethod(&b, m)
	}

	b.WriteString("}")

	return b.String(), nil
}

// writeJavadoc writes a javadoc comment with the doc body and, when
// notes are given, @param, @return and @throws tags.
func writeJavadoc(b *strings.Builder, doc string, notes *stubgen.Notes) {
	b.WriteString("/**\n * ")
	b.WriteString(doc)
	b.WriteString("\n")

	if notes != nil {
		if len(notes.Params) > 0 {
			b.WriteString(" * \n")
			for _, p := range notes.Params {
				b.WriteString(" * @param " + p + "\n")
			}
		}
		if notes.Returns != "" {
			b.WriteString(" * \n * @return " + notes.Returns + "\n")
		}
		if len(notes.Throws) > 0 {
			b.WriteString(" * \n")
			for _, t := range notes.Throws {
				b.WriteString(" * @throws " + t + "\n")
			}
		}
	}

	b.WriteString(" */\n")
}

func writeField(b *strings.Builder, f stubgen.Field) {
	writeJavadoc(b, f.Doc, nil)
	b.WriteString(f.Modifiers + " " + f.Type + " " + f.Name + ";\n\n")
}

func writeMethod(b *strings.Builder, m stubgen.Method) {
	sig := m.Modifiers
	if m.ReturnType != "" {
		sig += " " + m.ReturnType
	}
	sig += " " + m.Name + m.Parameters
	if clause := throwsClause(m.Notes.Throws); clause != "" {
		sig += " throws " + clause
	}

	writeJavadoc(b, m.Doc, &m.Notes)

	if m.Notes.Overrides {
		b.WriteString("@Override\n")
	}

	b.WriteString(sig)
	b.WriteString(" {\n    // TODO: Implement\n\n")

	if m.ReturnType != "" && m.ReturnType != "void" {
		lit, ok := defaultReturns[m.ReturnType]
		if !ok {
			lit = "null"
		}
		b.WriteString("    return " + lit + "; // default return statement\n")
	}

	b.WriteString("  }\n\n")
}

// throwsClause extracts the exception type names from throws notes and
// joins them for the method signature. Entries without a leading type
// name are skipped.
func throwsClause(throws []string) string {
	var names []string
	for _, t := range throws {
		if name := exceptionNameRe.FindString(t); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
