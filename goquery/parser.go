// Package goquery implements Javadoc HTML parsing using CSS selectors.
package goquery

import (
	"strings"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Parser implements stubgen.ClassParser at compile time.
var _ stubgen.ClassParser = (*Parser)(nil)

// Parser extracts class declarations from Javadoc HTML pages. It targets
// the markup of the standard doclet (JDK 11+), which is what Eclipse
// generates for "Generate Javadoc".
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseClass parses a Javadoc class page into a Class.
func (p *Parser) ParseClass(html string) (*stubgen.Class, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stubgen.Errorf(stubgen.EINVALID, "failed to parse HTML: %v", err)
	}

	desc := doc.Find("section.class-description").First()
	nameSel := desc.Find("span.element-name.type-name-label").First()
	if nameSel.Length() == 0 {
		return nil, stubgen.Errorf(stubgen.EINVALID, "not a Javadoc class page: class name not found")
	}

	cls := &stubgen.Class{
		Name:      strings.TrimSpace(nameSel.Text()),
		Signature: classSignature(desc),
		Doc:       blockHTML(desc),
	}

	doc.Find("section.field-details ul.member-list > li").Each(func(_ int, li *goquery.Selection) {
		if f, ok := parseField(li); ok {
			cls.Fields = append(cls.Fields, f)
		}
	})

	doc.Find("section.constructor-details ul.member-list > li").Each(func(_ int, li *goquery.Selection) {
		if m, ok := parseMethod(li); ok {
			cls.Constructors = append(cls.Constructors, m)
		}
	})

	doc.Find("section.method-details ul.member-list > li").Each(func(_ int, li *goquery.Selection) {
		if m, ok := parseMethod(li); ok {
			cls.Methods = append(cls.Methods, m)
		}
	})

	if err := cls.Validate(); err != nil {
		return nil, err
	}

	return cls, nil
}

// classSignature assembles the class declaration from the type signature
// div. The implicit "extends Object" clause is dropped; any remaining
// extends/implements clause is kept.
func classSignature(desc *goquery.Selection) string {
	sig := desc.Find("div.type-signature").First()

	modifiers := strings.TrimSpace(sig.Find("span.modifiers").First().Text())
	name := strings.TrimSpace(sig.Find("span.element-name.type-name-label").First().Text())
	out := modifiers + " " + name

	ext := stubgen.CleanSpaces(sig.Find("span.extends-implements").First().Text())
	ext = strings.ReplaceAll(ext, "extends Object", "")
	// The clause often spans multiple lines in the generated markup.
	if fields := strings.Fields(ext); len(fields) > 0 {
		out += " " + strings.Join(fields, " ")
	}

	return out
}

// blockHTML returns the inner HTML of the first javadoc block under sel.
// Javadoc descriptions legitimately contain inline markup, so the HTML
// is preserved rather than flattened to text.
func blockHTML(sel *goquery.Selection) string {
	block := sel.Find("div.block").First()
	if block.Length() == 0 {
		return ""
	}

	h, err := block.Html()
	if err != nil {
		return ""
	}

	return stubgen.StripLinebreaks(h)
}

// parseField parses one li from the field details member list.
func parseField(li *goquery.Selection) (stubgen.Field, bool) {
	sig := li.Find("div.member-signature").First()
	if sig.Length() == 0 {
		return stubgen.Field{}, false
	}

	f := stubgen.Field{
		Modifiers: strings.TrimSpace(sig.Find("span.modifiers").First().Text()),
		Type:      strings.TrimSpace(sig.Find("span.return-type").First().Text()),
		Name:      strings.TrimSpace(sig.Find("span.element-name").First().Text()),
		Doc:       blockHTML(li),
	}

	return f, f.Name != ""
}

// parseMethod parses one li from the constructor or method details
// member list. Constructors have no return type span.
func parseMethod(li *goquery.Selection) (stubgen.Method, bool) {
	sig := li.Find("div.member-signature").First()
	if sig.Length() == 0 {
		return stubgen.Method{}, false
	}

	m := stubgen.Method{
		Modifiers:  strings.TrimSpace(sig.Find("span.modifiers").First().Text()),
		Name:       strings.TrimSpace(sig.Find("span.element-name").First().Text()),
		Parameters: "()",
		Doc:        blockHTML(li),
	}

	if rt := sig.Find("span.return-type").First(); rt.Length() > 0 {
		m.ReturnType = strings.TrimSpace(rt.Text())
	}

	if params := sig.Find("span.parameters").First(); params.Length() > 0 {
		m.Parameters = stubgen.StripLinebreaks(stubgen.CleanSpaces(strings.TrimSpace(params.Text())))
	}

	if notes := li.Find("dl.notes").First(); notes.Length() > 0 {
		m.Notes = parseNotes(notes)
	}

	return m, m.Name != ""
}

// parseNotes extracts @param/@throws/@return material and the overrides
// marker from a method's notes dl. Each dt label is followed by one or
// more dd values.
func parseNotes(dl *goquery.Selection) stubgen.Notes {
	var notes stubgen.Notes

	dl.ChildrenFiltered("dt").Each(func(_ int, dt *goquery.Selection) {
		switch strings.TrimSpace(dt.Text()) {
		case "Parameters:":
			dt.NextUntil("dt").Filter("dd").Each(func(_ int, dd *goquery.Selection) {
				notes.Params = append(notes.Params, stubgen.NormalizeDoc(dd.Text()))
			})
		case "Throws:":
			dt.NextUntil("dt").Filter("dd").Each(func(_ int, dd *goquery.Selection) {
				notes.Throws = append(notes.Throws, stubgen.NormalizeDoc(dd.Text()))
			})
		case "Returns:":
			if dd := dt.NextAllFiltered("dd").First(); dd.Length() > 0 {
				notes.Returns = stubgen.NormalizeDoc(dd.Text())
			}
		case "Overrides:":
			notes.Overrides = true
		}
	})

	return notes
}
