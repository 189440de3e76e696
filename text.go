package stubgen

import (
	"regexp"
	"strings"
)

// spaceRunRe matches runs of 10 or more whitespace characters. The
// standard doclet indents inline markup heavily, which leaks into
// extracted text.
var spaceRunRe = regexp.MustCompile(`\s{10,}`)

// CleanSpaces replaces non-breaking spaces with regular spaces.
// Javadoc separates signature tokens with U+00A0.
func CleanSpaces(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// StripLinebreaks removes newline and carriage return characters.
func StripLinebreaks(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\r", "")
}

// CollapseSpaceRuns replaces runs of 10+ whitespace characters with a
// single space.
func CollapseSpaceRuns(s string) string {
	return spaceRunRe.ReplaceAllString(s, " ")
}

// NormalizeDoc prepares extracted javadoc text for single-line output.
func NormalizeDoc(s string) string {
	return StripLinebreaks(CollapseSpaceRuns(s))
}
