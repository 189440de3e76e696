package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CadenKruckeberg/stubgen"
)

// ReadPage reads a Javadoc HTML page from disk.
// Returns ENOTFOUND if the file does not exist.
func ReadPage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", stubgen.Errorf(stubgen.ENOTFOUND, "file %q doesn't exist", path)
		}
		return "", err
	}
	return string(data), nil
}

// auxiliaryPages lists the standard Javadoc pages that never describe a
// single class.
var auxiliaryPages = map[string]bool{
	"index.html":             true,
	"index-all.html":         true,
	"allclasses-index.html":  true,
	"allpackages-index.html": true,
	"help-doc.html":          true,
	"deprecated-list.html":   true,
	"serialized-form.html":   true,
	"search.html":            true,
}

// IsClassPage reports whether a file name plausibly names a Javadoc
// class page. It is a prefilter for batch conversion; parsing makes the
// final call.
func IsClassPage(name string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".html") {
		return false
	}
	if auxiliaryPages[base] {
		return false
	}
	if strings.HasPrefix(base, "package-") || strings.HasPrefix(base, "overview-") {
		return false
	}
	return true
}
