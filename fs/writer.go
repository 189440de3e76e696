// Package fs provides filesystem access for Javadoc pages and stubs.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/cespare/xxhash/v2"
)

// Ensure Writer implements stubgen.StubWriter at compile time.
var _ stubgen.StubWriter = (*Writer)(nil)

// Writer writes stubs as .java files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteStub writes a stub to disk as <ClassName>.java, creating the base
// directory if needed. The write is skipped when the file already holds
// identical content, so output timestamps only move when a stub changes.
func (w *Writer) WriteStub(ctx context.Context, stub *stubgen.Stub) error {
	if err := stub.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, stub.Filename())

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(stub.Content) {
			return nil
		}
	}

	return os.WriteFile(fullPath, []byte(stub.Content), 0644)
}
