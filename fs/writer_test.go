package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/CadenKruckeberg/stubgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStub(t *testing.T) {
	t.Parallel()

	t.Run("writes stub as ClassName.java", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		stub := &stubgen.Stub{
			ClassName: "Stack",
			Content:   "public class Stack {\n\n}",
		}

		err := w.WriteStub(context.Background(), stub)

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "Stack.java"))
		require.NoError(t, err)
		assert.Equal(t, "public class Stack {\n\n}", string(data))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "stubs")
		w := fs.NewWriter(dir)

		err := w.WriteStub(context.Background(), &stubgen.Stub{
			ClassName: "Point",
			Content:   "public class Point {\n\n}",
		})

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "Point.java"))
	})

	t.Run("skips writing when content is unchanged", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		stub := &stubgen.Stub{ClassName: "Stack", Content: "public class Stack {\n\n}"}

		require.NoError(t, w.WriteStub(context.Background(), stub))

		path := filepath.Join(dir, "Stack.java")
		before, err := os.Stat(path)
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
		require.NoError(t, w.WriteStub(context.Background(), stub))

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("overwrites when content changes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteStub(context.Background(), &stubgen.Stub{
			ClassName: "Stack",
			Content:   "public class Stack {\n\n}",
		}))
		require.NoError(t, w.WriteStub(context.Background(), &stubgen.Stub{
			ClassName: "Stack",
			Content:   "public class Stack {\n\nprivate int size;\n\n}",
		}))

		data, err := os.ReadFile(filepath.Join(dir, "Stack.java"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "private int size;")
	})

	t.Run("rejects invalid stubs", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteStub(context.Background(), &stubgen.Stub{Content: "x"})

		require.Error(t, err)
		assert.Equal(t, stubgen.EINVALID, stubgen.ErrorCode(err))
	})
}
