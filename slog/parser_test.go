package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/CadenKruckeberg/stubgen"
	"github.com/CadenKruckeberg/stubgen/mock"
	stubslog "github.com/CadenKruckeberg/stubgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser(t *testing.T) {
	t.Parallel()

	t.Run("logs parsed class with member counts", func(t *testing.T) {
		t.Parallel()

		next := &mock.ClassParser{
			ParseClassFn: func(html string) (*stubgen.Class, error) {
				return &stubgen.Class{
					Name:      "Stack",
					Signature: "public class Stack",
					Methods:   []stubgen.Method{{Name: "push"}, {Name: "pop"}},
				}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		p := stubslog.NewLoggingParser(next, logger)

		cls, err := p.ParseClass("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Stack", cls.Name)
		assert.Contains(t, buf.String(), "parsed class")
		assert.Contains(t, buf.String(), "class=Stack")
		assert.Contains(t, buf.String(), "methods=2")
	})

	t.Run("logs failures with the error code", func(t *testing.T) {
		t.Parallel()

		next := &mock.ClassParser{
			ParseClassFn: func(html string) (*stubgen.Class, error) {
				return nil, stubgen.Errorf(stubgen.EINVALID, "not a Javadoc class page")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		p := stubslog.NewLoggingParser(next, logger)

		cls, err := p.ParseClass("<html></html>")

		assert.Nil(t, cls)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "parse failed")
		assert.Contains(t, buf.String(), "code=invalid")
	})
}
