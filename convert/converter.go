// Package convert orchestrates the page-to-stub conversion pipeline.
package convert

import (
	"context"
	iofs "io/fs"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/CadenKruckeberg/stubgen"
	stubfs "github.com/CadenKruckeberg/stubgen/fs"
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
)

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Path      string
	ClassName string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(ProgressEvent)

// Result summarizes a batch conversion.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// skipDirs are Javadoc output directories that never contain class pages.
var skipDirs = map[string]bool{
	"class-use":  true,
	"doc-files":  true,
	"legal":      true,
	"resources":  true,
	"script-dir": true,
}

// Converter turns Javadoc class pages into Java stub files.
type Converter struct {
	Parser   stubgen.ClassParser
	Renderer stubgen.Renderer
	Writer   stubgen.StubWriter

	// Concurrency bounds parallel page conversion in ConvertDir.
	// Defaults to 4.
	Concurrency int
}

// ConvertFile converts a single page and returns the rendered stub.
// Writing is left to the caller.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*stubgen.Stub, error) {
	html, err := stubfs.ReadPage(path)
	if err != nil {
		return nil, err
	}

	cls, err := c.Parser.ParseClass(html)
	if err != nil {
		return nil, err
	}

	content, err := c.Renderer.Render(cls)
	if err != nil {
		return nil, err
	}

	return &stubgen.Stub{
		ClassName: cls.Name,
		Source:    path,
		Content:   content,
	}, nil
}

// ConvertDir converts every class page under dir and writes the stubs.
// Pages that turn out not to be class pages (package summaries, use
// pages that slip past the name filter) are skipped, not fatal. The
// progress callback, if provided, receives events as conversion
// proceeds.
func (c *Converter) ConvertDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if stubfs.IsClassPage(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan convResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, path := range paths {
			path := path
			g.Go(func() error {
				resultCh <- c.convertOne(gctx, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	completed := 0

	for res := range resultCh {
		completed++

		event := ProgressEvent{
			Path:      res.path,
			ClassName: res.name,
			Completed: completed,
			Total:     total,
			Error:     res.err,
		}

		switch {
		case res.err == nil:
			result.Converted++
			event.Type = ProgressCompleted
		case stubgen.ErrorCode(res.err) == stubgen.EINVALID:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Failed++
			event.Type = ProgressFailed
		}

		if progress != nil {
			progress(event)
		}
	}

	return &result, nil
}

// convResult holds the outcome of converting one page.
type convResult struct {
	path string
	name string
	err  error
}

func (c *Converter) convertOne(ctx context.Context, path string) convResult {
	stub, err := c.ConvertFile(ctx, path)
	if err != nil {
		return convResult{path: path, err: err}
	}

	if err := c.Writer.WriteStub(ctx, stub); err != nil {
		return convResult{path: path, name: stub.ClassName, err: err}
	}

	return convResult{path: path, name: stub.ClassName}
}
