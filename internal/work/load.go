package work

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Load reads and builds the work at path. The format is chosen by extension:
// .yaml, .yml and .json are documents; .db, .sqlite and .sqlite3 are catalogs.
func Load(ctx context.Context, path string, opts ...Option) (*Work, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}

	w, err := doc.Build(opts...)
	if err != nil {
		return nil, withPath(err, path)
	}

	newOptions(opts).logger.Debug("work loaded", "path", path, "id", w.ID.String())
	return w, nil
}

// ReadDocument reads the document at path without building it. The format
// is chosen by extension as in Load.
func ReadDocument(ctx context.Context, path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "cannot read document", Err: err}
		}
		doc, err := Decode(data)
		return doc, withPath(err, path)
	case ".db", ".sqlite", ".sqlite3":
		return ImportSQLite(ctx, path)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Path: path, Message: "unsupported file extension " + filepath.Ext(path)}
	}
}

// LoadAll loads paths concurrently and returns the works in the order of
// paths. It stops at the first error.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]*Work, error) {
	works := make([]*Work, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			w, err := Load(ctx, path, opts...)
			if err != nil {
				return err
			}
			works[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return works, nil
}

// Result is the outcome of loading one path in CheckAll.
type Result struct {
	Path string
	Work *Work
	Err  error
}

// CheckAll loads every path concurrently and reports each outcome, in the
// order of paths. Unlike LoadAll it does not stop at the first failure.
func CheckAll(ctx context.Context, paths []string, opts ...Option) []Result {
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			w, err := Load(ctx, path, opts...)
			results[i] = Result{Path: path, Work: w, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
