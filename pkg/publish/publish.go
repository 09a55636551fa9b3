package publish

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	acsserr "github.com/shawn-sandy/acss/internal/errors"
)

// Target receives the files of a built gallery.
type Target interface {
	// Put stores one file under the given slash-separated key.
	Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error
}

// Result summarizes a publish run.
type Result struct {
	Files int
	Bytes int64
}

// Publisher copies a built output directory to a target.
type Publisher struct {
	target Target
	log    *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Publisher) {
		p.log = log
	}
}

// New creates a Publisher for the given target.
func New(target Target, opts ...Option) *Publisher {
	p := &Publisher{
		target: target,
		log:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish walks dir and stores every regular file on the target, keyed
// by its path relative to dir.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, acsserr.New("E401").WithDetailf("output directory %q does not exist", dir)
	}

	result := &Result{}
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := p.target.Put(ctx, key, contentTypeFor(path), info.Size(), f); err != nil {
			return err
		}

		p.log.Info("published", "key", key, "bytes", info.Size())
		result.Files++
		result.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return nil, acsserr.New("E400").Wrap(err)
	}

	return result, nil
}

// contentTypeFor guesses a content type from the file extension.
func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
