// Package corpus loads the benchmark text and exposes a header-skipped line
// stream over it.
//
// The full text is read once per Store and shared by every consumer. Line
// streams are not cached: each sampling pass opens its own.
package corpus

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source opens the raw bytes of a corpus.
type Source interface {
	// Name identifies the resource in logs and errors.
	Name() string
	// Open returns a fresh reader positioned at the start of the resource.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the corpus from a local file.
type FileSource struct {
	Path string
}

// Name returns the file path.
func (f FileSource) Name() string {
	return f.Path
}

// Open opens the file for reading.
func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(filepath.Clean(f.Path))
}

// ParseSource maps a corpus location to a Source. s3://bucket/key URIs are
// read from S3 with the default AWS configuration; everything else is a
// local path.
func ParseSource(uri string) (Source, error) {
	if strings.HasPrefix(uri, "s3://") {
		bucket, key, err := ParseS3URI(uri)
		if err != nil {
			return nil, err
		}
		return &S3Source{Bucket: bucket, Key: key}, nil
	}
	return FileSource{Path: uri}, nil
}
