package corpus

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/eunmann/twain-bench/internal/logctx"
	"github.com/eunmann/twain-bench/pkg/benchutil"
	"github.com/eunmann/twain-bench/pkg/logging"
)

// Store owns one corpus. It is safe for concurrent use; the full text is
// loaded at most once and is read-only afterwards.
type Store struct {
	src       Source
	skipLines int

	once   sync.Once
	text   string
	digest uint64
	err    error
}

// NewStore creates a store over src that skips benchutil.SkipLines header
// lines in BodyLines.
func NewStore(src Source) *Store {
	return &Store{src: src, skipLines: benchutil.SkipLines}
}

// Name returns the name of the underlying source.
func (s *Store) Name() string {
	return s.src.Name()
}

// FullText returns the whole corpus. The first call reads the resource;
// later calls return the same string, or the same error.
func (s *Store) FullText(ctx context.Context) (string, error) {
	s.once.Do(func() {
		s.text, s.digest, s.err = s.load(ctx)
	})
	return s.text, s.err
}

// Digest returns the xxhash64 of the full text, loading it if needed.
func (s *Store) Digest(ctx context.Context) (uint64, error) {
	if _, err := s.FullText(ctx); err != nil {
		return 0, err
	}
	return s.digest, nil
}

func (s *Store) load(ctx context.Context) (string, uint64, error) {
	start := time.Now()

	rc, err := s.src.Open(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("%w: open %s: %w", ErrResource, s.src.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", 0, fmt.Errorf("%w: read %s: %w", ErrResource, s.src.Name(), err)
	}
	if off := invalidUTF8Offset(data); off >= 0 {
		return "", 0, fmt.Errorf("%w: %s: invalid UTF-8 at byte %d", ErrDecode, s.src.Name(), off)
	}

	text := string(data)
	digest := xxhash.Sum64String(text)
	logging.CorpusLoaded(logctx.FromContext(ctx), s.src.Name(), time.Since(start)).
		Bytes("bytes", int64(len(text))).
		Hex("digest", digest).
		LogDebug("corpus loaded")
	return text, digest, nil
}

// BodyLines opens a new line stream over the corpus with the header lines
// already skipped. Each call reads the resource again from the start.
func (s *Store) BodyLines(ctx context.Context) (*Lines, error) {
	rc, err := s.src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrResource, s.src.Name(), err)
	}
	return newLines(rc, s.src.Name(), s.skipLines), nil
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence,
// or -1 when data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
