// Package sampler derives deterministic needle pools from the corpus body,
// bucketed by word length.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/eunmann/twain-bench/internal/logctx"
	"github.com/eunmann/twain-bench/pkg/benchutil"
	"github.com/eunmann/twain-bench/pkg/corpus"
	"github.com/eunmann/twain-bench/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// Predicate selects words for a bucket. Lengths are in bytes.
type Predicate func(word string) bool

// Exact matches words of exactly n bytes.
func Exact(n int) Predicate {
	return func(w string) bool { return len(w) == n }
}

// AtLeast matches words of n bytes or more.
func AtLeast(n int) Predicate {
	return func(w string) bool { return len(w) >= n }
}

// Bucket is a named length criterion.
type Bucket struct {
	// Name is the short form used in unit names: "3" .. "7", "8+".
	Name string
	// Label is the long form used in reports: "3-letter words".
	Label string
	Pred  Predicate
}

// Buckets lists the five exact-length buckets followed by the open-ended one.
var Buckets = []Bucket{
	{Name: "3", Label: "3-letter words", Pred: Exact(3)},
	{Name: "4", Label: "4-letter words", Pred: Exact(4)},
	{Name: "5", Label: "5-letter words", Pred: Exact(5)},
	{Name: "6", Label: "6-letter words", Pred: Exact(6)},
	{Name: "7", Label: "7-letter words", Pred: Exact(7)},
	{Name: "8+", Label: "8+-letter words", Pred: AtLeast(8)},
}

// Lookup returns the predefined bucket with the given name.
func Lookup(name string) (Bucket, bool) {
	for _, b := range Buckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// Sample reads a fresh body-line stream and returns the first limit
// whitespace-separated tokens accepted by pred, in encounter order.
// Repeated tokens are kept. Reading stops as soon as limit words are found.
func Sample(ctx context.Context, store *corpus.Store, pred Predicate, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	lines, err := store.BodyLines(ctx)
	if err != nil {
		return nil, err
	}
	defer lines.Close()

	words := make([]string, 0, limit)
	for len(words) < limit {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, w := range strings.Fields(line) {
			if pred(w) {
				words = append(words, w)
				if len(words) == limit {
					break
				}
			}
		}
	}
	return words, nil
}

type bucketCache struct {
	once  sync.Once
	words []string
	err   error
}

// Sampler caches one sample per bucket for the lifetime of the process. It
// is the shared "corpus context" handed to every benchmark unit.
type Sampler struct {
	store *corpus.Store
	cap   int
	cache map[string]*bucketCache
}

// New creates a Sampler over store keeping at most benchutil.BucketCap
// words per bucket.
func New(store *corpus.Store) *Sampler {
	cache := make(map[string]*bucketCache, len(Buckets))
	for _, b := range Buckets {
		cache[b.Name] = &bucketCache{}
	}
	return &Sampler{store: store, cap: benchutil.BucketCap, cache: cache}
}

// Store returns the corpus the sampler reads from.
func (s *Sampler) Store() *corpus.Store {
	return s.store
}

// Words returns the cached sample for the bucket named bucket.Name,
// computing it on first use with the predefined bucket's predicate; a
// caller-supplied Pred is ignored. Concurrent first calls share a single
// computation; every caller gets the same slice, which must not be modified.
func (s *Sampler) Words(ctx context.Context, bucket Bucket) ([]string, error) {
	canonical, ok := Lookup(bucket.Name)
	if !ok {
		return nil, fmt.Errorf("unknown bucket %q", bucket.Name)
	}
	bucket = canonical
	c := s.cache[bucket.Name]
	c.once.Do(func() {
		start := time.Now()
		c.words, c.err = Sample(ctx, s.store, bucket.Pred, s.cap)
		if c.err != nil {
			c.err = fmt.Errorf("sample bucket %s: %w", bucket.Name, c.err)
			return
		}
		logging.BucketSampled(logctx.FromContext(ctx), bucket.Name, time.Since(start)).
			Int("words", len(c.words)).
			LogDebug("bucket sampled")
	})
	return c.words, c.err
}

// Prewarm samples every bucket concurrently and returns the first failure.
// A failing bucket does not cancel the others.
func (s *Sampler) Prewarm(ctx context.Context) error {
	var g errgroup.Group
	for _, b := range Buckets {
		g.Go(func() error {
			_, err := s.Words(ctx, b)
			return err
		})
	}
	return g.Wait()
}
