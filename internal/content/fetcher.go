// Package content implements the locale-resolving fetchers. Every fetcher runs one
// catalog query, selects the requested locale for bilingual fields, and returns a
// view-model. Failures never propagate: a store error, an empty result, an unknown
// slug and an undecodable response all surface to callers as nil.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/queries"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/store"
)

// Store is the query primitive fetchers depend on
type Store interface {
	Fetch(ctx context.Context, query string, params map[string]any, opts store.FetchOptions) (json.RawMessage, error)
}

// outcome classifies a fetch for logs and metrics; callers only see value-or-nil
type outcome string

const (
	outcomeOK         outcome = "ok"
	outcomeEmpty      outcome = "empty"
	outcomeNotFound   outcome = "not_found"
	outcomeStoreError outcome = "store_error"
	outcomeMalformed  outcome = "malformed"
)

const defaultFetchTimeout = 5 * time.Second

// draftsPerspective lets privileged reads see unpublished edits
const draftsPerspective = "drafts"

// Fetcher resolves content collections for a locale
type Fetcher struct {
	public     Store
	privileged Store
	timeout    time.Duration
}

// Option configures the fetcher
type Option func(*Fetcher)

// WithPrivileged sets the store used for reads that bypass public caching
func WithPrivileged(s Store) Option {
	return func(f *Fetcher) {
		f.privileged = s
	}
}

// WithTimeout bounds every single fetch; a timed out fetch resolves to nil
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// NewFetcher creates a fetcher reading through the public store
func NewFetcher(public Store, opts ...Option) *Fetcher {
	f := &Fetcher{
		public:  public,
		timeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// fetchSpec describes one fetch
type fetchSpec struct {
	query      queries.Query
	params     map[string]any
	locale     i18n.Locale
	privileged bool
}

func (s fetchSpec) missOutcome() outcome {
	if len(s.query.Params) > 0 {
		return outcomeNotFound
	}
	return outcomeEmpty
}

// run issues the query and decodes the result, recording the outcome.
// The second return value is false whenever the caller must fall back to nil.
func run[T any](ctx context.Context, f *Fetcher, spec fetchSpec, decode func(json.RawMessage) (T, bool, error)) (T, bool) {
	var zero T
	start := time.Now()

	raw, err := f.query(ctx, spec)
	switch {
	case err != nil:
		f.record(spec, outcomeStoreError, start, err)
		return zero, false
	case isEmptyResult(raw):
		f.record(spec, spec.missOutcome(), start, nil)
		return zero, false
	}

	value, present, err := decode(raw)
	switch {
	case err != nil:
		f.record(spec, outcomeMalformed, start, err)
		return zero, false
	case !present:
		f.record(spec, spec.missOutcome(), start, nil)
		return zero, false
	}

	f.record(spec, outcomeOK, start, nil)
	return value, true
}

func (f *Fetcher) query(ctx context.Context, spec fetchSpec) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	s := f.public
	opts := store.FetchOptions{Cache: store.NoStore}
	if spec.privileged && f.privileged != nil {
		s = f.privileged
		opts.Perspective = draftsPerspective
	}

	return s.Fetch(ctx, spec.query.GROQ, spec.params, opts)
}

func (f *Fetcher) record(spec fetchSpec, oc outcome, start time.Time, err error) {
	elapsed := time.Since(start)
	fetchTotal.WithLabelValues(spec.query.Name, string(oc)).Inc()
	fetchDuration.WithLabelValues(spec.query.Name).Observe(elapsed.Seconds())

	attrs := []any{
		"query", spec.query.Name,
		"collection", spec.query.Collection,
		"locale", spec.locale,
		"outcome", oc,
		"duration_ms", elapsed.Milliseconds(),
	}
	if slug, ok := spec.params["slug"]; ok {
		attrs = append(attrs, "slug", slug)
	}

	switch oc {
	case outcomeOK:
		slog.Debug("content fetched", attrs...)
	case outcomeEmpty:
		slog.Warn("no content found in store", attrs...)
	case outcomeNotFound:
		slog.Warn("content not found for slug", attrs...)
	default:
		slog.Error("content fetch failed", append(attrs, "error", err)...)
	}
}

func isEmptyResult(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]"))
}
