package scan

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/rasadeyan/arachni/pkg/cookie"
	"github.com/rasadeyan/arachni/pkg/transport"
)

// Result is the dispatch outcome of one variant. A failed dispatch is
// recorded here, not returned as an audit failure; response evaluation
// belongs to the caller.
type Result struct {
	Variant  Variant
	Response *transport.Response
	Err      error
}

// Auditor runs the full mutation/dispatch cycle for cookies against an
// explicit Options value.
type Auditor struct {
	client      *transport.Client
	opts        Options
	log         *slog.Logger
	concurrency int
}

type AuditorOption func(*Auditor)

// WithLogger sets the audit log sink.
func WithLogger(log *slog.Logger) AuditorOption {
	return func(a *Auditor) { a.log = log }
}

// WithConcurrency caps in-flight dispatches per audit.
func WithConcurrency(n int) AuditorOption {
	return func(a *Auditor) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// NewAuditor creates an Auditor dispatching through client.
func NewAuditor(client *transport.Client, opts Options, aopts ...AuditorOption) *Auditor {
	a := &Auditor{
		client:      client,
		opts:        opts,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: 10,
	}
	for _, opt := range aopts {
		opt(a)
	}
	return a
}

// Audit mutates one cookie with the payload and dispatches every variant.
//
// The exclusion list is consulted once here, before any mutation happens:
// an excluded cookie name skips the entire audit, reports the skip, and
// yields no results. Variants are dispatched concurrently; each one is a
// fully independent copy, so parallel dispatch shares no mutable state.
func (a *Auditor) Audit(ctx context.Context, c *cookie.Cookie, payload string) ([]Result, error) {
	if a.opts.excludes(c.Name()) {
		a.log.Info("skipping excluded cookie", "cookie", c.Name(), "url", c.OwnerURL())
		return nil, nil
	}

	variants := Mutations(c, payload, a.opts)
	results := make([]Result, len(variants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			resp, err := a.dispatch(ctx, v)
			results[i] = Result{Variant: v, Response: resp, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.Info("cookie audit complete",
		"cookie", c.Name(),
		"variants", len(variants),
	)
	return results, nil
}

// Cookie variants always go out as GET against the owner URL with the query
// channel cleared; the mutated pair rides only in the cookie header.
// Propagated page elements are dispatched with their own method and inputs
// plus the stashed cookie pair.
func (a *Auditor) dispatch(ctx context.Context, v Variant) (*transport.Response, error) {
	if v.Cookie != nil {
		target, err := url.Parse(v.Cookie.OwnerURL())
		if err != nil {
			return nil, err
		}
		target.RawQuery = ""

		pair := v.Cookie.Input()
		return a.client.Get(ctx, target.String(), transport.RequestOptions{
			Cookies: map[string]string{pair.Key: pair.Value},
		})
	}

	el := v.Element
	opts := transport.RequestOptions{
		Cookies: el.Options().Cookies,
		Headers: el.Options().Headers,
	}

	if el.Method() == http.MethodPost {
		form := url.Values{}
		for k, val := range el.Inputs() {
			form.Set(k, val)
		}
		return a.client.Post(ctx, el.Action(), form, opts)
	}

	target, err := url.Parse(el.Action())
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	for k, val := range el.Inputs() {
		query.Set(k, val)
	}
	target.RawQuery = query.Encode()
	return a.client.Get(ctx, target.String(), opts)
}
