// Package iogender implements remote services used by the lookup gender
// classifier: a LibreTranslate-compatible translator and a
// genderize-compatible detector.
package iogender

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/gender"
	"github.com/gnames/namestat/pkg/namelists"
	"golang.org/x/time/rate"
)

// New creates a lookup classifier backed by remote services configured
// in cfg. Every remote call is limited by the timeout from
// cfg.Gender.Lookup. Both services share one limiter, so calls to them
// together do not exceed the configured rate.
func New(cfg *config.Config, lists namelists.LookupLists) gender.Classifier {
	lk := cfg.Gender.Lookup
	lim := NewLimiter(lk)
	tr := NewTranslator(lk, lim)
	det := NewDetector(lk, lim)
	return gender.NewLookup(tr, det, lists)
}

// NewLimiter creates a limiter allowing lk.RequestsPerSecond calls.
func NewLimiter(lk config.LookupConfig) *rate.Limiter {
	rps := lk.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return rate.NewLimiter(rate.Limit(rps), rps)
}

// remote holds settings shared by both services.
type remote struct {
	url     string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
}

func newRemote(
	url string,
	lk config.LookupConfig,
	lim *rate.Limiter,
) remote {
	if lim == nil {
		lim = NewLimiter(lk)
	}
	return remote{
		url:     url,
		apiKey:  lk.APIKey,
		timeout: time.Duration(lk.TimeoutSec) * time.Second,
		client:  &http.Client{},
		limiter: lim,
	}
}

// do waits for the rate limiter and sends the request with a timeout.
// The response body is returned if the status is 200.
func (r *remote) do(
	ctx context.Context,
	newReq func(context.Context) (*http.Request, error),
) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := newReq(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s",
			ErrBadStatus, resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "..."
}
