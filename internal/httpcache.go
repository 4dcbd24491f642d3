/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/kyutd/s3cache"
)

// CacheOptions selects where fetched rosters are cached.
type CacheOptions struct {
	// Bucket is the S3 bucket backing the cache. Empty means in-memory only.
	Bucket string
	Gzip   bool
	MaxAge time.Duration
}

// NewCachedHttpClient returns an http.Client that caches responses for
// opts.MaxAge regardless of what the origin says. The cache lives in S3 when
// opts.Bucket is set and reachable, in memory otherwise.
func NewCachedHttpClient(ctx context.Context, opts CacheOptions) *http.Client {
	var cache httpcache.Cache = httpcache.NewMemoryCache()

	if opts.Bucket != "" {
		s3c, err := s3cache.Open(ctx, s3cache.Options{
			Bucket:    opts.Bucket,
			Gzip:      opts.Gzip,
			LogErrors: true,
		})
		if err != nil {
			log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to in-memory cache",
				err)
		} else {
			cache = s3c
		}
	}

	return newCachingClient(cache, http.DefaultTransport, opts.MaxAge)
}

func newCachingClient(cache httpcache.Cache, rt http.RoundTripper,
	maxAge time.Duration) *http.Client {

	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAgeHours * time.Hour
	}

	hc := httpcache.NewTransport(cache)
	// origin cache headers are replaced so that registration pages which
	// forbid caching are still kept for maxAge
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: rt,
		Request: func(req *http.Request) {
			if req.Header.Get("User-Agent") == "" {
				req.Header.Set("User-Agent", UserAgent)
			}
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

// HeaderOverrideTransport runs Request and Response hooks around another
// RoundTripper.
type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's request
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
