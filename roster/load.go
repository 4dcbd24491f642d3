/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/kyutd/internal"
	"golang.org/x/sync/errgroup"
)

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func looksLikeHTML(src string, text string) bool {
	name := src
	if isURL(src) {
		name = strings.SplitN(strings.SplitN(src, "?", 2)[0], "#", 2)[0]
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(text), "<")
}

// LoadSource reads a roster from a file path or an http(s) URL. URLs are
// fetched with client, which is expected to be the caching client from
// internal.NewCachedHttpClient.
func LoadSource(ctx context.Context, client *http.Client, src string) (*Roster, error) {
	var raw []byte
	var err error
	if isURL(src) {
		raw, err = fetch(ctx, client, src)
	} else {
		raw, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read roster %v: %w", src, err)
	}

	text, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to decode roster %v: %w", src, err)
	}

	var r *Roster
	if looksLikeHTML(src, text) {
		r, err = ParseHTML(strings.NewReader(text))
	} else {
		r, err = Parse(text)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse roster %v: %w", src, err)
	}

	for i := range r.Skipped {
		r.Skipped[i].Source = src
	}
	if len(r.Skipped) > 0 {
		log.Printf("roster.load: %v: skipped %v rows", src, len(r.Skipped))
	}

	return r, nil
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// LoadAll loads every source concurrently and merges them in argument
// order. An id that appears in two sources is an error.
func LoadAll(ctx context.Context, client *http.Client, srcs []string) (*Roster, error) {
	rosters := make([]*Roster, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		g.Go(func() error {
			r, err := LoadSource(gctx, client, src)
			if err != nil {
				return err
			}
			rosters[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(rosters...)
}
