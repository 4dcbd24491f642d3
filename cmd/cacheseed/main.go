/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/kyutd/config"
	"github.com/mikeb26/kyutd/internal"
	"github.com/mikeb26/kyutd/roster"
)

// this program exists just to seed the http cache with roster pages ahead of
// a tournament, so pairing still works if a registration site goes down

func main() {
	fs := flag.NewFlagSet("cacheseed", flag.ExitOnError)
	list := fs.String("list", "", "File with one roster URL per line")
	delay := fs.Duration("delay", 2*time.Second, "Pause between fetches")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	urls := fs.Args()
	if *list != "" {
		f, err := os.Open(*list)
		if err != nil {
			log.Fatalf("cacheseed: %v", err)
		}
		more, err := readURLs(f)
		f.Close()
		if err != nil {
			log.Fatalf("cacheseed: unable to read %v: %v", *list, err)
		}
		urls = append(urls, more...)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Please provide roster URLs or --list FILE.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cacheseed: %v", err)
	}
	if cfg.Cache.Bucket == "" {
		log.Printf("cacheseed: warning no cache.bucket configured; entries only live for this run")
	}

	ctx := context.Background()
	client := internal.NewCachedHttpClient(ctx, internal.CacheOptions{
		Bucket: cfg.Cache.Bucket,
		Gzip:   cfg.Cache.Gzip,
		MaxAge: cfg.Cache.MaxAge,
	})

	for i, url := range urls {
		if i > 0 {
			time.Sleep(*delay) // avoid pegging registration sites
		}
		r, err := roster.LoadSource(ctx, client, url)
		if err != nil {
			// best effort
			log.Printf("cacheseed: %v", err)
			continue
		}

		fmt.Printf("seeded %v (%v competitors)\n", url, len(r.Competitors))
	}
}

// readURLs returns the non-blank, non-comment lines of r.
func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, sc.Err()
}
