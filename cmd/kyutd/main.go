/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/mikeb26/kyutd/config"
	"github.com/mikeb26/kyutd/internal"
	"github.com/mikeb26/kyutd/publish"
	"github.com/mikeb26/kyutd/render"
	"github.com/mikeb26/kyutd/roster"
	"github.com/mikeb26/kyutd/tournament"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, cfg config.Config, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"counts":   handleCounts,
	"pairings": handlePairings,
	"csv":      handleCSV,
	"html":     handleHTML,
	"publish":  handlePublish,
	"lint":     handleLint,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	handler(ctx, cfg, os.Args[2:])
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, cfg config.Config, args []string) {
	usage()
}

func httpClient(ctx context.Context, cfg config.Config) *http.Client {
	return internal.NewCachedHttpClient(ctx, internal.CacheOptions{
		Bucket: cfg.Cache.Bucket,
		Gzip:   cfg.Cache.Gzip,
		MaxAge: cfg.Cache.MaxAge,
	})
}

func loadTournament(ctx context.Context, cfg config.Config, fs *flag.FlagSet) *tournament.Tournament {
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one roster file or URL.")
		fs.Usage()
		os.Exit(1)
	}
	t, err := tournament.Load(ctx, httpClient(ctx, cfg), fs.Args())
	if err != nil {
		log.Fatalf("Error loading roster: %v", err)
	}
	return t
}

func handleCounts(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("counts", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := loadTournament(ctx, cfg, fs)
	fmt.Print(t.Counts())
}

func handlePairings(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("pairings", flag.ExitOnError)
	df := addDrawFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := loadTournament(ctx, cfg, fs)
	d := t.Pair(*df.seed)
	logDraw(d)
	fmt.Print(render.BuildPairingsOutput(d.Tables))
}

func handleCSV(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	df := addDrawFlags(fs, cfg)
	out := fs.String("out", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	opts := df.renderOptions()
	t := loadTournament(ctx, cfg, fs)
	d := t.Pair(*df.seed)
	logDraw(d)
	err := writeOutput(*out, func(w io.Writer) error {
		return render.WriteCSV(w, d.Tables, opts)
	})
	if err != nil {
		log.Fatalf("Error writing csv: %v", err)
	}
}

func handleHTML(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("html", flag.ExitOnError)
	df := addDrawFlags(fs, cfg)
	out := fs.String("out", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	opts := df.renderOptions()
	t := loadTournament(ctx, cfg, fs)
	d := t.Pair(*df.seed)
	logDraw(d)
	err := writeOutput(*out, func(w io.Writer) error {
		return render.WriteHTML(w, d.Tables, opts)
	})
	if err != nil {
		log.Fatalf("Error writing html: %v", err)
	}
}

func handlePublish(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	df := addDrawFlags(fs, cfg)
	bucket := fs.String("bucket", cfg.Publish.Bucket, "S3 bucket to publish to")
	prefix := fs.String("prefix", cfg.Publish.Prefix, "Object key prefix")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *bucket == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --bucket or set publish.bucket.")
		fs.Usage()
		os.Exit(1)
	}
	opts := df.renderOptions()
	t := loadTournament(ctx, cfg, fs)
	d := t.Pair(*df.seed)
	logDraw(d)

	artifacts, err := d.Artifacts(opts)
	if err != nil {
		log.Fatalf("Error rendering bracket: %v", err)
	}
	up, err := publish.New(ctx, *bucket, *prefix)
	if err != nil {
		log.Fatalf("Error publishing: %v", err)
	}
	res, err := up.Publish(ctx, opts.EventDate, artifacts)
	if err != nil {
		log.Fatalf("Error publishing: %v", err)
	}
	fmt.Printf("Published run %v (seed %v):\n", res.RunID, d.Seed)
	for _, uri := range res.URIs(up.Bucket()) {
		fmt.Printf("  %v\n", uri)
	}
}

func handleLint(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	maxRatio := fs.Float64("maxratio", cfg.Lint.MaxRatio,
		"Edit distance ratio below which affiliations are reported")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := loadTournament(ctx, cfg, fs)
	fmt.Print(buildLintOutput(t.Roster, *maxRatio))
}

func buildLintOutput(r *roster.Roster, maxRatio float64) string {
	var sb strings.Builder

	if len(r.Skipped) == 0 {
		sb.WriteString("No skipped rows\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d skipped rows:\n", len(r.Skipped)))
		for _, s := range r.Skipped {
			sb.WriteString(fmt.Sprintf("  - %v\n", s))
		}
	}

	pairs := roster.SimilarAffiliations(r.Competitors, maxRatio)
	if len(pairs) == 0 {
		sb.WriteString("No similar affiliations\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d similar affiliations (treated as different clubs):\n",
			len(pairs)))
		for _, p := range pairs {
			sb.WriteString(fmt.Sprintf("  - %q ~ %q (distance %d)\n", p.A, p.B,
				p.Distance))
		}
	}

	return sb.String()
}
