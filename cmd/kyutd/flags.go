/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mikeb26/kyutd/config"
	"github.com/mikeb26/kyutd/internal"
	"github.com/mikeb26/kyutd/render"
	"github.com/mikeb26/kyutd/tournament"
)

// drawFlags are shared by every command that draws a bracket.
type drawFlags struct {
	seed    *int64
	date    *string
	shorten *bool
	width   *int
}

func addDrawFlags(fs *flag.FlagSet, cfg config.Config) *drawFlags {
	return &drawFlags{
		seed:    fs.Int64("seed", 0, "Shuffle seed; 0 picks one from the clock"),
		date:    fs.String("date", "", "Event date"),
		shorten: fs.Bool("shorten", cfg.Render.Shorten, "Shorten long affiliations"),
		width: fs.Int("width", cfg.Render.AffiliationWidth,
			"Affiliation width when shortening"),
	}
}

func (df *drawFlags) renderOptions() render.Options {
	date, err := internal.ParseDateOrZero(*df.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --date %q: %v\n", *df.date, err)
		os.Exit(1)
	}
	return render.Options{
		EventDate:        date,
		Shorten:          *df.shorten,
		AffiliationWidth: *df.width,
	}
}

func logDraw(d *tournament.Draw) {
	log.Printf("kyutd.draw: seed %v", d.Seed)
	if n := d.ClubmateMatches(); n > 0 {
		log.Printf("kyutd.draw: %v unavoidable same-affiliation matches", n)
	}
}

// writeOutput runs write against the named file, or stdout when path is
// empty.
func writeOutput(path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
