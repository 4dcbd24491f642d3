/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tournament ties roster loading, pairing and rendering together
// for the kyutd command line and the Discord bot.
package tournament

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mikeb26/kyutd/bracket"
	"github.com/mikeb26/kyutd/publish"
	"github.com/mikeb26/kyutd/render"
	"github.com/mikeb26/kyutd/roster"
)

const (
	HTMLName = "bracket.html"
	CSVName  = "bracket.csv"
)

// Tournament is a loaded roster split into divisions.
type Tournament struct {
	Roster    *roster.Roster
	Divisions bracket.Divisions
}

// Draw is one generated set of first round pairings.
type Draw struct {
	// Seed reproduces the draw when passed to Pair again.
	Seed    int64
	Results []bracket.PairingResult
	Tables  []render.Table
}

func New(r *roster.Roster) *Tournament {
	return &Tournament{
		Roster:    r,
		Divisions: bracket.PartitionByDivision(r.Competitors),
	}
}

// Load reads and merges the roster sources and partitions the result.
func Load(ctx context.Context, client *http.Client, srcs []string) (*Tournament, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("unable to load roster: no sources given")
	}
	r, err := roster.LoadAll(ctx, client, srcs)
	if err != nil {
		return nil, err
	}
	for _, s := range r.Skipped {
		log.Printf("tournament.load: skipped %v", s)
	}
	return New(r), nil
}

// ResolveSeed returns seed, or a clock based seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Pair draws the first round. A seed of 0 picks one from the clock; the
// seed actually used is recorded in the Draw.
func (t *Tournament) Pair(seed int64) *Draw {
	seed = ResolveSeed(seed)
	results := bracket.Generate(t.Divisions, bracket.NewSeededShuffler(seed))
	return &Draw{
		Seed:    seed,
		Results: results,
		Tables:  render.BuildTables(results),
	}
}

// Counts returns the per-division plan as aligned text.
func (t *Tournament) Counts() string {
	return render.BuildCountsOutput(bracket.Summarize(t.Divisions))
}

// ClubmateMatches counts played matches between competitors of the same
// affiliation. These only happen when a division leaves no alternative.
func (d *Draw) ClubmateMatches() int {
	n := 0
	for _, res := range d.Results {
		for _, m := range res.Matches {
			if m.SameAffiliation() {
				n++
			}
		}
	}
	return n
}

// Artifacts renders the draw as HTML and CSV ready for publishing.
func (d *Draw) Artifacts(opts render.Options) ([]publish.Artifact, error) {
	var html, csv bytes.Buffer
	if err := render.WriteHTML(&html, d.Tables, opts); err != nil {
		return nil, err
	}
	if err := render.WriteCSV(&csv, d.Tables, opts); err != nil {
		return nil, err
	}
	return []publish.Artifact{
		{Name: HTMLName, ContentType: "text/html; charset=utf-8", Body: html.Bytes()},
		{Name: CSVName, ContentType: "text/csv; charset=utf-8", Body: csv.Bytes()},
	}, nil
}
