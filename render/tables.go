/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package render formats first round brackets as HTML, CSV and aligned
// text.
package render

import (
	"time"

	"github.com/mikeb26/kyutd/bracket"
	"github.com/mikeb26/kyutd/internal"
)

// Side is one occupant of a row. Seat is 0 for a walkover occupant.
type Side struct {
	Seat        int
	ID          string
	Name        string
	Reading     string
	Affiliation string
}

// Row is one match. Right is nil for a walkover.
type Row struct {
	Left  Side
	Right *Side
}

func (r Row) IsWalkover() bool {
	return r.Right == nil
}

type Table struct {
	Division bracket.DivisionKey
	Rows     []Row
}

func sideOf(c *bracket.Competitor, seat int) Side {
	return Side{
		Seat:        seat,
		ID:          c.ID,
		Name:        c.Name,
		Reading:     c.Reading,
		Affiliation: c.Affiliation,
	}
}

// BuildTables converts pairing results into display tables. Seats are
// numbered from 1 across all divisions in order; both occupants of a
// played match get a seat, walkovers get none.
func BuildTables(results []bracket.PairingResult) []Table {
	tables := make([]Table, 0, len(results))
	seat := 0
	for _, res := range results {
		t := Table{Division: res.Division, Rows: make([]Row, 0, len(res.Matches))}
		for _, m := range res.Matches {
			if m.IsWalkover() {
				t.Rows = append(t.Rows, Row{Left: sideOf(m.Left, 0)})
				continue
			}
			left := sideOf(m.Left, seat+1)
			right := sideOf(m.Right, seat+2)
			seat += 2
			t.Rows = append(t.Rows, Row{Left: left, Right: &right})
		}
		tables = append(tables, t)
	}
	return tables
}

// Options control HTML and CSV output.
type Options struct {
	// EventDate, when set, is shown in the HTML title.
	EventDate time.Time
	// Shorten truncates long affiliations to AffiliationWidth runes.
	Shorten          bool
	AffiliationWidth int
}

func (o Options) affiliation(s string) string {
	if !o.Shorten {
		return s
	}
	width := o.AffiliationWidth
	if width <= 0 {
		width = internal.DefaultAffiliationWidth
	}
	return ShortenAffiliation(s, width)
}
