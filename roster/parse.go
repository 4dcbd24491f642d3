/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mikeb26/kyutd/bracket"
)

const ideographicSpace = '\u3000'

func isDelimiter(r rune) bool {
	return r == ',' || r == '\t' || r == ' ' || r == ideographicSpace
}

// splitRow splits line on every delimiter. Adjacent delimiters yield empty
// cells, so a row padded with extra spaces fails the column count check.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	var cells []string
	start := 0
	for i, r := range line {
		if isDelimiter(r) {
			cells = append(cells, line[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(cells, line[start:])
}

type row struct {
	line  int
	cells []string
}

// Parse reads a delimited text roster. The first non-blank line is the
// header; cells are separated by commas, tabs, spaces or ideographic spaces.
func Parse(content string) (*Roster, error) {
	var header []string
	var rows []row
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitRow(line)
		if header == nil {
			header = cells
			continue
		}
		rows = append(rows, row{line: i + 1, cells: cells})
	}
	return build(header, rows)
}

// build turns a header plus data rows into a Roster.
func build(header []string, rows []row) (*Roster, error) {
	if len(header) == 0 {
		return nil, ErrEmptyRoster
	}
	idx := indexColumns(header)
	if err := idx.validate(); err != nil {
		return nil, err
	}

	r := &Roster{}
	for _, rw := range rows {
		if len(rw.cells) != len(header) {
			r.Skipped = append(r.Skipped, SkippedRow{
				Line: rw.line,
				Reason: fmt.Sprintf("expected %d columns, got %d",
					len(header), len(rw.cells)),
			})
			continue
		}
		c := idx.competitor(rw.cells)
		if reason := checkCompetitor(&c); reason != "" {
			r.Skipped = append(r.Skipped, SkippedRow{Line: rw.line, Reason: reason})
			continue
		}
		r.Competitors = append(r.Competitors, c)
	}

	if err := checkDuplicates(r.Competitors); err != nil {
		return nil, err
	}
	return r, nil
}

func (idx columnIndex) competitor(cells []string) bracket.Competitor {
	return bracket.Competitor{
		ID:          idx.get(cells, ColID),
		Name:        idx.joined(cells, ColName, ColFamily, ColGiven),
		Reading:     idx.joined(cells, ColReading, ColFamilyReading, ColGivenReading),
		Affiliation: idx.get(cells, ColAffiliation),
		Grade:       idx.get(cells, ColGrade),
		Group:       idx.get(cells, ColGroup),
		Absent:      isTrue(idx.get(cells, ColAbsent)),
		Eliminated:  isTrue(idx.get(cells, ColEliminated)),
	}
}

// joined returns the full column, or "family given" when the full column
// is empty and both parts are present.
func (idx columnIndex) joined(cells []string, full, family, given string) string {
	if v := idx.get(cells, full); v != "" {
		return v
	}
	f, g := idx.get(cells, family), idx.get(cells, given)
	if f != "" && g != "" {
		return f + " " + g
	}
	return ""
}

func isTrue(s string) bool {
	return strings.EqualFold(s, "TRUE")
}
