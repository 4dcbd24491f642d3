/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mikeb26/kyutd/bracket"
)

// textTable lays out rows of cells in columns padded to the widest cell,
// measured in terminal display width so CJK text lines up.
type textTable struct {
	header []string
	rows   [][]string
}

func (t *textTable) write(sb *strings.Builder) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.rows {
		for i, c := range r {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}

	writeLine := func(cells []string) {
		var line strings.Builder
		for i, c := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			if i < len(widths) {
				c = runewidth.FillRight(c, widths[i])
			}
			line.WriteString(c)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	writeLine(t.header)
	for _, r := range t.rows {
		writeLine(r)
	}
}

func (s Side) textCells() []string {
	return []string{seatText(s.Seat), s.ID, s.Name, s.Affiliation}
}

// BuildPairingsOutput formats tables as aligned text, one block per
// division.
func BuildPairingsOutput(tables []Table) string {
	var sb strings.Builder
	if len(tables) == 0 {
		sb.WriteString("No competitors present\n")
		return sb.String()
	}

	for i, tbl := range tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%v の対戦組み合わせ\n", tbl.Division))
		tt := textTable{header: []string{"席", "ID", "名前", "所属", "席", "ID", "名前", "所属"}}
		for _, r := range tbl.Rows {
			cells := r.Left.textCells()
			if r.IsWalkover() {
				cells = append(cells, walkoverText)
			} else {
				cells = append(cells, r.Right.textCells()...)
			}
			tt.rows = append(tt.rows, cells)
		}
		tt.write(&sb)
	}

	return sb.String()
}

// BuildCountsOutput formats per-division head counts: present
// competitors, matches and walkovers.
func BuildCountsOutput(summaries []bracket.DivisionSummary) string {
	var sb strings.Builder
	if len(summaries) == 0 {
		sb.WriteString("No competitors present\n")
		return sb.String()
	}

	tt := textTable{header: []string{"級組", "人数", "試合", "不戦勝"}}
	total := bracket.RoundPlan{}
	for _, s := range summaries {
		tt.rows = append(tt.rows, []string{
			s.Division.String(),
			fmt.Sprintf("%d", s.Plan.Present),
			fmt.Sprintf("%d", s.Plan.Matches),
			fmt.Sprintf("%d", s.Plan.Walkovers),
		})
		total.Present += s.Plan.Present
		total.Matches += s.Plan.Matches
		total.Walkovers += s.Plan.Walkovers
	}
	if len(summaries) > 1 {
		tt.rows = append(tt.rows, []string{"計",
			fmt.Sprintf("%d", total.Present),
			fmt.Sprintf("%d", total.Matches),
			fmt.Sprintf("%d", total.Walkovers),
		})
	}
	tt.write(&sb)

	return sb.String()
}
