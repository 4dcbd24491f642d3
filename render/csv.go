/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

const walkoverText = "不戦勝"

var csvHeader = []string{"級組", "席", "ID", "名前", "所属", "席", "ID", "名前", "所属"}

func (s Side) csvCells(opts Options) []string {
	return []string{seatText(s.Seat), s.ID, s.Name, opts.affiliation(s.Affiliation)}
}

// WriteCSV writes all tables as one CSV document with a UTF-8 BOM so that
// spreadsheet software detects the encoding. A walkover row ends with 不戦勝
// in place of the opponent.
func WriteCSV(w io.Writer, tables []Table, opts Options) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("unable to write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("unable to write csv: %w", err)
	}
	for _, t := range tables {
		for _, r := range t.Rows {
			rec := append([]string{t.Division.String()}, r.Left.csvCells(opts)...)
			if r.IsWalkover() {
				rec = append(rec, walkoverText)
			} else {
				rec = append(rec, r.Right.csvCells(opts)...)
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("unable to write csv: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("unable to write csv: %w", err)
	}
	return nil
}
