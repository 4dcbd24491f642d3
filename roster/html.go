/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML reads the first <table> of an HTML page as a roster. Header
// cells come from the table's <thead> when it has one, otherwise from its
// first row. Line numbers in Skipped are 1-based table row numbers.
func ParseHTML(r io.Reader) (*Roster, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse roster html: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrEmptyRoster
	}

	var header []string
	var rows []row
	headerCells := table.Find("thead th")
	if headerCells.Length() > 0 {
		header = cellTexts(headerCells)
	}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if tr.ParentsFiltered("thead").Length() > 0 {
			return
		}
		cells := cellTexts(tr.Find("th, td"))
		if len(cells) == 0 {
			return
		}
		if header == nil {
			header = cells
			return
		}
		rows = append(rows, row{line: i + 1, cells: cells})
	})

	return build(header, rows)
}

func cellTexts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
}
