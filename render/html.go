/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/mikeb26/kyutd/internal"
)

//go:embed bracket.html.tmpl
var bracketTmplText string

const pageTitle = "対戦組み合わせ"

type htmlPage struct {
	Title  string
	Tables []Table
}

func seatText(seat int) string {
	if seat == 0 {
		return ""
	}
	return strconv.Itoa(seat)
}

// WriteHTML writes a standalone HTML page with one table per division.
func WriteHTML(w io.Writer, tables []Table, opts Options) error {
	tmpl, err := template.New("bracket").Funcs(template.FuncMap{
		"seat":        seatText,
		"ruby":        Ruby,
		"affiliation": opts.affiliation,
	}).Parse(bracketTmplText)
	if err != nil {
		return fmt.Errorf("unable to parse bracket template: %w", err)
	}

	page := htmlPage{Title: pageTitle, Tables: tables}
	if d := internal.FormatEventDate(opts.EventDate); d != "" {
		page.Title = d + " " + pageTitle
	}

	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("unable to render bracket html: %w", err)
	}
	return nil
}
