/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"fmt"
	"html/template"
)

// ShortenAffiliation keeps the first width runes of s followed by an
// ellipsis. Strings at most one rune over width are left alone, since the
// ellipsis would not save any space.
func ShortenAffiliation(s string, width int) string {
	if width < 0 {
		width = 0
	}
	runes := []rune(s)
	if len(runes) <= width+1 {
		return s
	}
	return string(runes[:width]) + "…"
}

// Ruby marks up name with its reading as ruby text. Without a reading the
// escaped name is returned.
func Ruby(name, reading string) template.HTML {
	if reading == "" {
		return template.HTML(template.HTMLEscapeString(name))
	}
	return template.HTML(fmt.Sprintf(
		"<ruby><rb>%s</rb><rp>(</rp><rt>%s</rt><rp>)</rp></ruby>",
		template.HTMLEscapeString(name), template.HTMLEscapeString(reading)))
}
