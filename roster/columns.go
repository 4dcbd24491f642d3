/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"strings"
	"unicode"
)

// Canonical column names. Headers may also use the English aliases below.
const (
	ColID            = "Id"
	ColGrade         = "級"
	ColAffiliation   = "所属"
	ColName          = "名前"
	ColFamily        = "姓"
	ColGiven         = "名"
	ColGroup         = "組"
	ColAbsent        = "欠席"
	ColEliminated    = "敗退"
	ColReading       = "名前読み"
	ColFamilyReading = "姓読み"
	ColGivenReading  = "名読み"
)

var requiredColumns = []string{ColID, ColGrade, ColAffiliation}

var aliases = map[string]string{
	"id":            ColID,
	"grade":         ColGrade,
	"kyu":           ColGrade,
	"affiliation":   ColAffiliation,
	"club":          ColAffiliation,
	"team":          ColAffiliation,
	"name":          ColName,
	"fullname":      ColName,
	"family":        ColFamily,
	"surname":       ColFamily,
	"lastname":      ColFamily,
	"given":         ColGiven,
	"givenname":     ColGiven,
	"firstname":     ColGiven,
	"group":         ColGroup,
	"subgroup":      ColGroup,
	"absent":        ColAbsent,
	"eliminated":    ColEliminated,
	"reading":       ColReading,
	"familyreading": ColFamilyReading,
	"givenreading":  ColGivenReading,
}

// ColumnError reports a header that lacks required columns.
type ColumnError struct {
	Missing []string
	// NeedName is set when neither 名前 nor the 姓/名 pair is present.
	NeedName bool
}

func (e *ColumnError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required columns: %s",
			strings.Join(e.Missing, ", ")))
	}
	if e.NeedName {
		parts = append(parts, fmt.Sprintf("need %s or both %s and %s",
			ColName, ColFamily, ColGiven))
	}
	return "roster: " + strings.Join(parts, "; ")
}

// normalizeColumnName strips every kind of whitespace (including the
// ideographic space) and maps English aliases to the canonical name.
func normalizeColumnName(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)

	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s))
	if canon, ok := aliases[key]; ok {
		return canon
	}
	return s
}

// columnIndex maps canonical column names to their position in header. The
// first occurrence of a duplicated column wins.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	idx := make(columnIndex)
	for i, h := range header {
		name := normalizeColumnName(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

func (idx columnIndex) has(name string) bool {
	_, ok := idx[name]
	return ok
}

func (idx columnIndex) validate() error {
	var cerr ColumnError
	for _, col := range requiredColumns {
		if !idx.has(col) {
			cerr.Missing = append(cerr.Missing, col)
		}
	}
	if !idx.has(ColName) && !(idx.has(ColFamily) && idx.has(ColGiven)) {
		cerr.NeedName = true
	}
	if len(cerr.Missing) > 0 || cerr.NeedName {
		return &cerr
	}
	return nil
}

// get returns the trimmed cell of the named column, or "" if the column is
// not in the header.
func (idx columnIndex) get(cells []string, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
