/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/mikeb26/kyutd/bracket"
	"golang.org/x/text/width"
)

// AffiliationPair is two distinct affiliation spellings that probably name
// the same club. Ratio is the edit distance over the longer folded length.
type AffiliationPair struct {
	A, B     string
	Distance int
	Ratio    float64
}

// foldAffiliation removes whitespace, narrows full-width characters and
// lower cases s.
func foldAffiliation(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(width.Fold.String(s))
}

// SimilarAffiliations reports pairs of distinct affiliation spellings that
// fold to the same text, or whose edit distance ratio is below maxRatio.
// The bracket compares affiliations exactly, so such pairs can end up
// facing each other in the first round.
func SimilarAffiliations(competitors []bracket.Competitor, maxRatio float64) []AffiliationPair {
	var names []string
	seen := make(map[string]bool)
	for _, c := range competitors {
		if c.Affiliation == "" || seen[c.Affiliation] {
			continue
		}
		seen[c.Affiliation] = true
		names = append(names, c.Affiliation)
	}

	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = foldAffiliation(n)
	}

	var pairs []AffiliationPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			dist := levenshtein.ComputeDistance(folded[i], folded[j])
			longest := max(utf8.RuneCountInString(folded[i]),
				utf8.RuneCountInString(folded[j]))
			ratio := 0.0
			if longest > 0 {
				ratio = float64(dist) / float64(longest)
			}
			if dist == 0 || ratio < maxRatio {
				pairs = append(pairs, AffiliationPair{
					A: names[i], B: names[j], Distance: dist, Ratio: ratio,
				})
			}
		}
	}
	return pairs
}
