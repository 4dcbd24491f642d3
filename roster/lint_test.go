/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"testing"

	"github.com/mikeb26/kyutd/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withAffiliations(affs ...string) []bracket.Competitor {
	out := make([]bracket.Competitor, len(affs))
	for i, a := range affs {
		out[i] = bracket.Competitor{Affiliation: a}
	}
	return out
}

func TestSimilarAffiliations(t *testing.T) {
	cases := []struct {
		name string
		affs []string
		want [][2]string
	}{
		{name: "case", affs: []string{"Tokyo Club", "tokyo club"},
			want: [][2]string{{"Tokyo Club", "tokyo club"}}},
		{name: "full width", affs: []string{"ＡＢＣ", "ABC"},
			want: [][2]string{{"ＡＢＣ", "ABC"}}},
		{name: "spaces", affs: []string{"東京 道場", "東京道場"},
			want: [][2]string{{"東京 道場", "東京道場"}}},
		{name: "typo", affs: []string{"Kanagawa", "Kanagowa", "Osaka"},
			want: [][2]string{{"Kanagawa", "Kanagowa"}}},
		{name: "different", affs: []string{"東京", "大阪", "名古屋"}},
		{name: "repeated spelling", affs: []string{"X", "X", "X"}},
		{name: "empty ignored", affs: []string{"", ""}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pairs := SimilarAffiliations(withAffiliations(c.affs...), 0.2)
			var got [][2]string
			for _, p := range pairs {
				got = append(got, [2]string{p.A, p.B})
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSimilarAffiliationsRatio(t *testing.T) {
	pairs := SimilarAffiliations(withAffiliations("Kanagawa", "Kanagowa"), 0.2)
	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Distance)
	assert.InDelta(t, 0.125, pairs[0].Ratio, 1e-9)

	assert.Empty(t, SimilarAffiliations(withAffiliations("Kanagawa", "Kanagowa"), 0.1))
	// folded equality is always reported
	assert.Len(t, SimilarAffiliations(withAffiliations("ABC", "abc"), 0), 1)
}
