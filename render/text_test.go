/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"strings"
	"testing"

	"github.com/mikeb26/kyutd/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPairingsOutput(t *testing.T) {
	out := BuildPairingsOutput(BuildTables(sampleResults()))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "1級A の対戦組み合わせ", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "席  ID  名前"))
	assert.Contains(t, lines[2], "山田 太郎")
	assert.Contains(t, lines[2], "佐藤 花子")
	assert.True(t, strings.HasSuffix(lines[3], "不戦勝"))
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "1級B の対戦組み合わせ", lines[5])
	for _, l := range lines {
		assert.Equal(t, strings.TrimRight(l, " "), l)
	}
}

func TestBuildPairingsOutputAligned(t *testing.T) {
	tables := []Table{{
		Division: bracket.DivisionKey{Grade: "初段"},
		Rows: []Row{
			{Left: Side{Seat: 1, ID: "1", Name: "山田", Affiliation: "X"},
				Right: &Side{Seat: 2, ID: "2", Name: "Al", Affiliation: "Y"}},
			{Left: Side{Seat: 3, ID: "3", Name: "Bo", Affiliation: "Z"},
				Right: &Side{Seat: 4, ID: "4", Name: "鈴木", Affiliation: "W"}},
		},
	}}
	lines := strings.Split(BuildPairingsOutput(tables), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	// "山田" is four columns wide, so "Bo" is padded to match
	assert.Equal(t, "1   1   山田  X     2   2   Al    Y", lines[2])
	assert.Equal(t, "3   3   Bo    Z     4   4   鈴木  W", lines[3])
}

func TestBuildPairingsOutputEmpty(t *testing.T) {
	assert.Equal(t, "No competitors present\n", BuildPairingsOutput(nil))
}

func TestBuildCountsOutput(t *testing.T) {
	divs := bracket.PartitionByDivision([]bracket.Competitor{
		{ID: "1", Grade: "1級", Group: "A"},
		{ID: "2", Grade: "1級", Group: "A"},
		{ID: "3", Grade: "1級", Group: "A"},
		{ID: "4", Grade: "2級"},
		{ID: "5", Grade: "2級"},
		{ID: "6", Grade: "3級", Absent: true},
	})
	out := BuildCountsOutput(bracket.Summarize(divs))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "級組  人数  試合  不戦勝", lines[0])
	assert.Equal(t, "1級A  3     1     1", lines[1])
	assert.Equal(t, "2級   2     1     0", lines[2])
	assert.Equal(t, "計    5     2     1", lines[3])
}

func TestBuildCountsOutputEmpty(t *testing.T) {
	assert.Equal(t, "No competitors present\n", BuildCountsOutput(nil))
}
