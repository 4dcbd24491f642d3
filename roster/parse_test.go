/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	r, err := Parse("Id,級,所属,名前\n1,A,X,Taro\n2,A,Y,Jiro\n")
	require.NoError(t, err)
	require.Len(t, r.Competitors, 2)
	assert.Empty(t, r.Skipped)

	c := r.Competitors[0]
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "A", c.Grade)
	assert.Equal(t, "X", c.Affiliation)
	assert.Equal(t, "Taro", c.Name)
	assert.Equal(t, "", c.Group)
	assert.True(t, c.Present())
	assert.Equal(t, "Jiro", r.Competitors[1].Name)
}

func TestParseDelimiters(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "comma", content: "Id,級,所属,名前\n1,A,X,Taro"},
		{name: "tab", content: "Id\t級\t所属\t名前\n1\tA\tX\tTaro"},
		{name: "space", content: "Id 級 所属 名前\n1 A X Taro"},
		{name: "ideographic", content: "Id　級　所属　名前\n1　A　X　Taro"},
		{name: "mixed", content: "Id,級\t所属　名前\n1 A,X\tTaro"},
		{name: "crlf", content: "Id,級,所属,名前\r\n1,A,X,Taro\r\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.content)
			require.NoError(t, err)
			require.Len(t, r.Competitors, 1)
			assert.Equal(t, "Taro", r.Competitors[0].Name)
			assert.Equal(t, "X", r.Competitors[0].Affiliation)
		})
	}
}

func TestParseJoinsFamilyAndGivenNames(t *testing.T) {
	r, err := Parse("Id,級,組,所属,姓,名,姓読み,名読み\n" +
		"1,3級,A,東京,山田,太郎,やまだ,たろう\n" +
		"2,3級,B,大阪,佐藤,花子,,\n")
	require.NoError(t, err)
	require.Len(t, r.Competitors, 2)

	assert.Equal(t, "山田 太郎", r.Competitors[0].Name)
	assert.Equal(t, "やまだ たろう", r.Competitors[0].Reading)
	assert.Equal(t, "A", r.Competitors[0].Group)
	assert.Equal(t, "佐藤 花子", r.Competitors[1].Name)
	assert.Equal(t, "", r.Competitors[1].Reading)
}

func TestParsePrefersFullName(t *testing.T) {
	r, err := Parse("Id,級,所属,名前,姓,名\n1,A,X,Full,Fam,Giv\n2,A,X,,Fam,Giv\n")
	require.NoError(t, err)
	require.Len(t, r.Competitors, 2)
	assert.Equal(t, "Full", r.Competitors[0].Name)
	assert.Equal(t, "Fam Giv", r.Competitors[1].Name)
}

func TestParseFlags(t *testing.T) {
	r, err := Parse("Id,級,所属,名前,欠席,敗退\n" +
		"1,A,X,a,TRUE,\n" +
		"2,A,X,b,,true\n" +
		"3,A,X,c,FALSE,no\n")
	require.NoError(t, err)
	require.Len(t, r.Competitors, 3)

	assert.True(t, r.Competitors[0].Absent)
	assert.False(t, r.Competitors[0].Eliminated)
	assert.True(t, r.Competitors[1].Eliminated)
	assert.False(t, r.Competitors[1].Absent)
	assert.True(t, r.Competitors[2].Present())
}

func TestParseAliases(t *testing.T) {
	r, err := Parse("id,grade,club,last_name,first_name,group\n7,B,Z,Yamada,Taro,east\n")
	require.NoError(t, err)
	require.Len(t, r.Competitors, 1)

	c := r.Competitors[0]
	assert.Equal(t, "7", c.ID)
	assert.Equal(t, "B", c.Grade)
	assert.Equal(t, "Z", c.Affiliation)
	assert.Equal(t, "Yamada Taro", c.Name)
	assert.Equal(t, "east", c.Group)
}

func TestParseSkipsBadRows(t *testing.T) {
	content := "Id,級,所属,名前\n" +
		"1,A,X\n" + // too few columns
		",A,X,Nameless\n" + // empty id
		"\n" +
		"3,A,X,Saburo\n" +
		"4,A,X,,\n" // too many columns
	r, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, r.Competitors, 1)
	assert.Equal(t, "Saburo", r.Competitors[0].Name)

	require.Len(t, r.Skipped, 3)
	assert.Equal(t, 2, r.Skipped[0].Line)
	assert.Contains(t, r.Skipped[0].Reason, "expected 4 columns, got 3")
	assert.Equal(t, 3, r.Skipped[1].Line)
	assert.Contains(t, r.Skipped[1].Reason, "ID is required")
	assert.Equal(t, 6, r.Skipped[2].Line)
	assert.Equal(t, "line 2: expected 4 columns, got 3", r.Skipped[0].String())
}

func TestParseMissingColumns(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		missing  []string
		needName bool
	}{
		{name: "no grade or affiliation", content: "Id,名前\n1,a\n",
			missing: []string{ColGrade, ColAffiliation}},
		{name: "family without given", content: "Id,級,所属,姓\n1,A,X,a\n",
			needName: true},
		{name: "nothing usable", content: "foo,bar\n",
			missing: []string{ColID, ColGrade, ColAffiliation}, needName: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.content)
			var cerr *ColumnError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, c.missing, cerr.Missing)
			assert.Equal(t, c.needName, cerr.NeedName)
			assert.Contains(t, cerr.Error(), "roster:")
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, content := range []string{"", "\n", " \r\n\t\n"} {
		_, err := Parse(content)
		assert.ErrorIs(t, err, ErrEmptyRoster)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	r, err := Parse("Id,級,所属,名前\n")
	require.NoError(t, err)
	assert.Empty(t, r.Competitors)
	assert.Empty(t, r.Skipped)
}

func TestParseDuplicateID(t *testing.T) {
	_, err := Parse("Id,級,所属,名前\n1,A,X,Taro\n1,B,Y,Jiro\n")
	var derr *DuplicateIDError
	require.True(t, errors.As(err, &derr), "got %v", err)
	assert.Equal(t, "1", derr.ID)
	assert.Equal(t, []string{"Taro", "Jiro"}, derr.Names)
}

func TestNormalizeColumnName(t *testing.T) {
	cases := map[string]string{
		"Id":         ColID,
		"ID":         ColID,
		" 級 ":        ColGrade,
		"所　属":        ColAffiliation,
		"Club":       ColAffiliation,
		"given-name": ColGiven,
		"名前読み":       ColReading,
		"memo":       "memo",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeColumnName(in), "input %q", in)
	}
}
