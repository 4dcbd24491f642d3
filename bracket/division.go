/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// DivisionKey identifies a division. Being a plain comparable struct, equal
// (grade, group) pairs always map to the same division and unequal ones never
// collide, whatever the display form looks like.
type DivisionKey struct {
	Grade string
	Group string
}

// String returns the display form: the grade alone when there is no group,
// otherwise grade and group concatenated (e.g. "3級" or "3級A").
func (k DivisionKey) String() string {
	return k.Grade + k.Group
}

// Divisions is a roster partitioned by DivisionKey. Keys are kept in order
// of first appearance in the roster and members keep their roster order.
type Divisions struct {
	keys    []DivisionKey
	members map[DivisionKey][]Competitor
}

// PartitionByDivision groups roster by (grade, group). Absent and eliminated
// competitors are kept; AssignPairs filters them.
func PartitionByDivision(roster []Competitor) Divisions {
	divs := Divisions{
		members: make(map[DivisionKey][]Competitor),
	}

	for _, c := range roster {
		key := c.Division()
		if _, ok := divs.members[key]; !ok {
			divs.keys = append(divs.keys, key)
		}
		divs.members[key] = append(divs.members[key], c)
	}

	return divs
}

// Keys returns the division keys in roster order.
func (d Divisions) Keys() []DivisionKey {
	return append([]DivisionKey(nil), d.keys...)
}

// Members returns the competitors of one division.
func (d Divisions) Members(key DivisionKey) []Competitor {
	return d.members[key]
}

func (d Divisions) Len() int {
	return len(d.keys)
}
