/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// Competitor is one roster entry. The bracket code never modifies a
// Competitor; matches hold pointers into the caller's roster slice.
type Competitor struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Reading     string // phonetic (furigana) name, optional
	Affiliation string `validate:"required"`
	Grade       string `validate:"required"`
	Group       string // sub-group within the grade, optional
	Absent      bool
	Eliminated  bool
}

// Present reports whether c takes part in the round.
func (c *Competitor) Present() bool {
	return !c.Absent && !c.Eliminated
}

// Division returns the key of the division c belongs to.
func (c *Competitor) Division() DivisionKey {
	return DivisionKey{Grade: c.Grade, Group: c.Group}
}

// Match is a first round pairing. A Match with a nil Right is a walkover.
type Match struct {
	Left  *Competitor
	Right *Competitor
}

func (m Match) IsWalkover() bool {
	return m.Right == nil
}

// SameAffiliation reports whether both occupants of a played match come from
// the same club.
func (m Match) SameAffiliation() bool {
	if m.Left == nil || m.Right == nil {
		return false
	}
	return m.Left.Affiliation == m.Right.Affiliation
}

// PairingResult is the ordered match list for one division.
type PairingResult struct {
	Division DivisionKey
	Matches  []Match
}

// Played returns the number of two-player matches in r.
func (r PairingResult) Played() int {
	n := 0
	for _, m := range r.Matches {
		if !m.IsWalkover() {
			n++
		}
	}
	return n
}
