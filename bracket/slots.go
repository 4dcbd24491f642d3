/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import "fmt"

// slotIndex addresses one match slot. Every slotIndex handed to a slots
// accessor must be < slots.len(); the accessors panic otherwise.
type slotIndex int

// slots is the fixed array of match slots being filled by the assigner.
type slots struct {
	matches []Match
}

func newSlots(n int) *slots {
	return &slots{matches: make([]Match, n)}
}

func (s *slots) len() slotIndex {
	return slotIndex(len(s.matches))
}

func (s *slots) at(i slotIndex) *Match {
	if i < 0 || i >= s.len() {
		panic(fmt.Sprintf("bracket: slot %d out of range [0,%d)", i, s.len()))
	}
	return &s.matches[i]
}

func (s *slots) left(i slotIndex) *Competitor {
	return s.at(i).Left
}

func (s *slots) right(i slotIndex) *Competitor {
	return s.at(i).Right
}

func (s *slots) setLeft(i slotIndex, c *Competitor) {
	s.at(i).Left = c
}

func (s *slots) setRight(i slotIndex, c *Competitor) {
	s.at(i).Right = c
}
