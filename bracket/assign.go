/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// AssignPairs builds the first round of one division. Absent and eliminated
// competitors are skipped. The field is shuffled, the first 2*Matches
// competitors are paired while avoiding same-affiliation matches and the
// rest receive walkovers. A nil shuffle uses a clock-seeded Fisher-Yates
// shuffle.
//
// The returned matches list the played matches in slot order followed by
// the walkovers in shuffled order. Left and Right point into competitors.
func AssignPairs(competitors []Competitor, shuffle Shuffler) []Match {
	if shuffle == nil {
		shuffle = NewSeededShuffler(0)
	}

	present := make([]*Competitor, 0, len(competitors))
	for i := range competitors {
		if competitors[i].Present() {
			present = append(present, &competitors[i])
		}
	}
	if len(present) == 0 {
		return []Match{}
	}

	plan := PlanRound(len(present))
	shuffled := shuffle(present)
	candidates := shuffled[:2*plan.Matches]
	walkovers := shuffled[2*plan.Matches:]

	a := newAssigner(plan.Matches)
	for _, c := range candidates {
		a.place(c)
	}

	result := make([]Match, 0, plan.Matches+plan.Walkovers)
	result = append(result, a.slots.matches...)
	for _, c := range walkovers {
		result = append(result, Match{Left: c})
	}

	return result
}

// assigner fills match slots left side first. Slots in
// [rightCount, leftCount) have a left occupant waiting for an opponent and
// all of those share one affiliation; slots below rightCount are complete.
type assigner struct {
	slots      *slots
	leftCount  slotIndex
	rightCount slotIndex
}

func newAssigner(matches int) *assigner {
	return &assigner{slots: newSlots(matches)}
}

func (a *assigner) place(c *Competitor) {
	n := a.slots.len()

	// every left side is taken; c has to be somebody's opponent
	if a.leftCount == n {
		if !a.tryOpponent(c, a.rightCount, n) {
			a.resolveSameAffiliation(c)
		}
		a.rightCount++
		return
	}

	// nobody is waiting; c opens a new match
	if a.leftCount == a.rightCount {
		a.slots.setLeft(a.leftCount, c)
		a.leftCount++
		return
	}

	if a.tryOpponent(c, a.rightCount, a.leftCount) {
		a.rightCount++
		return
	}
	// everybody waiting is from c's club
	a.slots.setLeft(a.leftCount, c)
	a.leftCount++
}

// tryOpponent seats c on the right of the first open slot in [from, to)
// whose left occupant is from a different club.
func (a *assigner) tryOpponent(c *Competitor, from, to slotIndex) bool {
	for i := from; i < to; i++ {
		left := a.slots.left(i)
		if left == nil || a.slots.right(i) != nil {
			continue
		}
		if left.Affiliation != c.Affiliation {
			a.slots.setRight(i, c)
			return true
		}
	}
	return false
}

// resolveSameAffiliation handles c when only clubmates are left waiting.
// If a completed match j < rightCount has a left occupant from neither c's
// club nor its own opponent's club, that occupant moves over to face the
// waiting competitor and c takes its place. Otherwise c faces a clubmate.
// Only completed matches are considered.
func (a *assigner) resolveSameAffiliation(c *Competitor) {
	target := a.rightCount

	for j := slotIndex(0); j < a.rightCount; j++ {
		left := a.slots.left(j)
		right := a.slots.right(j)
		if left == nil || right == nil {
			continue
		}
		if c.Affiliation != left.Affiliation &&
			c.Affiliation != right.Affiliation {

			a.slots.setLeft(j, c)
			a.slots.setRight(target, left)
			return
		}
	}

	a.slots.setRight(target, c)
}
