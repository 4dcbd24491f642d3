/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// PreviousPowerOfTwo returns the largest power of two <= n, or 0 when n < 2.
func PreviousPowerOfTwo(n int) int {
	if n < 2 {
		return 0
	}
	power := 2
	for power*2 <= n {
		power *= 2
	}
	return power
}

// roundWinners returns the field size after the first round: the largest
// power of two strictly below present. A field that is already a power of
// two still plays a full round (8 -> 4, 2 -> 1).
func roundWinners(present int) int {
	if present < 2 {
		return 0
	}
	power := 1
	for power*2 < present {
		power *= 2
	}
	return power
}

// RoundPlan holds the structural numbers of one division's first round.
type RoundPlan struct {
	Present   int
	Winners   int
	Matches   int
	Walkovers int
}

// PlanRound computes how many matches and walkovers reduce present
// competitors to Winners.
func PlanRound(present int) RoundPlan {
	if present <= 0 {
		return RoundPlan{}
	}
	winners := roundWinners(present)
	matches := present - winners
	if present == 1 {
		// lone competitor advances; winners of 0 would make matches 1
		matches = 0
		winners = 1
	}

	return RoundPlan{
		Present:   present,
		Winners:   winners,
		Matches:   matches,
		Walkovers: present - 2*matches,
	}
}
