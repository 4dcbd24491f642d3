/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// Generate runs AssignPairs for every division in roster order. The same
// shuffle is used for all divisions, so a seeded shuffle reproduces the
// whole bracket.
func Generate(divs Divisions, shuffle Shuffler) []PairingResult {
	if shuffle == nil {
		shuffle = NewSeededShuffler(0)
	}

	results := make([]PairingResult, 0, divs.Len())
	for _, key := range divs.keys {
		results = append(results, PairingResult{
			Division: key,
			Matches:  AssignPairs(divs.members[key], shuffle),
		})
	}

	return results
}

// DivisionSummary is the per-division head count shown before pairing.
type DivisionSummary struct {
	Division DivisionKey
	Plan     RoundPlan
}

// Summarize returns the round plan of every division that has at least one
// present competitor.
func Summarize(divs Divisions) []DivisionSummary {
	var out []DivisionSummary
	for _, key := range divs.keys {
		present := 0
		for i := range divs.members[key] {
			if divs.members[key][i].Present() {
				present++
			}
		}
		if present == 0 {
			continue
		}
		out = append(out, DivisionSummary{Division: key, Plan: PlanRound(present)})
	}

	return out
}
