/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"math/rand"
	"time"
)

// Shuffler returns a permutation of its input. It may permute in place.
type Shuffler func([]*Competitor) []*Competitor

// NewRandomShuffler returns a Fisher-Yates shuffler drawing from rng. Two
// shufflers built from identically seeded generators produce the same
// sequence of permutations.
func NewRandomShuffler(rng *rand.Rand) Shuffler {
	return func(cs []*Competitor) []*Competitor {
		for i := len(cs) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			cs[i], cs[j] = cs[j], cs[i]
		}
		return cs
	}
}

// NewSeededShuffler is NewRandomShuffler over a fresh generator. A seed of
// 0 picks one from the clock.
func NewSeededShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandomShuffler(rand.New(rand.NewSource(seed)))
}

// IdentityShuffle leaves the order untouched.
func IdentityShuffle(cs []*Competitor) []*Competitor {
	return cs
}
