// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swiss

import (
	"cmp"
	"slices"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// PublicationKey holds everything that decides where a pairing appears
// when the pairings of a round are published.
type PublicationKey struct {
	Bye bool

	// Top and Bottom are the unaccelerated scores of the better and the
	// worse standing player of the pairing.
	Top, Bottom tournament.Points

	// TopRank is the rank index of the better standing player.
	TopRank int
}

// KeyOf computes the PublicationKey of the given pairing.
func KeyOf(pairing tournament.Pairing, tour *tournament.Tournament) PublicationKey {
	higher, lower := tour.Higher(pairing)

	return PublicationKey{
		Bye:     pairing.IsBye(),
		Top:     tour.Player(higher).Score,
		Bottom:  tour.Player(lower).Score,
		TopRank: tour.Player(higher).RankIndex,
	}
}

// Compare returns a negative number if a pairing with this key should be
// published before one with the other key, a positive number if after,
// and zero if the keys are equal.
func (key PublicationKey) Compare(other PublicationKey) int {
	// Primary: byes come last
	if key.Bye != other.Bye {
		if key.Bye {
			return +1
		}
		return -1
	}

	// Secondary: score of the better player DESC
	if c := cmp.Compare(other.Top, key.Top); c != 0 {
		return c
	}

	// Tertiary: score of the worse player DESC
	if c := cmp.Compare(other.Bottom, key.Bottom); c != 0 {
		return c
	}

	// Quaternary: rank of the better player ASC
	return cmp.Compare(key.TopRank, other.TopRank)
}

// SortPairings sorts the pairings in place according to the rules for
// ordering pairings when they are published. The sort is stable.
func SortPairings(pairings []tournament.Pairing, tour *tournament.Tournament) {
	slices.SortStableFunc(pairings, func(a, b tournament.Pairing) int {
		return KeyOf(a, tour).Compare(KeyOf(b, tour))
	})
}

// Published returns a copy of the pairings in publication order.
func Published(pairings []tournament.Pairing, tour *tournament.Tournament) []tournament.Pairing {
	ordered := slices.Clone(pairings)
	SortPairings(ordered, tour)
	return ordered
}
