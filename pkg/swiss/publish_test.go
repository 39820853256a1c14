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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// standings builds a tournament whose players have the given unaccelerated
// scores. Rank indexes follow the order of the scores.
func standings(scores ...tournament.Points) *tournament.Tournament {
	tour := &tournament.Tournament{Players: make([]tournament.Player, len(scores))}
	for i, score := range scores {
		tour.Players[i] = tournament.Player{ID: i, RankIndex: i, Score: score}
	}

	return tour
}

// permutations calls fn with every ordering of the given pairings.
func permutations(pairings []tournament.Pairing, fn func([]tournament.Pairing)) {
	var permute func(int)
	permute = func(k int) {
		if k == len(pairings) {
			fn(append([]tournament.Pairing(nil), pairings...))
			return
		}

		for i := k; i < len(pairings); i++ {
			pairings[k], pairings[i] = pairings[i], pairings[k]
			permute(k + 1)
			pairings[k], pairings[i] = pairings[i], pairings[k]
		}
	}

	permute(0)
}

func TestPublishedOrder(t *testing.T) {
	tour := standings(30, 30, 20, 20, 10, 10, 0)

	want := []tournament.Pairing{
		{White: 2, Black: 0}, // 3.0 - 2.0, top rank 0
		{White: 1, Black: 3}, // 3.0 - 2.0, top rank 1
		{White: 4, Black: 5}, // 1.0 - 1.0
		{White: 6, Black: 6}, // bye
	}

	permutations(slices.Clone(want), func(input []tournament.Pairing) {
		assert.Equal(t, want, Published(input, tour), "input order %v", input)
	})
}

func TestPublishedByesLast(t *testing.T) {
	tour := standings(40, 30, 20, 10, 0, 0)

	input := []tournament.Pairing{
		{White: 0, Black: 0},
		{White: 4, Black: 5},
		{White: 1, Black: 1},
		{White: 2, Black: 3},
	}

	got := Published(input, tour)
	assert.Equal(t, []tournament.Pairing{
		{White: 2, Black: 3},
		{White: 4, Black: 5},
		{White: 0, Black: 0},
		{White: 1, Black: 1},
	}, got)

	seenBye := false
	for _, pairing := range got {
		if pairing.IsBye() {
			seenBye = true
			continue
		}

		assert.False(t, seenBye, "non-bye %v published after a bye", pairing)
	}
}

func TestPublishedTieBreaks(t *testing.T) {
	t.Run("lower scorer", func(t *testing.T) {
		tour := standings(30, 30, 20, 10)

		// Equal top scores: the pairing with the better second player
		// comes first even though its top player is ranked lower.
		got := Published([]tournament.Pairing{
			{White: 0, Black: 3},
			{White: 2, Black: 1},
		}, tour)

		assert.Equal(t, []tournament.Pairing{
			{White: 2, Black: 1},
			{White: 0, Black: 3},
		}, got)
	})

	t.Run("top rank index", func(t *testing.T) {
		tour := standings(20, 20, 10, 10)

		got := Published([]tournament.Pairing{
			{White: 1, Black: 3},
			{White: 2, Black: 0},
		}, tour)

		assert.Equal(t, []tournament.Pairing{
			{White: 2, Black: 0},
			{White: 1, Black: 3},
		}, got)
	})

	t.Run("acceleration ignored", func(t *testing.T) {
		tour := standings(20, 10, 25, 0)
		tour.Players[1].Acceleration = 20

		// With acceleration player 2 would lead with 3.0 points.
		got := Published([]tournament.Pairing{
			{White: 1, Black: 0},
			{White: 2, Black: 3},
		}, tour)

		assert.Equal(t, []tournament.Pairing{
			{White: 2, Black: 3},
			{White: 1, Black: 0},
		}, got)
	})
}

func TestPublishedIdempotent(t *testing.T) {
	tour := standings(30, 25, 25, 20, 10, 10, 5, 0, 0)

	once := Published([]tournament.Pairing{
		{White: 8, Black: 8},
		{White: 3, Black: 4},
		{White: 0, Black: 2},
		{White: 7, Black: 5},
		{White: 1, Black: 6},
	}, tour)

	twice := Published(once, tour)
	assert.Equal(t, once, twice)
}

func TestPublishedDoesNotModifyInput(t *testing.T) {
	tour := standings(10, 20)
	input := []tournament.Pairing{{White: 0, Black: 0}, {White: 1, Black: 1}}

	_ = Published(input, tour)
	assert.Equal(t, []tournament.Pairing{{White: 0, Black: 0}, {White: 1, Black: 1}}, input)
}

func TestPublicationKeyCompare(t *testing.T) {
	tour := standings(30, 20, 20, 10)
	a := KeyOf(tournament.Pairing{White: 3, Black: 0}, tour)
	b := KeyOf(tournament.Pairing{White: 1, Black: 2}, tour)

	assert.Equal(t, PublicationKey{Top: 30, Bottom: 10, TopRank: 0}, a)
	assert.Equal(t, PublicationKey{Top: 20, Bottom: 20, TopRank: 1}, b)

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))

	bye := KeyOf(tournament.Pairing{White: 0, Black: 0}, tour)
	assert.True(t, bye.Bye)
	assert.Positive(t, bye.Compare(b))
}
