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

package tournament

import (
	"cmp"
	"slices"
)

// Tournament is a read-only snapshot of a Swiss tournament between rounds.
// Every player has exactly PlayedRounds matches, and a player's ID is its
// index in Players.
type Tournament struct {
	Name string

	// System is the name of the Swiss system the tournament is paired
	// with. It is validated by the swiss package.
	System string

	Players      []Player
	PlayedRounds int

	// Pairings are the pairings of the upcoming round, if known.
	Pairings []Pairing
}

// Player returns the player with the given index.
func (tour *Tournament) Player(index int) *Player {
	return &tour.Players[index]
}

// Pairing is a pairing of two players for a round. A pairing of a player
// with themselves is a bye.
type Pairing struct {
	White, Black int
}

// IsBye reports whether the pairing is a bye.
func (pairing Pairing) IsBye() bool {
	return pairing.White == pairing.Black
}

// UnacceleratedScoreRankLess reports whether player a stands strictly below
// player b, comparing unaccelerated scores first and rank indexes second.
func UnacceleratedScoreRankLess(a, b *Player) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}

	return a.RankIndex > b.RankIndex
}

// Higher returns the index of the better standing player of the pairing,
// followed by the index of the other one.
func (tour *Tournament) Higher(pairing Pairing) (higher, lower int) {
	if UnacceleratedScoreRankLess(tour.Player(pairing.White), tour.Player(pairing.Black)) {
		return pairing.Black, pairing.White
	}

	return pairing.White, pairing.Black
}

// Standings returns the players ordered by accelerated score, highest
// first, and then by rank index.
func (tour *Tournament) Standings() []*Player {
	players := make([]*Player, len(tour.Players))
	for i := range tour.Players {
		players[i] = &tour.Players[i]
	}

	slices.SortStableFunc(players, func(a, b *Player) int {
		if c := cmp.Compare(b.ScoreWithAcceleration(), a.ScoreWithAcceleration()); c != 0 {
			return c
		}

		return cmp.Compare(a.RankIndex, b.RankIndex)
	})

	return players
}
