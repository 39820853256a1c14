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
	"iter"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// playedColors yields the colors the player had in the games they actually
// played, starting with the most recent one. Unplayed rounds are skipped.
func playedColors(player *tournament.Player) iter.Seq[tournament.Color] {
	return func(yield func(tournament.Color) bool) {
		for round := len(player.Matches) - 1; round >= 0; round-- {
			match := player.Matches[round]
			if !match.GameWasPlayed {
				continue
			}

			if !yield(match.Color) {
				return
			}
		}
	}
}

// FirstColorDifference finds the colors of the two players in the most
// recent game in which their colors differed. Games are matched up by
// recency among each player's played games, not by round number. A player
// whose history runs out before a difference is found gets None.
func FirstColorDifference(a, b *tournament.Player) (tournament.Color, tournament.Color) {
	nextA, stopA := iter.Pull(playedColors(a))
	defer stopA()

	nextB, stopB := iter.Pull(playedColors(b))
	defer stopB()

	for {
		colorA, okA := nextA()
		colorB, okB := nextB()

		if okA && okB && colorA == colorB {
			continue
		}

		if !okA {
			colorA = tournament.None
		}
		if !okB {
			colorB = tournament.None
		}

		return colorA, colorB
	}
}

// strength orders color preferences: absolute, strong, mild and none.
func strength(player *tournament.Player) int {
	switch {
	case player.ColorPreference == tournament.None:
		return 0
	case player.AbsoluteColorPreference:
		return 3
	case player.StrongColorPreference:
		return 2
	default:
		return 1
	}
}

// AllocateColors decides which player of the pairing gets White, using the
// following rules in order:
//
// 1. Grant both color preferences.
// 2. Grant the stronger color preference.
// 3. Alternate the colors relative to the most recent round in which the
// players had different colors.
// 4. Grant the color preference of the higher ranked player.
// 5. Give the higher ranked player White if their rank index is even, and
// Black otherwise.
//
// Byes are returned unchanged.
func AllocateColors(pairing tournament.Pairing, tour *tournament.Tournament) tournament.Pairing {
	if pairing.IsBye() {
		return pairing
	}

	higher, lower := tour.Higher(pairing)
	if allocate(tour.Player(higher), tour.Player(lower)) == tournament.White {
		return tournament.Pairing{White: higher, Black: lower}
	}

	return tournament.Pairing{White: lower, Black: higher}
}

// allocate returns the color the higher ranked player should get.
func allocate(higher, lower *tournament.Player) tournament.Color {
	hp, lp := higher.ColorPreference, lower.ColorPreference

	switch {
	case hp != tournament.None && hp != lp:
		return hp
	case hp == tournament.None && lp != tournament.None:
		return lp.Opposite()
	case hp != tournament.None:
		// Both players want the same color.
		if hs, ls := strength(higher), strength(lower); hs != ls {
			if hs > ls {
				return hp
			}
			return lp.Opposite()
		}
	}

	if hc, lc := FirstColorDifference(higher, lower); hc != tournament.None && lc != tournament.None {
		return hc.Opposite()
	}

	if hp != tournament.None {
		return hp
	}

	if higher.RankIndex%2 == 0 {
		return tournament.White
	}

	return tournament.Black
}
