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

import "fmt"

// Color represents the color of the pieces a player had in a game, or the
// color a player would like to have in the next one.
type Color int

const (
	None Color = iota
	White
	Black
)

// ParseColor parses the string representation of a Color.
func ParseColor(str string) (Color, error) {
	switch str {
	case "white", "w", "W":
		return White, nil
	case "black", "b", "B":
		return Black, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("parse color: invalid color %q", str)
	}
}

// Opposite returns the other color. None is its own opposite.
func (color Color) Opposite() Color {
	switch color {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

// String returns a string representation of the given Color.
func (color Color) String() string {
	switch color {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Match is a player's entry for a single round.
type Match struct {
	// Opponent is the index of the opposing player. It is only meaningful
	// if the game was played.
	Opponent int

	// Color is the color the player had. It is only meaningful if the
	// game was played.
	Color Color

	// GameWasPlayed is false for byes and otherwise unplayed rounds.
	GameWasPlayed bool

	// Points is the score the player received for the round.
	Points Points
}

// Player is a participant of a Tournament along with the attributes the
// pairing engine computed for them before the current round.
type Player struct {
	ID        int // index of the player, displayed 1-based
	RankIndex int // 0-based standing position, lower is better

	Name   string
	Rating int

	// Score is the player's score without acceleration.
	Score Points

	// Acceleration is the bonus added to Score for ranking purposes in
	// accelerated rounds.
	Acceleration Points

	ColorPreference         Color
	AbsoluteColorPreference bool
	StrongColorPreference   bool

	Matches []Match
}

// ScoreWithAcceleration returns the player's score including the bonus
// of any acceleration applied in the current round.
func (player *Player) ScoreWithAcceleration() Points {
	return player.Score + player.Acceleration
}
