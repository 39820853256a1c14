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
	"fmt"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// bursteinColumns provides the tiebreaks the Burstein system ranks score
// groups by: Sonneborn-Berger, Buchholz and Median Buchholz. Only played
// games count towards them.
func bursteinColumns(tour *tournament.Tournament, player *tournament.Player) []string {
	var buchholz, highest, lowest tournament.Points
	sonneborn := 0 // hundredths of a point
	games := 0

	for _, match := range player.Matches {
		if !match.GameWasPlayed {
			continue
		}

		score := tour.Player(match.Opponent).Score
		if games == 0 {
			highest, lowest = score, score
		}

		highest = max(highest, score)
		lowest = min(lowest, score)

		buchholz += score
		sonneborn += int(score) * int(match.Points)
		games++
	}

	median := buchholz
	if games >= 3 {
		median -= highest + lowest
	}

	return []string{
		fmt.Sprintf("%d.%02d", sonneborn/100, sonneborn%100),
		buchholz.String(),
		median.String(),
	}
}
