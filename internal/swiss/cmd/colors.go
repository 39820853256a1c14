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

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func Colors() *cobra.Command {
	return &cobra.Command{
		Use:   "colors snapshot player player",
		Short: "Print the colors of the last round two players differed in",
		Args:  cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := loadOne(cmd, args[0])
			if err != nil {
				return err
			}

			a, err := player(tour, args[1])
			if err != nil {
				return err
			}

			b, err := player(tour, args[2])
			if err != nil {
				return err
			}

			colorA, colorB := swiss.FirstColorDifference(a, b)

			out := cmd.OutOrStdout()
			width := max(len(label(a)), len(label(b)))
			fmt.Fprintf(out, "%-*s  %s\n", width, label(a), colorA)
			fmt.Fprintf(out, "%-*s  %s\n", width, label(b), colorB)
			return nil
		},
	}
}

// player finds a player by their 1-based number.
func player(tour *tournament.Tournament, number string) (*tournament.Player, error) {
	id, err := strconv.Atoi(number)
	if err != nil {
		return nil, fmt.Errorf("invalid player number %q", number)
	}

	if id < 1 || id > len(tour.Players) {
		return nil, fmt.Errorf("player %d not in tournament of %d players", id, len(tour.Players))
	}

	return tour.Player(id - 1), nil
}
