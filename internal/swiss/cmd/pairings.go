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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func Pairings() *cobra.Command {
	command := &cobra.Command{
		Use:   "pairings snapshot",
		Short: "Print the pairings of the next round",
		Long: heredoc.Doc(`pairings prints the pairings of the snapshot's next round in
			the order they should be published: the boards are ordered
			by the score of their better placed player, then by the
			score of the other player, and then by the rank of the
			better placed player. Byes are printed last.

			If the snapshot doesn't contain any pairings, they are
			computed using the tournament's Swiss system.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config(cmd)
			if err != nil {
				return err
			}

			tour, err := loadOne(cmd, args[0])
			if err != nil {
				return err
			}

			sys, err := system(tour, conf)
			if err != nil {
				return err
			}

			pairings := tour.Pairings
			if len(pairings) == 0 {
				logrus.WithField("system", sys).Debug("Snapshot has no pairings, pairing round")
				if pairings, err = swiss.Describe(sys).Pair(tour); err != nil {
					return fmt.Errorf("pair round %d: %w", tour.PlayedRounds+1, err)
				}
			}

			allocate, _ := cmd.Flags().GetBool("allocate")
			if allocate {
				for i, pairing := range pairings {
					pairings[i] = swiss.AllocateColors(pairing, tour)
				}
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.FgGreen, color.Bold)
			_, _ = heading.Fprintf(out, "%s: Round %d (%s)\n\n", tour.Name, tour.PlayedRounds+1, sys)

			for board, pairing := range swiss.Published(pairings, tour) {
				white := tour.Player(pairing.White)
				if pairing.IsBye() {
					fmt.Fprintf(out, "%3d  %-28s  -  BYE\n", board+1, entry(white))
					continue
				}

				black := tour.Player(pairing.Black)
				fmt.Fprintf(out, "%3d  %-28s  -  %s\n", board+1, entry(white), entry(black))
			}

			return nil
		},
	}

	command.Flags().Bool("allocate", false, "Allocate the colors of every pairing")
	return command
}

// entry is a player's name followed by their score.
func entry(player *tournament.Player) string {
	return fmt.Sprintf("%s (%s)", label(player), player.Score)
}
