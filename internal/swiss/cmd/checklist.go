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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/swiss"
)

func Checklist() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist { snapshot directory }...",
		Short: "Print the checklists of tournaments",
		Long: heredoc.Doc(`checklist prints a checklist for every given snapshot. A
			checklist has a row for every player, ordered by score and
			rank, containing their score, color history and preference,
			the values specific to the tournament's Swiss system, and
			their opponents in every round.

			Directories are replaced by the snapshots inside them, in
			natural order, so that round10 comes after round9.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config(cmd)
			if err != nil {
				return err
			}

			files, err := expand(args)
			if err != nil {
				return err
			}

			tours, err := load(cmd, files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.FgBlue)

			for i, tour := range tours {
				sys, err := system(tour, conf)
				if err != nil {
					return err
				}

				if len(tours) > 1 {
					_, _ = heading.Fprintf(out, "==> %s <==\n", files[i])
				}

				list := swiss.Describe(sys).Checklist(conf.Checklist)
				if err := list.Write(out, tour, tour.Standings()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
