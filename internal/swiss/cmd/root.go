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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "swiss",
		Short: "Inspect the pairings and standings of Swiss tournaments",
		Long: heredoc.Doc(`swiss reads snapshots of Swiss system tournaments, taken
			between two rounds, and reports on them: the pairings of the
			next round in publication order, the checklists used by
			arbiters to verify pairings, and the color histories of
			players.

			Snapshots are yaml or toml files. The default Swiss system and
			the checklist limits are read from the configuration file.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Swiss's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("config", common.ConfigFile, "Configuration File")
	root.PersistentFlags().Bool("progress", false, "Show Progress While Loading")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Pairings())
	root.AddCommand(Checklist())
	root.AddCommand(Colors())
	root.AddCommand(Systems())

	return root
}
