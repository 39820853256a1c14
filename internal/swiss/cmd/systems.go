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
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/swiss"
)

func Systems() *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "Lists the supported Swiss systems",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = color.New(color.FgGreen).Fprint(out, "Swiss Systems")
			fmt.Fprint(out, ":\n\n")

			for _, system := range swiss.Systems() {
				info := swiss.Describe(system)
				name := color.BlueString("%s", info.Name) + ":"
				fmt.Fprintf(out, "- %-20s %s\n", name, strings.Join(info.Headers, " "))
			}

			return nil
		},
	}
}
