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
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/internal/util"
	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// config loads the configuration file named by the --config flag.
func config(cmd *cobra.Command) (*common.Config, error) {
	return common.LoadConfig(cmd.Flag("config").Value.String())
}

// system resolves the Swiss system a tournament is paired with, falling
// back to the configured one when the snapshot doesn't name any.
func system(tour *tournament.Tournament, config *common.Config) (swiss.System, error) {
	if tour.System == "" {
		return config.SwissSystem(), nil
	}

	return swiss.ParseSystem(tour.System)
}

// expand replaces every directory in paths by the snapshot files inside
// it, in natural order.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		var names []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			if _, err := tournament.FormatOf(entry.Name()); err == nil {
				names = append(names, entry.Name())
			}
		}

		slices.SortFunc(names, util.AlphanumCompare)
		logrus.WithFields(logrus.Fields{
			"directory": path,
			"snapshots": len(names),
		}).Trace("Expanded snapshot directory")

		for _, name := range names {
			files = append(files, filepath.Join(path, name))
		}
	}

	return files, nil
}

// load reads the given snapshot files concurrently. The tournaments are
// returned in the order of their files.
func load(cmd *cobra.Command, files []string) ([]*tournament.Tournament, error) {
	tours := make([]*tournament.Tournament, len(files))

	work := func() error {
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, file := range files {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				tour, err := tournament.Load(file)
				if err != nil {
					return err
				}

				tours[i] = tour
				return nil
			})
		}

		return g.Wait()
	}

	var err error
	if cmd.Flag("progress").Changed {
		err = util.Spin(fmt.Sprintf("Loading %d snapshots", len(files)), work)
	} else {
		err = work()
	}

	if err != nil {
		return nil, err
	}

	return tours, nil
}

// loadOne reads a single snapshot file.
func loadOne(cmd *cobra.Command, file string) (*tournament.Tournament, error) {
	tours, err := load(cmd, []string{file})
	if err != nil {
		return nil, err
	}

	return tours[0], nil
}

// label names a player for display.
func label(player *tournament.Player) string {
	if player.Name == "" {
		return fmt.Sprintf("Player %d", player.ID+1)
	}

	return player.Name
}
