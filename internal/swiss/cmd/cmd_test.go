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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/swiss"
)

const roundOne = `
name: Club Open
system: burstein
rounds: 1
players:
  - name: Alice
    rounds:
      - { opponent: 2, color: white, result: 1 }
  - name: Bob
    rounds:
      - { opponent: 1, color: black, result: 0 }
  - name: Carol
    rounds:
      - { opponent: 4, color: black, result: 0.5 }
  - name: Dave
    rounds:
      - { opponent: 3, color: white, result: 0.5 }
pairings:
  - { white: 2, black: 3 }
  - { white: 4, black: 1 }
`

func init() {
	color.NoColor = true
}

// write stores a snapshot in the given directory.
func write(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// run executes swiss with the given arguments, and no configuration file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

func board(n int, white, black string) string {
	return fmt.Sprintf("%3d  %-28s  -  %s\n", n, white, black)
}

func TestPairings(t *testing.T) {
	snapshot := write(t, t.TempDir(), "round1.yaml", roundOne)

	out, err := run(t, "pairings", snapshot)
	require.NoError(t, err)
	assert.Equal(t,
		"Club Open: Round 2 (burstein)\n\n"+
			board(1, "Dave (0.5)", "Alice (1.0)")+
			board(2, "Bob (0.0)", "Carol (0.5)"),
		out,
	)

	out, err = run(t, "pairings", "--allocate", snapshot)
	require.NoError(t, err)
	assert.Contains(t, out, board(1, "Alice (1.0)", "Dave (0.5)"))
	assert.Contains(t, out, board(2, "Carol (0.5)", "Bob (0.0)"))
}

func TestPairingsBye(t *testing.T) {
	data := strings.Replace(roundOne, "{ white: 2, black: 3 }", "{ white: 2 }", 1)
	snapshot := write(t, t.TempDir(), "round1.yaml", data)

	out, err := run(t, "pairings", snapshot)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, fmt.Sprintf("%3d  %-28s  -  BYE\n", 2, "Bob (0.0)")))
}

func TestPairingsWithoutPairings(t *testing.T) {
	data, _, _ := strings.Cut(roundOne, "pairings:")
	snapshot := write(t, t.TempDir(), "round1.yaml", data)

	_, err := run(t, "pairings", snapshot)
	assert.ErrorIs(t, err, swiss.ErrNotImplemented)
}

func TestChecklistCommand(t *testing.T) {
	snapshot := write(t, t.TempDir(), "round1.yaml", roundOne)

	out, err := run(t, "checklist", snapshot)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\nID\tPts\t--\tPref\t  SB\tBuch\tMed\t\tR1\t\n"), out)
	assert.True(t, strings.HasSuffix(out, "\n\n\n"))
	assert.NotContains(t, out, "==>")

	// Players are listed by score and then by rank.
	rows := []string{"\n 1\t1.0\t", "\n 3\t0.5\t", "\n 4\t0.5\t", "\n 2\t0.0\t"}
	last := -1
	for _, row := range rows {
		i := strings.Index(out, row)
		require.NotEqual(t, -1, i, row)
		assert.Greater(t, i, last, row)
		last = i
	}
}

func TestChecklistDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"round10.yaml", "round2.yaml", "round1.yaml"} {
		write(t, dir, name, roundOne)
	}
	write(t, dir, "notes.txt", "not a snapshot")

	out, err := run(t, "checklist", dir)
	require.NoError(t, err)

	first := strings.Index(out, "==> "+filepath.Join(dir, "round1.yaml")+" <==")
	second := strings.Index(out, "==> "+filepath.Join(dir, "round2.yaml")+" <==")
	third := strings.Index(out, "==> "+filepath.Join(dir, "round10.yaml")+" <==")

	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.NotContains(t, out, "notes.txt")
}

func TestChecklistUsesConfiguration(t *testing.T) {
	dir := t.TempDir()
	data := strings.Replace(roundOne, "system: burstein\n", "", 1)
	snapshot := write(t, dir, "round1.yaml", data)
	config := write(t, dir, "config.yaml", "system: burstein\nchecklist:\n  max-bytes: 64\n")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetArgs([]string{"checklist", "--config", config, snapshot})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Error: There was not enough memory to construct the checklist.\n\n\n", out.String())

	write(t, dir, "config.yaml", "system: round-robin\n")
	root = Root()
	root.SetOut(&out)
	root.SetArgs([]string{"checklist", "--config", config, snapshot})
	assert.ErrorIs(t, root.Execute(), common.ErrInvalidConfig)
}

func TestChecklistErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "checklist", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	data := strings.Replace(roundOne, "system: burstein", "system: dutch", 1)
	snapshot := write(t, dir, "dutch.yaml", data)
	_, err = run(t, "checklist", snapshot)
	assert.ErrorIs(t, err, swiss.ErrUnknownSystem)

	_, err = run(t, "checklist")
	assert.Error(t, err)
}

func TestColors(t *testing.T) {
	snapshot := write(t, t.TempDir(), "round1.yaml", roundOne)

	out, err := run(t, "colors", snapshot, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Alice  white\nBob    black\n", out)

	out, err = run(t, "colors", snapshot, "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "Alice  none\nDave   none\n", out)

	for _, number := range []string{"0", "5", "two"} {
		_, err = run(t, "colors", snapshot, "1", number)
		assert.Error(t, err, number)
	}
}

func TestSystems(t *testing.T) {
	out, err := run(t, "systems")
	require.NoError(t, err)
	assert.Contains(t, out, "Swiss Systems:\n\n")
	assert.Contains(t, out, "burstein:")
	assert.Contains(t, out, "SB Buch Med\n")
}

func TestProgress(t *testing.T) {
	snapshot := write(t, t.TempDir(), "round1.yaml", roundOne)

	out, err := run(t, "--progress", "pairings", snapshot)
	require.NoError(t, err)
	assert.Contains(t, out, board(1, "Dave (0.5)", "Alice (1.0)"))
}
