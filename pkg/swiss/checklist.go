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
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"laptudirm.com/x/swiss/pkg/tournament"
)

var (
	ErrTooLarge    = errors.New("checklist: tournament too large")
	ErrOutOfMemory = errors.New("checklist: not enough memory")
)

// maxCellLength is the longest value a checklist column can hold.
const maxCellLength = math.MaxInt32

// ColumnFunc provides the values of a Swiss system's specialty columns for
// the given player.
type ColumnFunc func(tour *tournament.Tournament, player *tournament.Player) []string

// Limits bounds the resources used to build a checklist.
type Limits struct {
	// MaxBytes is the size of the largest checklist that may be built.
	// Zero selects the default limit.
	MaxBytes int `yaml:"max-bytes"`
}

var DefaultLimits = Limits{MaxBytes: 256 << 20}

// Checklist produces the checklist file of a tournament: one row for every
// player containing their score, color history, color preference, the
// values specific to the Swiss system used, and their opponents.
type Checklist struct {
	Headers []string
	Columns ColumnFunc
	Limits  Limits
}

// BuildChecklist builds the checklist of the given players using the
// default limits. See Checklist.Build.
func BuildChecklist(headers []string, columns ColumnFunc, tour *tournament.Tournament, ordered []*tournament.Player) (string, error) {
	list := Checklist{Headers: headers, Columns: columns, Limits: DefaultLimits}
	return list.Build(tour, ordered)
}

// WriteChecklist writes the checklist of the given players to w using the
// default limits. See Checklist.Write.
func WriteChecklist(w io.Writer, headers []string, columns ColumnFunc, tour *tournament.Tournament, ordered []*tournament.Player) error {
	list := Checklist{Headers: headers, Columns: columns, Limits: DefaultLimits}
	return list.Write(w, tour, ordered)
}

// Write writes the checklist to w. If the checklist can't be built, an
// error message is written in its place. Either way the output is
// terminated by blank lines. Only errors from w are returned.
func (list *Checklist) Write(w io.Writer, tour *tournament.Tournament, ordered []*tournament.Player) error {
	table, err := list.Build(tour, ordered)
	if err != nil {
		table = failureMessage(err)
	}

	_, err = io.WriteString(w, table+"\n\n\n")
	return err
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return "Error: The build does not support checklists for tournaments this large."
	case errors.Is(err, ErrOutOfMemory):
		return "Error: There was not enough memory to construct the checklist."
	default:
		return "Error: " + err.Error()
	}
}

// Build builds the checklist table for the players in the given order.
// An extra line break is added between score groups, which are runs of
// consecutive players with the same accelerated score.
func (list *Checklist) Build(tour *tournament.Tournament, ordered []*tournament.Player) (string, error) {
	if tour.PlayedRounds >= maxCellLength {
		return "", ErrTooLarge
	}

	if err := list.preflight(tour.PlayedRounds, len(ordered)); err != nil {
		return "", err
	}

	header := list.header(tour)
	rows := make([][]string, len(ordered))
	for i, player := range ordered {
		rows[i] = list.row(tour, player)
	}

	// Compute the column widths.
	widths := make([]int, len(header))
	if err := updateWidths(widths, header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := updateWidths(widths, row); err != nil {
			return "", err
		}
	}

	size, err := list.size(widths, ordered)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(size)

	builder.WriteByte('\n')
	writeRow(&builder, header, widths)

	var previous *tournament.Player
	for i, player := range ordered {
		builder.WriteByte('\n')
		if previous == nil || previous.ScoreWithAcceleration() != player.ScoreWithAcceleration() {
			builder.WriteByte('\n')
		}

		writeRow(&builder, rows[i], widths)
		previous = player
	}

	return builder.String(), nil
}

// budget returns the number of bytes a checklist may use. A zero limit
// means the default one.
func (limits Limits) budget() int {
	if limits.MaxBytes <= 0 {
		return DefaultLimits.MaxBytes
	}

	return limits.MaxBytes
}

// cellCost is the least memory a single checklist cell takes up: the
// string header holding it and the tab following it.
const cellCost = 16 + 1

// preflight estimates the memory needed for the header and rows of a
// checklist with the given number of rounds and players, and checks it
// against the configured limits before any of it is allocated.
func (list *Checklist) preflight(rounds, players int) error {
	limit := list.Limits.budget()

	cells := 5 + len(list.Headers)
	if rounds > limit-cells {
		return ErrOutOfMemory
	}
	cells += rounds

	// The header and a row for every player.
	lines := players + 1
	if cells > limit/cellCost/lines {
		return ErrOutOfMemory
	}

	// The header also holds a dash and a round label of at least two
	// bytes for every round.
	if lines*cells*cellCost > limit-3*rounds {
		return ErrOutOfMemory
	}

	return nil
}

// size computes an upper bound of the length of the checklist, and checks
// it against the configured limits.
func (list *Checklist) size(widths []int, ordered []*tournament.Player) (int, error) {
	limit := list.Limits.budget()

	line := 0
	for _, width := range widths {
		if line > limit-width-1 {
			return 0, ErrOutOfMemory
		}
		line += width + 1 // trailing tab
	}

	// A leading line break, the header, and at most two line breaks plus
	// a line for every player.
	lines := len(ordered) + 1
	if line+2 > (limit-1)/lines {
		return 0, ErrOutOfMemory
	}

	return 1 + lines*(line+2), nil
}

// header constructs the header row of the checklist.
func (list *Checklist) header(tour *tournament.Tournament) []string {
	header := make([]string, 0, 5+len(list.Headers)+tour.PlayedRounds)
	header = append(header,
		"ID",
		"Pts",
		strings.Repeat("-", tour.PlayedRounds+1),
		"Pref",
	)

	header = append(header, list.Headers...)
	header = append(header, "")

	for round := 1; round <= tour.PlayedRounds; round++ {
		header = append(header, "R"+strconv.Itoa(round))
	}

	return header
}

// row constructs the checklist row of the given player.
func (list *Checklist) row(tour *tournament.Tournament, player *tournament.Player) []string {
	var values []string
	if list.Columns != nil {
		values = list.Columns(tour, player)
	}

	if len(values) != len(list.Headers) {
		panic(fmt.Sprintf(
			"checklist: %d specialty values for %d specialty headers",
			len(values), len(list.Headers),
		))
	}

	var colors strings.Builder
	for _, match := range player.Matches {
		if !match.GameWasPlayed {
			continue
		}

		if match.Color == tournament.White {
			colors.WriteByte('W')
		} else {
			colors.WriteByte('B')
		}
	}

	row := make([]string, 0, 5+len(values)+tour.PlayedRounds)
	row = append(row,
		strconv.Itoa(player.ID+1),
		player.ScoreWithAcceleration().String(),
		colors.String(),
		preferenceMark(player),
	)

	row = append(row, values...)
	row = append(row, "")

	for round := 0; round < tour.PlayedRounds; round++ {
		match := player.Matches[round]
		if match.GameWasPlayed {
			row = append(row, strconv.Itoa(match.Opponent+1))
		} else {
			row = append(row, "")
		}
	}

	return row
}

// preferenceMark annotates a player's color preference: upper case for
// absolute, parenthesized for strong, lower case for mild, and A when the
// player has no preference.
func preferenceMark(player *tournament.Player) string {
	white := player.ColorPreference == tournament.White

	switch {
	case player.AbsoluteColorPreference:
		if white {
			return "W "
		}
		return "B "
	case player.StrongColorPreference:
		if white {
			return "(W)"
		}
		return "(B)"
	case player.ColorPreference == tournament.None:
		return "A "
	case white:
		return "w "
	default:
		return "b "
	}
}

// updateWidths makes the column widths large enough for the given row.
func updateWidths(widths []int, row []string) error {
	if len(row) != len(widths) {
		panic(fmt.Sprintf("checklist: row has %d columns, expected %d", len(row), len(widths)))
	}

	for i, cell := range row {
		if len(cell) > maxCellLength {
			return ErrTooLarge
		}

		widths[i] = max(widths[i], len(cell))
	}

	return nil
}

// writeRow writes the given header or row right aligned to the column
// widths, following every value with a tab. Widths are in bytes.
func writeRow(builder *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		builder.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		builder.WriteString(cell)
		builder.WriteByte('\t')
	}
}
