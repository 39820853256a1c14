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

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSnapshot = errors.New("invalid tournament snapshot")
	ErrUnknownFormat   = errors.New("unknown snapshot format")
)

// Format is an encoding a tournament snapshot can be stored in.
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatOf figures out the snapshot format from a file's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// String returns a string representation of the given Format.
func (format Format) String() string {
	switch format {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "?"
	}
}

// Load reads the tournament snapshot stored in the given file.
func Load(path string) (*Tournament, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tour, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"format":  format,
		"players": len(tour.Players),
		"rounds":  tour.PlayedRounds,
	}).Debug("Loaded tournament snapshot")

	return tour, nil
}

// Decode reads a tournament snapshot of the given format from r, and
// builds the Tournament it describes.
func Decode(r io.Reader, format Format) (*Tournament, error) {
	var snap snapshot

	switch format {
	case YAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&snap); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	case TOML:
		decoder := toml.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return snap.build()
}

// snapshot is the on-disk representation of a Tournament. Player and
// opponent numbers in a snapshot are 1-based.
type snapshot struct {
	Name     string            `yaml:"name" toml:"name"`
	System   string            `yaml:"system" toml:"system"`
	Rounds   int               `yaml:"rounds" toml:"rounds"`
	Players  []playerSnapshot  `yaml:"players" toml:"players"`
	Pairings []pairingSnapshot `yaml:"pairings" toml:"pairings"`
}

type playerSnapshot struct {
	Name         string             `yaml:"name" toml:"name"`
	Rating       int                `yaml:"rating" toml:"rating"`
	Rank         int                `yaml:"rank" toml:"rank"`
	Acceleration float64            `yaml:"acceleration" toml:"acceleration"`
	Preference   preferenceSnapshot `yaml:"preference" toml:"preference"`
	Rounds       []roundSnapshot    `yaml:"rounds" toml:"rounds"`
}

type preferenceSnapshot struct {
	Color    string `yaml:"color" toml:"color"`
	Strength string `yaml:"strength" toml:"strength"`
}

type roundSnapshot struct {
	Opponent int     `yaml:"opponent" toml:"opponent"`
	Color    string  `yaml:"color" toml:"color"`
	Bye      bool    `yaml:"bye" toml:"bye"`
	Result   float64 `yaml:"result" toml:"result"`
}

type pairingSnapshot struct {
	White int `yaml:"white" toml:"white"`
	Black int `yaml:"black" toml:"black"`
}

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, a...))
}

func (snap *snapshot) build() (*Tournament, error) {
	if snap.Rounds < 0 {
		return nil, invalid("negative round count %d", snap.Rounds)
	}

	tour := &Tournament{
		Name:         snap.Name,
		System:       snap.System,
		PlayedRounds: snap.Rounds,
		Players:      make([]Player, len(snap.Players)),
	}

	n := len(snap.Players)
	ranks := make(map[int]int, n)

	for i, entry := range snap.Players {
		player := &tour.Players[i]
		player.ID = i
		player.Name = entry.Name
		player.Rating = entry.Rating

		// Players without an explicit rank are ranked by their position.
		rank := entry.Rank
		if rank == 0 {
			rank = i + 1
		}
		if rank < 1 || rank > n {
			return nil, invalid("player %d: rank %d out of range", i+1, rank)
		}
		if other, found := ranks[rank]; found {
			return nil, invalid("players %d and %d share rank %d", other+1, i+1, rank)
		}
		ranks[rank] = i
		player.RankIndex = rank - 1

		acceleration, err := ParsePoints(entry.Acceleration)
		if err != nil || acceleration < 0 {
			return nil, invalid("player %d: bad acceleration %v", i+1, entry.Acceleration)
		}
		player.Acceleration = acceleration

		if err := entry.Preference.apply(player); err != nil {
			return nil, invalid("player %d: %v", i+1, err)
		}

		if len(entry.Rounds) != snap.Rounds {
			return nil, invalid(
				"player %d: has %d rounds, tournament has %d",
				i+1, len(entry.Rounds), snap.Rounds,
			)
		}

		player.Matches = make([]Match, len(entry.Rounds))
		for round, result := range entry.Rounds {
			match, err := result.match(i, n)
			if err != nil {
				return nil, invalid("player %d round %d: %v", i+1, round+1, err)
			}

			player.Matches[round] = match
			player.Score += match.Points
		}
	}

	if err := tour.checkOpponents(); err != nil {
		return nil, err
	}

	for _, entry := range snap.Pairings {
		white, black := entry.White, entry.Black
		if black == 0 {
			black = white
		}

		if white < 1 || white > n || black < 1 || black > n {
			return nil, invalid("pairing %d-%d: player out of range", entry.White, entry.Black)
		}

		tour.Pairings = append(tour.Pairings, Pairing{White: white - 1, Black: black - 1})
	}

	return tour, nil
}

// checkOpponents verifies that every played game is recorded symmetrically
// by both of its players.
func (tour *Tournament) checkOpponents() error {
	for i := range tour.Players {
		for round, match := range tour.Players[i].Matches {
			if !match.GameWasPlayed {
				continue
			}

			other := tour.Players[match.Opponent].Matches[round]
			if !other.GameWasPlayed || other.Opponent != i || other.Color != match.Color.Opposite() {
				return invalid(
					"round %d: game between players %d and %d is not recorded consistently",
					round+1, i+1, match.Opponent+1,
				)
			}
		}
	}

	return nil
}

func (result roundSnapshot) match(self, players int) (Match, error) {
	points, err := ParsePoints(result.Result)
	if err != nil {
		return Match{}, err
	}

	if points < Loss || points > Win {
		return Match{}, fmt.Errorf("result %v out of range", result.Result)
	}

	if result.Bye || result.Opponent == 0 {
		return Match{Points: points}, nil
	}

	opponent := result.Opponent - 1
	if opponent < 0 || opponent >= players || opponent == self {
		return Match{}, fmt.Errorf("invalid opponent %d", result.Opponent)
	}

	color, err := ParseColor(result.Color)
	if err != nil {
		return Match{}, err
	}

	if color == None {
		return Match{}, errors.New("played game has no color")
	}

	return Match{
		Opponent:      opponent,
		Color:         color,
		GameWasPlayed: true,
		Points:        points,
	}, nil
}

func (pref preferenceSnapshot) apply(player *Player) error {
	color, err := ParseColor(pref.Color)
	if err != nil {
		return err
	}

	player.ColorPreference = color

	switch pref.Strength {
	case "absolute":
		player.AbsoluteColorPreference = true
	case "strong":
		player.StrongColorPreference = true
	case "mild", "":
	default:
		return fmt.Errorf("invalid preference strength %q", pref.Strength)
	}

	if color == None && pref.Strength != "" && pref.Strength != "mild" {
		return fmt.Errorf("%s preference without a color", pref.Strength)
	}

	return nil
}
