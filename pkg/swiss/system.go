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
	"strings"

	"laptudirm.com/x/swiss/pkg/tournament"
)

var (
	ErrUnknownSystem  = errors.New("unknown swiss system")
	ErrNotImplemented = errors.New("pairing algorithm not available")
)

// System identifies one of the supported Swiss pairing systems.
type System int

const (
	Burstein System = iota

	systemN int = iota
)

// Info describes the parts of a tournament's handling that are specific
// to the Swiss system it is paired with.
type Info struct {
	Name string

	// Headers and Columns provide the specialty columns of the system's
	// checklist. Columns returns one value for every header.
	Headers []string
	Columns ColumnFunc

	// Pair computes the pairings of the next round.
	Pair func(tour *tournament.Tournament) ([]tournament.Pairing, error)
}

var infos = [systemN]Info{
	Burstein: {
		Name:    "burstein",
		Headers: []string{"SB", "Buch", "Med"},
		Columns: bursteinColumns,
		Pair:    unavailable,
	},
}

// Describe returns the Info of the given system. Only registered systems
// may be described: use ParseSystem to validate user input.
func Describe(system System) *Info {
	if system < 0 || int(system) >= systemN {
		panic(fmt.Sprintf("swiss: unregistered system %d", int(system)))
	}

	return &infos[system]
}

// Systems returns all the registered Swiss systems.
func Systems() []System {
	systems := make([]System, systemN)
	for i := range systems {
		systems[i] = System(i)
	}

	return systems
}

// ParseSystem finds the registered Swiss system with the given name.
func ParseSystem(name string) (System, error) {
	for _, system := range Systems() {
		if strings.EqualFold(Describe(system).Name, name) {
			return system, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

// String returns the name of the system.
func (system System) String() string {
	if system < 0 || int(system) >= systemN {
		return "?"
	}

	return infos[system].Name
}

// Checklist returns a Checklist with the system's specialty columns.
func (info *Info) Checklist(limits Limits) *Checklist {
	return &Checklist{
		Headers: info.Headers,
		Columns: info.Columns,
		Limits:  limits,
	}
}

func unavailable(*tournament.Tournament) ([]tournament.Pairing, error) {
	return nil, ErrNotImplemented
}
