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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/tournament"
)

func TestParseSystem(t *testing.T) {
	for _, name := range []string{"burstein", "Burstein", "BURSTEIN"} {
		system, err := ParseSystem(name)
		require.NoError(t, err, name)
		assert.Equal(t, Burstein, system)
	}

	for _, name := range []string{"", "dutch", "burstein "} {
		_, err := ParseSystem(name)
		assert.ErrorIs(t, err, ErrUnknownSystem, name)
	}
}

func TestDescribe(t *testing.T) {
	info := Describe(Burstein)
	assert.Equal(t, "burstein", info.Name)
	assert.Equal(t, []string{"SB", "Buch", "Med"}, info.Headers)
	assert.NotNil(t, info.Columns)
	assert.Same(t, info, Describe(Burstein))

	assert.Panics(t, func() { Describe(System(7)) })
	assert.Panics(t, func() { Describe(System(-1)) })
}

func TestSystems(t *testing.T) {
	systems := Systems()
	require.Len(t, systems, systemN)

	for _, system := range systems {
		info := Describe(system)
		assert.Equal(t, info.Name, system.String())

		parsed, err := ParseSystem(system.String())
		require.NoError(t, err)
		assert.Equal(t, system, parsed)
	}

	assert.Equal(t, "?", System(7).String())
}

func TestPairNotImplemented(t *testing.T) {
	pairings, err := Describe(Burstein).Pair(&tournament.Tournament{})
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Nil(t, pairings)
}

func TestInfoChecklist(t *testing.T) {
	limits := Limits{MaxBytes: 1024}
	list := Describe(Burstein).Checklist(limits)

	assert.Equal(t, Describe(Burstein).Headers, list.Headers)
	assert.Equal(t, limits, list.Limits)
	assert.NotNil(t, list.Columns)
}
