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

package util

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerCharSet = 31

// Spin runs work while showing a spinner with the given message on the
// standard error. Nothing is shown when it isn't a terminal.
func Spin(message string, work func() error) error {
	s := spinner.New(
		spinner.CharSets[spinnerCharSet], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr),
		spinner.WithSuffix(" "+message),
	)

	s.Start()
	defer s.Stop()

	return work()
}
