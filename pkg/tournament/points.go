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
	"fmt"
	"math"
	"strconv"
)

// Points is a fixed point score counting tenths of a game point, so
// Points(25) is two and a half points. Scores must compare exactly when
// splitting players into score groups.
type Points int

const (
	Loss Points = 0
	Draw Points = 5
	Win  Points = 10
)

// ParsePoints converts a decimal score like 2.5 into Points. Only values
// with at most one fractional digit are accepted.
func ParsePoints(value float64) (Points, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("parse points: %v is not a number", value)
	}

	tenths := value * 10
	rounded := math.Round(tenths)
	if math.Abs(tenths-rounded) > 1e-6 {
		return 0, fmt.Errorf("parse points: %v has more than one decimal", value)
	}

	if rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return 0, fmt.Errorf("parse points: %v is out of range", value)
	}

	return Points(rounded), nil
}

// String formats the score with exactly one fractional digit.
func (points Points) String() string {
	sign := ""
	if points < 0 {
		sign = "-"
		points = -points
	}

	return sign + strconv.Itoa(int(points/10)) + "." + strconv.Itoa(int(points%10))
}
