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
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

var chunkPattern = regexp.MustCompile(`\d+|\D+`)

// AlphanumCompare compares two strings in natural order, so that "r2"
// sorts before "r10". Runs of digits are compared by their value and
// everything else byte-wise. It can be used with slices.SortFunc.
func AlphanumCompare(a, b string) int {
	chunksA := chunkPattern.FindAllString(a, -1)
	chunksB := chunkPattern.FindAllString(b, -1)

	for i := range min(len(chunksA), len(chunksB)) {
		if c := compareChunks(chunksA[i], chunksB[i]); c != 0 {
			return c
		}
	}

	if c := cmp.Compare(len(chunksA), len(chunksB)); c != 0 {
		return c
	}

	// Equal up to leading zeros.
	return strings.Compare(a, b)
}

func compareChunks(a, b string) int {
	x, errA := strconv.ParseUint(a, 10, 64)
	y, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil && x != y {
		return cmp.Compare(x, y)
	}

	return strings.Compare(a, b)
}
