// Copyright 2017 The Nakama Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCount(t *testing.T) {
	cases := []struct {
		name string
		bits []uint16
		want int
	}{
		{"empty", nil, 0},
		{"single", []uint16{5}, 1},
		{"one run", []uint16{0, 1, 2, 3}, 1},
		{"two runs", []uint16{0, 1, 5, 6, 7}, 2},
		{"all singletons", []uint16{0, 2, 4, 6}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, runCount(c.bits))
		})
	}
}

func TestToRuns(t *testing.T) {
	runs := toRuns([]uint16{0, 1, 2, 5, 6, 10})
	require.Len(t, runs, 3)
	assert.Equal(t, runInterval{0, 2}, runs[0])
	assert.Equal(t, runInterval{5, 6}, runs[1])
	assert.Equal(t, runInterval{10, 10}, runs[2])
}

func TestChooseContainerTypeCostMinimal(t *testing.T) {
	cases := []struct {
		name string
		n, r int
		want containerType
	}{
		// Single run of 4096 values: rle_cost = 6, beats array (8192) and bitmap (8192).
		{"single long run", 4096, 1, containerTypeRLE},
		// Sparse values with no runs: array cheapest.
		{"sparse", 10, 10, containerTypeArray},
		// Dense, no runs, over RunMaxSize: falls back to array-vs-bitmap only.
		{"dense no runs over limit", 5000, 5000, containerTypeBitmap},
		// Tie between array and bitmap cost (both 8192B, rle costlier at
		// 2+4*2048=8194B) resolves to array per the stable tie-break order.
		{"array bitmap tie", 4096, 2048, containerTypeArray},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, chooseContainerType(c.n, c.r))
		})
	}
}

func TestChooseContainerTypeMinimality(t *testing.T) {
	// For every n, r pair the chosen type's cost must be <= every other
	// legal alternative's cost (property from SPEC_FULL.md §11).
	for n := 1; n <= 200; n += 7 {
		for r := 1; r <= n; r += 5 {
			typ := chooseContainerType(n, r)
			arrCost := 2 * n
			bmpCost := 8 * BitmapWords
			chosen := map[containerType]int{
				containerTypeArray:  arrCost,
				containerTypeBitmap: bmpCost,
			}
			if r <= RunMaxSize {
				chosen[containerTypeRLE] = 2 + 4*r
			}
			for other, cost := range chosen {
				if other == typ {
					continue
				}
				assert.LessOrEqualf(t, chosen[typ], cost, "n=%d r=%d chose %v over cheaper %v", n, r, typ, other)
			}
		}
	}
}
