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

import "sort"

// runInterval is one inclusive [start, last] run of consecutive values.
type runInterval struct {
	start, last uint16
}

// runCount returns the number of maximal consecutive runs in bits, which
// must already be sorted ascending and duplicate-free.
func runCount(bits []uint16) int {
	if len(bits) == 0 {
		return 0
	}
	count := 1
	last := bits[0]
	for _, b := range bits[1:] {
		if b != last+1 {
			count++
		}
		last = b
	}
	return count
}

// toRuns collapses bits into its maximal consecutive runs.
func toRuns(bits []uint16) []runInterval {
	if len(bits) == 0 {
		return nil
	}
	runs := make([]runInterval, 0, runCount(bits))
	start, last := bits[0], bits[0]
	for _, b := range bits[1:] {
		if b == last+1 {
			last = b
			continue
		}
		runs = append(runs, runInterval{start, last})
		start, last = b, b
	}
	runs = append(runs, runInterval{start, last})
	return runs
}

// costCandidate pairs a container type with its serialized payload size so
// the cheapest can be picked with a single stable sort.
type costCandidate struct {
	cost int
	typ  containerType
}

// chooseContainerType picks the cheapest legal encoding for a container
// with n values and r maximal runs. Ties are broken array-first, then
// bitmap, then rle, matching the order the candidates are listed in below.
func chooseContainerType(n, r int) containerType {
	arrCost := 2 * n
	bmpCost := 8 * BitmapWords

	if r > RunMaxSize {
		if arrCost < bmpCost {
			return containerTypeArray
		}
		return containerTypeBitmap
	}

	rleCost := 2 + 4*r
	candidates := []costCandidate{
		{arrCost, containerTypeArray},
		{bmpCost, containerTypeBitmap},
		{rleCost, containerTypeRLE},
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].cost < candidates[j].cost
	})
	return candidates[0].typ
}
