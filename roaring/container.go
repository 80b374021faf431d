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
	"math/bits"
	"sort"

	"github.com/doublemo/groaring/internal/wire"
)

// container holds every low-16-bit value sharing one container key. It is a
// tagged variant, not an interface with multiple implementations: exactly
// one of array or bitmap is live at a time, and typ says which. A third
// encoding, run-length, is never a live representation — it is only ever
// chosen at writeTo time, when it turns out to serialize more cheaply than
// whichever live representation the container is currently holding.
type container struct {
	typ    containerType // containerTypeArray or containerTypeBitmap, never RLE
	array  []uint16      // sorted, duplicate-free; valid when typ == containerTypeArray
	bitmap []uint64      // BitmapWords words; valid when typ == containerTypeBitmap
	card   int
}

func newContainer() *container {
	return &container{typ: containerTypeArray}
}

// len returns the number of distinct values currently held.
func (c *container) len() int {
	return c.card
}

// add inserts low, doing nothing if it is already present. The array
// representation is promoted to a bitmap the moment a 4096th distinct value
// would be added, per ArrayMaxSize.
func (c *container) add(low uint16) {
	if c.typ == containerTypeBitmap {
		idx, mask := low/64, uint64(1)<<(low%64)
		if c.bitmap[idx]&mask != 0 {
			return
		}
		c.bitmap[idx] |= mask
		c.card++
		return
	}

	i := sort.Search(len(c.array), func(i int) bool { return c.array[i] >= low })
	if i < len(c.array) && c.array[i] == low {
		return
	}
	if len(c.array) == ArrayMaxSize-1 {
		c.promoteToBitmap()
		c.add(low)
		return
	}
	c.array = append(c.array, 0)
	copy(c.array[i+1:], c.array[i:])
	c.array[i] = low
	c.card++
}

// promoteToBitmap rewrites the live array representation into a bitmap one.
// Cardinality is unaffected — every array value survives the conversion.
func (c *container) promoteToBitmap() {
	words := make([]uint64, BitmapWords)
	for _, v := range c.array {
		words[v/64] |= uint64(1) << (v % 64)
	}
	c.typ = containerTypeBitmap
	c.bitmap = words
	c.array = nil
}

// writeTo picks the cheapest legal encoding for the container's current
// contents and appends its payload to w, returning the chosen type and the
// number of bytes written.
func (c *container) writeTo(w *wire.Writer) (containerType, int, error) {
	if c.card == 0 {
		return 0, 0, ErrEmptyContainer
	}

	bitValues := c.sortedValues()
	typ := chooseContainerType(len(bitValues), runCount(bitValues))
	start := w.Len()

	switch typ {
	case containerTypeArray:
		for _, v := range bitValues {
			w.WriteUint16(v)
		}
	case containerTypeBitmap:
		for _, word := range c.asBitmapWords() {
			w.WriteUint64(word)
		}
	case containerTypeRLE:
		runs := toRuns(bitValues)
		w.WriteUint16(uint16(len(runs)))
		for _, run := range runs {
			w.WriteUint16(run.start)
			w.WriteUint16(run.last)
		}
	default:
		return 0, 0, ErrInvalidContainerType
	}

	return typ, w.Len() - start, nil
}

// sortedValues materializes the container's values in ascending order,
// regardless of which live representation currently backs it.
func (c *container) sortedValues() []uint16 {
	values := make([]uint16, 0, c.card)
	it := c.iterator()
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}

// asBitmapWords returns the container's contents as BitmapWords uint64
// words, converting from the array representation if necessary. The
// conversion here is a scratch copy used only for serialization — it never
// mutates the live container.
func (c *container) asBitmapWords() []uint64 {
	if c.typ == containerTypeBitmap {
		return c.bitmap
	}
	words := make([]uint64, BitmapWords)
	for _, v := range c.array {
		words[v/64] |= uint64(1) << (v % 64)
	}
	return words
}

// containerIterator is a one-pass, non-restartable producer of a
// container's values in ascending order. It is an explicit state machine
// (an array index, or a word/bit cursor) rather than a goroutine, since the
// whole emit path only ever needs one pass.
type containerIterator struct {
	c       *container
	arrIdx  int
	wordIdx int
	bitIdx  uint
}

func (c *container) iterator() containerIterator {
	return containerIterator{c: c}
}

func (it *containerIterator) next() (uint16, bool) {
	if it.c.typ == containerTypeArray {
		if it.arrIdx >= len(it.c.array) {
			return 0, false
		}
		v := it.c.array[it.arrIdx]
		it.arrIdx++
		return v, true
	}

	for it.wordIdx < len(it.c.bitmap) {
		remaining := it.c.bitmap[it.wordIdx] >> it.bitIdx
		if remaining == 0 {
			it.wordIdx++
			it.bitIdx = 0
			continue
		}
		tz := uint(bits.TrailingZeros64(remaining))
		val := uint16(it.wordIdx*64) + uint16(it.bitIdx+tz)
		it.bitIdx += tz + 1
		if it.bitIdx >= 64 {
			it.wordIdx++
			it.bitIdx = 0
		}
		return val, true
	}
	return 0, false
}
