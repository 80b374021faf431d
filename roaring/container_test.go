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

	"github.com/doublemo/groaring/internal/wire"
)

func collect(c *container) []uint16 {
	var out []uint16
	it := c.iterator()
	for {
		v, ok := it.next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestContainerAddIdempotent(t *testing.T) {
	c := newContainer()
	c.add(5)
	c.add(5)
	c.add(5)
	assert.Equal(t, 1, c.len())
	assert.Equal(t, []uint16{5}, collect(c))
}

func TestContainerAddSortedOrder(t *testing.T) {
	c := newContainer()
	for _, v := range []uint16{9, 1, 5, 3, 7} {
		c.add(v)
	}
	assert.Equal(t, []uint16{1, 3, 5, 7, 9}, collect(c))
	assert.Equal(t, 5, c.len())
}

func TestContainerPromotesAtArrayMaxSize(t *testing.T) {
	c := newContainer()
	for i := 0; i < ArrayMaxSize; i++ {
		c.add(uint16(i))
	}
	assert.Equal(t, containerTypeBitmap, c.typ, "container should have promoted to bitmap")
	assert.Equal(t, ArrayMaxSize, c.len())
	assert.Equal(t, ArrayMaxSize, len(collect(c)))
}

func TestContainerInsertionOrderInvariance(t *testing.T) {
	values := make([]uint16, ArrayMaxSize+1)
	for i := range values {
		values[i] = uint16(i)
	}

	forward := newContainer()
	for _, v := range values {
		forward.add(v)
	}

	reverse := newContainer()
	for i := len(values) - 1; i >= 0; i-- {
		reverse.add(values[i])
	}

	wf := wire.NewWriter()
	_, _, err := forward.writeTo(wf)
	require.NoError(t, err)

	wr := wire.NewWriter()
	_, _, err = reverse.writeTo(wr)
	require.NoError(t, err)

	assert.Equal(t, wf.Bytes(), wr.Bytes())
}

func TestContainerWriteToChoosesRLEForSingleRun(t *testing.T) {
	c := newContainer()
	for i := 0; i < ArrayMaxSize; i++ {
		c.add(uint16(i))
	}

	w := wire.NewWriter()
	typ, n, err := c.writeTo(w)
	require.NoError(t, err)
	assert.Equal(t, containerTypeRLE, typ)
	assert.Equal(t, 6, n) // u16 run count + one (start,last) pair
	assert.Equal(t, []byte{1, 0, 0, 0, 0xff, 0x0f}, w.Bytes())
}

func TestContainerWriteToEmptyIsError(t *testing.T) {
	c := newContainer()
	w := wire.NewWriter()
	_, _, err := c.writeTo(w)
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestContainerWriteToArrayEncoding(t *testing.T) {
	c := newContainer()
	for _, v := range []uint16{1, 2, 100, 65535} {
		c.add(v)
	}

	w := wire.NewWriter()
	typ, n, err := c.writeTo(w)
	require.NoError(t, err)
	assert.Equal(t, containerTypeArray, typ)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{1, 0, 2, 0, 100, 0, 0xff, 0xff}, w.Bytes())
}

func TestContainerWriteToBitmapEncoding(t *testing.T) {
	// A contiguous range would pick RLE (one run); alternating values with
	// no runs and a cardinality too large for array to stay cheapest forces
	// bitmap selection instead.
	c := newContainer()
	for i := 0; i < 5000; i++ {
		c.add(uint16(i * 2))
	}
	w := wire.NewWriter()
	typ, n, err := c.writeTo(w)
	require.NoError(t, err)
	assert.Equal(t, containerTypeBitmap, typ)
	assert.Equal(t, 8*BitmapWords, n)
}
