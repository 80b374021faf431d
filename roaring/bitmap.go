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
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/doublemo/groaring/internal/bufpool"
	"github.com/doublemo/groaring/internal/wire"
)

// keyContainer pairs a container key with its container. Bitmap keeps these
// in a single slice sorted ascending by key rather than a map, so WriteTo
// can walk containers in key order without a separate sort pass, and so
// insertion can reuse a plain binary search instead of a sentinel lookup
// key (see SPEC_FULL.md's Design Notes on replacing _empty_container).
type keyContainer struct {
	key uint64
	c   *container
}

// Bitmap maps container keys — the high 48 bits of a uint64 value — to the
// container holding that value's low 16 bits, and emits the Pilosa Roaring
// wire format for everything inserted so far.
//
// A Bitmap is not safe for concurrent use: Add and WriteTo must not be
// called concurrently on the same instance. There is no internal lock,
// deliberately — a single-writer contract enforced by documentation rather
// than masked by a mutex.
type Bitmap struct {
	containers []keyContainer // sorted ascending by key

	warm          bool
	lastKey       uint64
	lastContainer *container

	logger  *zap.Logger
	bufPool *bufpool.Pool
}

// NewBitmap returns an empty Bitmap ready for Add calls.
func NewBitmap(opts ...Option) *Bitmap {
	b := &Bitmap{}
	for _, opt := range opts {
		opt(b)
	}
	if b.bufPool == nil {
		b.bufPool = bufpool.New()
	}
	return b
}

// Add inserts value into the Bitmap. Adding an already-present value is a
// no-op.
func (b *Bitmap) Add(value uint64) {
	key := value >> 16
	low := uint16(value & 0xFFFF)
	b.containerFor(key).add(low)
}

// Len returns the total number of distinct values across every container.
// It is not on the emit path; it exists for callers (such as the CLI) that
// want a cheap running count without a full WriteTo.
func (b *Bitmap) Len() int {
	total := 0
	for _, kc := range b.containers {
		total += kc.c.len()
	}
	return total
}

// ContainerCount returns the number of distinct container keys currently
// materialized. Combined with the fixed 8 KiB worst-case size of a Bitmap
// container, callers can use this as a conservative upper bound on the
// memory Add could still allocate (see cmd/groaring-encode's --max-memory
// guard).
func (b *Bitmap) ContainerCount() int {
	return len(b.containers)
}

// containerFor returns the container for key, creating it if this is the
// first insertion under that key. The last-touched container is cached by
// key so repeated insertions into the same container skip the binary
// search. The cache holds the container pointer directly rather than an
// index into the containers slice — containers are heap objects reached
// through a slice of pointers, so reordering the slice on insertion never
// invalidates a previously cached pointer, unlike an index which a
// subsequent insertion ahead of it would shift.
func (b *Bitmap) containerFor(key uint64) *container {
	if b.warm && b.lastKey == key {
		return b.lastContainer
	}

	idx := sort.Search(len(b.containers), func(i int) bool {
		return b.containers[i].key >= key
	})

	var c *container
	if idx < len(b.containers) && b.containers[idx].key == key {
		c = b.containers[idx].c
	} else {
		c = newContainer()
		b.containers = append(b.containers, keyContainer{})
		copy(b.containers[idx+1:], b.containers[idx:])
		b.containers[idx] = keyContainer{key: key, c: c}
	}

	b.warm = true
	b.lastKey = key
	b.lastContainer = c
	return c
}

// Iterate returns a one-pass iterator over the Bitmap's values in
// ascending order.
func (b *Bitmap) Iterate() *Iterator {
	return &Iterator{containers: b.containers}
}

// Iterator produces a Bitmap's values in ascending order by interleaving
// each container's own iterator in key order.
type Iterator struct {
	containers []keyContainer
	idx        int
	cur        *containerIterator
}

// Next returns the next value in ascending order, or ok=false once the
// Bitmap is exhausted.
func (it *Iterator) Next() (uint64, bool) {
	for {
		if it.cur == nil {
			if it.idx >= len(it.containers) {
				return 0, false
			}
			ci := it.containers[it.idx].c.iterator()
			it.cur = &ci
		}

		low, hasNext := it.cur.next()
		if !hasNext {
			it.cur = nil
			it.idx++
			continue
		}
		return it.containers[it.idx].key<<16 | uint64(low), true
	}
}

// WriteTo serializes the Bitmap to the Pilosa Roaring wire format and
// writes it to w, returning the total number of bytes written. The shape
// matches io.WriterTo so a Bitmap can be used anywhere that interface is
// accepted.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	type meta struct {
		key  uint64
		typ  containerType
		card int
		size int
	}

	payload := b.bufPool.Get()
	defer b.bufPool.Put(payload)

	metas := make([]meta, 0, len(b.containers))
	for _, kc := range b.containers {
		card := kc.c.len()
		if card == 0 {
			// Invariant 6: a container with nothing in it is never part
			// of the emitted stream.
			continue
		}
		typ, size, err := kc.c.writeTo(payload)
		if err != nil {
			return 0, err
		}
		metas = append(metas, meta{kc.key, typ, card, size})
	}

	head := wire.NewWriter()
	head.WriteUint32(Cookie)
	head.WriteUint32(uint32(len(metas)))
	for _, m := range metas {
		head.WriteUint64(m.key)
		head.WriteUint16(uint16(m.typ))
		head.WriteUint16(uint16(m.card - 1))
	}

	offset := uint32(HeaderBaseSize + len(metas)*metaOffsetEntrySize)
	for _, m := range metas {
		head.WriteUint32(offset)
		offset += uint32(m.size)
	}

	var total int64
	n, err := w.Write(head.Bytes())
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(payload.Bytes())
	total += int64(n)
	if err != nil {
		return total, err
	}

	encodeCount.Inc()
	if b.logger != nil {
		b.logger.Debug("roaring: encoded bitmap",
			zap.Int("containers", len(metas)),
			zap.Int64("bytes", total),
		)
	}
	return total, nil
}
