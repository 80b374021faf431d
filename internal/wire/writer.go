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

// Package wire is a small append-only little-endian byte writer, the
// serialization primitive the roaring package builds the Pilosa wire
// format on top of. It never seeks and never reads back what it wrote.
package wire

// Writer accumulates bytes for an on-disk format that is written once and
// never mutated in place. Unlike a fixed-size scratch buffer indexed by a
// read/write cursor, it grows as needed via append, since the final size of
// a container payload or a full bitmap stream isn't known until encoding is
// complete.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Reset empties the writer so its backing array can be reused.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated bytes. The returned slice is only valid
// until the next call to Reset or a Write method.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Write appends p verbatim, satisfying io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteUint16 encodes a little-endian uint16.
func (w *Writer) WriteUint16(n uint16) {
	w.buf = append(w.buf, byte(n), byte(n>>8))
}

// WriteUint32 encodes a little-endian uint32.
func (w *Writer) WriteUint32(n uint32) {
	w.buf = append(w.buf, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
}

// WriteUint64 encodes a little-endian uint64.
func (w *Writer) WriteUint64(n uint64) {
	w.buf = append(w.buf,
		byte(n), byte(n>>8), byte(n>>16), byte(n>>24),
		byte(n>>32), byte(n>>40), byte(n>>48), byte(n>>56),
	)
}
