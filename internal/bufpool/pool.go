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

// Package bufpool recycles the scratch wire.Writer a Bitmap.WriteTo call
// uses to stage container payloads, so a caller encoding many bitmaps in a
// row doesn't pay a fresh allocation on every call.
package bufpool

import (
	"sync"

	"github.com/doublemo/groaring/internal/wire"
)

// Pool is a sync.Pool of *wire.Writer. The zero value is not usable; use New.
type Pool struct {
	p sync.Pool
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{
		p: sync.Pool{
			New: func() interface{} { return wire.NewWriter() },
		},
	}
}

// Get returns a Writer with no prior content.
func (pl *Pool) Get() *wire.Writer {
	w := pl.p.Get().(*wire.Writer)
	w.Reset()
	return w
}

// Put returns w to the pool for reuse. Callers must not use w after Put.
func (pl *Pool) Put(w *wire.Writer) {
	pl.p.Put(w)
}
