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
	"go.uber.org/zap"

	"github.com/doublemo/groaring/internal/bufpool"
)

// Option configures a Bitmap at construction time. There is nothing to
// tune about the encoding itself — every Option here is about the ambient
// concerns around it (logging, allocation reuse), never about the wire
// format or the cost model.
type Option func(*Bitmap)

// WithLogger attaches a logger a Bitmap uses only for a Debug-level trace
// line on WriteTo completion (container count and bytes written). A nil logger, the default, disables the trace entirely rather
// than logging to a discard sink, since the check is on the hot path.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bitmap) {
		b.logger = logger
	}
}

// WithBufferPool lets several Bitmaps share one scratch-buffer pool instead
// of each keeping its own. Use this when encoding many bitmaps back to
// back from a single goroutine or a bounded worker pool.
func WithBufferPool(pool *bufpool.Pool) Option {
	return func(b *Bitmap) {
		b.bufPool = pool
	}
}
