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

import "go.uber.org/atomic"

// encodeCount tracks completed WriteTo calls across every Bitmap in the
// process. It exists only so a caller, such as the CLI's encode summary
// line, can report how many bitmaps the process has encoded without
// threading its own counter through every call site.
var encodeCount atomic.Int64

// EncodeCount returns the number of Bitmap.WriteTo calls that have
// completed successfully in this process so far.
func EncodeCount() int64 {
	return encodeCount.Load()
}
