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

import "errors"

// Sentinel errors for the two failure kinds that originate inside this
// package rather than from the caller's sink. Both indicate an invariant
// breach: neither should ever fire against code that only goes through
// Bitmap.Add and Bitmap.WriteTo, since this package never constructs an
// empty container or an out-of-range type tag itself.
var (
	// ErrInvalidContainerType is returned if a container's chosen encoding
	// tag somehow falls outside {array, bitmap, rle} at write time.
	ErrInvalidContainerType = errors.New("roaring: invalid container type")

	// ErrEmptyContainer is returned if writeTo is called on a container
	// with zero cardinality. Bitmap.WriteTo skips empty containers before
	// this can happen; seeing it means a container was reached directly.
	ErrEmptyContainer = errors.New("roaring: container has zero cardinality")

	// ErrBitmapAlloc is the resource-exhaustion sentinel a caller can wrap
	// their own pre-flight memory check in before a bulk Add loop that
	// would promote many containers to the 8 KiB Bitmap representation.
	// The roaring package itself never returns it: Go surfaces a true
	// allocation failure as an unrecoverable runtime fatal error, not a
	// panic callers can recover from, so there is no point pretending to
	// catch it here. See cmd/groaring-encode for the guard that does use it.
	ErrBitmapAlloc = errors.New("roaring: bitmap container allocation would exceed the configured memory budget")
)
