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

// Package roaring is a write-only encoder for the Pilosa variant of Roaring
// Bitmaps. A Bitmap accepts uint64 insertions, groups them into containers
// keyed by their high 48 bits, and serializes the whole set to the exact
// byte layout Pilosa's storage engine memory-maps.
//
// There is no reader: this package never parses a previously emitted
// stream, and it has no union, intersection, or difference operators.
// Build a Bitmap, Add values to it, and call WriteTo once.
package roaring
