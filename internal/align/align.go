// Copyright 2026 geoalg contributors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package align provides the small set of bit/alignment helpers the
// partitioned-entity representation needs: computing a lane's
// compacted offset within a sparse mask, and checking whether an
// address keeps the 16-byte alignment SIMD loads require.
//
// Adapted from the teacher repository's ints package (IsAligned,
// AlignUp) and TestBit-style bit helpers, narrowed to the uint8 case
// this package actually needs — klein.Mask never exceeds 4 bits.
//
// PopCount is generic over constraints.Unsigned in the same style the
// teacher uses for its own generic helpers (internal/aes.Hash over
// constraints.Integer), even though every non-test caller in this
// module instantiates it at uint8.
package align

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// PopCount returns the number of set bits in v.
func PopCount[T constraints.Unsigned](v T) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// PopCount8 returns the number of set bits in v.
func PopCount8(v uint8) int {
	return PopCount(v)
}

// IsAligned reports whether v is a multiple of alignment.
func IsAligned(v, alignment uintptr) bool {
	return v%alignment == 0
}

// PointerAligned reports whether p's address satisfies the given byte
// alignment, such as the 16-byte alignment a SIMD backend would need
// for lane storage. Nothing in this module calls it yet.
func PointerAligned(p unsafe.Pointer, alignment uintptr) bool {
	return IsAligned(uintptr(p), alignment)
}
