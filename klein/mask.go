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

package klein

import "github.com/geoalg/klein/internal/align"

// Mask is the 4-bit presence mask selecting which of the four lanes
// (L0..L3) an Entity stores. Bit i set means lane Li is present.
//
// Go has no const-value generic parameters, so Mask cannot live in an
// Entity's type the way the source representation's compile-time mask
// does; it is carried as an ordinary struct field instead. The
// geometric-product dispatcher in product.go compensates by only ever
// branching on the bits that are actually set (see product.go), which
// is the "runtime mask field with an inline branch tree" alternative
// called out as acceptable.
type Mask uint8

const (
	maskL0 Mask = 1 << 0
	maskL1 Mask = 1 << 1
	maskL2 Mask = 1 << 2
	maskL3 Mask = 1 << 3

	maskAll Mask = maskL0 | maskL1 | maskL2 | maskL3
)

// Has reports whether lane i (0..3) is present in m.
func (m Mask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// PopCount returns the number of lanes present in m.
func (m Mask) PopCount() int {
	return align.PopCount8(uint8(m))
}

// offset returns the compacted storage slot for lane i: the number of
// lanes below i that are also present. Accessing a lane whose bit is
// clear is a caller error (see Entity.rawLane).
func (m Mask) offset(i int) int {
	return align.PopCount8(uint8(m) & ((1 << uint(i)) - 1))
}

// Union is the mask of an Entity formed by adding/subtracting operands
// with masks m and n: bit i is set if it is set in either operand.
func (m Mask) Union(n Mask) Mask {
	return m | n
}

func (m Mask) String() string {
	b := [4]byte{'-', '-', '-', '-'}
	names := "0123"
	for i := 0; i < 4; i++ {
		if m.Has(i) {
			b[i] = names[i]
		}
	}
	return string(b[:])
}
