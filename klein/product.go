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

// Mul computes the geometric product e * other. Go has no const
// generics, so the "statically elide every (i,j) pair not present"
// requirement becomes a runtime inline branch tree instead: the outer
// loop only ever visits bits actually set in e.mask and other.mask,
// so the work done is proportional to popcount(e.mask) *
// popcount(other.mask), never to the full 4x4 grid of kernels.
func (e Entity) Mul(other Entity) Entity {
	var acc [4]lane

	if e.mask.Has(0) {
		a := e.rawLane(0)
		if other.mask.Has(0) {
			l1, l2 := gp00(a, other.rawLane(0))
			acc[1] = acc[1].add(l1)
			acc[2] = acc[2].add(l2)
		}
		if other.mask.Has(1) {
			l0, l3 := gp01(a, other.rawLane(1))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(2) {
			l0, l3 := gp02(a, other.rawLane(2))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(3) {
			l1, l2 := gp03(a, other.rawLane(3))
			acc[1] = acc[1].add(l1)
			acc[2] = acc[2].add(l2)
		}
	}
	if e.mask.Has(1) {
		a := e.rawLane(1)
		if other.mask.Has(0) {
			l0, l3 := gp10(a, other.rawLane(0))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(1) {
			l1 := gp11(a, other.rawLane(1))
			acc[1] = acc[1].add(l1)
		}
		if other.mask.Has(2) {
			l2 := gp12(a, other.rawLane(2))
			acc[2] = acc[2].add(l2)
		}
		if other.mask.Has(3) {
			l0, l3 := gp13(a, other.rawLane(3))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
	}
	if e.mask.Has(2) {
		a := e.rawLane(2)
		if other.mask.Has(0) {
			l0, l3 := gp20(a, other.rawLane(0))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(1) {
			l2 := gp21(a, other.rawLane(1))
			acc[2] = acc[2].add(l2)
		}
		// (2,2) contributes nothing; gp22 does not exist.
		if other.mask.Has(3) {
			l0, l3 := gp23(a, other.rawLane(3))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
	}
	if e.mask.Has(3) {
		a := e.rawLane(3)
		if other.mask.Has(0) {
			l1, l2 := gp30(a, other.rawLane(0))
			acc[1] = acc[1].add(l1)
			acc[2] = acc[2].add(l2)
		}
		if other.mask.Has(1) {
			l0, l3 := gp31(a, other.rawLane(1))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(2) {
			l0, l3 := gp32(a, other.rawLane(2))
			acc[0] = acc[0].add(l0)
			acc[3] = acc[3].add(l3)
		}
		if other.mask.Has(3) {
			l1, l2 := gp33(a, other.rawLane(3))
			acc[1] = acc[1].add(l1)
			acc[2] = acc[2].add(l2)
		}
	}

	return newEntity(productMask(e.mask, other.mask), acc)
}

// productMask computes the output mask of a geometric product from
// the closed-form rule on the input masks, without touching any
// lane data: each output bit is set iff at least one contributing
// (i,j) kernel pair exists between the two operands.
func productMask(a, b Mask) Mask {
	has12 := func(m Mask) bool { return m.Has(1) || m.Has(2) }

	var out Mask
	if (a.Has(0) && has12(b)) || (has12(a) && b.Has(0)) ||
		(a.Has(1) && b.Has(3)) || (a.Has(3) && b.Has(1)) ||
		(a.Has(2) && b.Has(3)) || (a.Has(3) && b.Has(2)) {
		out |= maskL0
		out |= maskL3
	}
	if (a.Has(0) && b.Has(0)) || (a.Has(1) && b.Has(1)) || (a.Has(3) && b.Has(3)) ||
		(a.Has(0) && b.Has(3)) || (a.Has(3) && b.Has(0)) {
		out |= maskL1
	}
	if (a.Has(0) && b.Has(0)) || (a.Has(3) && b.Has(3)) ||
		(a.Has(1) && b.Has(2)) || (a.Has(2) && b.Has(1)) ||
		(a.Has(0) && b.Has(3)) || (a.Has(3) && b.Has(0)) {
		out |= maskL2
	}
	return out
}
