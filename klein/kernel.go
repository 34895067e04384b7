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

// This file holds the fifteen lane-to-lane geometric-product kernels
// gpIJ, one per ordered pair (i, j) with i, j in {0,1,2,3} other than
// (2, 2) — L2 holds only the pseudoscalar and ideal bivectors, and
// every pairwise product among those either vanishes or is already
// covered by another kernel pair, so gp22 is never required (see the
// open questions note in DESIGN.md).
//
// Each kernel takes the i-th lane of the left operand and the j-th
// lane of the right operand and returns the contribution of their
// product to the output lane(s) the (i, j) pair is defined to reach.
// A kernel is a single straight-line sequence of per-slot multiplies,
// sign flips, and adds — no branches, no loops, no memory access
// beyond its two arguments — derived once from the blade
// multiplication table of P(R_{3,0,1}) under the lane layout in the
// package doc and never touched again; product.go is the only caller.

func gp00(a, b lane) (l1 lane, l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l1 = lane{a0*b0 + a1*b1 + a2*b2, -a1*b2 + a2*b1, a0*b2 - a2*b0, -a0*b1 + a1*b0}
	l2 = lane{0, -a2*b3 + a3*b2, -a1*b3 + a3*b1, -a0*b3 + a3*b0}
	return
}

func gp01(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{a0*b0 + a1*b3 - a2*b2, -a0*b3 + a1*b0 + a2*b1, a0*b2 - a1*b1 + a2*b0, a3 * b0}
	l3 = lane{a0*b1 + a1*b2 + a2*b3, -a3 * b1, -a3 * b2, -a3 * b3}
	return
}

func gp02(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2 := a[0], a[1], a[2]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{0, 0, 0, -a0*b3 - a1*b2 - a2*b1}
	l3 = lane{0, a0*b0 - a1*b1 + a2*b2, a0*b1 + a1*b0 - a2*b3, -a0*b2 + a1*b3 + a2*b0}
	return
}

func gp03(a, b lane) (l1 lane, l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l1 = lane{0, a0 * b0, a1 * b0, a2 * b0}
	l2 = lane{a0*b1 + a1*b2 + a2*b3 + a3*b0, a0*b2 - a1*b1, -a0*b3 + a2*b1, a1*b3 - a2*b2}
	return
}

func gp10(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{a0*b0 + a2*b2 - a3*b1, a0*b1 - a1*b2 + a3*b0, a0*b2 + a1*b1 - a2*b0, a0 * b3}
	l3 = lane{a1*b0 + a2*b1 + a3*b2, -a1 * b3, -a2 * b3, -a3 * b3}
	return
}

func gp11(a, b lane) (l1 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l1 = lane{
		a0*b0 - a1*b1 - a2*b2 - a3*b3,
		a0*b1 + a1*b0 + a2*b3 - a3*b2,
		a0*b2 - a1*b3 + a2*b0 + a3*b1,
		a0*b3 + a1*b2 - a2*b1 + a3*b0,
	}
	return
}

func gp12(a, b lane) (l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l2 = lane{
		a0*b0 + a1*b3 + a2*b2 + a3*b1,
		a0*b1 + a1*b2 - a2*b3 - a3*b0,
		a0*b2 - a1*b1 - a2*b0 + a3*b3,
		a0*b3 - a1*b0 + a2*b1 - a3*b2,
	}
	return
}

func gp13(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{-a1 * b0, -a2 * b0, -a3 * b0, a1*b1 + a2*b2 + a3*b3}
	l3 = lane{a0 * b0, a0*b1 + a2*b3 - a3*b2, a0*b2 - a1*b3 + a3*b1, a0*b3 + a1*b2 - a2*b1}
	return
}

func gp20(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2 := b[0], b[1], b[2]
	l0 = lane{0, 0, 0, a1*b2 + a2*b1 + a3*b0}
	l3 = lane{0, -a0*b0 - a1*b1 + a2*b2, -a0*b1 + a1*b0 - a3*b2, -a0*b2 - a2*b0 + a3*b1}
	return
}

func gp21(a, b lane) (l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l2 = lane{
		a0*b0 + a1*b3 + a2*b2 + a3*b1,
		-a0*b3 + a1*b0 - a2*b1 + a3*b2,
		-a0*b2 + a1*b1 + a2*b0 - a3*b3,
		-a0*b1 - a1*b2 + a2*b3 + a3*b0,
	}
	return
}

func gp23(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0 := b[0]
	l0 = lane{0, 0, 0, -a0 * b0}
	l3 = lane{0, -a3 * b0, -a2 * b0, -a1 * b0}
	return
}

func gp30(a, b lane) (l1 lane, l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l1 = lane{0, a0 * b0, a0 * b1, a0 * b2}
	l2 = lane{-a0*b3 - a1*b0 - a2*b1 - a3*b2, -a1*b1 + a2*b0, a1*b2 - a3*b0, -a2*b2 + a3*b1}
	return
}

func gp31(a, b lane) (l0 lane, l3 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{-a0 * b1, -a0 * b2, -a0 * b3, a1*b1 + a2*b2 + a3*b3}
	l3 = lane{a0 * b0, a1*b0 + a2*b3 - a3*b2, -a1*b3 + a2*b0 + a3*b1, a1*b2 - a2*b1 + a3*b0}
	return
}

func gp32(a, b lane) (l0 lane, l3 lane) {
	a0 := a[0]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l0 = lane{0, 0, 0, a0 * b0}
	l3 = lane{0, a0 * b3, a0 * b2, a0 * b1}
	return
}

func gp33(a, b lane) (l1 lane, l2 lane) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	l1 = lane{-a0 * b0, 0, 0, 0}
	l2 = lane{0, -a0*b3 + a3*b0, -a0*b2 + a2*b0, -a0*b1 + a1*b0}
	return
}
