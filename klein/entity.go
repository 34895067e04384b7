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

// Entity is a general element of P(R_{3,0,1}): a Mask paired with the
// lanes the mask says are present. lanes is always a fixed 4-wide
// array — the compacted "popcount(PM) contiguous lanes" storage the
// spec describes is simulated by only ever reading/writing
// lanes[mask.offset(i)] for a present bit i, so an Entity with a
// single lane set costs the same 16 bytes of *meaningful* storage as
// the packed form, at the price of up to 48 bytes of unused padding
// for sparse masks. That trade buys a value type with no pointer, no
// allocation, and no unsafe offset arithmetic, which is the more
// idiomatic shape for a value this small in Go. See DESIGN.md.
type Entity struct {
	mask  Mask
	lanes [4]lane
}

// newEntity builds an Entity from up to four rawLane values indexed
// by lane number (0..3); only the ones named in mask are read.
func newEntity(mask Mask, raw [4]lane) Entity {
	var e Entity
	e.mask = mask
	for i := 0; i < 4; i++ {
		if mask.Has(i) {
			e.lanes[mask.offset(i)] = raw[i]
		}
	}
	return e
}

// Mask returns the entity's presence mask.
func (e Entity) Mask() Mask { return e.mask }

// rawLane returns the stored lane for bit i of the mask. Accessing an
// absent lane is a programmer error — the mask is meant to be known
// at the call site, so this panics rather than returning a zero lane
// that could be silently mistaken for a present-but-zero one.
func (e Entity) rawLane(i int) lane {
	if !e.mask.Has(i) {
		panic("klein: lane absent from entity")
	}
	return e.lanes[e.mask.offset(i)]
}

// laneOrZero returns the zero lane for an absent bit without panicking,
// for use inside code (blade accessors, add/sub) whose contract is
// "absent reads as zero".
func (e Entity) laneOrZero(i int) lane {
	if !e.mask.Has(i) {
		return lane{}
	}
	return e.lanes[e.mask.offset(i)]
}

// --- blade accessors ---
//
// Each of the 16 basis blades has a direct storage slot; the other 6
// accessor names (e10, e20, e30, e21, e32, e13) are the negation of
// one of those slots, since they are stored as the negative of a
// canonical basis name.

func (e Entity) Scalar() float32 { return e.laneOrZero(1)[0] }
func (e Entity) E0() float32     { return e.laneOrZero(0)[3] }
func (e Entity) E1() float32     { return e.laneOrZero(0)[2] }
func (e Entity) E2() float32     { return e.laneOrZero(0)[1] }
func (e Entity) E3() float32     { return e.laneOrZero(0)[0] }

func (e Entity) E12() float32 { return e.laneOrZero(1)[1] }
func (e Entity) E31() float32 { return e.laneOrZero(1)[2] }
func (e Entity) E23() float32 { return e.laneOrZero(1)[3] }
func (e Entity) E21() float32 { return -e.E12() }
func (e Entity) E13() float32 { return -e.E31() }
func (e Entity) E32() float32 { return -e.E23() }

func (e Entity) E0123() float32 { return e.laneOrZero(2)[0] }
func (e Entity) E01() float32   { return e.laneOrZero(2)[1] }
func (e Entity) E02() float32   { return e.laneOrZero(2)[2] }
func (e Entity) E03() float32   { return e.laneOrZero(2)[3] }
func (e Entity) E10() float32   { return -e.E01() }
func (e Entity) E20() float32   { return -e.E02() }
func (e Entity) E30() float32   { return -e.E03() }

func (e Entity) E123() float32 { return e.laneOrZero(3)[0] }
func (e Entity) E021() float32 { return e.laneOrZero(3)[1] }
func (e Entity) E013() float32 { return e.laneOrZero(3)[2] }
func (e Entity) E032() float32 { return e.laneOrZero(3)[3] }

// reverseSign holds the sign pattern for ~: grade 0 and grade 4 are
// fixed points, grade 2 and grade 3 negate. Indexed by lane.
var reverseSign = [4]lane{
	{1, 1, 1, 1},   // L0: grade 1, untouched
	{1, -1, -1, -1}, // L1: scalar fixed, Euclidean bivector negated
	{1, -1, -1, -1}, // L2: pseudoscalar fixed, ideal bivector negated
	{-1, -1, -1, -1}, // L3: grade 3, fully negated
}

// Reverse implements ~e: flips the sign of every grade-2 and grade-3
// blade, leaves grade-0 and grade-4 unchanged. Same mask as e.
func (e Entity) Reverse() Entity {
	out := e
	for i := 0; i < 4; i++ {
		if e.mask.Has(i) {
			out.lanes[e.mask.offset(i)] = e.lanes[e.mask.offset(i)].mulElem(reverseSign[i])
		}
	}
	return out
}

func addsub(x, y Entity, rightSign float32) Entity {
	outMask := x.mask.Union(y.mask)
	var raw [4]lane
	for i := 0; i < 4; i++ {
		hasX, hasY := x.mask.Has(i), y.mask.Has(i)
		switch {
		case hasX && hasY:
			xl := x.lanes[x.mask.offset(i)]
			yl := y.lanes[y.mask.offset(i)]
			if rightSign > 0 {
				raw[i] = xl.add(yl)
			} else {
				raw[i] = xl.sub(yl)
			}
		case hasX:
			raw[i] = x.lanes[x.mask.offset(i)]
		case hasY:
			yl := y.lanes[y.mask.offset(i)]
			if rightSign > 0 {
				raw[i] = yl
			} else {
				raw[i] = yl.neg()
			}
		}
	}
	return newEntity(outMask, raw)
}

// Add implements e + other: the result mask is the union of both
// masks, each present lane is summed or copied through unchanged.
func (e Entity) Add(other Entity) Entity {
	return addsub(e, other, 1)
}

// Sub implements e - other.
func (e Entity) Sub(other Entity) Entity {
	return addsub(e, other, -1)
}

// AddAssign mutates e in place when other's mask is a subset of e's,
// and otherwise falls back to ordinary addition. This is purely an
// optimization: the resulting value of e is identical either way, and no
// test may depend on whether the receiver was mutated.
func (e *Entity) AddAssign(other Entity) {
	if e.mask.Union(other.mask) == e.mask {
		for i := 0; i < 4; i++ {
			if other.mask.Has(i) {
				slot := e.mask.offset(i)
				e.lanes[slot] = e.lanes[slot].add(other.lanes[other.mask.offset(i)])
			}
		}
		return
	}
	*e = addsub(*e, other, 1)
}

// SubAssign is the in-place analog of Sub; see AddAssign.
func (e *Entity) SubAssign(other Entity) {
	if e.mask.Union(other.mask) == e.mask {
		for i := 0; i < 4; i++ {
			if other.mask.Has(i) {
				slot := e.mask.offset(i)
				e.lanes[slot] = e.lanes[slot].sub(other.lanes[other.mask.offset(i)])
			}
		}
		return
	}
	*e = addsub(*e, other, -1)
}

// Equal reports exact (bit-for-bit) equality of mask and every present
// lane; used by reverse-involution and additive-inverse tests, which
// require exact rather than approximate equality.
func (e Entity) Equal(other Entity) bool {
	if e.mask != other.mask {
		return false
	}
	for i := 0; i < e.mask.PopCount(); i++ {
		if e.lanes[i] != other.lanes[i] {
			return false
		}
	}
	return true
}
