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

// Plane, Line, IdealLine, Bivector, Motor, Point, Direction and
// Multivector each fix an Entity's mask at construction and embed it,
// so the full set of blade accessors, Reverse, Add, Sub and Mul are
// promoted for free. None of these types add fields of their own —
// they exist only to pin a mask and offer a constructor whose
// argument order matches the named entity's conventional layout.

// Plane is a(e1) + b(e2) + c(e3) + d(e0), mask L0.
type Plane struct{ Entity }

// NewPlane places L0 = (c, b, a, d), i.e. L0 slots [e3, e2, e1, e0].
func NewPlane(a, b, c, d float32) Plane {
	return Plane{newEntity(maskL0, [4]lane{0: {c, b, a, d}})}
}

// Line is a Euclidean line, mask L1 with slot [0] held at zero.
type Line struct{ Entity }

// NewLine places L1 = (0, d, e, f).
func NewLine(d, e, f float32) Line {
	return Line{newEntity(maskL1, [4]lane{1: {0, d, e, f}})}
}

// IdealLine is a line at infinity, mask L2 with slot [0] held at zero.
type IdealLine struct{ Entity }

// NewIdealLine places L2 = (0, a, b, c).
func NewIdealLine(a, b, c float32) IdealLine {
	return IdealLine{newEntity(maskL2, [4]lane{2: {0, a, b, c}})}
}

// Bivector is a general line (Euclidean + ideal part), mask L1|L2.
type Bivector struct{ Entity }

// NewBivector places L1 = (0, d, e, f) and L2 = (0, a, b, c).
func NewBivector(a, b, c, d, e, f float32) Bivector {
	return Bivector{newEntity(maskL1|maskL2, [4]lane{
		1: {0, d, e, f},
		2: {0, a, b, c},
	})}
}

// Motor is an even-subalgebra element (scalar + bivectors), mask L1|L2.
type Motor struct{ Entity }

// NewMotor places the eight stored floats into L1 and L2 in the order
// given, with no swapping.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{newEntity(maskL1|maskL2, [4]lane{
		1: {a, b, c, d},
		2: {e, f, g, h},
	})}
}

// Point is a projective point, mask L3 with slot [0] (the weight)
// nonzero.
type Point struct{ Entity }

// NewPoint places L3 = (1, z, y, x): weight 1 at slot [0], x at [3],
// y at [2], z at [1].
func NewPoint(x, y, z float32) Point {
	return Point{newEntity(maskL3, [4]lane{3: {1, z, y, x}})}
}

// Direction is an ideal point, mask L3 with slot [0] held at zero.
type Direction struct{ Entity }

// NewDirection places L3 = (0, z, y, x).
func NewDirection(x, y, z float32) Direction {
	return Direction{newEntity(maskL3, [4]lane{3: {0, z, y, x}})}
}

// Multivector is a general element of the algebra. AsMultivector
// produces values with mask L0|L1|L2|L3; the generator values in
// generator.go are Multivectors that carry only the one lane their
// blade lives in. The source this library is modeled on declares a
// multivector type but never implements methods specific to it; this
// port follows suit and treats it as an ordinary Entity.
type Multivector struct{ Entity }

// AsMultivector widens any named entity to the general mask, copying
// present lanes and leaving absent ones zero.
func AsMultivector(e Entity) Multivector {
	var raw [4]lane
	for i := 0; i < 4; i++ {
		raw[i] = e.laneOrZero(i)
	}
	return Multivector{newEntity(maskAll, raw)}
}

// X, Y, Z read back a point's Euclidean coordinates.
func (p Point) X() float32 { return p.E032() }
func (p Point) Y() float32 { return p.E013() }
func (p Point) Z() float32 { return p.E021() }

// X, Y, Z read back a direction's Euclidean coordinates.
func (d Direction) X() float32 { return d.E032() }
func (d Direction) Y() float32 { return d.E013() }
func (d Direction) Z() float32 { return d.E021() }

// Normalize divides every slot of L3 by the homogeneous weight
// L3[0], multiplying by the reciprocal from rcpFast. Behavior is undefined
// if the weight is zero, per the algebra's normalization contract.
func (p Point) Normalize() Point {
	l := p.rawLane(3)
	recip := l.splat(0).rcpFast()
	return Point{newEntity(maskL3, [4]lane{3: l.mulElem(recip)})}
}

// AsDirection converts a general trivector entity to a Direction. In
// builds with assertions enabled it panics unless the source's L3[0]
// is within 1e-7 of zero — a direction's defining property.
func AsDirection(e Entity) Direction {
	if debugAssertionsEnabled {
		if w := e.laneOrZero(3)[0]; w > 1e-7 || w < -1e-7 {
			panic("klein: AsDirection requires L3[0] within 1e-7 of zero")
		}
	}
	l := e.laneOrZero(3)
	l[0] = 0
	return Direction{newEntity(maskL3, [4]lane{3: l})}
}

// debugAssertionsEnabled gates the AsDirection weight check. It is a
// variable rather than a build tag so tests can flip it without a
// separate build.
var debugAssertionsEnabled = true
