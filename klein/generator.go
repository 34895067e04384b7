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

// Symbolic generators, one Multivector per basis blade, for building
// expressions out of named pieces instead of raw constructors. Go has
// no operator overloading, so `Scale`/`Add` stand in for the
// `2*e1 + 3*e2` notation a language with operators would use:
// E1.Scale(2).Add(E2.Scale(3)).
var (
	E0 = Multivector{newEntity(maskL0, [4]lane{0: {0, 0, 0, 1}})}
	E1 = Multivector{newEntity(maskL0, [4]lane{0: {0, 0, 1, 0}})}
	E2 = Multivector{newEntity(maskL0, [4]lane{0: {0, 1, 0, 0}})}
	E3 = Multivector{newEntity(maskL0, [4]lane{0: {1, 0, 0, 0}})}

	E12 = Multivector{newEntity(maskL1, [4]lane{1: {0, 1, 0, 0}})}
	E31 = Multivector{newEntity(maskL1, [4]lane{1: {0, 0, 1, 0}})}
	E23 = Multivector{newEntity(maskL1, [4]lane{1: {0, 0, 0, 1}})}

	E0123 = Multivector{newEntity(maskL2, [4]lane{2: {1, 0, 0, 0}})}
	E01   = Multivector{newEntity(maskL2, [4]lane{2: {0, 1, 0, 0}})}
	E02   = Multivector{newEntity(maskL2, [4]lane{2: {0, 0, 1, 0}})}
	E03   = Multivector{newEntity(maskL2, [4]lane{2: {0, 0, 0, 1}})}

	E123 = Multivector{newEntity(maskL3, [4]lane{3: {1, 0, 0, 0}})}
	E021 = Multivector{newEntity(maskL3, [4]lane{3: {0, 1, 0, 0}})}
	E013 = Multivector{newEntity(maskL3, [4]lane{3: {0, 0, 1, 0}})}
	E032 = Multivector{newEntity(maskL3, [4]lane{3: {0, 0, 0, 1}})}

	// I is the pseudoscalar e0123.
	I = E0123
)

// Scale multiplies every present lane by s. It is defined on Entity,
// not Multivector, so every named type (Plane, Motor, Point, ...)
// gets it for free through embedding.
func (e Entity) Scale(s float32) Entity {
	var out Entity
	out.mask = e.mask
	factor := lane{s, s, s, s}
	for i := 0; i < 4; i++ {
		if e.mask.Has(i) {
			out.lanes[e.mask.offset(i)] = e.lanes[e.mask.offset(i)].mulElem(factor)
		}
	}
	return out
}
