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

import "testing"

func almostEqualFloat32(a, b, relTol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	scale := float32(1)
	if abs(a) > scale {
		scale = abs(a)
	}
	if abs(b) > scale {
		scale = abs(b)
	}
	return d <= relTol*scale
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBladeAccessorAbsentLaneReturnsZero(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	if got := p.Scalar(); got != 0 {
		t.Errorf("Scalar() on a plane = %v, want +0.0", got)
	}
	if got := p.E123(); got != 0 {
		t.Errorf("E123() on a plane = %v, want +0.0", got)
	}
}

func TestNegatedAccessorsAreNegations(t *testing.T) {
	b := NewBivector(1, 2, 3, 4, 5, 6)
	if b.E10() != -b.E01() {
		t.Errorf("E10() = %v, want %v", b.E10(), -b.E01())
	}
	if b.E21() != -b.E12() {
		t.Errorf("E21() = %v, want %v", b.E21(), -b.E12())
	}
	if b.E32() != -b.E23() {
		t.Errorf("E32() = %v, want %v", b.E32(), -b.E23())
	}
}

func TestReverseInvolution(t *testing.T) {
	cases := []Entity{
		NewPlane(1, 2, 3, 4).Entity,
		NewMotor(1, 2, 3, 4, 5, 6, 7, 8).Entity,
		NewPoint(1, 2, 3).Entity,
	}
	for i, e := range cases {
		got := e.Reverse().Reverse()
		if !got.Equal(e) {
			t.Errorf("case %d: ~(~x) != x: got mask=%s want mask=%s", i, got.Mask(), e.Mask())
		}
	}
}

func TestReverseFixesGrade0And4(t *testing.T) {
	m := NewMotor(1, 2, 3, 4, 5, 6, 7, 8)
	r := m.Reverse()
	if r.Scalar() != m.Scalar() {
		t.Errorf("reverse changed scalar: %v -> %v", m.Scalar(), r.Scalar())
	}
	if r.E0123() != m.E0123() {
		t.Errorf("reverse changed pseudoscalar: %v -> %v", m.E0123(), r.E0123())
	}
	if r.E12() != -m.E12() {
		t.Errorf("reverse did not negate e12: %v -> %v", m.E12(), r.E12())
	}
}

func TestAdditiveInverse(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	neg := p.Scale(-1)
	sum := p.Entity.Add(neg)
	zero := newEntity(maskL0, [4]lane{})
	if !sum.Equal(zero) {
		t.Errorf("x + (-x) = %+v, want all-zero", sum)
	}
}

func TestAddMaskIsUnion(t *testing.T) {
	a := NewPlane(1, 2, 3, 4).Entity
	b := NewPoint(1, 2, 3).Entity
	sum := a.Add(b)
	if sum.Mask() != (maskL0 | maskL3) {
		t.Errorf("(a+b).Mask() = %s, want %s", sum.Mask(), (maskL0 | maskL3).String())
	}
	if sum.E1() != a.E1() || sum.E032() != b.E032() {
		t.Errorf("sum did not preserve disjoint blades: %+v", sum)
	}
}

func TestAddBladewiseSum(t *testing.T) {
	a := NewPlane(1, 2, 3, 4)
	b := NewPlane(5, 6, 7, 8)
	sum := a.Entity.Add(b.Entity)
	if sum.E1() != a.E1()+b.E1() || sum.E2() != a.E2()+b.E2() ||
		sum.E3() != a.E3()+b.E3() || sum.E0() != a.E0()+b.E0() {
		t.Errorf("sum = %+v, want bladewise sum of %+v and %+v", sum, a, b)
	}
}

func TestAddAssignInPlaceSubsetMask(t *testing.T) {
	m := NewMotor(1, 0, 0, 0, 0, 0, 0, 0)
	before := m.Entity
	other := newEntity(maskL1, [4]lane{1: {0, 1, 0, 0}})
	m.Entity.AddAssign(other)
	want := before.Add(other)
	if !m.Entity.Equal(want) {
		t.Errorf("AddAssign result = %+v, want %+v", m.Entity, want)
	}
}

func TestScenario5ReverseIsLinear(t *testing.T) {
	a := NewPlane(1, 2, 3, 4)
	b := NewPlane(5, 6, 7, 8)
	lhs := a.Entity.Add(b.Entity).Reverse()
	rhs := a.Reverse().Add(b.Reverse())
	if !lhs.Equal(rhs) {
		t.Errorf("~(a+b) = %+v, want %+v", lhs, rhs)
	}
	if !lhs.Equal(a.Entity.Add(b.Entity)) {
		t.Errorf("~(a+b) = %+v, want a+b since planes are grade 1", lhs)
	}
}
