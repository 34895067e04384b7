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

import (
	"math"
	"testing"
)

func TestRotationAboutZQuarterTurn(t *testing.T) {
	m := RotationAbout(0, 0, 1, float32(math.Pi/2))
	p := NewPoint(1, 0, 0)
	got := m.Transform(p)
	const tol = 1e-3
	if !almostEqualFloat32(got.X(), 0, tol) || !almostEqualFloat32(got.Y(), 1, tol) || !almostEqualFloat32(got.Z(), 0, tol) {
		t.Errorf("rotate (1,0,0) by pi/2 about z = {%v %v %v}, want {0 1 0}", got.X(), got.Y(), got.Z())
	}
}

func TestTranslationMovesPoint(t *testing.T) {
	m := Translation(1, 0, 0, 5)
	p := NewPoint(0, 0, 0)
	got := m.Transform(p)
	const tol = 1e-3
	if !almostEqualFloat32(got.X(), 5, tol) || !almostEqualFloat32(got.Y(), 0, tol) || !almostEqualFloat32(got.Z(), 0, tol) {
		t.Errorf("translate origin by (5,0,0) = {%v %v %v}, want {5 0 0}", got.X(), got.Y(), got.Z())
	}
}

func TestComposeMatchesSequentialTransform(t *testing.T) {
	rot := RotationAbout(0, 0, 1, float32(math.Pi/2))
	trans := Translation(1, 0, 0, 2)
	composed := trans.Compose(rot)

	p := NewPoint(1, 0, 0)
	sequential := trans.Transform(rot.Transform(p))
	direct := composed.Transform(p)

	const tol = 1e-3
	if !almostEqualFloat32(direct.X(), sequential.X(), tol) ||
		!almostEqualFloat32(direct.Y(), sequential.Y(), tol) ||
		!almostEqualFloat32(direct.Z(), sequential.Z(), tol) {
		t.Errorf("composed transform = {%v %v %v}, want sequential {%v %v %v}",
			direct.X(), direct.Y(), direct.Z(), sequential.X(), sequential.Y(), sequential.Z())
	}
}

func TestPlaneThroughPoints(t *testing.T) {
	p1 := NewPoint(0, 0, 0)
	p2 := NewPoint(1, 0, 0)
	p3 := NewPoint(0, 1, 0)
	pl := PlaneThroughPoints(p1, p2, p3)

	// All three points should satisfy a*x + b*y + c*z + d == 0.
	for _, p := range []Point{p1, p2, p3} {
		v := pl.E1()*p.X() + pl.E2()*p.Y() + pl.E3()*p.Z() + pl.E0()
		if !almostEqualFloat32(v, 0, 1e-5) {
			t.Errorf("point %+v not on plane: residual = %v", p, v)
		}
	}
}
