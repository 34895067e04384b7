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

import "math"

// RotationAbout builds the motor for a rotation by angle radians about
// the line through the origin with direction (l, m, n), which need
// not be pre-normalized. The direction maps onto the Euclidean
// bivector l*e23 + m*e31 + n*e12, following the convention that a
// rotation in the e12 plane is "about z".
func RotationAbout(l, m, n, angle float32) Motor {
	norm := float32(math.Sqrt(float64(l*l + m*m + n*n)))
	if norm != 0 {
		l, m, n = l/norm, m/norm, n/norm
	}
	half := float64(angle) / 2
	c := float32(math.Cos(half))
	s := float32(math.Sin(half))
	return NewMotor(c, -s*n, -s*m, -s*l, 0, 0, 0, 0)
}

// Translation builds the motor for a translation by distance along
// direction (x, y, z), which need not be pre-normalized.
func Translation(x, y, z, distance float32) Motor {
	norm := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if norm != 0 {
		x, y, z = x/norm, y/norm, z/norm
	}
	half := distance / 2
	return NewMotor(1, 0, 0, 0, 0, -x*half, -y*half, -z*half)
}

// Compose returns the motor equivalent to applying other first and
// then m: m.Compose(other) corresponds to the rigid motion other
// followed by m.
func (m Motor) Compose(other Motor) Motor {
	return Motor{m.Entity.Mul(other.Entity)}
}

// Transform applies the motor's rigid motion to p via the sandwich
// product m * p * ~m.
func (m Motor) Transform(p Point) Point {
	rev := m.Reverse()
	result := m.Entity.Mul(p.Entity).Mul(rev)
	return Point{newEntity(maskL3, [4]lane{3: result.laneOrZero(3)})}
}

// PlaneThroughPoints returns the plane incident to all three points,
// oriented by the order p1, p2, p3. Unlike the motor operations above
// this is computed directly from Euclidean coordinates rather than
// through the geometric product: the join of three points is outside
// the core product the library specifies, and the classic
// cross-product construction is the more direct route to the same
// plane.
func PlaneThroughPoints(p1, p2, p3 Point) Plane {
	ux, uy, uz := p2.X()-p1.X(), p2.Y()-p1.Y(), p2.Z()-p1.Z()
	vx, vy, vz := p3.X()-p1.X(), p3.Y()-p1.Y(), p3.Z()-p1.Z()

	a := uy*vz - uz*vy
	b := uz*vx - ux*vz
	c := ux*vy - uy*vx
	d := -(a*p1.X() + b*p1.Y() + c*p1.Z())

	return NewPlane(a, b, c, d)
}
