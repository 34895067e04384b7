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

// Package klein implements the projective geometric algebra
// P(R_{3,0,1}): a 16-dimensional graded algebra over the reals with
// generators e0, e1, e2, e3 satisfying e0^2 = 0, e1^2 = e2^2 = e3^2 = 1,
// and pairwise anticommutation. It represents 3D Euclidean geometry —
// points, lines, planes, rotations, translations, and rigid motions —
// as multivector values and a single associative geometric product.
//
// The 16 basis blades are packed into four 4-wide float32 lanes:
//
//	L0: e3, e2, e1, e0
//	L1: 1, e12, e31, e23
//	L2: e0123, e01, e02, e03
//	L3: e123, e021, e013, e032
//
// An Entity carries a Mask selecting which of the four lanes are
// actually stored; the named types (Plane, Line, IdealLine, Bivector,
// Motor, Point, Direction, Multivector) each fix a mask and give it a
// constructor with a geometrically meaningful argument order. The
// geometric product dispatches across at most 15 lane-to-lane kernels
// (gp_ij for i, j in 0..3, skipping gp22, which is always zero), doing
// work proportional to the number of lanes the two operands actually
// carry rather than a fixed 16-term expansion.
package klein
