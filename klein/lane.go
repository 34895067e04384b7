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

// lane is one 4-wide single-precision partition of a multivector, as
// described by the basis table in the package doc: four packed
// float32 slots addressed [0..3], slot [0] being the lowest-address
// one. Its arithmetic methods carry no control flow of their own; each
// is a fixed sequence of element-wise arithmetic, exactly what a real
// 128-bit SIMD register would do under add/sub/mul.
type lane [4]float32

func (v lane) add(w lane) lane {
	return lane{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v lane) sub(w lane) lane {
	return lane{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

func (v lane) neg() lane {
	return lane{-v[0], -v[1], -v[2], -v[3]}
}

// mulElem is the element-wise (Hadamard) product, used both for
// ordinary per-slot multiplies and for applying a precomputed ±1
// sign-flip pattern such as reverseSign.
func (v lane) mulElem(w lane) lane {
	return lane{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// splat broadcasts v[i] across all four output slots, the portable
// equivalent of an SSE/AVX broadcast shuffle.
func (v lane) splat(i int) lane {
	return lane{v[i], v[i], v[i], v[i]}
}

// rcpFast returns the per-slot reciprocal, computed here by exact
// float32 division. It stands in for a hardware fast-reciprocal
// instruction (e.g. rcpps), whose relative error normalize() would
// tolerate.
func (v lane) rcpFast() lane {
	return lane{1 / v[0], 1 / v[1], 1 / v[2], 1 / v[3]}
}

func (v lane) isZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0 && v[3] == 0
}

// almostEqual reports whether v and w agree within relTol relative
// error in every slot; used by the product tests and by
// sandwich-transform checks where floating-point rounding is expected.
func (v lane) almostEqual(w lane, relTol float64) bool {
	for i := range v {
		d := math.Abs(float64(v[i] - w[i]))
		scale := math.Max(1, math.Max(math.Abs(float64(v[i])), math.Abs(float64(w[i]))))
		if d > relTol*scale {
			return false
		}
	}
	return true
}
