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

import "golang.org/x/sys/cpu"

// SIMDLevel describes how closely a platform's vector instructions
// match the 4-wide single-precision lane this package models. The
// lane kernels are scalar Go today, so this is informational only —
// it lets cmd/kleinbench report what hardware path a real SIMD
// backend would take, without this package committing to one.
type SIMDLevel uint8

const (
	// SIMDNone means no vector ISA wider than scalar float32 was
	// detected; a lane op still costs four scalar instructions.
	SIMDNone SIMDLevel = iota
	// SIMDSSE means a 128-bit vector unit is available, exactly wide
	// enough to hold one lane.
	SIMDSSE
	// SIMDAVX means a 256-bit unit is available, wide enough to hold
	// two lanes per instruction.
	SIMDAVX
	// SIMDAVX512 means a 512-bit unit is available, wide enough to
	// hold all four lanes of an entity in one register.
	SIMDAVX512
)

func (l SIMDLevel) String() string {
	switch l {
	case SIMDSSE:
		return "sse"
	case SIMDAVX:
		return "avx"
	case SIMDAVX512:
		return "avx512"
	default:
		return "none"
	}
}

// DetectSIMDLevel probes the current CPU's vector ISA. It is advisory
// only: every kernel in this package runs identically regardless of
// what it returns.
func DetectSIMDLevel() SIMDLevel {
	switch {
	case cpu.X86.HasAVX512F:
		return SIMDAVX512
	case cpu.X86.HasAVX2:
		return SIMDAVX
	case cpu.X86.HasSSE41:
		return SIMDSSE
	default:
		return SIMDNone
	}
}
