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

package align

import "testing"

func TestPopCount8(t *testing.T) {
	cases := []struct {
		v    uint8
		want int
	}{
		{0, 0},
		{1, 1},
		{0b0110, 2},
		{0b1111, 4},
		{0xff, 8},
	}
	for _, c := range cases {
		if got := PopCount8(c.v); got != c.want {
			t.Errorf("PopCount8(%#b) = %d, want %d", c.v, got, c.want)
		}
		if got := PopCount(uint32(c.v)); got != c.want {
			t.Errorf("PopCount(uint32(%#b)) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(16, 16) {
		t.Error("16 should be 16-byte aligned")
	}
	if IsAligned(17, 16) {
		t.Error("17 should not be 16-byte aligned")
	}
}
