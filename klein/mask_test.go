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

func TestMaskOffset(t *testing.T) {
	m := maskL0 | maskL2
	if got := m.offset(0); got != 0 {
		t.Errorf("offset(0) = %d, want 0", got)
	}
	if got := m.offset(2); got != 1 {
		t.Errorf("offset(2) = %d, want 1", got)
	}
}

func TestMaskPopCount(t *testing.T) {
	cases := []struct {
		m    Mask
		want int
	}{
		{0, 0},
		{maskL0, 1},
		{maskL1 | maskL2, 2},
		{maskAll, 4},
	}
	for _, c := range cases {
		if got := c.m.PopCount(); got != c.want {
			t.Errorf("PopCount(%s) = %d, want %d", c.m, got, c.want)
		}
	}
}

func TestMaskUnion(t *testing.T) {
	if got := maskL0.Union(maskL3); got != maskL0|maskL3 {
		t.Errorf("Union = %s, want %s", got, (maskL0 | maskL3).String())
	}
}

func TestMaskHas(t *testing.T) {
	m := maskL1 | maskL3
	for i := 0; i < 4; i++ {
		want := i == 1 || i == 3
		if got := m.Has(i); got != want {
			t.Errorf("Has(%d) = %v, want %v", i, got, want)
		}
	}
}
