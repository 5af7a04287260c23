// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides widening (promote) and saturating narrowing (demote)
// conversions between the byte and 16-bit lane types.

// PromoteLowerU8ToI16 zero-extends the lower 8 bytes of v (PUNPCKLBW with zero).
func PromoteLowerU8ToI16(v Uint8x16) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = int16(v[i])
	}
	return r
}

// PromoteUpperU8ToI16 zero-extends the upper 8 bytes of v (PUNPCKHBW with zero).
func PromoteUpperU8ToI16(v Uint8x16) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = int16(v[LanesI16+i])
	}
	return r
}

// PromoteLowerU8ToU16 zero-extends the lower 8 bytes of v.
func PromoteLowerU8ToU16(v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = uint16(v[i])
	}
	return r
}

// PromoteUpperU8ToU16 zero-extends the upper 8 bytes of v.
func PromoteUpperU8ToU16(v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = uint16(v[LanesI16+i])
	}
	return r
}

// DemoteTwoI16ToU8 packs lo into lanes 0-7 and hi into lanes 8-15, clamping
// each value to [0, 255] (PACKUSWB).
func DemoteTwoI16ToU8(lo, hi Int16x8) Uint8x16 {
	var r Uint8x16
	for i := range lo {
		r[i] = saturateU8(lo[i])
		r[LanesI16+i] = saturateU8(hi[i])
	}
	return r
}

// BitCastU16ToI16 reinterprets the lanes of v as signed.
func BitCastU16ToI16(v Uint16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = int16(v[i])
	}
	return r
}

func saturateU8(x int16) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
