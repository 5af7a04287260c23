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

import "math"

// This file provides saturated arithmetic.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// MulAddPairsU8I8 multiplies unsigned bytes of a by signed bytes of b and
// adds adjacent products into signed 16-bit lanes with saturation (PMADDUBSW):
//
//	r[i] = sat16(a[2i]*b[2i] + a[2i+1]*b[2i+1])
func MulAddPairsU8I8(a Uint8x16, b Int8x16) Int16x8 {
	var r Int16x8
	for i := range r {
		sum := int32(a[2*i])*int32(b[2*i]) + int32(a[2*i+1])*int32(b[2*i+1])
		r[i] = saturateI16(sum)
	}
	return r
}

// SaturatedAdd performs lane-wise addition clamped to the int16 range (PADDSW).
func (v Int16x8) SaturatedAdd(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = saturateI16(int32(v[i]) + int32(w[i]))
	}
	return r
}

// SaturatedSub performs lane-wise subtraction clamped to the int16 range (PSUBSW).
func (v Int16x8) SaturatedSub(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = saturateI16(int32(v[i]) - int32(w[i]))
	}
	return r
}

func saturateI16(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}
