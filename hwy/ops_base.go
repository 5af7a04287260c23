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

// This file provides the load/store and arithmetic operations on the lane
// types. Loads and stores accept short slices: missing source lanes read as
// zero and stores never write past the end of dst.

// LoadU8x16 loads up to 16 bytes from src.
func LoadU8x16(src []uint8) Uint8x16 {
	var v Uint8x16
	copy(v[:], src)
	return v
}

// LoadU8x8 loads up to 8 bytes from src into the lower half of the vector.
// The upper half is zero, like MOVQ.
func LoadU8x8(src []uint8) Uint8x16 {
	var v Uint8x16
	n := min(len(src), 8)
	copy(v[:n], src[:n])
	return v
}

// StoreU8x16 writes all 16 lanes of v to dst.
func StoreU8x16(v Uint8x16, dst []uint8) {
	copy(dst, v[:])
}

// StoreLowerU8x8 writes the lower 8 lanes of v to dst.
func StoreLowerU8x8(v Uint8x16, dst []uint8) {
	copy(dst, v[:8])
}

// SetU8 returns a vector with every lane set to value.
func SetU8(value uint8) Uint8x16 {
	var v Uint8x16
	for i := range v {
		v[i] = value
	}
	return v
}

// SetI16 returns a vector with every lane set to value.
func SetI16(value int16) Int16x8 {
	var v Int16x8
	for i := range v {
		v[i] = value
	}
	return v
}

// SetU16 returns a vector with every lane set to value.
func SetU16(value uint16) Uint16x8 {
	var v Uint16x8
	for i := range v {
		v[i] = value
	}
	return v
}

// RepeatU8x4 repeats a 4-byte pattern across the vector.
// Useful for per-pixel channel masks.
func RepeatU8x4(p [4]uint8) Uint8x16 {
	var v Uint8x16
	for i := range v {
		v[i] = p[i%4]
	}
	return v
}

// RepeatI8x4 repeats a 4-byte signed pattern across the vector.
func RepeatI8x4(p [4]int8) Int8x16 {
	var v Int8x16
	for i := range v {
		v[i] = p[i%4]
	}
	return v
}

// And returns the bitwise AND of v and w.
func (v Uint8x16) And(w Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range v {
		r[i] = v[i] & w[i]
	}
	return r
}

// Or returns the bitwise OR of v and w.
func (v Uint8x16) Or(w Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range v {
		r[i] = v[i] | w[i]
	}
	return r
}

// AndNot returns v &^ w.
func (v Uint8x16) AndNot(w Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range v {
		r[i] = v[i] &^ w[i]
	}
	return r
}

// Add performs wrapping lane-wise addition (PADDW).
func (v Int16x8) Add(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub performs wrapping lane-wise subtraction (PSUBW).
func (v Int16x8) Sub(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul keeps the low 16 bits of each lane product (PMULLW).
func (v Int16x8) Mul(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = v[i] * w[i]
	}
	return r
}

// ShiftRight shifts every lane right by n bits, replicating the sign bit
// (PSRAW). This floors toward negative infinity.
func (v Int16x8) ShiftRight(n uint) Int16x8 {
	var r Int16x8
	for i := range v {
		r[i] = v[i] >> n
	}
	return r
}

// Add performs wrapping lane-wise addition (PADDW).
func (v Uint16x8) Add(w Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// MulHigh returns the upper 16 bits of each unsigned 32-bit lane product
// (PMULHUW). With w set to a reciprocal scaled by 2^16 this approximates
// division.
func (v Uint16x8) MulHigh(w Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = uint16((uint32(v[i]) * uint32(w[i])) >> 16)
	}
	return r
}
