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

// Package hwy provides fixed-width 128-bit lane types for pixel kernels.
//
// Each type mirrors one interpretation of a 128-bit SIMD register: sixteen
// uint8 or int8 lanes, or eight int16 or uint16 lanes. The
// operations are written as simple loops over fixed-size arrays so the Go
// compiler can keep them in registers, and they reproduce the integer
// semantics of the SSE2/SSSE3 instructions they are named after (packed
// multiply-add, multiply-high, saturating pack, byte shuffle).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-boxblur/hwy"
//
//	// Widen 8 bytes to 16-bit lanes, scale, and pack back with saturation
//	v := hwy.PromoteLowerU8ToI16(hwy.LoadU8x16(src))
//	v = v.Mul(hwy.SetI16(5))
//	hwy.StoreLowerU8x8(hwy.DemoteTwoI16ToU8(v, v), dst)
package hwy

// Uint8x16 holds sixteen unsigned bytes, four interleaved B,G,R,A pixels.
type Uint8x16 [16]uint8

// Int8x16 holds sixteen signed bytes. Used for packed multiply-add weights.
type Int8x16 [16]int8

// Int16x8 holds eight signed 16-bit lanes.
type Int16x8 [8]int16

// Uint16x8 holds eight unsigned 16-bit lanes.
type Uint16x8 [8]uint16

// Lane counts per 128-bit vector.
const (
	// VectorBytes is the register width shared by every lane type.
	VectorBytes = 16

	LanesU8  = 16
	LanesI16 = 8
)
