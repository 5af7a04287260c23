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

package convolve

import (
	"github.com/ajroetker/go-boxblur/hwy"
)

// Fixed-point constants shared by the scalar and vector kernels.
const (
	// DivBy9 is ceil(65536/9). For every 16-bit sum s <= 9*255,
	// (s*DivBy9)>>16 equals floor(s/9).
	DivBy9 = 7282

	// Luma weights sum to 128 so the weighted sum is divided by a shift.
	LumaB     = 9
	LumaG     = 92
	LumaR     = 27
	LumaShift = 7

	// SharpenCenter is the centre weight of the cross-shaped sharpen kernel.
	SharpenCenter = 5

	// Opaque is the alpha written by Sharpen.
	Opaque = 255

	// DefaultBlurPasses approximates a Gaussian with repeated box blurs.
	DefaultBlurPasses = 3
)

// Pixels processed per vector call.
const (
	BoxBlurLanes   = 2
	GrayscaleLanes = 4
	SharpenLanes   = 4
)

var (
	// lumaWeights is {B, G, R, A} = {9, 92, 27, 0} for each of four pixels.
	lumaWeights = hwy.RepeatI8x4([4]int8{LumaB, LumaG, LumaR, 0})

	// alphaMask selects the alpha byte of each pixel.
	alphaMask = hwy.RepeatU8x4([4]uint8{0, 0, 0, 0xFF})

	// lumaSpread copies luma byte i into B, G and R of pixel i and zeroes alpha.
	lumaSpread = hwy.Uint8x16{
		0, 0, 0, 0x80,
		1, 1, 1, 0x80,
		2, 2, 2, 0x80,
		3, 3, 3, 0x80,
	}
)

// Clamp returns lo if n < lo, hi if n > hi, else n.
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampU8 clamps n to [0, 255].
func ClampU8(n int) uint8 {
	return uint8(Clamp(n, 0, 255))
}
