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

// Package convolve provides 3x3 pixel filters over halo-padded B,G,R,A
// buffers, each in a scalar reference form and a lane-parallel form.
//
// # Filters
//
//	BoxBlur   // per-channel floor average of the 3x3 neighbourhood
//	Grayscale // luma = (9*B + 92*G + 27*R) >> 7, alpha preserved
//	Sharpen   // 5*C - E - S - W - N clamped to [0, 255], alpha forced opaque
//
// Every kernel has the signature func(dst, src *halo.Buffer) error and
// writes the interior of dst from the interior and halo of src. dst and src
// may be the same buffer; reads then observe pixels already written earlier
// in the row-major traversal.
//
// # Variants
//
// BoxBlurScalar, GrayscaleScalar and SharpenScalar compute one pixel at a
// time with plain integer arithmetic. BaseBoxBlur, BaseGrayscale and
// BaseSharpen use the 128-bit lane types from package hwy with fixed-point
// constants: box blur divides by 9 with an unsigned multiply-high by
// DivBy9, grayscale uses a packed multiply-add against the luma weights,
// sharpen relies on the saturating pack for clamping. Columns left over
// after the last full vector call are finished by the scalar kernel.
//
// The package-level BoxBlur, Grayscale and Sharpen variables hold the
// variant picked for the running CPU (scalar when HWY_NO_SIMD is set).
//
// # Usage Example
//
//	p, err := convolve.NewPipeline(halo.Config{Width: 403, Height: 403})
//	if err != nil {
//	    return err
//	}
//	res, err := p.Run(convolve.FilterBoxBlur, raw)
package convolve
