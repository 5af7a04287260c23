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


// Package contrib holds the image convolution packages built on the hwy
// lane types.
//
// # Subpackages
//
//   - halo: padded pixel buffers with a one-pixel replicated border
//   - convolve: box blur, grayscale and sharpen kernels plus the filter driver
//
// # Halo Buffers (hwy/contrib/halo)
//
//	import "github.com/ajroetker/go-boxblur/hwy/contrib/halo"
//
//	cfg := halo.Config{Width: 403, Height: 403}
//	buf, err := halo.FromPixels(cfg, pix)
//
// # Filters (hwy/contrib/convolve)
//
//	import "github.com/ajroetker/go-boxblur/hwy/contrib/convolve"
//
//	res, err := convolve.Apply(convolve.FilterBoxBlur, pix, 403, 403,
//	    convolve.WithPasses(3), convolve.WithVariant(convolve.VariantVector))
//
// Kernels come in a per-pixel scalar set and a 128-bit lane set. The auto
// variant picks the lane set unless HWY_NO_SIMD is set or the CPU lacks a
// usable vector unit.
package contrib
