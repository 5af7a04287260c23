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
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// BaseBoxBlur writes the box blur of src into dst two pixels per call.
//
// The nine neighbour values of each channel are widened to 16 bits and
// summed, then divided by 9 with an unsigned multiply-high by DivBy9.
func BaseBoxBlur(dst, src *halo.Buffer) error {
	div := hwy.SetU16(DivBy9)
	return vectorPass(dst, src, BoxBlurLanes, boxBlurPixel, func(out, in []uint8, o, rb int) {
		sum := hwy.PromoteLowerU8ToU16(hwy.LoadU8x8(in[o-rb-4:]))
		for _, d := range [...]int{-rb, -rb + 4, -4, 0, 4, rb - 4, rb, rb + 4} {
			sum = sum.Add(hwy.PromoteLowerU8ToU16(hwy.LoadU8x8(in[o+d:])))
		}
		q := hwy.BitCastU16ToI16(sum.MulHigh(div))
		hwy.StoreLowerU8x8(hwy.DemoteTwoI16ToU8(q, q), out[o:])
	})
}

// BaseGrayscale writes the grayscale conversion of src into dst four pixels
// per call.
//
// A packed multiply-add against {9, 92, 27, 0} yields (9B+92G, 27R) per
// pixel, a pairwise add completes the weighted sum and an arithmetic shift
// by 7 divides by 128. The luma bytes are spread into B, G and R and the
// input alpha is merged back unchanged.
func BaseGrayscale(dst, src *halo.Buffer) error {
	return vectorPass(dst, src, GrayscaleLanes, grayscalePixel, func(out, in []uint8, o, _ int) {
		v := hwy.LoadU8x16(in[o:])
		sums := hwy.MulAddPairsU8I8(v, lumaWeights)
		luma := sums.PairwiseAdd(sums).ShiftRight(LumaShift)
		gray := hwy.DemoteTwoI16ToU8(luma, luma).TableLookupBytes(lumaSpread)
		hwy.StoreU8x16(gray.Or(v.And(alphaMask)), out[o:])
	})
}

// BaseSharpen writes the sharpened src into dst four pixels per call.
//
// Centre and cross neighbours are widened to 16 bits, the centre is scaled
// by 5 and the neighbour sum subtracted. The saturating pack clamps to
// [0, 255] and alpha is forced opaque.
func BaseSharpen(dst, src *halo.Buffer) error {
	five := hwy.SetI16(SharpenCenter)
	return vectorPass(dst, src, SharpenLanes, sharpenPixel, func(out, in []uint8, o, rb int) {
		c := hwy.LoadU8x16(in[o:])
		e := hwy.LoadU8x16(in[o+4:])
		s := hwy.LoadU8x16(in[o+rb:])
		w := hwy.LoadU8x16(in[o-4:])
		n := hwy.LoadU8x16(in[o-rb:])

		lo := sharpenLanes(five,
			hwy.PromoteLowerU8ToI16(c), hwy.PromoteLowerU8ToI16(e), hwy.PromoteLowerU8ToI16(s),
			hwy.PromoteLowerU8ToI16(w), hwy.PromoteLowerU8ToI16(n))
		hi := sharpenLanes(five,
			hwy.PromoteUpperU8ToI16(c), hwy.PromoteUpperU8ToI16(e), hwy.PromoteUpperU8ToI16(s),
			hwy.PromoteUpperU8ToI16(w), hwy.PromoteUpperU8ToI16(n))
		hwy.StoreU8x16(hwy.DemoteTwoI16ToU8(lo, hi).Or(alphaMask), out[o:])
	})
}

func sharpenLanes(five, c, e, s, w, n hwy.Int16x8) hwy.Int16x8 {
	return c.Mul(five).SaturatedSub(e.Add(s).Add(w).Add(n))
}

// vectorKernel processes one group of lanes pixels starting at byte offset o.
type vectorKernel func(out, in []uint8, o, rb int)

// vectorPass runs vk over the largest multiple of lanes pixels in every
// interior row and finishes the row with the scalar kernel.
func vectorPass(dst, src *halo.Buffer, lanes int, scalar pixelKernel, vk vectorKernel) error {
	if err := halo.CheckShapes(dst, src); err != nil {
		return err
	}
	cfg := src.Config()
	in, out := src.Pix(), dst.Pix()
	rb := cfg.RowBytes()
	for y := 1; y <= cfg.Height; y++ {
		row := src.Offset(1, y)
		hwy.ProcessWithTail(cfg.Width, lanes,
			func(x int) {
				vk(out, in, row+x*halo.Channels, rb)
			},
			func(x, count int) {
				scalarSpan(out, in, row+x*halo.Channels, rb, count, scalar)
			},
		)
	}
	return nil
}
