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
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// pixelKernel computes the output pixel for the padded byte offset o.
// rb is the padded row length in bytes.
type pixelKernel func(pix []uint8, o, rb int) halo.Pixel

// BoxBlurPixel returns the per-channel floor average of the 3x3
// neighbourhood centred at padded coordinate (x, y).
func BoxBlurPixel(src *halo.Buffer, x, y int) halo.Pixel {
	return boxBlurPixel(src.Pix(), src.Offset(x, y), src.Config().RowBytes())
}

// GrayscalePixel returns (luma, luma, luma, alpha) for the pixel at padded
// coordinate (x, y).
func GrayscalePixel(src *halo.Buffer, x, y int) halo.Pixel {
	return grayscalePixel(src.Pix(), src.Offset(x, y), src.Config().RowBytes())
}

// SharpenPixel returns the cross-sharpened pixel at padded coordinate (x, y).
func SharpenPixel(src *halo.Buffer, x, y int) halo.Pixel {
	return sharpenPixel(src.Pix(), src.Offset(x, y), src.Config().RowBytes())
}

func boxBlurPixel(pix []uint8, o, rb int) halo.Pixel {
	var p halo.Pixel
	for c := range halo.Channels {
		i := o + c
		sum := int(pix[i-rb-4]) + int(pix[i-rb]) + int(pix[i-rb+4]) +
			int(pix[i-4]) + int(pix[i]) + int(pix[i+4]) +
			int(pix[i+rb-4]) + int(pix[i+rb]) + int(pix[i+rb+4])
		p[c] = uint8(sum / 9)
	}
	return p
}

func grayscalePixel(pix []uint8, o, _ int) halo.Pixel {
	luma := uint8((LumaB*int(pix[o+halo.B]) + LumaG*int(pix[o+halo.G]) + LumaR*int(pix[o+halo.R])) >> LumaShift)
	return halo.Pixel{luma, luma, luma, pix[o+halo.A]}
}

func sharpenPixel(pix []uint8, o, rb int) halo.Pixel {
	p := halo.Pixel{halo.A: Opaque}
	for c := halo.B; c <= halo.R; c++ {
		i := o + c
		n := SharpenCenter*int(pix[i]) - int(pix[i+4]) - int(pix[i+rb]) - int(pix[i-4]) - int(pix[i-rb])
		p[c] = ClampU8(n)
	}
	return p
}

// BoxBlurScalar writes the box blur of src into dst one pixel at a time.
func BoxBlurScalar(dst, src *halo.Buffer) error {
	return scalarPass(dst, src, boxBlurPixel)
}

// GrayscaleScalar writes the grayscale conversion of src into dst one pixel
// at a time.
func GrayscaleScalar(dst, src *halo.Buffer) error {
	return scalarPass(dst, src, grayscalePixel)
}

// SharpenScalar writes the sharpened src into dst one pixel at a time.
func SharpenScalar(dst, src *halo.Buffer) error {
	return scalarPass(dst, src, sharpenPixel)
}

func scalarPass(dst, src *halo.Buffer, k pixelKernel) error {
	if err := halo.CheckShapes(dst, src); err != nil {
		return err
	}
	cfg := src.Config()
	in, out := src.Pix(), dst.Pix()
	rb := cfg.RowBytes()
	for y := 1; y <= cfg.Height; y++ {
		scalarSpan(out, in, src.Offset(1, y), rb, cfg.Width, k)
	}
	return nil
}

// scalarSpan runs k over n consecutive pixels starting at byte offset o.
// Each result is stored before the next pixel is read.
func scalarSpan(out, in []uint8, o, rb, n int, k pixelKernel) {
	for range n {
		p := k(in, o, rb)
		copy(out[o:o+halo.Channels], p[:])
		o += halo.Channels
	}
}
