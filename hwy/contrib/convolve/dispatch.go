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
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-boxblur/hwy"
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// ErrInvalidOption reports an unknown filter, variant or blur mode, or an
// out-of-range pipeline option.
var ErrInvalidOption = errors.New("convolve: invalid option")

// Kernel writes one filter pass over the interior of dst from src.
type Kernel func(dst, src *halo.Buffer) error

// Filter selects one of the fixed 3x3 filters.
type Filter int

const (
	FilterBoxBlur Filter = iota
	FilterGrayscale
	FilterSharpen
)

// Filters lists every filter in declaration order.
var Filters = []Filter{FilterBoxBlur, FilterGrayscale, FilterSharpen}

// String returns the filter's short name.
func (f Filter) String() string {
	switch f {
	case FilterBoxBlur:
		return "blur"
	case FilterGrayscale:
		return "grayscale"
	case FilterSharpen:
		return "sharpen"
	default:
		return "unknown"
	}
}

// Lanes returns the number of pixels the vector kernel handles per call.
func (f Filter) Lanes() int {
	switch f {
	case FilterBoxBlur:
		return BoxBlurLanes
	case FilterGrayscale:
		return GrayscaleLanes
	case FilterSharpen:
		return SharpenLanes
	default:
		return 1
	}
}

// ParseFilter maps a name ("blur", "box", "grayscale", "gray", "sharpen")
// to a Filter.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blur", "box", "boxblur":
		return FilterBoxBlur, nil
	case "grayscale", "gray", "grey":
		return FilterGrayscale, nil
	case "sharpen":
		return FilterSharpen, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter %q", ErrInvalidOption, name)
	}
}

// Variant selects the scalar or the lane-parallel kernel set.
type Variant int

const (
	// VariantAuto uses the vector kernels unless the dispatch level is scalar.
	VariantAuto Variant = iota
	VariantScalar
	VariantVector
)

// String returns the variant's short name.
func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantScalar:
		return "scalar"
	case VariantVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Resolve maps VariantAuto to the variant selected for the running CPU.
func (v Variant) Resolve() Variant {
	if v == VariantAuto {
		return autoVariant
	}
	return v
}

// ParseVariant maps "auto", "scalar" or "vector" (alias "simd") to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return VariantAuto, nil
	case "scalar":
		return VariantScalar, nil
	case "vector", "simd":
		return VariantVector, nil
	default:
		return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidOption, name)
	}
}

// BlurMode selects how repeated box blur passes share buffers.
type BlurMode int

const (
	// BlurPingPong alternates between two buffers, so every pass reads only
	// the previous pass's output.
	BlurPingPong BlurMode = iota

	// BlurInPlace writes the first pass to a fresh buffer and then reads
	// and writes that one buffer for every later pass. North and west
	// neighbours then already hold the current pass's values, which skews
	// the result toward the top-left; kept for parity with legacy output.
	BlurInPlace
)

// String returns the mode's short name.
func (m BlurMode) String() string {
	switch m {
	case BlurPingPong:
		return "pingpong"
	case BlurInPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

// ParseBlurMode maps "pingpong" or "inplace" to a BlurMode.
func ParseBlurMode(name string) (BlurMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pingpong", "ping-pong", "double", "":
		return BlurPingPong, nil
	case "inplace", "in-place", "legacy":
		return BlurInPlace, nil
	default:
		return 0, fmt.Errorf("%w: unknown blur mode %q", ErrInvalidOption, name)
	}
}

// Package-level kernels dispatched for the running CPU.
var (
	BoxBlur   Kernel
	Grayscale Kernel
	Sharpen   Kernel
)

// autoVariant is what VariantAuto resolves to.
var autoVariant Variant

func init() {
	selectKernels(hwy.CurrentLevel())
}

func selectKernels(level hwy.DispatchLevel) {
	if level == hwy.DispatchScalar {
		autoVariant = VariantScalar
		BoxBlur = BoxBlurScalar
		Grayscale = GrayscaleScalar
		Sharpen = SharpenScalar
		return
	}
	autoVariant = VariantVector
	BoxBlur = BaseBoxBlur
	Grayscale = BaseGrayscale
	Sharpen = BaseSharpen
}

// KernelFor returns the kernel implementing f in variant v.
func KernelFor(f Filter, v Variant) (Kernel, error) {
	switch v.Resolve() {
	case VariantScalar:
		switch f {
		case FilterBoxBlur:
			return BoxBlurScalar, nil
		case FilterGrayscale:
			return GrayscaleScalar, nil
		case FilterSharpen:
			return SharpenScalar, nil
		}
	case VariantVector:
		switch f {
		case FilterBoxBlur:
			return BaseBoxBlur, nil
		case FilterGrayscale:
			return BaseGrayscale, nil
		case FilterSharpen:
			return BaseSharpen, nil
		}
	default:
		return nil, fmt.Errorf("%w: variant %d", ErrInvalidOption, v)
	}
	return nil, fmt.Errorf("%w: filter %d", ErrInvalidOption, f)
}
