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

package halo

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Channels is the number of interleaved bytes per pixel.
const Channels = 4

// Channel offsets inside a pixel.
const (
	B = iota
	G
	R
	A
)

var (
	// ErrInvalidDimensions reports a non-positive width or height, or a
	// padded size that does not fit in an int.
	ErrInvalidDimensions = errors.New("halo: invalid dimensions")

	// ErrBufferTooSmall reports a pixel source shorter than width*height*4 bytes.
	ErrBufferTooSmall = errors.New("halo: buffer too small")

	// ErrAllocationFailure reports that the padded buffer could not be allocated.
	ErrAllocationFailure = errors.New("halo: allocation failure")

	// ErrShapeMismatch reports two buffers with different configurations.
	ErrShapeMismatch = errors.New("halo: shape mismatch")
)

// Config is the immutable geometry shared by a padded buffer and every
// kernel that reads it. Width and Height are the logical (unpadded) size.
type Config struct {
	Width  int
	Height int
}

// Stride returns the padded row length in pixels.
func (c Config) Stride() int {
	return c.Width + 2
}

// Rows returns the padded row count.
func (c Config) Rows() int {
	return c.Height + 2
}

// RowBytes returns the padded row length in bytes.
func (c Config) RowBytes() int {
	return c.Stride() * Channels
}

// Len returns the padded buffer length in bytes. Call Validate first; Len
// does not check for overflow.
func (c Config) Len() int {
	return c.Stride() * c.Rows() * Channels
}

// SourceLen returns the unpadded buffer length in bytes.
func (c Config) SourceLen() int {
	return c.Width * c.Height * Channels
}

// Validate checks that both dimensions are positive and that the padded
// buffer size is representable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Width > math.MaxInt-2 || c.Height > math.MaxInt-2 {
		return fmt.Errorf("%w: %dx%d overflows padded size", ErrInvalidDimensions, c.Width, c.Height)
	}
	hi, lo := bits.Mul64(uint64(c.Stride()), uint64(c.Rows()))
	if hi != 0 || lo > math.MaxInt/Channels {
		return fmt.Errorf("%w: %dx%d overflows padded size", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

// String returns "WxH".
func (c Config) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}
