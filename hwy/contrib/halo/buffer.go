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
	"bytes"
	"fmt"
)

// MaxBytes caps a single padded allocation. Larger requests fail with
// ErrAllocationFailure instead of exhausting memory.
var MaxBytes = 1 << 30

// Pixel is one B,G,R,A pixel.
type Pixel [Channels]uint8

// Buffer is a padded B,G,R,A image. Row 0, row Height+1, column 0 and
// column Width+1 form the halo.
type Buffer struct {
	cfg Config
	pix []uint8
}

// New allocates a zeroed padded buffer for cfg.
func New(cfg Config) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pix, err := allocate(cfg.Len())
	if err != nil {
		return nil, err
	}
	return &Buffer{cfg: cfg, pix: pix}, nil
}

// FromPixels builds a padded buffer from a tightly packed row-major source
// of cfg.Width*cfg.Height pixels and replicates its border into the halo.
// Extra trailing bytes in src are ignored.
func FromPixels(cfg Config, src []uint8) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(src) < cfg.SourceLen() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %v", ErrBufferTooSmall, len(src), cfg.SourceLen(), cfg)
	}
	b, err := New(cfg)
	if err != nil {
		return nil, err
	}
	srcRow := cfg.Width * Channels
	for y := range cfg.Height {
		copy(b.pix[b.Offset(1, y+1):], src[y*srcRow:(y+1)*srcRow])
	}
	b.Replicate()
	return b, nil
}

// allocate returns a zeroed slice of n bytes, converting oversize requests
// and makeslice panics into ErrAllocationFailure.
func allocate(n int) (pix []uint8, err error) {
	if n > MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocationFailure, n, MaxBytes)
	}
	defer func() {
		if r := recover(); r != nil {
			pix, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()
	return make([]uint8, n), nil
}

// Config returns the buffer geometry.
func (b *Buffer) Config() Config {
	return b.cfg
}

// Width returns the logical image width in pixels.
func (b *Buffer) Width() int {
	return b.cfg.Width
}

// Height returns the logical image height in pixels.
func (b *Buffer) Height() int {
	return b.cfg.Height
}

// Stride returns the padded row length in pixels.
func (b *Buffer) Stride() int {
	return b.cfg.Stride()
}

// Pix returns the full padded byte slice. Kernels index it directly with
// Offset and the fixed neighbour offsets.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Offset returns the byte offset of padded coordinate (x, y).
func (b *Buffer) Offset(x, y int) int {
	return (y*b.cfg.Stride() + x) * Channels
}

// Row returns padded row y, halo columns included.
func (b *Buffer) Row(y int) []uint8 {
	if y < 0 || y >= b.cfg.Rows() {
		return nil
	}
	rb := b.cfg.RowBytes()
	return b.pix[y*rb : (y+1)*rb]
}

// At returns the pixel at padded coordinate (x, y).
// Out-of-range coordinates return the zero pixel.
func (b *Buffer) At(x, y int) Pixel {
	if !b.inPadded(x, y) {
		return Pixel{}
	}
	var p Pixel
	copy(p[:], b.pix[b.Offset(x, y):])
	return p
}

// Set writes the pixel at padded coordinate (x, y).
// Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, p Pixel) {
	if !b.inPadded(x, y) {
		return
	}
	copy(b.pix[b.Offset(x, y):], p[:])
}

func (b *Buffer) inPadded(x, y int) bool {
	return x >= 0 && x < b.cfg.Stride() && y >= 0 && y < b.cfg.Rows()
}

// Replicate rewrites the halo from the interior: first column 0 and column
// Width+1 of every interior row, then row 0 and row Height+1 as full copies
// of rows 1 and Height.
func (b *Buffer) Replicate() {
	w, h := b.cfg.Width, b.cfg.Height
	for y := 1; y <= h; y++ {
		copy(b.pix[b.Offset(0, y):b.Offset(1, y)], b.pix[b.Offset(1, y):])
		copy(b.pix[b.Offset(w+1, y):b.Offset(w+2, y)], b.pix[b.Offset(w, y):])
	}
	copy(b.Row(0), b.Row(1))
	copy(b.Row(h+1), b.Row(h))
}

// Replicated reports whether the halo matches the interior edges.
func (b *Buffer) Replicated() bool {
	w, h := b.cfg.Width, b.cfg.Height
	for y := 1; y <= h; y++ {
		if b.At(0, y) != b.At(1, y) || b.At(w+1, y) != b.At(w, y) {
			return false
		}
	}
	return bytes.Equal(b.Row(0), b.Row(1)) && bytes.Equal(b.Row(h+1), b.Row(h))
}

// Strip returns the interior pixels as a tightly packed unpadded slice.
func (b *Buffer) Strip() []uint8 {
	out := make([]uint8, b.cfg.SourceLen())
	b.stripInto(out)
	return out
}

// StripInto copies the interior pixels into dst, which must hold at least
// Width*Height*4 bytes.
func (b *Buffer) StripInto(dst []uint8) error {
	if len(dst) < b.cfg.SourceLen() {
		return fmt.Errorf("%w: got %d bytes, want %d for %v", ErrBufferTooSmall, len(dst), b.cfg.SourceLen(), b.cfg)
	}
	b.stripInto(dst)
	return nil
}

func (b *Buffer) stripInto(dst []uint8) {
	rowBytes := b.cfg.Width * Channels
	for y := range b.cfg.Height {
		start := b.Offset(1, y+1)
		copy(dst[y*rowBytes:(y+1)*rowBytes], b.pix[start:start+rowBytes])
	}
}

// SameShape returns true if both buffers have the same configuration.
func (b *Buffer) SameShape(other *Buffer) bool {
	return other != nil && b.cfg == other.cfg
}

// Equal returns true if both buffers have the same shape and bytes,
// halo included.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.SameShape(other) && bytes.Equal(b.pix, other.pix)
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{
		cfg: b.cfg,
		pix: make([]uint8, len(b.pix)),
	}
	copy(clone.pix, b.pix)
	return clone
}

// CopyFrom overwrites b with the contents of src.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if !b.SameShape(src) {
		return mismatch(b, src)
	}
	copy(b.pix, src.pix)
	return nil
}

// CheckShapes returns ErrShapeMismatch unless dst and src share a configuration.
func CheckShapes(dst, src *Buffer) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil buffer", ErrShapeMismatch)
	}
	if !dst.SameShape(src) {
		return mismatch(dst, src)
	}
	return nil
}

func mismatch(a, b *Buffer) error {
	var bcfg Config
	if b != nil {
		bcfg = b.cfg
	}
	return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.cfg, bcfg)
}
