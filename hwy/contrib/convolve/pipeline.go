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
	"fmt"
	"time"

	"github.com/ajroetker/go-boxblur/hwy"
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// Options configures a Pipeline.
type Options struct {
	// Passes is how many times box blur runs. Other filters run once.
	Passes int

	// BlurMode selects double-buffered or in-place repeated blur passes.
	BlurMode BlurMode

	// Variant selects the scalar or vector kernels.
	Variant Variant

	// KeepHalo returns the full padded buffer instead of stripping it.
	KeepHalo bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns three double-buffered blur passes with the
// CPU-selected kernels and the halo stripped from results.
func DefaultOptions() Options {
	return Options{
		Passes:   DefaultBlurPasses,
		BlurMode: BlurPingPong,
		Variant:  VariantAuto,
	}
}

// WithPasses sets the number of box blur passes.
func WithPasses(n int) Option {
	return func(o *Options) { o.Passes = n }
}

// WithBlurMode sets how repeated blur passes share buffers.
func WithBlurMode(m BlurMode) Option {
	return func(o *Options) { o.BlurMode = m }
}

// WithVariant selects the kernel set.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithHalo keeps the padding ring in results, for inspecting edge handling.
func WithHalo(keep bool) Option {
	return func(o *Options) { o.KeepHalo = keep }
}

// Validate checks every option is in range.
func (o Options) Validate() error {
	if o.Passes < 1 {
		return fmt.Errorf("%w: passes must be >= 1, got %d", ErrInvalidOption, o.Passes)
	}
	if o.BlurMode != BlurPingPong && o.BlurMode != BlurInPlace {
		return fmt.Errorf("%w: blur mode %d", ErrInvalidOption, o.BlurMode)
	}
	if o.Variant < VariantAuto || o.Variant > VariantVector {
		return fmt.Errorf("%w: variant %d", ErrInvalidOption, o.Variant)
	}
	return nil
}

// Result is a filtered image. Without KeepHalo, Pix holds Width*Height
// unpadded pixels; with it, Width and Height are the padded dimensions.
type Result struct {
	Pix    []uint8
	Width  int
	Height int
	Halo   bool
}

// Pipeline applies filters to images of one fixed geometry.
// It holds no mutable state and may be reused for any number of images.
type Pipeline struct {
	cfg  halo.Config
	opts Options
}

// NewPipeline validates cfg and the options.
func NewPipeline(cfg halo.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, opts: o}, nil
}

// Config returns the image geometry.
func (p *Pipeline) Config() halo.Config {
	return p.cfg
}

// Options returns the pipeline options.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Pad builds the halo-padded buffer for an unpadded source.
func (p *Pipeline) Pad(pix []uint8) (*halo.Buffer, error) {
	return halo.FromPixels(p.cfg, pix)
}

// Run pads pix, applies f and returns the result.
func (p *Pipeline) Run(f Filter, pix []uint8) (Result, error) {
	src, err := p.Pad(pix)
	if err != nil {
		return Result{}, fmt.Errorf("%v: %w", f, err)
	}
	out, err := p.Process(f, src)
	if err != nil {
		return Result{}, err
	}
	return p.Emit(out), nil
}

// Process applies f to the padded buffer src and returns a new padded
// buffer with a replicated halo. src is not modified.
func (p *Pipeline) Process(f Filter, src *halo.Buffer) (*halo.Buffer, error) {
	if src == nil || src.Config() != p.cfg {
		return nil, fmt.Errorf("%v: %w: pipeline is %v", f, halo.ErrShapeMismatch, p.cfg)
	}
	kernel, err := KernelFor(f, p.opts.Variant)
	if err != nil {
		return nil, err
	}
	passes := 1
	if f == FilterBoxBlur {
		passes = p.opts.Passes
	}

	log := Logger().With("filter", f.String(), "variant", p.opts.Variant.Resolve().String())
	if p.opts.Variant.Resolve() == VariantVector && !hwy.IsAligned(p.cfg.Width, f.Lanes()) {
		log.Debug("scalar tail", "columns", p.cfg.Width%f.Lanes(), "lanes", f.Lanes())
	}

	if passes > 1 && p.opts.BlurMode == BlurInPlace {
		// The first pass reads src; later passes overwrite their own input.
		work, err := halo.New(p.cfg)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", f, err)
		}
		cur := src
		for i := range passes {
			start := time.Now()
			if err := kernel(work, cur); err != nil {
				return nil, fmt.Errorf("%v pass %d: %w", f, i+1, err)
			}
			work.Replicate()
			cur = work
			log.Debug("pass", "mode", BlurInPlace.String(), "pass", i+1, "elapsed", time.Since(start))
		}
		return work, nil
	}

	var bufs [2]*halo.Buffer
	cur := src
	for i := range passes {
		start := time.Now()
		dst := bufs[i%2]
		if dst == nil {
			if dst, err = halo.New(p.cfg); err != nil {
				return nil, fmt.Errorf("%v pass %d: %w", f, i+1, err)
			}
			bufs[i%2] = dst
		}
		if err := kernel(dst, cur); err != nil {
			return nil, fmt.Errorf("%v pass %d: %w", f, i+1, err)
		}
		dst.Replicate()
		cur = dst
		log.Debug("pass", "mode", BlurPingPong.String(), "pass", i+1, "elapsed", time.Since(start))
	}
	return cur, nil
}

// Emit converts a processed buffer into a Result, stripping the halo
// unless KeepHalo is set.
func (p *Pipeline) Emit(buf *halo.Buffer) Result {
	if p.opts.KeepHalo {
		cfg := buf.Config()
		return Result{Pix: buf.Pix(), Width: cfg.Stride(), Height: cfg.Rows(), Halo: true}
	}
	return Result{Pix: buf.Strip(), Width: buf.Width(), Height: buf.Height()}
}

// Apply runs a single filter over an unpadded width x height image.
func Apply(f Filter, pix []uint8, width, height int, opts ...Option) (Result, error) {
	p, err := NewPipeline(halo.Config{Width: width, Height: height}, opts...)
	if err != nil {
		return Result{}, err
	}
	return p.Run(f, pix)
}
