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


package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-boxblur/hwy/contrib/convolve"
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// Runner applies a set of filters to one raw image file.
type Runner struct {
	Input    string
	OutDir   string
	Config   halo.Config
	Filters  []convolve.Filter
	Variants []convolve.Variant
	BlurMode convolve.BlurMode
	Passes   int
	KeepHalo bool
	Repeat   int

	Log *slog.Logger
	Out io.Writer
}

// Run reads the input, applies every filter with every variant and writes
// the results to OutDir.
func (r *Runner) Run() error {
	if r.Log == nil {
		r.Log = convolve.Logger()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	pix, err := readRaw(r.Input, r.Config)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	stem := strings.TrimSuffix(filepath.Base(r.Input), filepath.Ext(r.Input))

	for _, f := range r.Filters {
		var results []convolve.Result
		for _, v := range r.Variants {
			res, err := r.apply(f, v, pix, stem)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		if len(results) == 2 {
			d, err := convolve.MaxAbsDiff(results[0], results[1])
			if err != nil {
				return fmt.Errorf("%v: compare variants: %w", f, err)
			}
			fmt.Fprintf(r.Out, "%-9v max |%v - %v| = %d\n", f, r.Variants[0], r.Variants[1], d)
		}
	}
	return nil
}

func (r *Runner) apply(f convolve.Filter, v convolve.Variant, pix []uint8, stem string) (convolve.Result, error) {
	opts := []convolve.Option{
		convolve.WithVariant(v),
		convolve.WithBlurMode(r.BlurMode),
		convolve.WithPasses(r.Passes),
	}
	p, err := convolve.NewPipeline(r.Config, opts...)
	if err != nil {
		return convolve.Result{}, fmt.Errorf("%v: %w", f, err)
	}
	src, err := p.Pad(pix)
	if err != nil {
		return convolve.Result{}, fmt.Errorf("%v: %w", f, err)
	}

	var out *halo.Buffer
	start := time.Now()
	for range r.Repeat {
		if out, err = p.Process(f, src); err != nil {
			return convolve.Result{}, err
		}
	}
	mean := time.Since(start) / time.Duration(r.Repeat)

	res := p.Emit(out)
	name := filepath.Join(r.OutDir, outputName(stem, f, v, false))
	if err := writeRaw(name, res.Pix); err != nil {
		return convolve.Result{}, fmt.Errorf("%v: %w", f, err)
	}
	fmt.Fprintf(r.Out, "%-9v %-6v %12v  %s\n", f, v.Resolve(), mean, name)
	r.Log.Debug("wrote", "filter", f.String(), "variant", v.Resolve().String(), "file", name, "repeat", r.Repeat)

	if r.KeepHalo {
		hp, err := convolve.NewPipeline(r.Config, append(opts, convolve.WithHalo(true))...)
		if err != nil {
			return convolve.Result{}, fmt.Errorf("%v: %w", f, err)
		}
		padded := hp.Emit(out)
		haloName := filepath.Join(r.OutDir, outputName(stem, f, v, true))
		if err := writeRaw(haloName, padded.Pix); err != nil {
			return convolve.Result{}, fmt.Errorf("%v: %w", f, err)
		}
		fmt.Fprintf(r.Out, "%-9v %-6v %12s  %s (%dx%d)\n", f, v.Resolve(), "", haloName, padded.Width, padded.Height)
	}
	return res, nil
}

// outputName returns <stem>_<filter>_<variant>.raw, with a _halo suffix
// for padded results.
func outputName(stem string, f convolve.Filter, v convolve.Variant, padded bool) string {
	name := stem + "_" + f.String() + "_" + v.Resolve().String()
	if padded {
		name += "_halo"
	}
	return name + ".raw"
}

// parseFilters parses a filter list. Names are case-insensitive, blanks and
// duplicates are dropped and "all" selects every filter.
func parseFilters(names []string) ([]convolve.Filter, error) {
	names = lo.Filter(lo.Map(names, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	}), func(s string, _ int) bool {
		return s != ""
	})
	if lo.Contains(names, "all") {
		return slices.Clone(convolve.Filters), nil
	}
	filters := make([]convolve.Filter, 0, len(names))
	for _, n := range names {
		f, err := convolve.ParseFilter(n)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	filters = lo.Uniq(filters)
	if len(filters) == 0 {
		return nil, fmt.Errorf("%w: no filters selected", convolve.ErrInvalidOption)
	}
	return filters, nil
}

// parseVariants accepts a single variant name or "both".
func parseVariants(name string) ([]convolve.Variant, error) {
	if strings.EqualFold(strings.TrimSpace(name), "both") {
		return []convolve.Variant{convolve.VariantScalar, convolve.VariantVector}, nil
	}
	v, err := convolve.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	return []convolve.Variant{v}, nil
}
