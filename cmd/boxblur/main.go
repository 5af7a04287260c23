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


// Command boxblur applies the convolve filters to a raw 32-bit BGRA image.
//
// Usage:
//
//	boxblur hachidorii.raw
//	boxblur --width 640 --height 480 --filters blur,sharpen --variant both in.raw
//	boxblur --blur-mode inplace --passes 3 --halo --out-dir out in.raw
//
// The input is a headerless file of width*height pixels, four bytes each,
// such as the output of ffmpeg -pix_fmt rgb32. For every selected filter and
// variant it writes <stem>_<filter>_<variant>.raw to the output directory and
// reports the mean wall-clock time over --repeat runs.
//
// BOXBLUR_WIDTH and BOXBLUR_HEIGHT override the default geometry.
// HWY_NO_SIMD forces the scalar kernels for the auto variant.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-boxblur/hwy"
	"github.com/ajroetker/go-boxblur/hwy/contrib/convolve"
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

const (
	defaultInput = "hachidorii.raw"
	defaultSize  = 403
)

type flags struct {
	width, height int
	outDir        string
	filters       []string
	variant       string
	blurMode      string
	passes        int
	keepHalo      bool
	repeat        int
	verbose       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "boxblur [input.raw]",
		Short:         "Blur, grayscale and sharpen raw BGRA images",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			log := newLogger(f.verbose)
			convolve.SetLogger(log)
			defer convolve.SetLogger(nil)

			r, err := f.runner(input)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			r.Log = log
			r.Out = cmd.OutOrStdout()
			log.Debug("dispatch", "level", hwy.CurrentLevel().String(), "target", hwy.CurrentName(),
				"width", hwy.CurrentWidth(), "no_simd", hwy.NoSimdEnv())
			if err := r.Run(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			return nil
		},
	}
	addFlags(cmd.Flags(), &f)
	return cmd
}

func addFlags(fs *pflag.FlagSet, f *flags) {
	fs.IntVar(&f.width, "width", envInt("BOXBLUR_WIDTH", defaultSize), "Image width in pixels")
	fs.IntVar(&f.height, "height", envInt("BOXBLUR_HEIGHT", defaultSize), "Image height in pixels")
	fs.StringVarP(&f.outDir, "out-dir", "o", ".", "Output directory")
	fs.StringSliceVarP(&f.filters, "filters", "f", []string{"blur", "grayscale", "sharpen"}, "Filters to apply, comma separated, or 'all'")
	fs.StringVar(&f.variant, "variant", "auto", "Kernel set: auto, scalar, vector or both")
	fs.StringVar(&f.blurMode, "blur-mode", "pingpong", "Repeated blur passes: pingpong or inplace")
	fs.IntVar(&f.passes, "passes", convolve.DefaultBlurPasses, "Box blur passes")
	fs.BoolVar(&f.keepHalo, "halo", false, "Also write the padded result with its halo ring")
	fs.IntVar(&f.repeat, "repeat", 1, "Timing repetitions per filter")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log every pass")
}

func (f *flags) runner(input string) (*Runner, error) {
	cfg := halo.Config{Width: f.width, Height: f.height}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	filters, err := parseFilters(f.filters)
	if err != nil {
		return nil, err
	}
	variants, err := parseVariants(f.variant)
	if err != nil {
		return nil, err
	}
	mode, err := convolve.ParseBlurMode(f.blurMode)
	if err != nil {
		return nil, err
	}
	if f.repeat < 1 {
		return nil, fmt.Errorf("%w: repeat must be >= 1, got %d", convolve.ErrInvalidOption, f.repeat)
	}
	return &Runner{
		Input:    input,
		OutDir:   f.outDir,
		Config:   cfg,
		Filters:  filters,
		Variants: variants,
		BlurMode: mode,
		Passes:   f.passes,
		KeepHalo: f.keepHalo,
		Repeat:   f.repeat,
	}, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// envInt returns the integer value of the named environment variable, or
// def when it is unset or malformed.
func envInt(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
