package main

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-boxblur/hwy/contrib/convolve"
	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

func writeTestImage(t *testing.T, dir string, cfg halo.Config) (string, []uint8) {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))
	pix := make([]uint8, cfg.SourceLen())
	for i := range pix {
		pix[i] = uint8(rng.IntN(256))
	}
	name := filepath.Join(dir, "bird.raw")
	if err := os.WriteFile(name, pix, 0o644); err != nil {
		t.Fatal(err)
	}
	return name, pix
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		in   []string
		want []convolve.Filter
	}{
		{[]string{"blur"}, []convolve.Filter{convolve.FilterBoxBlur}},
		{[]string{" Sharpen", "", "blur", "sharpen"}, []convolve.Filter{convolve.FilterSharpen, convolve.FilterBoxBlur}},
		{[]string{"all"}, convolve.Filters},
		{[]string{"grey", "gray"}, []convolve.Filter{convolve.FilterGrayscale}},
	}
	for _, tt := range tests {
		got, err := parseFilters(tt.in)
		if err != nil {
			t.Errorf("parseFilters(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseFilters(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
	for _, in := range [][]string{{"emboss"}, {"", " "}, nil} {
		if _, err := parseFilters(in); !errors.Is(err, convolve.ErrInvalidOption) {
			t.Errorf("parseFilters(%q): got %v, want ErrInvalidOption", in, err)
		}
	}
}

func TestParseVariants(t *testing.T) {
	got, err := parseVariants("Both")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]convolve.Variant{convolve.VariantScalar, convolve.VariantVector}, got); diff != "" {
		t.Errorf("both mismatch (-want +got):\n%s", diff)
	}
	if got, err := parseVariants("scalar"); err != nil || len(got) != 1 || got[0] != convolve.VariantScalar {
		t.Errorf("parseVariants(scalar) = %v, %v", got, err)
	}
	if _, err := parseVariants("neon"); !errors.Is(err, convolve.ErrInvalidOption) {
		t.Errorf("parseVariants(neon): got %v, want ErrInvalidOption", err)
	}
}

func TestOutputName(t *testing.T) {
	if got, want := outputName("hachidorii", convolve.FilterSharpen, convolve.VariantScalar, false), "hachidorii_sharpen_scalar.raw"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := outputName("x", convolve.FilterBoxBlur, convolve.VariantVector, true), "x_blur_vector_halo.raw"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadRaw(t *testing.T) {
	dir := t.TempDir()
	cfg := halo.Config{Width: 3, Height: 2}
	name, pix := writeTestImage(t, dir, cfg)

	got, err := readRaw(name, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, pix) {
		t.Error("readRaw returned different bytes")
	}
	if _, err := readRaw(name, halo.Config{Width: 4, Height: 2}); !errors.Is(err, halo.ErrBufferTooSmall) {
		t.Errorf("short file: got %v, want ErrBufferTooSmall", err)
	}
	if _, err := readRaw(name, halo.Config{Width: 2, Height: 2}); !errors.Is(err, errRawSize) {
		t.Errorf("long file: got %v, want errRawSize", err)
	}
	if _, err := readRaw(filepath.Join(dir, "missing.raw"), cfg); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want ErrNotExist", err)
	}
}

func TestRunnerWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := halo.Config{Width: 9, Height: 5}
	input, pix := writeTestImage(t, dir, cfg)
	outDir := filepath.Join(dir, "out")

	var report bytes.Buffer
	r := &Runner{
		Input:    input,
		OutDir:   outDir,
		Config:   cfg,
		Filters:  convolve.Filters,
		Variants: []convolve.Variant{convolve.VariantScalar, convolve.VariantVector},
		Passes:   convolve.DefaultBlurPasses,
		KeepHalo: true,
		Repeat:   2,
		Out:      &report,
	}
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, f := range convolve.Filters {
		want, err := convolve.Apply(f, pix, cfg.Width, cfg.Height, convolve.WithVariant(convolve.VariantScalar))
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range r.Variants {
			got, err := os.ReadFile(filepath.Join(outDir, outputName("bird", f, v, false)))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != cfg.SourceLen() {
				t.Errorf("%v/%v: %d bytes, want %d", f, v, len(got), cfg.SourceLen())
			}
			if v == convolve.VariantScalar && !bytes.Equal(got, want.Pix) {
				t.Errorf("%v/%v: file differs from Apply", f, v)
			}
			padded, err := os.ReadFile(filepath.Join(outDir, outputName("bird", f, v, true)))
			if err != nil {
				t.Fatal(err)
			}
			if len(padded) != cfg.Len() {
				t.Errorf("%v/%v halo: %d bytes, want %d", f, v, len(padded), cfg.Len())
			}
		}
		if !strings.Contains(report.String(), f.String()+" ") {
			t.Errorf("report does not mention %v:\n%s", f, report.String())
		}
	}
	if got := strings.Count(report.String(), "max |scalar - vector|"); got != len(convolve.Filters) {
		t.Errorf("got %d comparison lines, want %d:\n%s", got, len(convolve.Filters), report.String())
	}
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := halo.Config{Width: 4, Height: 3}
	input, _ := writeTestImage(t, dir, cfg)

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--width=4", "--height=3", "--filters=grayscale", "--variant=vector", "-o", dir, input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "bird_grayscale_vector.raw")); err != nil {
		t.Errorf("missing output: %v", err)
	}

	cmd = newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--width=0", input})
	if err := cmd.Execute(); !errors.Is(err, halo.ErrInvalidDimensions) {
		t.Errorf("zero width: got %v, want ErrInvalidDimensions", err)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("BOXBLUR_TEST_INT", "640")
	if got := envInt("BOXBLUR_TEST_INT", 1); got != 640 {
		t.Errorf("got %d, want 640", got)
	}
	t.Setenv("BOXBLUR_TEST_INT", "wide")
	if got := envInt("BOXBLUR_TEST_INT", 1); got != 1 {
		t.Errorf("malformed: got %d, want 1", got)
	}
	if got := envInt("BOXBLUR_TEST_UNSET", 403); got != 403 {
		t.Errorf("unset: got %d, want 403", got)
	}
}
