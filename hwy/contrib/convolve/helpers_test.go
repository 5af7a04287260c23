package convolve

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

var variants = []Variant{VariantScalar, VariantVector}

func randomPixels(seed uint64, cfg halo.Config) []uint8 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	pix := make([]uint8, cfg.SourceLen())
	for i := range pix {
		pix[i] = uint8(rng.IntN(256))
	}
	return pix
}

func uniformPixels(cfg halo.Config, p halo.Pixel) []uint8 {
	pix := make([]uint8, cfg.SourceLen())
	for i := 0; i < len(pix); i += halo.Channels {
		copy(pix[i:], p[:])
	}
	return pix
}

func mustPad(t testing.TB, cfg halo.Config, pix []uint8) *halo.Buffer {
	t.Helper()
	b, err := halo.FromPixels(cfg, pix)
	if err != nil {
		t.Fatalf("FromPixels(%v): %v", cfg, err)
	}
	return b
}

func mustNew(t testing.TB, cfg halo.Config) *halo.Buffer {
	t.Helper()
	b, err := halo.New(cfg)
	if err != nil {
		t.Fatalf("New(%v): %v", cfg, err)
	}
	return b
}

func mustApply(t testing.TB, f Filter, pix []uint8, cfg halo.Config, opts ...Option) Result {
	t.Helper()
	res, err := Apply(f, pix, cfg.Width, cfg.Height, opts...)
	if err != nil {
		t.Fatalf("Apply(%v, %v): %v", f, cfg, err)
	}
	return res
}

func pixelAt(res Result, x, y int) halo.Pixel {
	var p halo.Pixel
	copy(p[:], res.Pix[(y*res.Width+x)*halo.Channels:])
	return p
}
