package halo

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func randomPixels(rng *rand.Rand, cfg Config) []uint8 {
	pix := make([]uint8, cfg.SourceLen())
	for i := range pix {
		pix[i] = uint8(rng.IntN(256))
	}
	return pix
}

func TestConfig(t *testing.T) {
	cfg := Config{Width: 403, Height: 200}
	if cfg.Stride() != 405 {
		t.Errorf("Stride: got %d, want 405", cfg.Stride())
	}
	if cfg.Rows() != 202 {
		t.Errorf("Rows: got %d, want 202", cfg.Rows())
	}
	if cfg.Len() != 405*202*4 {
		t.Errorf("Len: got %d, want %d", cfg.Len(), 405*202*4)
	}
	if cfg.SourceLen() != 403*200*4 {
		t.Errorf("SourceLen: got %d, want %d", cfg.SourceLen(), 403*200*4)
	}
	if cfg.String() != "403x200" {
		t.Errorf("String: got %q, want %q", cfg.String(), "403x200")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"ok", Config{Width: 1, Height: 1}, nil},
		{"zero width", Config{Width: 0, Height: 5}, ErrInvalidDimensions},
		{"zero height", Config{Width: 5, Height: 0}, ErrInvalidDimensions},
		{"negative", Config{Width: -3, Height: 5}, ErrInvalidDimensions},
		{"max int width", Config{Width: math.MaxInt, Height: 1}, ErrInvalidDimensions},
		{"product overflow", Config{Width: 1 << 40, Height: 1 << 40}, ErrInvalidDimensions},
		{"bytes overflow", Config{Width: math.MaxInt/8 - 2, Height: 1}, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Errorf("Validate(%v): got %v, want %v", tt.cfg, err, tt.err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	b, err := New(Config{Width: 10, Height: 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(b.Pix()) != 12*7*4 {
		t.Errorf("Pix length: got %d, want %d", len(b.Pix()), 12*7*4)
	}
	if b.Width() != 10 || b.Height() != 5 || b.Stride() != 12 {
		t.Errorf("geometry: got %dx%d stride %d", b.Width(), b.Height(), b.Stride())
	}

	if _, err := New(Config{Width: 0, Height: 5}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New zero width: got %v, want ErrInvalidDimensions", err)
	}
}

func TestNewAllocationFailure(t *testing.T) {
	prev := MaxBytes
	MaxBytes = 1024
	defer func() { MaxBytes = prev }()

	if _, err := New(Config{Width: 100, Height: 100}); !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("New over limit: got %v, want ErrAllocationFailure", err)
	}
	if _, err := New(Config{Width: 4, Height: 4}); err != nil {
		t.Errorf("New under limit: %v", err)
	}
}

func TestFromPixelsErrors(t *testing.T) {
	cfg := Config{Width: 4, Height: 3}
	if _, err := FromPixels(cfg, make([]uint8, cfg.SourceLen()-1)); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short source: got %v, want ErrBufferTooSmall", err)
	}
	if _, err := FromPixels(Config{Width: -1, Height: 3}, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width: got %v, want ErrInvalidDimensions", err)
	}
	// Trailing bytes are ignored
	if _, err := FromPixels(cfg, make([]uint8, cfg.SourceLen()+8)); err != nil {
		t.Errorf("long source: %v", err)
	}
}

func TestFromPixelsInterior(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := Config{Width: 7, Height: 5}
	src := randomPixels(rng, cfg)
	b, err := FromPixels(cfg, src)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	for y := range cfg.Height {
		for x := range cfg.Width {
			i := (y*cfg.Width + x) * Channels
			want := Pixel{src[i], src[i+1], src[i+2], src[i+3]}
			if got := b.At(x+1, y+1); got != want {
				t.Errorf("At(%d,%d): got %v, want %v", x+1, y+1, got, want)
			}
		}
	}
}

func TestReplicationInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	sizes := []Config{
		{Width: 1, Height: 1},
		{Width: 1, Height: 6},
		{Width: 6, Height: 1},
		{Width: 2, Height: 2},
		{Width: 17, Height: 9},
		{Width: 64, Height: 33},
	}
	for _, cfg := range sizes {
		t.Run(cfg.String(), func(t *testing.T) {
			b, err := FromPixels(cfg, randomPixels(rng, cfg))
			if err != nil {
				t.Fatalf("FromPixels: %v", err)
			}
			w, h := cfg.Width, cfg.Height
			for y := 1; y <= h; y++ {
				if b.At(0, y) != b.At(1, y) {
					t.Errorf("row %d: left halo %v != column 1 %v", y, b.At(0, y), b.At(1, y))
				}
				if b.At(w+1, y) != b.At(w, y) {
					t.Errorf("row %d: right halo %v != column %d %v", y, b.At(w+1, y), w, b.At(w, y))
				}
			}
			for x := 0; x <= w+1; x++ {
				if b.At(x, 0) != b.At(x, 1) {
					t.Errorf("column %d: top halo %v != row 1 %v", x, b.At(x, 0), b.At(x, 1))
				}
				if b.At(x, h+1) != b.At(x, h) {
					t.Errorf("column %d: bottom halo %v != row %d %v", x, b.At(x, h+1), h, b.At(x, h))
				}
			}
			corners := []struct {
				x, y, fromX, fromY int
			}{
				{0, 0, 1, 1},
				{w + 1, 0, w, 1},
				{0, h + 1, 1, h},
				{w + 1, h + 1, w, h},
			}
			for _, c := range corners {
				if got, want := b.At(c.x, c.y), b.At(c.fromX, c.fromY); got != want {
					t.Errorf("corner (%d,%d): got %v, want %v", c.x, c.y, got, want)
				}
			}
			if !b.Replicated() {
				t.Error("Replicated() reported false for a freshly built buffer")
			}
		})
	}
}

func TestReplicateAfterEdit(t *testing.T) {
	cfg := Config{Width: 3, Height: 3}
	b, err := FromPixels(cfg, make([]uint8, cfg.SourceLen()))
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	b.Set(3, 3, Pixel{1, 2, 3, 4})
	if b.Replicated() {
		t.Fatal("Replicated() should be false after editing an edge pixel")
	}
	b.Replicate()
	if !b.Replicated() {
		t.Fatal("Replicated() should be true after Replicate")
	}
	if got := b.At(4, 4); got != (Pixel{1, 2, 3, 4}) {
		t.Errorf("bottom-right corner: got %v, want [1 2 3 4]", got)
	}
}

func TestStripRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	cfg := Config{Width: 13, Height: 8}
	src := randomPixels(rng, cfg)

	b, err := FromPixels(cfg, src)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	stripped := b.Strip()
	if diff := cmp.Diff(src, stripped); diff != "" {
		t.Errorf("Strip mismatch (-want +got):\n%s", diff)
	}

	repadded, err := FromPixels(cfg, stripped)
	if err != nil {
		t.Fatalf("FromPixels(stripped): %v", err)
	}
	if !repadded.Equal(b) {
		t.Error("re-padding the stripped pixels did not reproduce the buffer")
	}

	if err := b.StripInto(make([]uint8, 3)); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("StripInto short: got %v, want ErrBufferTooSmall", err)
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	b, err := New(Config{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Set(-1, 0, Pixel{9, 9, 9, 9})
	b.Set(4, 0, Pixel{9, 9, 9, 9})
	if got := b.At(-1, 0); got != (Pixel{}) {
		t.Errorf("At(-1,0): got %v, want zero", got)
	}
	if got := b.At(0, 4); got != (Pixel{}) {
		t.Errorf("At(0,4): got %v, want zero", got)
	}
	if b.Row(-1) != nil || b.Row(4) != nil {
		t.Error("Row out of range should return nil")
	}
	if len(b.Row(3)) != 4*Channels {
		t.Errorf("Row(3) length: got %d, want %d", len(b.Row(3)), 4*Channels)
	}
}

func TestCloneAndCopy(t *testing.T) {
	cfg := Config{Width: 4, Height: 4}
	b, err := FromPixels(cfg, randomPixels(rand.New(rand.NewPCG(7, 8)), cfg))
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	clone := b.Clone()
	if !clone.Equal(b) {
		t.Fatal("Clone should equal the original")
	}
	clone.Set(1, 1, Pixel{0, 0, 0, 0})
	clone.Set(2, 2, Pixel{255, 255, 255, 255})
	if clone.Equal(b) {
		t.Error("Clone should be independent")
	}
	if err := clone.CopyFrom(b); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !clone.Equal(b) {
		t.Error("CopyFrom should restore equality")
	}

	other, _ := New(Config{Width: 5, Height: 4})
	if err := clone.CopyFrom(other); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("CopyFrom other shape: got %v, want ErrShapeMismatch", err)
	}
	if err := CheckShapes(b, other); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("CheckShapes: got %v, want ErrShapeMismatch", err)
	}
	if err := CheckShapes(b, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("CheckShapes nil: got %v, want ErrShapeMismatch", err)
	}
	if err := CheckShapes(b, clone); err != nil {
		t.Errorf("CheckShapes same: %v", err)
	}
	if diff := cmp.Diff(cfg, clone.Config()); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}
