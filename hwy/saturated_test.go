package hwy

import "testing"

func TestMulAddPairsU8I8(t *testing.T) {
	pixels := Uint8x16{
		10, 20, 30, 40,
		255, 255, 255, 255,
		0, 0, 0, 0,
		1, 2, 3, 4,
	}
	weights := RepeatI8x4([4]int8{9, 92, 27, 0})
	got := MulAddPairsU8I8(pixels, weights)
	want := Int16x8{
		9*10 + 92*20, 27 * 30,
		9*255 + 92*255, 27 * 255,
		0, 0,
		9*1 + 92*2, 27 * 3,
	}
	if got != want {
		t.Errorf("MulAddPairsU8I8: got %v, want %v", got, want)
	}
}

func TestMulAddPairsU8I8Saturates(t *testing.T) {
	got := MulAddPairsU8I8(SetU8(255), func() Int8x16 {
		var w Int8x16
		for i := range w {
			if i%4 < 2 {
				w[i] = 127
			} else {
				w[i] = -128
			}
		}
		return w
	}())
	// 255*127*2 = 64770 > 32767, 255*-128*2 = -65280 < -32768
	for i := range got {
		want := int16(32767)
		if i%2 == 1 {
			want = -32768
		}
		if got[i] != want {
			t.Errorf("MulAddPairsU8I8 saturation: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestSaturatedAddSub(t *testing.T) {
	a := Int16x8{32760, -32760, 100, 0, 5, -5, 1, -1}
	b := Int16x8{10, 10, 50, 0, 5, 5, 1, 1}

	add := a.SaturatedAdd(b)
	wantAdd := Int16x8{32767, -32750, 150, 0, 10, 0, 2, 0}
	if add != wantAdd {
		t.Errorf("SaturatedAdd: got %v, want %v", add, wantAdd)
	}

	sub := a.SaturatedSub(b)
	wantSub := Int16x8{32750, -32768, 50, 0, 0, -10, 0, -2}
	if sub != wantSub {
		t.Errorf("SaturatedSub: got %v, want %v", sub, wantSub)
	}
}
