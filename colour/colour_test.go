package colour

import "testing"

func TestToRGBA8Clamps(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want RGBA8
	}{
		{"black", Color{}, RGBA8{0, 0, 0, 255}},
		{"white", White, RGBA8{255, 255, 255, 255}},
		{"over-bright clamps", Color{R: 2, G: 2, B: 2}, RGBA8{255, 255, 255, 255}},
		{"negative clamps", Color{R: -1, G: -1, B: -1}, RGBA8{0, 0, 0, 255}},
		{"half", Color{R: 0.5, G: 0.5, B: 0.5}, RGBA8{128, 128, 128, 255}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.ToRGBA8(255); got != c.want {
				t.Fatalf("ToRGBA8 = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestMixEndpoints(t *testing.T) {
	a, b := Black, White
	if got := Mix(a, b, 0); got != a {
		t.Fatalf("Mix(a,b,0) = %v, want %v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Fatalf("Mix(a,b,1) = %v, want %v", got, b)
	}
}

func TestMulIsHadamard(t *testing.T) {
	a := Color{R: 0.5, G: 0.2, B: 1}
	b := Color{R: 2, G: 0.5, B: 0}
	got := a.Mul(b)
	want := Color{R: 1, G: 0.1, B: 0}
	if got != want {
		t.Fatalf("Mul = %v, want %v", got, want)
	}
}
