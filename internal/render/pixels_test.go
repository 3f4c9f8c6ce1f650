package render

import (
	"image/color"
	"testing"

	"torus-life/internal/life"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, expected %v", buf, want)
		}
	}
}

func TestFrameFill(t *testing.T) {
	e, err := life.New(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	e.Toggle(life.Coord{X: 2, Y: 1})
	f := NewFrame(3)
	px := f.Fill(e, DarkTheme)
	if len(px) != 3*3*4 {
		t.Fatalf("frame length = %d", len(px))
	}
	for i := 0; i < 9; i++ {
		want := byte(0)
		if i == 1*3+2 {
			want = 255
		}
		if px[i*4] != want || px[i*4+3] != 255 {
			t.Fatalf("pixel %d = %v, expected red %d", i, px[i*4:i*4+4], want)
		}
	}

	e.Toggle(life.Coord{X: 2, Y: 1})
	px = f.Fill(e, LightTheme)
	for i := 0; i < 9; i++ {
		if px[i*4] != 255 {
			t.Fatalf("pixel %d not cleared to background", i)
		}
	}
}
