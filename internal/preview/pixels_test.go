package preview

import (
	"image"
	"image/color"
	"testing"
)

func TestToRGBA_Opaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	buf := toRGBA(img)

	want := []byte{10, 20, 30, 255, 200, 100, 50, 255}
	for i, b := range want {
		if buf[i] != b {
			t.Errorf("byte %d: expected %d, got %d", i, b, buf[i])
		}
	}
}

func TestToRGBA_Premultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	buf := toRGBA(img)

	if buf[0] != 100 || buf[1] != 50 || buf[2] != 25 {
		t.Errorf("expected premultiplied (100, 50, 25), got (%d, %d, %d)", buf[0], buf[1], buf[2])
	}
	if buf[3] != 128 {
		t.Errorf("expected alpha 128, got %d", buf[3])
	}
}
