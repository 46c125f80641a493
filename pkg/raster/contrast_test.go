package raster

import (
	"bytes"
	"testing"
)

func TestContrastZeroIsIdentity(t *testing.T) {
	img := makeRandom(8, 8, 4, 50)
	out, err := Contrast(img, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Fatal("contrast 0 should leave the image unchanged")
	}
}

func TestContrastPushesChannelsApart(t *testing.T) {
	img := makeSolid(2, 2, 4, 200, 50, 128)
	out, err := Contrast(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := out.RGB(0, 0)
	// 2*(200-127.5)+127.5 = 272.5 -> 255; 2*(50-127.5)+127.5 = -27.5 -> 0;
	// 2*(128-127.5)+127.5 = 128.5 -> 129 after rounding.
	if r != 255 || g != 0 || b != 129 {
		t.Fatalf("got %d,%d,%d, want 255,0,129", r, g, b)
	}
}

func TestContrastRangeValidation(t *testing.T) {
	img := makeSolid(2, 2, 4, 1, 2, 3)
	for _, amount := range []float64{-0.01, 1.01, 2} {
		if _, err := Contrast(img, amount); err == nil {
			t.Fatalf("contrast %g should be rejected", amount)
		}
	}
}
