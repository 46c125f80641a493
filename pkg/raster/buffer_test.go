package raster

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func makeSolid(w, h, channels int, r, g, b uint8) *Buffer {
	img := NewBuffer(w, h, channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, r, g, b)
			if channels == 4 {
				img.Pix[img.PixOffset(x, y)+3] = 255
			}
		}
	}
	return img
}

func makeRandom(w, h, channels int, seed int64) *Buffer {
	rng := rand.New(rand.NewSource(seed))
	img := NewBuffer(w, h, channels)
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func TestPixOffsetLayout(t *testing.T) {
	img := NewBuffer(4, 3, 3)
	img.SetRGB(1, 2, 10, 20, 30)
	i := (2*4 + 1) * 3
	if img.Pix[i] != 10 || img.Pix[i+1] != 20 || img.Pix[i+2] != 30 {
		t.Fatalf("pixel (1,2) landed at the wrong offset: % d", img.Pix[i:i+3])
	}
	r, g, b := img.RGB(1, 2)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("RGB(1,2) = %d,%d,%d", r, g, b)
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}
	buf := FromImage(src)
	if buf.Width != 5 || buf.Height != 4 || buf.Channels != 4 {
		t.Fatalf("unexpected buffer shape %dx%dx%d", buf.Width, buf.Height, buf.Channels)
	}
	out := buf.Image()
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("round trip through Buffer changed pixel bytes")
	}
}

func TestThreeChannelImageConversion(t *testing.T) {
	img := makeSolid(3, 3, 3, 9, 8, 7)
	out := img.Image()
	c := out.NRGBAAt(2, 2)
	want := color.NRGBA{R: 9, G: 8, B: 7, A: 255}
	if c != want {
		t.Fatalf("got %v, want %v", c, want)
	}
}

func TestAccessorModesAgree(t *testing.T) {
	img := makeRandom(7, 5, 4, 1)
	bulk := img.access(BulkAccess)
	scalar := img.access(ScalarAccess)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			br, bg, bb := bulk.RGB(x, y)
			sr, sg, sb := scalar.RGB(x, y)
			if br != sr || bg != sg || bb != sb {
				t.Fatalf("accessors disagree at (%d,%d)", x, y)
			}
		}
	}
}

func TestScalarAccessorPreservesAlpha(t *testing.T) {
	img := makeRandom(4, 4, 4, 2)
	img.Pix[img.PixOffset(1, 1)+3] = 42
	img.access(ScalarAccess).SetRGB(1, 1, 1, 2, 3)
	if a := img.Pix[img.PixOffset(1, 1)+3]; a != 42 {
		t.Fatalf("alpha changed to %d", a)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := makeRandom(4, 4, 3, 3)
	orig := append([]uint8(nil), img.Pix...)
	dup := img.Clone()
	for i := range dup.Pix {
		dup.Pix[i]++
	}
	if !bytes.Equal(img.Pix, orig) {
		t.Fatal("clone shares storage with original")
	}
}
