package minidock

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// interior reports whether a canvas pixel index lies inside the 72x72
// image area rather than in the black margin.
func interior(pixel int) bool {
	row := pixel / IconSize
	col := pixel % IconSize
	return row >= IconMargin && row < IconSize-IconMargin &&
		col >= IconMargin && col < IconSize-IconMargin
}

func TestIconStreamAllZero(t *testing.T) {
	stream, err := iconStream(make([]byte, ImageRasterSize))
	if err != nil {
		t.Fatalf("iconStream() err=%v", err)
	}
	if len(stream) != IconStreamSize {
		t.Fatalf("expected %d bytes, got %d", IconStreamSize, len(stream))
	}
	for i, b := range stream {
		if b != 0 {
			t.Fatalf("expected zero byte at offset %d, got %#x", i, b)
		}
	}
}

func TestIconStreamSolidRed(t *testing.T) {
	raster := make([]byte, ImageRasterSize)
	for i := 0; i < len(raster); i += 3 {
		raster[i] = 255
	}

	stream, err := iconStream(raster)
	if err != nil {
		t.Fatalf("iconStream() err=%v", err)
	}

	for pixel := 0; pixel < IconSize*IconSize; pixel++ {
		b, g, r := stream[pixel*3], stream[pixel*3+1], stream[pixel*3+2]
		if interior(pixel) {
			if b != 0 || g != 0 || r != 255 {
				t.Fatalf("pixel %d: expected BGR 0,0,255, got %d,%d,%d", pixel, b, g, r)
			}
		} else if b != 0 || g != 0 || r != 0 {
			t.Fatalf("margin pixel %d: expected black, got %d,%d,%d", pixel, b, g, r)
		}
	}
}

func TestIconStreamMirrorsColumns(t *testing.T) {
	// Mark the top-left source pixel; with the horizontal mirror it
	// must land on the right edge of the image area, on the canvas row
	// emitted for source row 0.
	raster := make([]byte, ImageRasterSize)
	raster[0], raster[1], raster[2] = 1, 2, 3

	stream, err := iconStream(raster)
	if err != nil {
		t.Fatalf("iconStream() err=%v", err)
	}

	dst := (IconMargin*IconSize + (IconSize - 1 - IconMargin)) * 3
	if stream[dst] != 3 || stream[dst+1] != 2 || stream[dst+2] != 1 {
		t.Fatalf("expected BGR 3,2,1 at offset %d, got %d,%d,%d",
			dst, stream[dst], stream[dst+1], stream[dst+2])
	}

	// Nothing else may be set.
	for i, b := range stream {
		if b != 0 && (i < dst || i > dst+2) {
			t.Fatalf("unexpected byte %#x at offset %d", b, i)
		}
	}
}

func TestIconStreamRejectsWrongSize(t *testing.T) {
	for _, size := range []int{0, 1, ImageRasterSize - 1, ImageRasterSize + 1, IconStreamSize} {
		if _, err := iconStream(make([]byte, size)); err != ErrInvalidImageSize {
			t.Fatalf("size %d: expected ErrInvalidImageSize, got %v", size, err)
		}
	}
}

func TestSolidIconStream(t *testing.T) {
	stream := solidIconStream(10, 20, 30)
	if len(stream) != IconStreamSize {
		t.Fatalf("expected %d bytes, got %d", IconStreamSize, len(stream))
	}
	for i := 0; i < len(stream); i += 3 {
		if stream[i] != 30 || stream[i+1] != 20 || stream[i+2] != 10 {
			t.Fatalf("offset %d: expected BGR 30,20,10, got %d,%d,%d",
				i, stream[i], stream[i+1], stream[i+2])
		}
	}
}

func TestRasterizeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 144, 144))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)

	raster := RasterizeImage(img)
	if len(raster) != ImageRasterSize {
		t.Fatalf("expected %d bytes, got %d", ImageRasterSize, len(raster))
	}
	// Sample the center; a solid image survives resampling unchanged.
	center := 3 * (ImageSize*(ImageSize/2) + ImageSize/2)
	if raster[center] != 255 || raster[center+1] != 0 || raster[center+2] != 0 {
		t.Fatalf("expected RGB 255,0,0 at center, got %d,%d,%d",
			raster[center], raster[center+1], raster[center+2])
	}
}
