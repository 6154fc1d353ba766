package minidock

import (
	"image"
	_ "image/gif"  // Allow gifs to be loaded
	_ "image/jpeg" // Allow jpegs to be loaded
	_ "image/png"  // Allow pngs to be loaded
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp" // Allow bmps to be loaded
)

// iconStream converts a top-left-origin RGB raster into the pixel
// order the panel scans: the 72x72 image centered on the 80x80 canvas
// behind a black margin, rows bottom-up, columns mirrored, channels as
// BGR. The panel mounting dictates the mirroring, so the mapping is
// kept literal rather than composed from generic flips.
func iconStream(raster []byte) ([]byte, error) {
	if len(raster) != ImageRasterSize {
		return nil, ErrInvalidImageSize
	}

	const rowSize = IconSize * 3
	stream := make([]byte, IconStreamSize) // margins stay zero = black

	for y := 0; y < ImageSize; y++ {
		row := stream[(IconMargin+y)*rowSize:]
		for x := 0; x < ImageSize; x++ {
			src := 3 * (ImageSize*y + (ImageSize - 1 - x))
			dst := (IconMargin + x) * 3
			row[dst] = raster[src+2]
			row[dst+1] = raster[src+1]
			row[dst+2] = raster[src]
		}
	}
	return stream, nil
}

// solidIconStream fills the whole canvas, margins included, with one
// color.
func solidIconStream(red, green, blue byte) []byte {
	stream := make([]byte, IconStreamSize)
	for i := 0; i < IconStreamSize; i += 3 {
		stream[i] = blue
		stream[i+1] = green
		stream[i+2] = red
	}
	return stream
}

// RasterizeImage resizes an image to the key dimensions and returns it
// as the raw RGB raster WriteRawImageToButton expects.
func RasterizeImage(img image.Image) []byte {
	g := gift.New(gift.Resize(ImageSize, ImageSize, gift.LanczosResampling))
	res := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(res, img)

	raster := make([]byte, ImageRasterSize)
	for y := 0; y < ImageSize; y++ {
		for x := 0; x < ImageSize; x++ {
			i := res.PixOffset(x, y)
			o := 3 * (ImageSize*y + x)
			raster[o] = res.Pix[i]
			raster[o+1] = res.Pix[i+1]
			raster[o+2] = res.Pix[i+2]
		}
	}
	return raster
}

func getImageFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
