package minidock

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
)

// TextRaster renders a short label onto a key-sized background and
// returns it as an RGB raster ready for WriteRawImageToButton.
// fontData must be a TTF file's contents.
func TextRaster(text string, fontData []byte, fontSize float64, fg, bg color.Color) ([]byte, error) {
	fnt, err := truetype.Parse(fontData)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}

	img := image.NewRGBA(image.Rect(0, 0, ImageSize, ImageSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fnt)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(fg))

	pt := freetype.Pt(IconMargin, IconMargin+int(ctx.PointToFixed(fontSize)>>6))
	if _, err := ctx.DrawString(text, pt); err != nil {
		return nil, errors.Wrap(err, "drawing label")
	}

	return RasterizeImage(img), nil
}
