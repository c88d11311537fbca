package settings

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// watermarkMargin is the distance in pixels from the bottom right corner.
const watermarkMargin = 10

// addVersionWatermark stamps "Version: <version>" into the bottom right corner of img.
func addVersionWatermark(img image.Image, version string) image.Image {
	versionString := fmt.Sprintf("Version: %s", version)
	b := img.Bounds()

	watermark := imaging.New(b.Dx(), b.Dy(), color.Transparent)

	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  watermark,
		Src:  image.NewUniform(color.RGBA{100, 50, 0, 200}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Dx() - textWidth - watermarkMargin),
			Y: fixed.I(b.Dy() - watermarkMargin),
		},
	}
	d.DrawString(versionString)

	return imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
}
