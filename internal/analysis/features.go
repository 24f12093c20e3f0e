// Package analysis implements the deterministic scoring and recommendation
// engines. Everything here is a pure function of its inputs; persistence and
// point awarding live elsewhere.
package analysis

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/mkazarin/skinaid/internal/models"
)

// FallbackFeatures are substituted whenever a selfie cannot be decoded.
// Image errors are never fatal to an analysis.
var FallbackFeatures = models.ImageFeatures{
	Brightness: 150.0 / 255.0,
	Contrast:   1.0,
	Redness:    1.0,
}

// ExtractImageFeatures reduces a JPEG/PNG selfie to three scalars:
//   - Brightness: mean of the per-channel means, normalized to [0,1].
//   - Contrast: 0.5 when the raw brightness is below 100 or above 200,
//     otherwise 1.0.
//   - Redness: 1.2 when the red channel mean exceeds both other channel
//     means by more than 10%, otherwise 1.0.
//
// On any decode failure the fixed fallback features are returned.
func ExtractImageFeatures(r io.Reader) models.ImageFeatures {
	if r == nil {
		return FallbackFeatures
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return FallbackFeatures
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return FallbackFeatures
	}

	var rSum, gSum, bSum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			rSum += float64(cr >> 8)
			gSum += float64(cg >> 8)
			bSum += float64(cb >> 8)
		}
	}
	n := float64(bounds.Dx()) * float64(bounds.Dy())
	rMean, gMean, bMean := rSum/n, gSum/n, bSum/n
	brightness := (rMean + gMean + bMean) / 3 // 0..255 scale

	contrast := 1.0
	if brightness < 100 || brightness > 200 {
		contrast = 0.5
	}

	redness := 1.0
	if rMean > gMean*1.1 && rMean > bMean*1.1 {
		redness = 1.2
	}

	return models.ImageFeatures{
		Brightness: brightness / 255.0,
		Contrast:   contrast,
		Redness:    redness,
	}
}
