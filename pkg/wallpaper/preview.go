package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
	_ "golang.org/x/image/webp" // register webp with image.Decode
)

// analysisEdge bounds the image handed to the crop analyzer. Scoring a full-size
// wallpaper is slow and the crop only needs to be roughly right at thumbnail scale.
const analysisEdge = 640

// DecodeImage decodes raster bytes, honouring EXIF orientation.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrImageDecode)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return img, nil
}

// Previewer produces the narrow thumbnails shown in the side slots.
type Previewer struct {
	width     int
	height    int
	resampler imaging.ResampleFilter
}

// NewPreviewer creates a Previewer producing width x height thumbnails.
func NewPreviewer(width, height int) *Previewer {
	return &Previewer{width: width, height: height, resampler: imaging.Lanczos}
}

// Preview crops img around its most interesting region and scales it to the preview size.
// It falls back to a centered fill when the analyzer cannot find a crop.
func (p *Previewer) Preview(ctx context.Context, img image.Image) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrImageDecode)
	}

	src := img
	if b := img.Bounds(); b.Dx() > analysisEdge || b.Dy() > analysisEdge {
		src = imaging.Fit(img, analysisEdge, analysisEdge, p.resampler)
	}

	cropped, err := p.cropImage(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return imaging.Fill(src, p.width, p.height, imaging.Center, p.resampler), nil
	}
	return imaging.Resize(cropped, p.width, p.height, p.resampler), nil
}

// cropImage finds the best width:height crop of img.
func (p *Previewer) cropImage(ctx context.Context, img image.Image) (image.Image, error) {
	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: p.resampler})

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		topCrop, err := analyzer.FindBestCrop(img, p.width, p.height)
		resultChan <- cropResult{crop: topCrop, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("finding best crop: %w", result.err)
		}
		if result.crop.Empty() {
			return nil, fmt.Errorf("analyzer returned an empty crop")
		}
		return imaging.Crop(img, result.crop), nil
	}
}

// resizer implements the smartcrop.Resizer interface on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize scales img to width x height.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
