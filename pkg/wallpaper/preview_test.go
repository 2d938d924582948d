package wallpaper

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(testPNG(32, 16, testColor))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())

	_, err = DecodeImage([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrImageDecode)

	_, err = DecodeImage(nil)
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestPreviewerSize(t *testing.T) {
	p := NewPreviewer(PreviewWidth, PreviewHeight)
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 1920, 1080},
		{"portrait", 400, 900},
		{"small", 40, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			for x := tt.w / 3; x < tt.w/2; x++ {
				for y := 0; y < tt.h; y++ {
					src.Set(x, y, color.White)
				}
			}
			out, err := p.Preview(context.Background(), src)
			require.NoError(t, err)
			assert.Equal(t, PreviewWidth, out.Bounds().Dx())
			assert.Equal(t, PreviewHeight, out.Bounds().Dy())
		})
	}
}

func TestPreviewerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPreviewer(10, 10).Preview(ctx, image.NewNRGBA(image.Rect(0, 0, 20, 20)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreviewerEmptyImage(t *testing.T) {
	_, err := NewPreviewer(10, 10).Preview(context.Background(), image.NewNRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrImageDecode)
}
