package imaging

//go:generate go run go.uber.org/mock/mockgen -source=./imaging.go -destination=./mocks/imaging_mock.go -package=mocks

import (
	"bytes"
	"concierge/config"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

const (
	defaultMaxWidth  = 1600
	defaultMaxHeight = 1200
	defaultQuality   = 85

	formatJPEG = "jpeg"
	formatPNG  = "png"

	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Result is an encoded image ready to be stored.
type Result struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

type Processor interface {
	Fit(reader io.Reader) (Result, error)
}

type processorImpl struct {
	maxWidth  int
	maxHeight int
	quality   int
}

func New(cfg *config.Config) Processor {
	p := &processorImpl{
		maxWidth:  cfg.External.Image.MaxWidth,
		maxHeight: cfg.External.Image.MaxHeight,
		quality:   cfg.External.Image.Quality,
	}

	if p.maxWidth <= 0 {
		p.maxWidth = defaultMaxWidth
	}

	if p.maxHeight <= 0 {
		p.maxHeight = defaultMaxHeight
	}

	if p.quality <= 0 || p.quality > 100 {
		p.quality = defaultQuality
	}

	return p
}

// Fit decodes the image and shrinks it to the configured bounds, keeping the aspect ratio.
// Images already within bounds are re-encoded unchanged.
func (p *processorImpl) Fit(reader io.Reader) (Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxWidth || bounds.Dy() > p.maxHeight {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	buf := bytes.NewBuffer(nil)
	result := Result{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}

	switch format {
	case formatJPEG:
		result.ContentType = ContentTypeJPEG
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: p.quality})
	case formatPNG:
		result.ContentType = ContentTypePNG
		err = png.Encode(buf, img)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return Result{}, fmt.Errorf("failed to encode image: %w", err)
	}

	result.Data = buf.Bytes()

	return result, nil
}
