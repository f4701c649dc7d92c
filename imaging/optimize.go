// Package imaging transcodes and resizes uploaded product photographs
// before they are published. Optimization is downscale-only and
// deterministic: the same input bytes and options always produce the
// same output.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
	"golang.org/x/image/draw"
)

// Format is a supported output encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

const (
	defaultMaxDimension = 1920
	defaultQuality      = 85
	thumbnailSize       = 300
	thumbnailQuality    = 75
	// Inputs under this size pass through unmodified.
	optimizeThreshold = 500 << 10
)

// Options control a single optimization run. Zero values take the
// documented defaults.
type Options struct {
	MaxWidth  int    // default 1920
	MaxHeight int    // default 1920
	Quality   int    // 1-100, default 85
	Format    Format // default webp
	// Progressive requests progressive scan output where the encoder
	// supports it. The stdlib jpeg encoder emits baseline scans, so the
	// flag currently only shapes intent for future encoders.
	Progressive bool
}

func (o *Options) setDefaults() {
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxDimension
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = defaultMaxDimension
	}
	if o.Quality <= 0 {
		o.Quality = defaultQuality
	}
	if o.Format == "" {
		o.Format = FormatWebP
	}
}

// Result describes an optimized variant.
type Result struct {
	Buffer           []byte
	Width            int
	Height           int
	Format           Format
	Size             int
	OriginalSize     int
	CompressionRatio float64 // percent saved, two decimals
}

// Optimize decodes src, scales it down to fit the configured bounds
// (never up), and re-encodes it in the target format. Decode and encode
// failures are hard errors: the upload aborts and nothing is retried.
func Optimize(src []byte, opts Options) (Result, error) {
	opts.setDefaults()

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}

	img = scaleToFit(img, opts.MaxWidth, opts.MaxHeight)

	buf, err := encode(img, opts.Format, opts.Quality)
	if err != nil {
		return Result{}, err
	}

	bounds := img.Bounds()
	return Result{
		Buffer:           buf,
		Width:            bounds.Dx(),
		Height:           bounds.Dy(),
		Format:           opts.Format,
		Size:             len(buf),
		OriginalSize:     len(src),
		CompressionRatio: ratio(len(src), len(buf)),
	}, nil
}

// CreateThumbnail produces a square-bounded low-quality webp variant for
// fast initial paint. size <= 0 uses the default 300px bound.
func CreateThumbnail(src []byte, size int) (Result, error) {
	if size <= 0 {
		size = thumbnailSize
	}
	return Optimize(src, Options{
		MaxWidth:  size,
		MaxHeight: size,
		Quality:   thumbnailQuality,
		Format:    FormatWebP,
	})
}

// ShouldOptimize gates the optimization pass: small inputs are published
// as-is. threshold <= 0 uses the default 500KiB.
func ShouldOptimize(src []byte, threshold int) bool {
	if threshold <= 0 {
		threshold = optimizeThreshold
	}
	return len(src) > threshold
}

// Dimensions reads the pixel size of an encoded image without a full
// decode.
func Dimensions(src []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ContentType returns the MIME type for a format.
func ContentType(f Format) string {
	switch f {
	case FormatAVIF:
		return "image/avif"
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return "image/webp"
	}
}

// Ext returns the file extension for a format, without the dot.
func Ext(f Format) string {
	switch f {
	case FormatAVIF:
		return "avif"
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	default:
		return "webp"
	}
}

// scaleToFit clamps the longer side to its bound and derives the shorter
// side from the aspect ratio. Images already inside the bounds are
// returned untouched.
func scaleToFit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encode(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatWebP:
		err = webp.Encode(&buf, img, webp.Options{Quality: quality, Method: 4})
	case FormatAVIF:
		err = avif.Encode(&buf, img, avif.Options{Quality: quality})
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// ratio is the percentage saved, rounded to two decimals. Negative when
// the encode grew the file.
func ratio(originalSize, newSize int) float64 {
	if originalSize == 0 {
		return 0
	}
	r := float64(originalSize-newSize) / float64(originalSize) * 100
	return math.Round(r*100) / 100
}
