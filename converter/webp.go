package converter

import (
	"bytes"
	"context"
	"fmt"
	"github.com/chai2010/webp"
	"go.uber.org/zap"
	"image"
	"transformer/shared/log"
)

type Webp struct {
	logger *zap.Logger
}

func MustWebp(logger *zap.Logger) *Webp {
	return &Webp{logger: logger}
}

// Encode writes img as WebP. Quality 100 switches to lossless mode, anything
// below maps straight onto the encoder's 0-100 lossy quality scale.
func (w *Webp) Encode(ctx context.Context, img image.Image, quality float32) ([]byte, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug(fmt.Sprintf("Converting image to webp with quality: %f", quality))

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: quality == 100, Quality: quality}); err != nil {
		logger.Error("Error converting image to webp", zap.Error(err))
		return nil, err
	}

	return buf.Bytes(), nil
}
