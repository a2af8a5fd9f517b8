package service

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"transformer/api/model"
	"transformer/config"
	"transformer/converter"
	img "transformer/converter/image"
	"transformer/shared/apperror"
	"transformer/shared/log"
	"transformer/shared/pool"
)

type TransformService struct {
	config *config.Config

	pool    *pool.Pool
	encoder *converter.Webp
	logger  *zap.Logger
}

func NewTransformService(c *config.Config, p *pool.Pool, encoder *converter.Webp, logger *zap.Logger) *TransformService {
	return &TransformService{config: c, pool: p, encoder: encoder, logger: logger}
}

// Transform hands the decode, resize and encode steps to the worker pool and
// waits for the outcome, so the CPU-bound work never runs on an I/O thread.
func (t *TransformService) Transform(ctx context.Context, params model.TransformRequest) (*model.TransformResult, error) {
	logger := log.LoggerWithTrace(ctx, t.logger)

	var (
		result  *model.TransformResult
		failure error
	)

	if err := t.pool.Do(ctx, func() {
		result, failure = t.process(ctx, params)
	}); err != nil {
		logger.Warn("Transformation abandoned", zap.Error(err))
		return nil, err
	}

	return result, failure
}

func (t *TransformService) process(ctx context.Context, params model.TransformRequest) (*model.TransformResult, error) {
	logger := log.LoggerWithTrace(ctx, t.logger)

	raster, imageType, err := converter.Decode(params.Image)
	if err != nil {
		logger.Warn("Error decoding image", zap.Error(err))
		return nil, apperror.UnsupportedImage(err)
	}

	logger.Debug(fmt.Sprintf("Processing %s image of %d bytes", imageType, len(params.Image)))

	if params.Size != nil {
		raster = img.WithSize(params.Size.Width, params.Size.Height)(raster)
	}

	body, err := t.encoder.Encode(ctx, raster, params.Quality)
	if err != nil {
		return nil, apperror.EncodingFailed(err)
	}

	return &model.TransformResult{Body: body, ContentType: model.WebpContentType}, nil
}
