package rest

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"io"
	"transformer/api/model"
	"transformer/config"
	"transformer/service"
	"transformer/shared/apperror"
	"transformer/shared/log"
)

type TransformController struct {
	cfg     *config.Config
	service *service.TransformService
	logger  *zap.Logger
}

func NewTransformController(app *fiber.App, cfg *config.Config, service *service.TransformService, logger *zap.Logger) *TransformController {
	t := &TransformController{cfg: cfg, service: service, logger: logger}

	app.Get("/healthz", t.Healthz)
	app.Post("/transform", t.Transform)

	return t
}

// Healthz liveness probe
//
//	@Summary		Liveness probe
//	@Description	Always answers OK, independent of transformation state.
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string	"OK"
//	@Router			/healthz [get]
func (t *TransformController) Healthz(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// Transform image
//
//	@Summary		Convert an uploaded image to WebP
//	@Description	Accepts a PNG, JPEG or WebP upload, optionally resizes it to an exact WIDTHxHEIGHT, and returns a WebP encoding at the requested quality.
//	@Tags			transform
//	@Accept			mpfd
//	@Produce		image/webp
//	@Param			image	formData	file	true	"Image payload"
//	@Param			size	formData	string	false	"Target size as WIDTHxHEIGHT"
//	@Param			quality	formData	number	false	"Quality 0.0-100.0, 100 is lossless"
//	@Success		200	{file}		file	"WebP bytes"
//	@Failure		400	{string}	string	"validation or decode failure"
//	@Failure		500	{string}	string	"encoding failure"
//	@Router			/transform [post]
func (t *TransformController) Transform(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger := log.LoggerWithTrace(ctx, t.logger)

	params, err := t.parseRequest(c)
	if err != nil {
		logger.Warn("Invalid transform request", zap.Error(err))
		return err
	}

	result, err := t.service.Transform(ctx, *params)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, result.ContentType)

	return c.Send(result.Body)
}

func (t *TransformController) parseRequest(c *fiber.Ctx) (*model.TransformRequest, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, apperror.MissingImage()
	}
	if fileHeader.Size > t.cfg.MaxImageBytes() {
		return nil, apperror.PayloadTooLarge(t.cfg.MaxImageBytes())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(data) == 0 {
		return nil, apperror.MissingImage()
	}

	params := &model.TransformRequest{Image: data, Quality: model.DefaultQuality}

	if raw := c.FormValue("size"); raw != "" {
		size, err := model.MakeSizeFromString(raw)
		if err != nil {
			return nil, apperror.InvalidSizeFormat(raw)
		}
		params.Size = size
	}

	if raw := c.FormValue("quality"); raw != "" {
		quality, err := model.MakeQualityFromString(raw)
		if err != nil {
			return nil, apperror.InvalidQuality(raw)
		}
		params.Quality = quality
	}

	return params, nil
}
