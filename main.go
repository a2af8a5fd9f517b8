package main

import (
	"context"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"log/slog"
	"transformer/api/rest"
	"transformer/config"
	"transformer/converter"
	"transformer/service"
	"transformer/shared/log"
	"transformer/shared/pool"
	"transformer/shared/trace"
)

//	@title			Image Transformer service
//	@version		1.0
//	@description	This is an API converting uploaded images to WebP

// @BasePath	/
func main() {
	serviceConfig := config.New()

	ctx := context.Background()

	tp := trace.InitTrace(serviceConfig.AppName)
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down tracer provider: %v", err)
		}
	}()

	logger := log.InitLogger(serviceConfig.LogLevel)
	defer func() {
		if err := logger.Sync(); err != nil {
			slog.Error("Error syncing logger: %v", err)
		}
	}()

	workers := pool.MustPool(serviceConfig.TransformWorkers, serviceConfig.TransformQueueDepth)
	defer workers.Close()

	app := fiber.New(fiber.Config{
		AppName:      serviceConfig.AppName,
		BodyLimit:    serviceConfig.BodyLimit(),
		ErrorHandler: rest.ErrorHandler(logger),
	})
	app.Use(
		recover.New(),
		otelfiber.Middleware(),
		fiberzap.New(fiberzap.Config{Logger: logger}),
		cors.New(),
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Image Transformer service",
		}),
	)

	transformService := service.NewTransformService(serviceConfig, workers, converter.MustWebp(logger), logger)

	rest.NewTransformController(app, serviceConfig, transformService, logger)

	if err := app.Listen(":" + serviceConfig.Port); err != nil {
		logger.Panic(err.Error())
		return
	}
}
