package config

import (
	"github.com/caarlos0/env/v8"
	"log/slog"
	"runtime"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"Image transformer"`
	Port     string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MaxImageSizeMB int `env:"MAX_IMAGE_SIZE_MB" envDefault:"100"`

	TransformWorkers    int `env:"TRANSFORM_WORKERS" envDefault:"0"`
	TransformQueueDepth int `env:"TRANSFORM_QUEUE_DEPTH" envDefault:"0"`
}

func New() *Config {
	conf := &Config{}

	if err := env.Parse(conf); err != nil {
		slog.Error(err.Error())

		panic("Failed to parse config")
	}

	if conf.TransformWorkers <= 0 {
		conf.TransformWorkers = runtime.NumCPU()
	}
	if conf.TransformQueueDepth <= 0 {
		conf.TransformQueueDepth = conf.TransformWorkers * 2
	}

	return conf
}

func (c *Config) MaxImageBytes() int64 {
	return int64(c.MaxImageSizeMB) << 20
}

// BodyLimit leaves headroom for multipart framing above the image cap so
// oversize uploads reach the handler instead of being cut off by fasthttp.
func (c *Config) BodyLimit() int {
	return int(c.MaxImageBytes()) + 1<<20
}
