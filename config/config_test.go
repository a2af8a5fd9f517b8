package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"runtime"
	"testing"
)

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "PORT", "LOG_LEVEL",
		"MAX_IMAGE_SIZE_MB", "TRANSFORM_WORKERS", "TRANSFORM_QUEUE_DEPTH",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestNewDefaults(t *testing.T) {
	unsetConfigEnv(t)

	conf := New()

	assert.Equal(t, "3000", conf.Port)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, 100, conf.MaxImageSizeMB)
	assert.Equal(t, runtime.NumCPU(), conf.TransformWorkers)
	assert.Equal(t, conf.TransformWorkers*2, conf.TransformQueueDepth)
}

func TestNewOverrides(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_IMAGE_SIZE_MB", "10")
	t.Setenv("TRANSFORM_WORKERS", "3")
	t.Setenv("TRANSFORM_QUEUE_DEPTH", "9")

	conf := New()

	assert.Equal(t, "8081", conf.Port)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 10, conf.MaxImageSizeMB)
	assert.Equal(t, 3, conf.TransformWorkers)
	assert.Equal(t, 9, conf.TransformQueueDepth)
}

func TestMaxImageBytes(t *testing.T) {
	conf := &Config{MaxImageSizeMB: 100}

	assert.Equal(t, int64(100<<20), conf.MaxImageBytes())
	assert.Greater(t, conf.BodyLimit(), int(conf.MaxImageBytes()))
}
