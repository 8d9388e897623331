package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemawrite/credvault/core/logger"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello")
	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"level":"INFO"`)

	// Info level by default: debug records are dropped.
	buf.Reset()
	log.Debug("invisible")
	assert.Empty(t, buf.String())
}

func TestNew_TextFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_WithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithLevel(slog.LevelDebug), logger.WithOutput(&buf))

	log.Debug("now visible")
	assert.Contains(t, buf.String(), `"msg":"now visible"`)
}

func TestNew_WithAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "credvault")),
	)

	log.Info("first")
	log.Info("second")
	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"service":"credvault"`)))
	assert.Contains(t, out, `"msg":"second"`)
}

func TestNew_Presets(t *testing.T) {
	t.Parallel()

	t.Run("development is text at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("credvault"), logger.WithOutput(&buf))

		log.Debug("dev detail")
		out := buf.String()
		assert.Contains(t, out, "msg=\"dev detail\"")
		assert.Contains(t, out, "app=credvault")
	})

	t.Run("production is json at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("credvault"), logger.WithOutput(&buf))

		log.Debug("hidden")
		require.Empty(t, buf.String())

		log.Info("visible")
		out := buf.String()
		assert.Contains(t, out, `"msg":"visible"`)
		assert.Contains(t, out, `"app":"credvault"`)
	})

	t.Run("staging is json at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithStaging("credvault"), logger.WithOutput(&buf))

		log.Debug("stage detail")
		assert.Contains(t, buf.String(), `"msg":"stage detail"`)
	})
}

func TestNew_WithHandlerOptions(t *testing.T) {
	t.Parallel()

	t.Run("handler options level wins", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelError}),
		)

		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Error("kept")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
	})

	t.Run("option level fills in when unset", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithHandlerOptions(&slog.HandlerOptions{}),
		)

		log.Debug("kept")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("honors level and format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "debug", Format: "text"},
			logger.WithOutput(&buf),
		)

		log.Debug("configured")
		assert.Contains(t, buf.String(), "msg=configured")
	})

	t.Run("unknown values fall back to info and json", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "loud", Format: "xml"},
			logger.WithOutput(&buf),
		)

		log.Debug("dropped")
		require.Empty(t, buf.String())
		log.Info("kept")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
	})

	t.Run("options apply on top of config", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "info", Format: "json"},
			logger.WithOutput(&buf),
			logger.WithTextFormatter(),
		)

		log.Info("overridden")
		assert.Contains(t, buf.String(), "msg=overridden")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	log := logger.New()
	logger.SetAsDefault(log)
	assert.Same(t, log, slog.Default())
}
