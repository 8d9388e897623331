package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type format int

const (
	formatText format = iota
	formatJSON
)

type options struct {
	level       slog.Level
	format      format
	output      io.Writer
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
}

// Option configures logger construction.
type Option func(*options)

// WithDevelopment configures human-readable text output at debug level,
// tagged with the application name.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.format = formatText
		o.level = slog.LevelDebug
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithStaging configures JSON output at debug level, tagged with the
// application name.
func WithStaging(app string) Option {
	return func(o *options) {
		o.format = formatJSON
		o.level = slog.LevelDebug
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(app string) Option {
	return func(o *options) {
		o.format = formatJSON
		o.level = slog.LevelInfo
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithLevel sets the minimum level a record needs to be emitted.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter emits records as JSON, one object per line.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.format = formatJSON
	}
}

// WithTextFormatter emits records as key=value text.
func WithTextFormatter() Option {
	return func(o *options) {
		o.format = formatText
	}
}

// WithOutput redirects records to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithAttr attaches base attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithHandlerOptions overrides the slog handler options wholesale. A Level
// set through WithLevel still applies unless the override carries its own.
func WithHandlerOptions(handlerOpts *slog.HandlerOptions) Option {
	return func(o *options) {
		o.handlerOpts = handlerOpts
	}
}

// New creates a logger. Without options it writes JSON at info level to
// standard output, which is the safe choice for a service that forgot to
// configure logging.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: formatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.handlerOpts
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	} else if handlerOpts.Level == nil {
		handlerOpts.Level = o.level
	}

	var handler slog.Handler
	switch o.format {
	case formatText:
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	log := slog.New(handler)
	if len(o.attrs) > 0 {
		args := make([]any, len(o.attrs))
		for i, attr := range o.attrs {
			args[i] = attr
		}
		log = log.With(args...)
	}
	return log
}

// SetAsDefault installs log as the process-wide default for both slog and
// the standard log package.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}

// Config contains logger configuration loaded from environment variables.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromConfig creates a logger from cfg, with opts applied on top. Unknown
// level or format values fall back to info and JSON: logging has to come up
// even when its own configuration is wrong.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{WithLevel(ParseLevel(cfg.Level))}
	if strings.EqualFold(cfg.Format, "text") {
		base = append(base, WithTextFormatter())
	} else {
		base = append(base, WithJSONFormatter())
	}
	return New(append(base, opts...)...)
}

// ParseLevel maps a level name to its slog level, defaulting to info for
// anything it does not recognize.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
