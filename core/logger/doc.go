// Package logger builds configured slog loggers and provides attribute
// helpers for consistent, nil-safe structured logging across the module.
//
// # Quick Start
//
//	import "github.com/schemawrite/credvault/core/logger"
//
//	// Development: readable text output, debug level
//	log := logger.New(
//		logger.WithDevelopment("credvault"),
//	)
//
//	// Production: JSON output, info level
//	log := logger.New(
//		logger.WithProduction("credvault"),
//	)
//
//	log.Info("credential stored",
//		logger.Component("envelope"),
//		logger.Digest(secrethash.Hash(token)),
//	)
//
// # Environment Presets
//
// Three presets cover the usual deployment targets:
//
//	devLogger := logger.New(logger.WithDevelopment("credvault"))   // text, debug
//	stageLogger := logger.New(logger.WithStaging("credvault"))     // json, debug
//	prodLogger := logger.New(logger.WithProduction("credvault"))   // json, info
//
// Fine-grained options compose with or replace the presets:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "credvault")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Environment-Based Configuration
//
// Load level and format from the environment through the config package:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.NewFromConfig(cfg)
//	logger.SetAsDefault(log)
//
// Unrecognized values degrade to info/JSON instead of failing; a service
// must never be unable to log because LOG_LEVEL holds a typo.
//
// # Attribute Helpers
//
// Helpers return a zero slog.Attr for nil or empty input, so call sites skip
// the nil checks:
//
//	if err := store(envelope); err != nil {
//		log.Error("credential store failed",
//			logger.Error(err),            // omitted entirely when err is nil
//			logger.Component("envelope"),
//			logger.Action("store"),
//		)
//	}
//
// # Secret Hygiene
//
// Credential values, passphrases, and derived keys must never reach a log
// record. Redacted marks a field as present without its value, and Digest
// records a one-way digest for correlation:
//
//	log.Info("credential rotated",
//		logger.ID("account_id", accountID),
//		logger.Redacted("access_token"),
//		logger.Digest(secrethash.Hash(newToken)),
//	)
//
// # Testing
//
// Point the logger at a buffer and assert on the serialized records:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("test message", logger.Event("probe"))
//	if !strings.Contains(buf.String(), `"event":"probe"`) {
//		t.Error("expected event attribute")
//	}
package logger
