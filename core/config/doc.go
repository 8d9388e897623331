// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and parses
// environment variables into struct fields with the caarlos0/env library.
//
// Basic usage:
//
//	import "github.com/schemawrite/credvault/core/config"
//
//	type AppConfig struct {
//		Passphrase string `env:"CREDVAULT_PASSPHRASE,required"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var first envelope.Config
//	config.Load(&first) // Loads from environment
//
//	var second envelope.Config
//	config.Load(&second) // Returns cached value, first == second
//
// Different types are cached independently, and a failed parse is never
// cached, so a fixed environment can be retried.
//
// Note that this caching fixes configuration for the process lifetime. The
// envelope package reads its passphrase through a PassphraseSource instead of
// this loader precisely when restart-free rotation is required.
package config
