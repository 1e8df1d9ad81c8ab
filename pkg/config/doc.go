// Package config loads process settings from environment variables into
// typed structs.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//   - The default `.env` in the working directory is read once, if present.
//   - LoadEnv reads additional files before parsing.
//   - Load parses a struct and caches the result per type, so every package
//     that asks for the same settings sees the same values.
//   - MustLoad panics on failure, for settings the process cannot start
//     without.
//
// # Usage
//
// Annotate a struct with `env` tags and load it:
//
//	type ServerConfig struct {
//	    Addr         string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
//	}
//
//	import "github.com/dmitrymomot/viewkit/pkg/config"
//
//	func main() {
//	    if err := config.LoadEnv("./deploy/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var app config.App
//	    config.MustLoad(&app)
//
//	    var srv ServerConfig
//	    if err := config.Load(&srv); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// App carries the settings every binary shares: APP_ENV, APP_NAME and
// LOG_LEVEL.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests that change the
// process environment.
package config
