// Package config loads scanner configuration from environment variables and
// optional YAML scan profiles.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory, once per process.
//   - Parses the environment into any Go struct using field tags.
//   - Merges an optional YAML scan profile underneath the environment, so
//     explicit environment values always win.
//   - Exposes a helper that panics on failure (`MustLoad`) for scenarios
//     where configuration is critical.
//
// # Usage
//
// Populate the scan configuration from the environment:
//
//	import "github.com/rasadeyan/arachni/pkg/config"
//
//	func main() {
//	    var cfg config.Scan
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	    if cfg.ProfilePath != "" {
//	        if err := cfg.ApplyProfileFile(cfg.ProfilePath); err != nil {
//	            log.Fatalf("reading profile: %v", err)
//	        }
//	    }
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrReadingProfile` – failed to read or decode a YAML scan profile.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
