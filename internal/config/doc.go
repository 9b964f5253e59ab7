// Package config loads Marquee's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply environment variables last
//
// # Environment
//
//   - MOVIE_API_KEY: RapidAPI key sent as x-rapidapi-key (required for real searches)
//   - MARQUEE_API_URL: overrides api_url
//
// LoadDotEnv reads .env files into the environment before Load runs. Variables
// already exported by the shell are never overwritten.
//
// # Default Values
//
//   - API URL: https://mdblist.p.rapidapi.com/
//   - API host header: mdblist.p.rapidapi.com
//   - Request timeout: 10s
//   - Diagnostic log: ~/.local/state/marquee/marquee.log
//
// # TOML Format
//
//	api_url = "https://mdblist.p.rapidapi.com/"
//	api_host = "mdblist.p.rapidapi.com"
//	timeout_seconds = 10
//	log_file = "~/.local/state/marquee/marquee.log"
//
// The API key is only read from the environment.
package config
