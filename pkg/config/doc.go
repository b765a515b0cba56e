// Package config loads the dp configuration.
//
// Sources are layered, later ones overriding earlier ones:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file found under the XDG config dirs
//     (dp/config.toml or dp/config.yaml)
//  3. an explicit config file
//  4. DP_* environment variables
//  5. overrides supplied by the caller (command-line flags)
//
// A rules list in a later source replaces the whole chain; it is not merged
// rule by rule.
package config
