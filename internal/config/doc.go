// Package config loads and validates cadence configuration.
//
// Configuration is read from TOML (explicit path, then
// ~/.config/cadence/config.toml, then ./cadence.toml), layered over Default(),
// normalized (trimming, enum lowercasing, ~ expansion, environment overrides)
// and validated section by section. Accessors project the result into the
// inputs the generators consume: a beats.Profile, beat selection defaults, and
// caption processing options.
package config
