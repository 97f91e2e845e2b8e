// Package config loads admin client settings from defaults, the
// environment, an optional JSON file and command-line flags, in that order.
package config
