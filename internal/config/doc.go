// Package config loads and validates the ymap TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/ymap/config.toml, then a project-local ymap.toml. All path
// fields come back expanded and absolute.
package config
