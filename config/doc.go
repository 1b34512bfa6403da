// Package config loads host settings for the particle-field backdrop.
//
// Resolution order:
//  1. Path passed via --config
//  2. Otherwise ~/.config/particle-field/config.toml
//
// A missing file yields defaults. Simulator constants (particle counts,
// radii, palette) are not configurable; only the host is.
//
// Example config.toml:
//
//	frame_interval = "16ms"
//	seed = 42
//	background = "#f3f4f6"
//	opacity = 0.3
//	color_mode = "auto"
//	log_file = "~/.local/state/particle-field/debug.log"
package config
