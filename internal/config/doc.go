// Package config assembles strokemark settings from built-in defaults,
// TOML or YAML files and STROKEMARK_ environment variables, in that order
// of increasing precedence.
//
// File layout:
//
//	include = ["shop.toml"]
//
//	[output]
//	tag_column = 75
//
//	[logging]
//	level = "info"
//	format = "console"
//
//	[project]
//	path = "regions.yaml"
//
//	[defaults.mill]
//	ToolDiameter = "6"
//
// The defaults tables seed snapshot keys of regions registered through the
// builders; existing snapshot values are never overwritten.
package config
