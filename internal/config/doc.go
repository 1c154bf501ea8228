// Package config provides configuration loading for xlsheet.
//
// Settings are resolved in three layers, later layers overriding earlier
// ones: built-in defaults, an optional TOML or YAML file, and XLSHEET_
// environment variables.
//
//	[sheet]
//	rows = 10
//	cols = 6
//	column_width = 12
//
//	[theme]
//	header = "#2d3a4a"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/xlsheet.log"
package config
