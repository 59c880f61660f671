// Package config loads the glug options file.
//
// # Discovery
//
// Load uses the path it is given, or ~/.config/glug/config.toml when the path
// is empty. A missing file is not an error: Default is returned. The file
// format follows the extension, YAML for .yaml and .yml and TOML otherwise.
//
// # Fields
//
//	colors = ["red", "yellow", "green", "blue", "default"]
//	save_to_file = "~/glug.log"
//	max_messages_per_loop = 0
//	timestamps = true
//	min_level = "debug"
//
//	[record_threads]
//	separate_histograms = false
//	summary = true
//
//	[viewer]
//	file = "~/glug.log"   # defaults to save_to_file
//	poll_seconds = 1
//	lines = 512
//
// Omitted fields keep their defaults. Unknown color or level names, a wrong
// number of colors and a negative cap are errors. Paths starting with ~ are
// expanded against the home directory.
//
// Config.Options turns the file into glug.Options for glug.New or glug.Setup.
package config
