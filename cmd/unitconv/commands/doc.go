// Package commands defines the unitconv CLI.
//
// Commands
//
//   - serve      Serve the converter pages and JSON API
//   - convert    Convert a value between two units (-i prompts for missing input)
//   - units      List categories and their units
//
// The root command loads the optional YAML config file before any subcommand
// runs; serve flags override file values.
package commands
