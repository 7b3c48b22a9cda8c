// Package cli implements the factsview command line.
//
// The bare command opens the interactive list view on a terminal and prints
// the first page otherwise. One-shot subcommands (list, search, suggest)
// print a single result in the detected output mode or as JSON.
//
// Configuration is resolved once per invocation in the root command's
// PersistentPreRunE: defaults, the config file, an optional --config overlay,
// environment variables (after loading .env), then flags.
package cli
