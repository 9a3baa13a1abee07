// Package cli defines the Cobra command tree for the mktarget CLI. Running
// the root command with no subcommand starts the interactive scaffolding
// session; the other commands inspect the layout and manage settings.
// Commands only parse flags and format output; the work happens in
// internal packages.
package cli
