// Package cli wires together the Cobra command tree for the aimend binary.
//
// The root command runs the rewrite flow: resolve the commit, show its
// current message, ask the completion service for a better one, and splice
// the result back, optionally amending in place. Subcommands cover models,
// config, and version.
package cli
