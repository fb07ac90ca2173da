// Package gitctx reads and rewrites commits in the enclosing repository.
//
// Revision resolution and HEAD comparison run in-process through go-git.
// Everything whose byte-exact output matters, meaning the show and log
// renderings fed to the model, the colored summary line, and history
// rewriting, shells out to the git CLI so formatting, cleanup rules and
// hooks behave exactly as git's own.
package gitctx
