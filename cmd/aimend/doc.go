// Aimend improves git commit messages with a locally hosted LLM.
//
// It sends a commit's message, and optionally its diff, to an
// OpenAI-compatible chat completion service, streams the generated message
// back, and appends it to the commit message under a marker line (or
// replaces the message with it). Rerunning replaces the previously
// generated section instead of stacking another one.
//
// Usage:
//
//	aimend                       # improve the HEAD commit message
//	aimend -d                    # include the diff for more context
//	aimend -a                    # amend HEAD without prompting
//	aimend -r <commit>           # replace instead of append
//	aimend --host localhost:8080 # point at a different completion service
//	aimend models                # list models the service exposes
//
// See https://github.com/dshills/aimend for full documentation.
package main
