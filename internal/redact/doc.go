// Package redact masks secrets in commit text before it is sent to the
// completion API.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, env-style assignments, and provider-specific tokens (Anthropic,
// OpenAI, GitHub, Slack).
//
// Redaction only alters the text sent over the wire. The message written back
// to the repository is composed from the model output and the original commit
// message, neither of which passes through this package.
package redact
