// Package chat streams improved commit messages from an OpenAI-compatible
// chat completion endpoint.
//
// The service is expected to live on a locally reachable host; llama.cpp,
// LM Studio, ollama and similar servers all expose the same surface. The
// request always asks for a streamed response. [StreamDecoder] consumes the
// SSE-style reply one line at a time and reports each content delta to an
// optional observer, so callers can surface tokens as they arrive.
//
// [Client.GenerateMessage] wires the pieces together: prompt construction,
// the HTTP round trip, stream decoding, and cleanup of the final text.
package chat
