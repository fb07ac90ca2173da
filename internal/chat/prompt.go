package chat

import "strings"

const systemPrompt = "You are a senior software engineer who writes clear and helpful git commit messages. " +
	"Use present tense. Start with a short subject line with a lowercase category tag (e.g., 'refactor:', 'style:', 'docs:', etc.), " +
	"followed by a concise lowercase summary. You may add a longer body only if it provides extra clarity."

// SystemPrompt returns the fixed system prompt sent with every request.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt around the commit text. The text is
// framed in a code fence so message bodies that resemble instructions are
// not mistaken for them.
func UserPrompt(commitText string) string {
	var b strings.Builder
	b.WriteString("Improve the commit message based on the following git diff. ")
	b.WriteString("Only show the improved commit message. ")
	b.WriteString("The git diff is:\n\n```\n")
	b.WriteString(commitText)
	b.WriteString("\n```")
	return b.String()
}
