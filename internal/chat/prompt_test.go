package chat

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	p := SystemPrompt()
	for _, want := range []string{
		"senior software engineer",
		"present tense",
		"lowercase category tag",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestUserPrompt(t *testing.T) {
	commitText := "commit abc\n\n    fix parser\n\ndiff --git a/p.go b/p.go"
	p := UserPrompt(commitText)

	if !strings.Contains(p, "Only show the improved commit message.") {
		t.Error("user prompt missing the output instruction")
	}
	if !strings.Contains(p, "```\n"+commitText+"\n```") {
		t.Error("commit text is not fenced in the user prompt")
	}
}
