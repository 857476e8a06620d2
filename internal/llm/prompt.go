package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/grounded_v1.txt
var groundedPromptV1 string

// PromptTurn is one prior conversation message as the prompt builder sees it.
type PromptTurn struct {
	Role string
	Text string
}

// RoleUser is the role value rendered with the User label; every other role
// (notably "model") renders as AI.
const RoleUser = "user"

// BuildPrompt assembles the single model-ready prompt string: the grounding
// instruction with the full document text embedded, the prior turns in order,
// and the new user message last. Pure and deterministic: identical inputs
// produce byte-identical output.
func BuildPrompt(documentText string, turns []PromptTurn, message string) string {
	instruction := strings.NewReplacer("{{DOCUMENT}}", documentText).Replace(groundedPromptV1)

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n")
	for _, turn := range turns {
		b.WriteString(labelFor(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(message)
	return b.String()
}

func labelFor(role string) string {
	if role == RoleUser {
		return "User"
	}
	return "AI"
}
