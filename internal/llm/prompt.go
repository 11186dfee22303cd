package llm

import (
	_ "embed"
	"fmt"
)

//go:embed prompts/tailor_v1.txt
var tailorSystemPrompt string

// Prompt is a provider-neutral prompt pair. Backends that distinguish system
// and user roles send the parts separately; the rest concatenate via Text.
type Prompt struct {
	System string
	User   string
}

// Text returns the prompt as a single string.
func (p Prompt) Text() string {
	return p.System + "\n\n" + p.User
}

// BuildPrompt fills the tailoring template with the resume and job text.
func BuildPrompt(input TailorInput) Prompt {
	return Prompt{
		System: tailorSystemPrompt,
		User:   fmt.Sprintf("RESUME:\n%s\n\nJOB DESCRIPTION:\n%s", input.ResumeText, input.JobText),
	}
}
