package prompt

import (
	"fmt"
	"io"
)

// Scripted answers prompts from a fixed list. It records every prompt it
// was shown and fails once the answers run out.
type Scripted struct {
	Answers []string
	Prompts []string
}

// NewScripted returns a Scripted prompter with the given answers.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) Prompt(prompt string) ([]byte, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return nil, fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return []byte(answer), nil
}
