package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"muc-lab/contract"
	"muc-lab/domain"
)

var _ contract.CredentialPrompt = (*ConsolePrompt)(nil)

// ConsolePrompt reads a room password from the terminal. An empty line
// cancels. Remembering is not offered on the console; graphical prompts
// return the checkbox state instead.
type ConsolePrompt struct {
	in *bufio.Scanner
}

func NewConsolePrompt(in io.Reader) *ConsolePrompt {
	return &ConsolePrompt{in: bufio.NewScanner(in)}
}

func (p *ConsolePrompt) Prompt(room *domain.Room, retry bool) (contract.PromptAnswer, bool) {
	if retry {
		color.Yellow.Printf("Authentication failed for %s.\n", room.Name)
	}
	color.Printf("Password for chat room %s (empty to cancel): ", room.Name)

	if !p.in.Scan() {
		return contract.PromptAnswer{}, false
	}
	line := p.in.Text()
	if line == "" {
		return contract.PromptAnswer{}, false
	}
	return contract.PromptAnswer{Secret: domain.SecretFromString(line)}, true
}
