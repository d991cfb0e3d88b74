// Package ui provides console implementations of the user-facing
// collaborators: an alerter writing colored lines to the terminal and the
// default English message catalog. Graphical clients replace both.
package ui

import (
	"github.com/gookit/color"

	"muc-lab/contract"
)

var _ contract.Alerter = (*ConsoleAlerter)(nil)

// ConsoleAlerter prints alerts to the terminal, fire-and-forget.
type ConsoleAlerter struct{}

func NewConsoleAlerter() *ConsoleAlerter {
	return &ConsoleAlerter{}
}

func (a *ConsoleAlerter) ShowError(title, message string) {
	color.Red.Printf("%s: %s\n", title, message)
}

func (a *ConsoleAlerter) ShowWarning(title, message string) {
	color.Yellow.Printf("%s: %s\n", title, message)
}
