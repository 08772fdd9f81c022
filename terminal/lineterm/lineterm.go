// This file is part of k9.
//
// k9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// k9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with k9.  If not, see <https://www.gnu.org/licenses/>.

// Package lineterm implements the Terminal interface for the k9 console
// using the readline package. It provides line editing, history and tab
// completion of command names.
package lineterm

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/k9engine/k9/console/autocomplete"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/terminal"
)

// LineTerminal implements the terminal.Terminal interface.
type LineTerminal struct {
	rl       *readline.Instance
	complete *completer
	silenced bool

	styles map[terminal.Style]*color.Color
}

// NewLineTerminal is the preferred method of initialisation for the
// LineTerminal type.
func NewLineTerminal() *LineTerminal {
	return &LineTerminal{
		complete: &completer{},
		styles: map[terminal.Style]*color.Color{
			terminal.StyleEcho:    color.New(color.FgCyan),
			terminal.StyleLog:     color.New(color.Reset),
			terminal.StyleTrace:   color.New(color.Faint),
			terminal.StyleWarning: color.New(color.FgYellow),
			terminal.StyleError:   color.New(color.FgRed, color.Bold),
		},
	}
}

// Initialise perfoms any setting up required for the terminal.
func (lt *LineTerminal) Initialise() error {
	var err error

	lt.rl, err = readline.NewEx(&readline.Config{
		AutoComplete:    lt.complete,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return curated.Errorf("lineterm: %v", err)
	}

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (lt *LineTerminal) CleanUp() {
	if lt.rl != nil {
		_ = lt.rl.Close()
	}
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (lt *LineTerminal) RegisterTabCompletion(eng *autocomplete.Engine) {
	lt.complete.eng = eng
}

// Silence implements the terminal.Terminal interface.
func (lt *LineTerminal) Silence(silenced bool) {
	lt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (lt *LineTerminal) TermPrintLine(style terminal.Style, s string) {
	if lt.silenced && style != terminal.StyleError {
		return
	}

	var out io.Writer = color.Output
	if lt.rl != nil {
		out = lt.rl.Stdout()
	}

	col, ok := lt.styles[style]
	if !ok {
		col = color.New(color.Reset)
	}
	_, _ = col.Fprintln(out, s)
}

// TermRead implements the terminal.Input interface.
func (lt *LineTerminal) TermRead(prompt string) (string, error) {
	lt.rl.SetPrompt(prompt)

	s, err := lt.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", curated.Errorf(terminal.UserInterrupt)
		}
		if errors.Is(err, io.EOF) {
			return "", curated.Errorf(terminal.UserAbort)
		}
		return "", curated.Errorf("lineterm: %v", err)
	}

	return s, nil
}

// IsInteractive implements the terminal.Input interface.
func (lt *LineTerminal) IsInteractive() bool {
	return true
}
