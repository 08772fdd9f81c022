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

package autocomplete

import (
	"slices"
	"unicode/utf8"
)

// Source provides the names of commands that begin with a prefix. Names
// should be returned in lexicographic order.
type Source interface {
	PrefixSearch(prefix string) []string
}

// Selection is the currently selected candidate. Index is the position of
// the candidate in the list returned by Candidates().
type Selection struct {
	Name  string
	Index int
}

// DefaultHistoryLimit is the number of history entries kept by a new Engine.
const DefaultHistoryLimit = 100

// Engine is the autocomplete state for a single input line.
type Engine struct {
	src Source

	text       string
	candidates []string

	// index into candidates. -1 if there is no selection
	selected int

	// whether the full candidate list should be displayed
	showList bool

	history      []string
	historyLimit int

	// index into history of the entry being browsed. -1 if history is not
	// being browsed
	historyIdx int
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(src Source) *Engine {
	return &Engine{
		src:          src,
		selected:     -1,
		historyLimit: DefaultHistoryLimit,
		historyIdx:   -1,
	}
}

// Text returns the current input line.
func (e *Engine) Text() string {
	return e.text
}

// SetText should be called whenever the input line is edited. The candidate
// list is recomputed for the new text.
//
// If the previously selected name is still a candidate then it remains
// selected, at whatever its new index is. Otherwise the first candidate is
// selected. An empty input line has no candidates and no selection.
//
// Calling SetText() with the text that is already current does nothing.
func (e *Engine) SetText(text string) {
	if text == e.text {
		return
	}

	e.text = text
	e.historyIdx = -1

	var prev string
	if e.selected >= 0 {
		prev = e.candidates[e.selected]
	}

	e.selected = -1
	e.candidates = e.candidates[:0]

	if text == "" {
		e.showList = false
		return
	}

	e.candidates = append(e.candidates, e.src.PrefixSearch(text)...)
	if len(e.candidates) == 0 {
		e.showList = false
		return
	}

	e.selected = 0
	if prev != "" {
		if idx := slices.Index(e.candidates, prev); idx >= 0 {
			e.selected = idx
		}
	}
}

// Candidates returns the command names that begin with the current input
// line. The returned slice should not be modified.
func (e *Engine) Candidates() []string {
	return e.candidates
}

// Selected returns the selected candidate. Returns false if there is no
// selection.
func (e *Engine) Selected() (Selection, bool) {
	if e.selected < 0 {
		return Selection{}, false
	}
	return Selection{Name: e.candidates[e.selected], Index: e.selected}, true
}

// Suffix returns the part of the selected candidate that has not yet been
// typed. Returns the empty string if there is no selection.
func (e *Engine) Suffix() string {
	if e.selected < 0 {
		return ""
	}
	s := e.candidates[e.selected]
	if len(e.text) >= len(s) {
		return ""
	}
	return s[len(e.text):]
}

// ShowList returns true if the full candidate list should be displayed.
func (e *Engine) ShowList() bool {
	return e.showList && len(e.candidates) > 0
}

// HideList stops the full candidate list from being displayed.
func (e *Engine) HideList() {
	e.showList = false
}

// Browsing returns true if the input line is currently showing an entry from
// the history.
func (e *Engine) Browsing() bool {
	return e.historyIdx >= 0
}

// Up moves the selection to the previous candidate. The first candidate
// wraps to the last candidate.
//
// If there are no candidates and the input line is empty (or is showing a
// history entry) then the previous history entry is shown instead.
//
// Returns true if the selection or the input line changed.
func (e *Engine) Up() bool {
	if e.selected >= 0 {
		if e.selected == 0 {
			e.selected = len(e.candidates) - 1
		} else {
			e.selected--
		}
		return true
	}

	if len(e.history) == 0 {
		return false
	}

	switch {
	case e.historyIdx > 0:
		e.historyIdx--
	case e.historyIdx == 0:
		return false
	case e.text == "":
		e.historyIdx = len(e.history) - 1
	default:
		return false
	}

	e.text = e.history[e.historyIdx]
	return true
}

// Down moves the selection to the next candidate. The last candidate wraps
// to the first candidate.
//
// If history is being browsed then the next history entry is shown. Moving
// past the newest entry empties the input line.
//
// Returns true if the selection or the input line changed.
func (e *Engine) Down() bool {
	if e.selected >= 0 {
		if e.selected == len(e.candidates)-1 {
			e.selected = 0
		} else {
			e.selected++
		}
		return true
	}

	if e.historyIdx < 0 {
		return false
	}

	e.historyIdx++
	if e.historyIdx >= len(e.history) {
		e.historyIdx = -1
		e.text = ""
		return true
	}

	e.text = e.history[e.historyIdx]
	return true
}

// Tab selects the first candidate if there is no selection. If there is
// exactly one candidate it is accepted immediately. Otherwise the display of
// the full candidate list is toggled.
//
// Returns true if the input line changed.
func (e *Engine) Tab() bool {
	if e.selected < 0 && len(e.candidates) > 0 {
		e.selected = 0
		return false
	}

	if len(e.candidates) == 1 {
		e.accept(e.candidates[0])
		return true
	}

	if e.showList {
		e.showList = false
	} else if len(e.candidates) > 0 {
		e.showList = true
	}

	return false
}

// Accept replaces the input line with the selected candidate. The caret is
// the position of the text cursor, counted in runes. Nothing happens unless
// the caret is at the end of the input line.
//
// Returns true if the input line changed.
func (e *Engine) Accept(caret int) bool {
	if e.selected < 0 {
		return false
	}
	if caret != utf8.RuneCountInString(e.text) {
		return false
	}
	e.accept(e.candidates[e.selected])
	return true
}

func (e *Engine) accept(name string) {
	e.text = name
	e.candidates = e.candidates[:0]
	e.selected = -1
	e.showList = false
	e.historyIdx = -1
}

// Reset empties the input line and clears the autocomplete state. History is
// not affected.
func (e *Engine) Reset() {
	e.text = ""
	e.candidates = e.candidates[:0]
	e.selected = -1
	e.showList = false
	e.historyIdx = -1
}

// AddHistory adds a submitted command line to the history. Empty lines and
// lines that are the same as the most recent entry are not added.
func (e *Engine) AddHistory(line string) {
	if line == "" {
		return
	}
	if len(e.history) > 0 && e.history[len(e.history)-1] == line {
		return
	}
	e.history = append(e.history, line)
	e.trimHistory()
}

// History returns the history entries, oldest first. The returned slice
// should not be modified.
func (e *Engine) History() []string {
	return e.history
}

// SetHistoryLimit sets the maximum number of history entries. Older entries
// are discarded if the history is already longer than the limit. A limit of
// less than one disables history.
func (e *Engine) SetHistoryLimit(limit int) {
	e.historyLimit = max(limit, 0)
	e.trimHistory()
}

func (e *Engine) trimHistory() {
	if len(e.history) <= e.historyLimit {
		return
	}
	e.history = slices.Delete(e.history, 0, len(e.history)-e.historyLimit)
	e.historyIdx = -1
}
