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

import "fmt"

// Window is the range of candidates that fit into the available number of
// display slots. First and Last are indexes into the candidate list and are
// both inclusive.
//
// Above and Below are the values shown in the "<N more>" markers either side
// of the visible candidates. A value of zero means there is no marker. Each
// marker uses one of the display slots.
type Window struct {
	First int
	Last  int
	Above int
	Below int
}

// Window returns the range of candidates to display given the number of
// display slots. The range is positioned around the selected candidate.
// Returns false if there is no selection.
func (e *Engine) Window(slots int) (Window, bool) {
	if e.selected < 0 {
		return Window{}, false
	}
	return window(len(e.candidates), e.selected, slots), true
}

func window(length int, selected int, slots int) Window {
	slots = max(slots, 1)

	if length <= slots {
		return Window{First: 0, Last: length - 1}
	}

	var w Window

	l1 := slots - 1
	half := l1 / 2

	var before, after int
	if l1%2 == 0 {
		before = half
		after = half
	} else {
		before = half + 1
		after = half
	}

	w.First = selected - before
	w.Last = selected + after

	if w.First < 0 {
		w.First = 0
		w.Last = l1
		w.Below = length - w.Last
	} else if w.Last >= length-1 {
		w.First = length - slots
		w.Last = length - 1
		w.Above = w.First + 1
	} else {
		if w.First != 0 {
			w.Above = w.First + 1
		}
		w.Below = length - w.Last
	}

	if w.Above > 0 {
		w.First++
	}
	if w.Below > 0 {
		w.Last--
	}

	return w
}

// Lines returns the text to display for the candidate list, one entry per
// display slot. Each candidate is shown with its index. Markers are added
// above and below if some candidates cannot be shown.
//
// The second return value is the index of the line showing the selected
// candidate. It is -1 if the selected candidate is not visible, which can
// happen when there are very few slots. If there is no selection the
// returned slice is empty.
func (e *Engine) Lines(slots int) ([]string, int) {
	w, ok := e.Window(slots)
	if !ok {
		return []string{}, -1
	}

	lines := make([]string, 0, slots)
	sel := -1

	if w.Above > 0 {
		lines = append(lines, fmt.Sprintf("<%d more>", w.Above))
	}
	for i := w.First; i <= w.Last; i++ {
		if i == e.selected {
			sel = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%d: %s", i, e.candidates[i]))
	}
	if w.Below > 0 {
		lines = append(lines, fmt.Sprintf("<%d more>", w.Below))
	}

	return lines, sel
}
