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


package terminal

import (
	"strings"

	"github.com/k9engine/k9/console/autocomplete"
)

// Complete is a tab completion helper for terminals that cannot complete
// the command name as it is being typed. The partial line is given to the
// autocomplete engine. If there is exactly one candidate the completed line
// is returned. If there is more than one, the list of candidates is printed
// to the output using no more than the number of slots and the partial line
// is returned unchanged.
//
// The state of the autocomplete engine is reset before returning.
func Complete(out Output, eng *autocomplete.Engine, partial string, slots int) string {
	defer eng.Reset()

	partial = strings.TrimSpace(partial)
	if partial == "" || strings.ContainsAny(partial, " \t") {
		return partial
	}

	eng.SetText(partial)
	if eng.Tab() {
		return eng.Text()
	}

	lines, sel := eng.Lines(slots)
	for i, l := range lines {
		if i == sel {
			out.TermPrintLine(StyleEcho, l)
		} else {
			out.TermPrintLine(StyleLog, l)
		}
	}

	return partial
}
