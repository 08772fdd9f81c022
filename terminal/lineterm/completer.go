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

package lineterm

import (
	"strings"

	"github.com/k9engine/k9/console/autocomplete"
)

// completer implements the readline.AutoCompleter interface. only the
// command name is completed.
type completer struct {
	eng *autocomplete.Engine
}

// Do implements the readline.AutoCompleter interface.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	if c.eng == nil || pos > len(line) {
		return nil, 0
	}

	prefix := string(line[:pos])
	if prefix == "" || strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	c.eng.SetText(prefix)

	var suffixes [][]rune
	for _, s := range c.eng.Candidates() {
		suffixes = append(suffixes, []rune(s[len(prefix):]))
	}

	return suffixes, pos
}
