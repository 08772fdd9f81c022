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
	"testing"

	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/console/autocomplete"
	"github.com/k9engine/k9/test"
)

func TestCompleter(t *testing.T) {
	reg := console.NewRegistry()
	for _, n := range []string{"quit", "quiet", "help"} {
		cmd := console.NewCommand("").Build(func(console.Interface, console.Args) error { return nil })
		test.DemandSuccess(t, reg.Register(n, cmd))
	}

	c := &completer{}
	s, l := c.Do([]rune("qu"), 2)
	test.ExpectEquality(t, len(s), 0)
	test.ExpectEquality(t, l, 0)

	c.eng = autocomplete.NewEngine(reg)

	s, l = c.Do([]rune("qu"), 2)
	test.DemandEquality(t, len(s), 2)
	test.ExpectEquality(t, string(s[0]), "iet")
	test.ExpectEquality(t, string(s[1]), "it")
	test.ExpectEquality(t, l, 2)

	s, _ = c.Do([]rune("help"), 4)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, string(s[0]), "")

	// parameters are not completed
	s, _ = c.Do([]rune("help qu"), 7)
	test.ExpectEquality(t, len(s), 0)

	s, _ = c.Do([]rune(""), 0)
	test.ExpectEquality(t, len(s), 0)
}
