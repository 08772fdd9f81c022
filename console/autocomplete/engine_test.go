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

package autocomplete_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/k9engine/k9/console/autocomplete"
	"github.com/k9engine/k9/test"
)

type names []string

func (n names) PrefixSearch(prefix string) []string {
	var r []string
	for _, s := range n {
		if strings.HasPrefix(s, prefix) {
			r = append(r, s)
		}
	}
	slices.Sort(r)
	return r
}

func expectSelection(t *testing.T, e *autocomplete.Engine, name string, index int) {
	t.Helper()
	sel, ok := e.Selected()
	if !test.ExpectSuccess(t, ok) {
		return
	}
	test.ExpectEquality(t, sel.Name, name)
	test.ExpectEquality(t, sel.Index, index)
}

func TestStability(t *testing.T) {
	e := autocomplete.NewEngine(names{"quit"})

	e.SetText("qu")
	expectSelection(t, e, "quit", 0)
	e.SetText("qui")
	expectSelection(t, e, "quit", 0)

	e = autocomplete.NewEngine(names{"quad", "quiet", "quit", "zoom"})
	e.SetText("qu")
	test.ExpectEquality(t, len(e.Candidates()), 3)
	expectSelection(t, e, "quad", 0)

	e.Down()
	e.Down()
	expectSelection(t, e, "quit", 2)

	// selection is kept at its new index
	e.SetText("qui")
	test.ExpectEquality(t, len(e.Candidates()), 2)
	expectSelection(t, e, "quit", 1)

	// selection is no longer a candidate
	e.SetText("quie")
	expectSelection(t, e, "quiet", 0)

	e.SetText("quiz")
	test.ExpectEquality(t, len(e.Candidates()), 0)
	_, ok := e.Selected()
	test.ExpectFailure(t, ok)

	e.SetText("")
	test.ExpectEquality(t, len(e.Candidates()), 0)
	_, ok = e.Selected()
	test.ExpectFailure(t, ok)
}

func TestNavigationWraps(t *testing.T) {
	e := autocomplete.NewEngine(names{"a1", "a2", "a3"})
	e.SetText("a")
	expectSelection(t, e, "a1", 0)

	test.ExpectSuccess(t, e.Up())
	expectSelection(t, e, "a3", 2)

	test.ExpectSuccess(t, e.Down())
	expectSelection(t, e, "a1", 0)

	test.ExpectSuccess(t, e.Down())
	expectSelection(t, e, "a2", 1)

	test.ExpectSuccess(t, e.Up())
	expectSelection(t, e, "a1", 0)
}

func TestTab(t *testing.T) {
	e := autocomplete.NewEngine(names{"help", "k9_window", "k9_parse_graph"})

	// more than one candidate toggles the list
	e.SetText("k9")
	test.ExpectFailure(t, e.ShowList())
	test.ExpectFailure(t, e.Tab())
	test.ExpectSuccess(t, e.ShowList())
	expectSelection(t, e, "k9_parse_graph", 0)
	test.ExpectFailure(t, e.Tab())
	test.ExpectFailure(t, e.ShowList())
	test.ExpectEquality(t, e.Text(), "k9")

	// exactly one candidate is accepted immediately
	e.SetText("k9_w")
	test.ExpectSuccess(t, e.Tab())
	test.ExpectEquality(t, e.Text(), "k9_window")
	test.ExpectEquality(t, len(e.Candidates()), 0)
	test.ExpectFailure(t, e.ShowList())

	// no candidates
	e.SetText("x")
	test.ExpectFailure(t, e.Tab())
	test.ExpectFailure(t, e.ShowList())
}

func TestAccept(t *testing.T) {
	e := autocomplete.NewEngine(names{"help", "hello"})
	e.SetText("hel")
	expectSelection(t, e, "hello", 0)
	test.ExpectEquality(t, e.Suffix(), "lo")

	// caret is not at the end of the text
	test.ExpectFailure(t, e.Accept(1))
	test.ExpectEquality(t, e.Text(), "hel")

	e.Down()
	test.ExpectEquality(t, e.Suffix(), "p")
	test.ExpectSuccess(t, e.Accept(3))
	test.ExpectEquality(t, e.Text(), "help")
	test.ExpectEquality(t, len(e.Candidates()), 0)
	test.ExpectEquality(t, e.Suffix(), "")

	// nothing selected
	test.ExpectFailure(t, e.Accept(4))
}

func TestReset(t *testing.T) {
	e := autocomplete.NewEngine(names{"a1", "a2"})
	e.SetText("a")
	e.Tab()
	e.Reset()
	test.ExpectEquality(t, e.Text(), "")
	test.ExpectEquality(t, len(e.Candidates()), 0)
	test.ExpectFailure(t, e.ShowList())
	_, ok := e.Selected()
	test.ExpectFailure(t, ok)
}

func TestHistory(t *testing.T) {
	e := autocomplete.NewEngine(names{"quit"})

	// no history
	test.ExpectFailure(t, e.Up())

	e.AddHistory("first")
	e.AddHistory("second")
	e.AddHistory("second")
	e.AddHistory("")
	test.ExpectEquality(t, len(e.History()), 2)

	test.ExpectSuccess(t, e.Up())
	test.ExpectEquality(t, e.Text(), "second")
	test.ExpectSuccess(t, e.Browsing())
	test.ExpectSuccess(t, e.Up())
	test.ExpectEquality(t, e.Text(), "first")
	test.ExpectFailure(t, e.Up())
	test.ExpectEquality(t, e.Text(), "first")

	test.ExpectSuccess(t, e.Down())
	test.ExpectEquality(t, e.Text(), "second")
	test.ExpectSuccess(t, e.Down())
	test.ExpectEquality(t, e.Text(), "")
	test.ExpectFailure(t, e.Browsing())
	test.ExpectFailure(t, e.Down())

	// editing the line stops browsing
	e.Up()
	e.SetText("q")
	test.ExpectFailure(t, e.Browsing())
	expectSelection(t, e, "quit", 0)

	// history isn't browsed when the line isn't empty
	e.SetText("z")
	test.ExpectFailure(t, e.Up())
	test.ExpectEquality(t, e.Text(), "z")

	e.SetHistoryLimit(1)
	test.DemandEquality(t, len(e.History()), 1)
	test.ExpectEquality(t, e.History()[0], "second")

	e.SetHistoryLimit(0)
	e.AddHistory("third")
	test.ExpectEquality(t, len(e.History()), 0)
}

func TestLines(t *testing.T) {
	var n names
	for _, s := range "abcdefghij" {
		n = append(n, "x"+string(s))
	}
	e := autocomplete.NewEngine(n)

	lines, sel := e.Lines(5)
	test.ExpectEquality(t, len(lines), 0)
	test.ExpectEquality(t, sel, -1)

	e.SetText("x")
	for range 5 {
		e.Down()
	}
	expectSelection(t, e, "xf", 5)

	lines, sel = e.Lines(5)
	test.ExpectEquality(t, strings.Join(lines, "\n"), "<4 more>\n4: xe\n5: xf\n6: xg\n<3 more>")
	test.ExpectEquality(t, sel, 2)

	lines, sel = e.Lines(20)
	test.ExpectEquality(t, len(lines), 10)
	test.ExpectEquality(t, lines[0], "0: xa")
	test.ExpectEquality(t, lines[9], "9: xj")
	test.ExpectEquality(t, sel, 5)
}
