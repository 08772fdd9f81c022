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

package console

import (
	"slices"
	"testing"

	"github.com/k9engine/k9/console/grammar"
	"github.com/k9engine/k9/test"
)

func reduceLine(t *testing.T, line string) (string, []Parameter) {
	t.Helper()
	g, err := CommandGrammar()
	test.DemandSuccess(t, err)

	f := g.Parse(line)
	test.DemandEquality(t, f.Count(2), 1, line)

	name, params := reduceCommandLine(f.First())
	if params == nil {
		return name, nil
	}
	return name, reduceParameters(params)
}

func TestReduce(t *testing.T) {
	name, params := reduceLine(t, "help")
	test.ExpectEquality(t, name, "help")
	test.ExpectEquality(t, len(params), 0)

	name, params = reduceLine(t, `k9.cmd-2 a: 1 --flag "quoted value" b:"" -1.5 c : x`)
	test.ExpectEquality(t, name, "k9.cmd-2")
	test.ExpectSuccess(t, slices.Equal(params, []Parameter{
		{Name: "a", Value: "1"},
		{Name: "flag", Value: "true"},
		{Value: "quoted value"},
		{Name: "b", Value: ""},
		{Value: "-1.5"},
		{Name: "c", Value: "x"},
	}), params)

	_, params = reduceLine(t, `cmd "tab\there" "\\" "\r\n" - a-b`)
	test.ExpectSuccess(t, slices.Equal(params, []Parameter{
		{Value: "tab\there"},
		{Value: `\`},
		{Value: "\r\n"},
		{Value: "-"},
		{Value: "a-b"},
	}), params)
}

func TestGrammarRejects(t *testing.T) {
	g, err := CommandGrammar()
	test.DemandSuccess(t, err)

	for _, line := range []string{
		"",
		" cmd",
		"cmd ",
		"-cmd",
		"cmd ---x",
		"cmd a:",
		`cmd a"b`,
		`cmd "a`,
		`cmd "a\"`,
		"cmd --",
	} {
		test.ExpectEquality(t, g.Parse(line).Count(1), 0, line)
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		test.ExpectInequality(t, recover(), nil)
	}()
	f()
}

func TestReducePanics(t *testing.T) {
	term := func(s string) *grammar.Node {
		return &grammar.Node{Text: s}
	}
	rule := func(name string, children ...*grammar.Node) *grammar.Node {
		return &grammar.Node{Name: name, Children: children}
	}

	expectPanic(t, func() {
		reduceCommandLine(rule("command_name", term("x")))
	})
	expectPanic(t, func() {
		reduceCommandLine(rule("command_line", rule("command_name", term("x")), term(" ")))
	})
	expectPanic(t, func() {
		reduceParameters(rule("command_parameters"))
	})
	expectPanic(t, func() {
		reduceParameters(rule("command_parameters", rule("command_param", term("x"))))
	})
	expectPanic(t, func() {
		reduceParameters(rule("command_parameters", rule("command_param", rule("flag", term("--")))))
	})
	expectPanic(t, func() {
		reduceValue(rule("value", term("x")))
	})
	expectPanic(t, func() {
		reduceValue(rule("value", term(`"`), rule("string_implicit", term("x")), term(`"`)))
	})
}
