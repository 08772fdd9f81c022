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

package grammar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/k9engine/k9/console/grammar"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/test"
)

func TestSimple(t *testing.T) {
	g, err := grammar.New(`
		# a list of words separated by a single space
		<words> ::= <word> | <words> " " <word> ;
		<word> ::= [a-z] | [a-z] <word> ;
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Start(), "words")

	f := g.Parse("hello world")
	test.ExpectSuccess(t, f.Accepted())
	test.ExpectEquality(t, f.Count(0), 1)

	tree := f.First()
	test.DemandSuccess(t, tree != nil)
	test.ExpectEquality(t, tree.Name, "words")
	test.ExpectEquality(t, tree.Flatten(), "hello world")
	test.DemandEquality(t, len(tree.Children), 3)
	test.ExpectEquality(t, tree.Children[1].IsTerminal(), true)
	test.ExpectEquality(t, tree.Children[1].Text, " ")
	test.ExpectEquality(t, tree.Children[2].Flatten(), "world")

	f = g.Parse("hello  world")
	test.ExpectFailure(t, f.Accepted())
	test.ExpectEquality(t, f.Count(0), 0)
	test.ExpectSuccess(t, f.First() == nil)

	f = g.Parse("")
	test.ExpectFailure(t, f.Accepted())
}

// a left-recursive list completes at almost every position of the input.
// parse trees must still be found without trying every way of dividing the
// input
func TestLongInput(t *testing.T) {
	g, err := grammar.New(`
		<words> ::= <word> | <words> " " <word> ;
		<word> ::= [a-z] | [a-z] <word> ;
	`)
	test.DemandSuccess(t, err)

	s := "cmd" + strings.Repeat(" abcdef", 40)

	start := time.Now()
	f := g.Parse(s)
	test.ExpectEquality(t, f.Count(0), 1)
	tree := f.First()
	test.ExpectSuccess(t, time.Since(start) < time.Second, "parse of long input took", time.Since(start))

	test.DemandSuccess(t, tree != nil)
	test.ExpectEquality(t, tree.Flatten(), s)

	// a single bad character at the end of the input
	start = time.Now()
	f = g.Parse(s + "!")
	test.ExpectFailure(t, f.Accepted())
	test.ExpectEquality(t, f.Count(0), 0)
	test.ExpectSuccess(t, time.Since(start) < time.Second, "parse of long input took", time.Since(start))
}

func TestAmbiguity(t *testing.T) {
	g, err := grammar.New(`<s> ::= <s> <s> | "a" ;`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, g.Parse("a").Count(0), 1)
	test.ExpectEquality(t, g.Parse("aa").Count(0), 1)
	test.ExpectEquality(t, g.Parse("aaa").Count(0), 2)
	test.ExpectEquality(t, g.Parse("aaaa").Count(0), 5)

	// counting stops at the limit
	test.ExpectEquality(t, g.Parse("aaaa").Count(2), 2)
}

func TestRestartable(t *testing.T) {
	g, err := grammar.New(`<s> ::= <s> <s> | "a" ;`)
	test.DemandSuccess(t, err)

	f := g.Parse("aaaa")

	var first []string
	for tree := range f.Trees() {
		first = append(first, tree.String())
	}
	test.DemandEquality(t, len(first), 5)

	// trees are the same, and in the same order, the second time around
	var second []string
	for tree := range f.Trees() {
		second = append(second, tree.String())
	}
	test.DemandEquality(t, len(second), 5)
	for i := range first {
		test.ExpectEquality(t, second[i], first[i])
	}

	// every tree is different
	for i := range first {
		for j := i + 1; j < len(first); j++ {
			test.ExpectInequality(t, first[i], first[j])
		}
	}

	// stopping early is fine
	n := 0
	for range f.Trees() {
		n++
		break
	}
	test.ExpectEquality(t, n, 1)
}

func TestCycles(t *testing.T) {
	g, err := grammar.New(`<a> ::= <a> | <b> | "x" ; <b> ::= <a> ;`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Parse("x").Count(0), 1)
}

func TestNullable(t *testing.T) {
	g, err := grammar.New(`
		<line> ::= <ws> "x" <ws> ;
		<ws> ::= "" | " " <ws> ;
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, g.Nullable("ws"))
	test.ExpectFailure(t, g.Nullable("line"))
	test.ExpectFailure(t, g.Nullable("undefined"))

	for _, s := range []string{"x", " x", "x ", "   x  "} {
		test.ExpectEquality(t, g.Parse(s).Count(0), 1, s)
	}
	test.ExpectEquality(t, g.Parse("").Count(0), 0)
	test.ExpectEquality(t, g.Parse("xx").Count(0), 0)

	tree := g.Parse("x").First()
	test.DemandSuccess(t, tree != nil)
	test.DemandEquality(t, len(tree.Children), 3)
	test.ExpectEquality(t, tree.Children[0].Name, "ws")
	test.ExpectEquality(t, tree.Children[0].Flatten(), "")
}

func TestCharacterClasses(t *testing.T) {
	g, err := grammar.New(`
		<s> ::= <c> | <c> <s> ;
		<c> ::= [^ \t"\\] | '"' | "\" [\]\-\^] ;
	`)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, g.Parse(`abc"`).Accepted())
	test.ExpectSuccess(t, g.Parse(`\]\-\^`).Accepted())
	test.ExpectFailure(t, g.Parse("a b").Accepted())
	test.ExpectFailure(t, g.Parse("a\tb").Accepted())
	test.ExpectFailure(t, g.Parse(`\a`).Accepted())

	// unicode input is matched by rune
	test.ExpectSuccess(t, g.Parse("héllo").Accepted())
}

func TestMultiCharacterLiterals(t *testing.T) {
	g, err := grammar.New(`
		<s> ::= "--" <n> | "-" <n> ;
		<n> ::= [0-9] | [0-9] <n> ;
	`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, g.Parse("--10").Count(0), 1)
	test.ExpectEquality(t, g.Parse("-10").Count(0), 1)
	test.ExpectEquality(t, g.Parse("---10").Count(0), 0)

	tree := g.Parse("--10").First()
	test.DemandSuccess(t, tree != nil)
	test.ExpectEquality(t, tree.Children[0].Text, "--")
}

func TestParseRule(t *testing.T) {
	g, err := grammar.New(`
		<pair> ::= <word> ":" <word> ;
		<word> ::= [a-z_] | [a-z_] <word> ;
	`)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, g.Matches("word", "foo_bar"))
	test.ExpectFailure(t, g.Matches("word", "foo:bar"))
	test.ExpectSuccess(t, g.Matches("pair", "foo:bar"))
	test.ExpectFailure(t, g.Matches("missing", "foo"))

	_, err = g.ParseRule("missing", "foo")
	test.ExpectSuccess(t, curated.Is(err, grammar.UndefinedRule))

	f, err := g.ParseRule("word", "abc")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Input(), "abc")
	test.ExpectEquality(t, f.First().Name, "word")
}

func TestString(t *testing.T) {
	src := `<s> ::= <c> | <c> <s> ;
<c> ::= [^ \t"] | '"' | "" | [a-z0-9] ;
`
	g, err := grammar.New(src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.String(), src)

	// the output of String() can be compiled
	h, err := grammar.New(g.String())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.String(), src)

	rules := g.Rules()
	test.DemandEquality(t, len(rules), 2)
	test.ExpectEquality(t, rules[0], "s")
	test.ExpectEquality(t, rules[1], "c")
}

func TestNodeString(t *testing.T) {
	g, err := grammar.New(`<s> ::= "a" <b> ; <b> ::= "b" ;`)
	test.DemandSuccess(t, err)

	tree := g.Parse("ab").First()
	test.DemandSuccess(t, tree != nil)
	test.ExpectEquality(t, tree.String(), "<s>\n  \"a\"\n  <b>\n    \"b\"\n")
	test.ExpectEquality(t, tree.Compact(), `s("a" b("b"))`)

	test.ExpectSuccess(t, g.HasRule("b"))
	test.ExpectFailure(t, g.HasRule("c"))
}

func TestBNFErrors(t *testing.T) {
	var err error

	_, err = grammar.New(``)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> ::= <b> ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.UndefinedRule))

	_, err = grammar.New(`<a> ::= "a" ; <a> ::= "b" ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.DuplicateRule))

	_, err = grammar.New(`<a> ::= "a"`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> ::= "a ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> ::= | "a" ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> ::= [] ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> ::= [z-a] ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a> = "a" ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New(`<a b> ::= "a" ;`)
	test.ExpectSuccess(t, curated.Is(err, grammar.SyntaxError))

	_, err = grammar.New("<a> ::= \"a\" ;\n<b> ::= ? ;")
	test.DemandFailure(t, err)
	test.ExpectEquality(t, err.Error(), "grammar: line 2: unexpected character")
}
