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

// Package grammar implements a small context-free grammar engine. Grammars
// are written in a BNF dialect and compiled with New(). The resulting
// Grammar can then be used to parse input strings. Parsing finds every
// derivation of the input, not just the first one, so that ambiguous input
// can be detected by the caller.
//
// The BNF dialect looks like this:
//
//	# comments run to the end of the line
//	<greeting> ::= <word> | <word> " " <greeting> ;
//	<word>     ::= [a-z] | [a-z] <word> ;
//
// A rule is a nonterminal name in angle brackets, the ::= operator and one or
// more alternatives separated by the | character. The rule is terminated by a
// semi-colon. The first rule in the grammar is the start rule.
//
// An alternative is a sequence of terms. A term is one of:
//
//	<name>        a nonterminal
//	"text"        a literal. no escape sequences are recognised
//	'text'        also a literal, useful when the text contains a "
//	""            the empty literal, which matches nothing
//	[a-z_]        a character class matching a single character
//	[^ \t"]       a negated character class
//	[^]           matches any single character
//
// Character classes recognise the escape sequences \t, \n, \r, \\, \], \-
// and \^.
//
// The Parse() function returns a Forest. The Trees() function of the Forest
// returns an iterator over every parse tree. Trees are built lazily as the
// iterator is consumed and the iterator can be used any number of times.
//
//	g, _ := grammar.New(bnf)
//	f := g.Parse("hello world")
//	switch f.Count(2) {
//	case 0:
//		// syntax error
//	case 1:
//		for tree := range f.Trees() {
//			fmt.Println(tree)
//		}
//	default:
//		// ambiguous input
//	}
package grammar
