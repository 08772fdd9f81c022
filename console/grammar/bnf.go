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

package grammar

import (
	"unicode"

	"github.com/k9engine/k9/curated"
)

// bnfReader is a simple scanner over the BNF text. it keeps track of the line
// number for error messages.
type bnfReader struct {
	text []rune
	pos  int
	line int
}

func (rd *bnfReader) eof() bool {
	return rd.pos >= len(rd.text)
}

func (rd *bnfReader) peek() rune {
	if rd.eof() {
		return 0
	}
	return rd.text[rd.pos]
}

func (rd *bnfReader) next() rune {
	r := rd.peek()
	rd.pos++
	if r == '\n' {
		rd.line++
	}
	return r
}

func (rd *bnfReader) err(msg string) error {
	return curated.Errorf(SyntaxError, rd.line, msg)
}

// skip whitespace and comments.
func (rd *bnfReader) skip() {
	for !rd.eof() {
		r := rd.peek()
		if r == '#' {
			for !rd.eof() && rd.peek() != '\n' {
				rd.next()
			}
			continue
		}
		if !unicode.IsSpace(r) {
			return
		}
		rd.next()
	}
}

// read text up to the terminating rune. the terminating rune is consumed but
// is not part of the returned text.
func (rd *bnfReader) until(term rune, allowEscape bool) ([]rune, bool) {
	var s []rune
	for !rd.eof() {
		r := rd.next()
		if r == term {
			return s, true
		}
		if r == '\n' {
			return nil, false
		}
		if allowEscape && r == '\\' && !rd.eof() {
			s = append(s, r)
			r = rd.next()
		}
		s = append(s, r)
	}
	return nil, false
}

func (rd *bnfReader) name() (string, error) {
	if rd.next() != '<' {
		return "", rd.err("expected <")
	}
	n, ok := rd.until('>', false)
	if !ok {
		return "", rd.err("unterminated rule name")
	}
	if len(n) == 0 {
		return "", rd.err("empty rule name")
	}
	for _, r := range n {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return "", rd.err("illegal character in rule name")
		}
	}
	return string(n), nil
}

// load the rules in the BNF text into the grammar.
func (g *Grammar) load(bnf string) error {
	rd := &bnfReader{text: []rune(bnf), line: 1}

	for {
		rd.skip()
		if rd.eof() {
			return nil
		}

		name, err := rd.name()
		if err != nil {
			return err
		}
		if _, ok := g.rules[name]; ok {
			return curated.Errorf(DuplicateRule, name)
		}

		rd.skip()
		if rd.next() != ':' || rd.next() != ':' || rd.next() != '=' {
			return rd.err("expected ::=")
		}

		rl := &rule{name: name}
		alt := alternative{}

		done := false
		for !done {
			rd.skip()
			if rd.eof() {
				return rd.err("unterminated rule")
			}

			switch rd.peek() {
			case ';':
				rd.next()
				done = true

			case '|':
				rd.next()
				if len(alt) == 0 {
					return rd.err("empty alternative")
				}
				rl.alts = append(rl.alts, alt)
				alt = alternative{}

			case '<':
				n, err := rd.name()
				if err != nil {
					return err
				}
				alt = append(alt, term{kind: termNonterminal, text: n})

			case '"', '\'':
				q := rd.next()
				s, ok := rd.until(q, false)
				if !ok {
					return rd.err("unterminated literal")
				}
				alt = append(alt, term{kind: termLiteral, text: string(s)})

			case '[':
				rd.next()
				s, ok := rd.until(']', true)
				if !ok {
					return rd.err("unterminated character class")
				}
				c, msg := parseClass(s)
				if c == nil {
					return rd.err(msg)
				}
				alt = append(alt, term{kind: termClass, class: c})

			default:
				return rd.err("unexpected character")
			}
		}

		if len(alt) == 0 {
			return rd.err("empty alternative")
		}
		rl.alts = append(rl.alts, alt)

		g.rules[name] = rl
		g.order = append(g.order, name)
	}
}
