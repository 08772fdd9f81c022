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
	"strings"
)

type runeRange struct {
	lo, hi rune
}

// charClass matches a single rune. it is the grammar's equivalent of a
// regular expression bracket expression.
type charClass struct {
	negated bool
	ranges  []runeRange
}

func (c *charClass) match(r rune) bool {
	for _, rr := range c.ranges {
		if r >= rr.lo && r <= rr.hi {
			return !c.negated
		}
	}
	return c.negated
}

func escapeClassRune(r rune) string {
	switch r {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\\', ']', '-', '^':
		return `\` + string(r)
	}
	return string(r)
}

func (c *charClass) String() string {
	s := strings.Builder{}
	s.WriteRune('[')
	if c.negated {
		s.WriteRune('^')
	}
	for _, rr := range c.ranges {
		s.WriteString(escapeClassRune(rr.lo))
		if rr.hi != rr.lo {
			s.WriteRune('-')
			s.WriteString(escapeClassRune(rr.hi))
		}
	}
	s.WriteRune(']')
	return s.String()
}

// parseClass parses the body of a character class. the body is the text
// between the opening and closing brackets.
func parseClass(body []rune) (*charClass, string) {
	c := &charClass{}

	if len(body) > 0 && body[0] == '^' {
		c.negated = true
		body = body[1:]
	}

	// unescape the body into a list of runes. escaped runes are never
	// range operators
	type classRune struct {
		r       rune
		escaped bool
	}
	var runes []classRune

	for i := 0; i < len(body); i++ {
		if body[i] != '\\' {
			runes = append(runes, classRune{r: body[i]})
			continue
		}
		i++
		if i >= len(body) {
			return nil, "unterminated escape sequence in character class"
		}
		switch body[i] {
		case 't':
			runes = append(runes, classRune{r: '\t', escaped: true})
		case 'n':
			runes = append(runes, classRune{r: '\n', escaped: true})
		case 'r':
			runes = append(runes, classRune{r: '\r', escaped: true})
		case '\\', ']', '-', '^':
			runes = append(runes, classRune{r: body[i], escaped: true})
		default:
			return nil, "unknown escape sequence in character class"
		}
	}

	// a negated class with no runes matches any rune
	if len(runes) == 0 && !c.negated {
		return nil, "empty character class"
	}

	for i := 0; i < len(runes); i++ {
		lo := runes[i].r
		if i+2 < len(runes) && runes[i+1].r == '-' && !runes[i+1].escaped {
			hi := runes[i+2].r
			if hi < lo {
				return nil, "reversed range in character class"
			}
			c.ranges = append(c.ranges, runeRange{lo: lo, hi: hi})
			i += 2
			continue
		}
		c.ranges = append(c.ranges, runeRange{lo: lo, hi: lo})
	}

	return c, ""
}
