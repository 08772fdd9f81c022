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
	"fmt"
	"strings"

	"github.com/k9engine/k9/curated"
)

// Sentinal error patterns.
const (
	// SyntaxError is returned by New() when the BNF text cannot be understood.
	SyntaxError = "grammar: line %d: %s"

	// UndefinedRule is returned when a nonterminal has no rule.
	UndefinedRule = "grammar: undefined rule <%s>"

	// DuplicateRule is returned by New() when a rule is defined twice.
	DuplicateRule = "grammar: duplicate rule <%s>"
)

type termKind int

const (
	termLiteral termKind = iota
	termClass
	termNonterminal
)

type term struct {
	kind termKind

	// the literal text or the name of the nonterminal
	text string

	// only used by termClass
	class *charClass
}

func (t term) String() string {
	switch t.kind {
	case termLiteral:
		if strings.Contains(t.text, `"`) {
			return fmt.Sprintf("'%s'", t.text)
		}
		return fmt.Sprintf(`"%s"`, t.text)
	case termClass:
		return t.class.String()
	case termNonterminal:
		return fmt.Sprintf("<%s>", t.text)
	}
	panic("unknown termKind")
}

// the number of runes the term consumes at the very least.
func (t term) minLen(g *Grammar) int {
	switch t.kind {
	case termLiteral:
		return len([]rune(t.text))
	case termClass:
		return 1
	}
	return g.minLen[t.text]
}

type alternative []term

type rule struct {
	name string
	alts []alternative
}

// Grammar is a compiled grammar. A Grammar is immutable and can be used
// concurrently.
type Grammar struct {
	start string
	rules map[string]*rule

	// names of rules in the order they were defined
	order []string

	// minimum number of runes each rule can match. a minimum length of
	// zero means the rule is nullable
	minLen map[string]int
}

// New compiles the grammar described by the BNF text.
func New(bnf string) (*Grammar, error) {
	g := &Grammar{
		rules:  make(map[string]*rule),
		minLen: make(map[string]int),
	}

	err := g.load(bnf)
	if err != nil {
		return nil, err
	}

	if len(g.order) == 0 {
		return nil, curated.Errorf(SyntaxError, 1, "no rules")
	}
	g.start = g.order[0]

	err = g.check()
	if err != nil {
		return nil, err
	}

	g.measure()

	return g, nil
}

// check that every nonterminal used in an alternative has a rule.
func (g *Grammar) check() error {
	for _, name := range g.order {
		for _, alt := range g.rules[name].alts {
			for _, t := range alt {
				if t.kind != termNonterminal {
					continue
				}
				if _, ok := g.rules[t.text]; !ok {
					return curated.Errorf(UndefinedRule, t.text)
				}
			}
		}
	}
	return nil
}

// find the minimum length of every rule. rules that can never match anything
// (because of infinite recursion) are left with a very large minimum length.
func (g *Grammar) measure() {
	const never = int(^uint(0) >> 2)

	for _, name := range g.order {
		g.minLen[name] = never
	}

	changed := true
	for changed {
		changed = false
		for _, name := range g.order {
			for _, alt := range g.rules[name].alts {
				l := 0
				for _, t := range alt {
					l += t.minLen(g)
					if l > never {
						l = never
					}
				}
				if l < g.minLen[name] {
					g.minLen[name] = l
					changed = true
				}
			}
		}
	}
}

// Start returns the name of the start rule.
func (g *Grammar) Start() string {
	return g.start
}

// Rules returns the names of all rules in the order they were defined.
func (g *Grammar) Rules() []string {
	r := make([]string, len(g.order))
	copy(r, g.order)
	return r
}

// HasRule returns true if the grammar has a rule with the name.
func (g *Grammar) HasRule(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Nullable returns true if the named rule can match the empty string.
func (g *Grammar) Nullable(name string) bool {
	l, ok := g.minLen[name]
	return ok && l == 0
}

// String returns the grammar in the BNF dialect accepted by New().
func (g *Grammar) String() string {
	s := strings.Builder{}
	for _, name := range g.order {
		s.WriteString(fmt.Sprintf("<%s> ::=", name))
		for i, alt := range g.rules[name].alts {
			if i > 0 {
				s.WriteString(" |")
			}
			for _, t := range alt {
				s.WriteString(" ")
				s.WriteString(t.String())
			}
		}
		s.WriteString(" ;\n")
	}
	return s.String()
}
