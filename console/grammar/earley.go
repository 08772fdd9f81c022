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
	"slices"

	"github.com/k9engine/k9/curated"
)

// an item is an Earley item: an alternative of a rule, the position of the
// "dot" in that alternative and the input position the item started at.
type item struct {
	rule   *rule
	alt    int
	dot    int
	origin int
}

func (it item) next() (term, bool) {
	a := it.rule.alts[it.alt]
	if it.dot >= len(a) {
		return term{}, false
	}
	return a[it.dot], true
}

func (it item) advance() item {
	it.dot++
	return it
}

// an itemSet is all the items at a single input position.
type itemSet struct {
	items []item
	seen  map[item]bool
}

func (s *itemSet) add(it item) {
	if s.seen[it] {
		return
	}
	s.seen[it] = true
	s.items = append(s.items, it)
}

// span identifies a completed rule over a section of the input.
type span struct {
	name  string
	start int
	end   int
}

// startKey identifies the completed rules beginning at an input position.
type startKey struct {
	name  string
	start int
}

// Parse the input using the grammar's start rule.
func (g *Grammar) Parse(input string) *Forest {
	return g.recognise(g.rules[g.start], input)
}

// ParseRule parses the input using the named rule as the start rule.
func (g *Grammar) ParseRule(name string, input string) (*Forest, error) {
	r, ok := g.rules[name]
	if !ok {
		return nil, curated.Errorf(UndefinedRule, name)
	}
	return g.recognise(r, input), nil
}

// Matches returns true if the input can be derived from the named rule.
// Unknown rule names never match.
func (g *Grammar) Matches(name string, input string) bool {
	f, err := g.ParseRule(name, input)
	if err != nil {
		return false
	}
	return f.Accepted()
}

// recognise runs the Earley algorithm over the input. the completed items of
// every set are recorded in the returned forest.
func (g *Grammar) recognise(start *rule, input string) *Forest {
	f := &Forest{
		g:         g,
		start:     start.name,
		input:     []rune(input),
		completed: make(map[span][]int),
		ends:      make(map[startKey][]int),
		fit:       make(map[fitKey]bool),
	}

	n := len(f.input)
	sets := make([]*itemSet, n+1)
	for i := range sets {
		sets[i] = &itemSet{seen: make(map[item]bool)}
	}

	for a := range start.alts {
		sets[0].add(item{rule: start, alt: a})
	}

	for i := 0; i <= n; i++ {
		set := sets[i]

		// the set grows as it is processed
		for j := 0; j < len(set.items); j++ {
			it := set.items[j]

			t, ok := it.next()
			if !ok {
				f.complete(it, i)
				for _, w := range sets[it.origin].items {
					if wt, ok := w.next(); ok && wt.kind == termNonterminal && wt.text == it.rule.name {
						set.add(w.advance())
					}
				}
				continue
			}

			switch t.kind {
			case termNonterminal:
				r := g.rules[t.text]
				for a := range r.alts {
					set.add(item{rule: r, alt: a, origin: i})
				}
				if g.minLen[t.text] == 0 {
					set.add(it.advance())
				}

			case termLiteral:
				if t.text == "" {
					set.add(it.advance())
				} else if l := len([]rune(t.text)); f.matchLiteral(t.text, i) {
					sets[i+l].add(it.advance())
				}

			case termClass:
				if i < n && t.class.match(f.input[i]) {
					sets[i+1].add(it.advance())
				}
			}
		}
	}

	for _, it := range sets[n].items {
		if it.rule == start && it.origin == 0 {
			if _, ok := it.next(); !ok {
				f.accepted = true
				break
			}
		}
	}

	for k := range f.ends {
		slices.Sort(f.ends[k])
	}

	return f
}

// record a completed item.
func (f *Forest) complete(it item, end int) {
	s := span{name: it.rule.name, start: it.origin, end: end}
	if _, ok := f.completed[s]; !ok {
		k := startKey{name: s.name, start: s.start}
		f.ends[k] = append(f.ends[k], end)
	}
	f.completed[s] = append(f.completed[s], it.alt)
}

// returns true if the literal text appears in the input at position i.
func (f *Forest) matchLiteral(text string, i int) bool {
	lit := []rune(text)
	if i+len(lit) > len(f.input) {
		return false
	}
	for k, r := range lit {
		if f.input[i+k] != r {
			return false
		}
	}
	return true
}
