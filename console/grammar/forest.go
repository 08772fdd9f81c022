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
	"iter"
)

// Forest is the result of parsing an input string. It represents every parse
// tree for the input.
//
// Trees are built on demand and the Forest keeps some state between calls
// to Trees(). A Forest should not be used by more than one goroutine at a
// time.
type Forest struct {
	g     *Grammar
	start string
	input []rune

	accepted bool

	// the alternatives of a rule that were completed over a span of the
	// input
	completed map[span][]int

	// the end positions of the completed spans of a rule beginning at an
	// input position. sorted in ascending order
	ends map[startKey][]int

	// remembered results of fits()
	fit map[fitKey]bool
}

// Input returns the string that was parsed.
func (f *Forest) Input() string {
	return string(f.input)
}

// Accepted returns true if there is at least one parse tree.
func (f *Forest) Accepted() bool {
	return f.accepted
}

// Trees returns an iterator over every parse tree in the forest. Trees are
// built as the iterator is consumed.
//
// Derivations that loop back on themselves without consuming any input are
// not included. A grammar with such cycles would otherwise produce an
// infinite number of trees.
func (f *Forest) Trees() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if !f.accepted {
			return
		}
		active := make(map[span]bool)
		f.derive(f.start, 0, len(f.input), active, yield)
	}
}

// Count returns the number of parse trees, stopping once the limit has been
// reached. A limit of zero or less counts every tree.
func (f *Forest) Count(limit int) int {
	n := 0
	for range f.Trees() {
		n++
		if limit > 0 && n >= limit {
			break
		}
	}
	return n
}

// First returns the first parse tree or nil if there are no trees.
func (f *Forest) First() *Node {
	for t := range f.Trees() {
		return t
	}
	return nil
}

// derive yields every tree for the named rule over the span of input. returns
// false if the yield function has asked for iteration to stop.
func (f *Forest) derive(name string, start int, end int, active map[span]bool, yield func(*Node) bool) bool {
	s := span{name: name, start: start, end: end}
	if active[s] {
		return true
	}
	active[s] = true
	defer delete(active, s)

	// every alternative completed over the span has at least one derivation
	r := f.g.rules[name]
	for _, a := range f.completed[s] {
		cont := f.sequence(r, a, 0, start, end, nil, active, func(children []*Node) bool {
			return yield(&Node{Name: name, Children: children})
		})
		if !cont {
			return false
		}
	}

	return true
}

// sequence yields every list of child nodes that matches the terms of the
// alternative, from the dot onwards, over the span of input.
//
// a child is only built if the remaining terms can match the rest of the
// span. without that check, the completed spans of a left-recursive rule
// lead to a number of dead ends that grows exponentially with the input.
func (f *Forest) sequence(r *rule, a int, dot int, pos int, end int, children []*Node, active map[span]bool, yield func([]*Node) bool) bool {
	alt := r.alts[a]
	if dot == len(alt) {
		if pos == end {
			return yield(children)
		}
		return true
	}

	// append the child node to a new copy of the children slice. the
	// slices yielded by sequence() are never modified afterwards
	with := func(n *Node) []*Node {
		return append(children[:len(children):len(children)], n)
	}

	t := alt[dot]
	switch t.kind {
	case termLiteral:
		l := len([]rune(t.text))
		if f.matchLiteral(t.text, pos) && f.fits(r, a, dot+1, pos+l, end) {
			return f.sequence(r, a, dot+1, pos+l, end, with(&Node{Text: t.text}), active, yield)
		}

	case termClass:
		if pos < end && t.class.match(f.input[pos]) && f.fits(r, a, dot+1, pos+1, end) {
			return f.sequence(r, a, dot+1, pos+1, end, with(&Node{Text: string(f.input[pos])}), active, yield)
		}

	case termNonterminal:
		for _, e := range f.ends[startKey{name: t.text, start: pos}] {
			if e > end {
				break
			}
			if !f.fits(r, a, dot+1, e, end) {
				continue
			}
			cont := f.derive(t.text, pos, e, active, func(n *Node) bool {
				return f.sequence(r, a, dot+1, e, end, with(n), active, yield)
			})
			if !cont {
				return false
			}
		}
	}

	return true
}

// fitKey identifies the remaining terms of an alternative over a span of
// input.
type fitKey struct {
	rule *rule
	alt  int
	dot  int
	pos  int
	end  int
}

// fits returns true if the terms of the alternative, from the dot onwards,
// can match the input from pos to end. results are remembered for the
// lifetime of the forest.
func (f *Forest) fits(r *rule, a int, dot int, pos int, end int) bool {
	if pos > end {
		return false
	}

	alt := r.alts[a]
	if dot == len(alt) {
		return pos == end
	}

	k := fitKey{rule: r, alt: a, dot: dot, pos: pos, end: end}
	if v, ok := f.fit[k]; ok {
		return v
	}

	var v bool

	t := alt[dot]
	switch t.kind {
	case termLiteral:
		l := len([]rune(t.text))
		v = f.matchLiteral(t.text, pos) && f.fits(r, a, dot+1, pos+l, end)

	case termClass:
		v = pos < end && t.class.match(f.input[pos]) && f.fits(r, a, dot+1, pos+1, end)

	case termNonterminal:
		for _, e := range f.ends[startKey{name: t.text, start: pos}] {
			if e > end {
				break
			}
			if f.fits(r, a, dot+1, e, end) {
				v = true
				break
			}
		}
	}

	f.fit[k] = v
	return v
}
