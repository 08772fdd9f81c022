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
)

// Node is a node in a parse tree. A node is either a terminal or a
// nonterminal. Terminals have the text that was matched and no children.
// Nonterminals have the name of the rule and the nodes that the rule matched.
//
// Parse trees are never modified once they have been created.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// IsTerminal returns true if the node is a terminal.
func (n *Node) IsTerminal() bool {
	return n.Name == ""
}

// Flatten returns the text of every terminal under the node, in order.
func (n *Node) Flatten() string {
	if n.IsTerminal() {
		return n.Text
	}
	s := strings.Builder{}
	n.flatten(&s)
	return s.String()
}

func (n *Node) flatten(s *strings.Builder) {
	if n.IsTerminal() {
		s.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.flatten(s)
	}
}

// String returns the tree as an indented list of nodes, one node per line.
// Used for trace logging.
func (n *Node) String() string {
	s := strings.Builder{}
	n.string(&s, 0)
	return s.String()
}

func (n *Node) string(s *strings.Builder, depth int) {
	s.WriteString(strings.Repeat("  ", depth))
	if n.IsTerminal() {
		s.WriteString(fmt.Sprintf("%q\n", n.Text))
		return
	}
	s.WriteString(fmt.Sprintf("<%s>\n", n.Name))
	for _, c := range n.Children {
		c.string(s, depth+1)
	}
}

// Compact returns the tree on a single line. Nonterminals are written as the
// rule name followed by the children in parentheses. Terminals are quoted.
func (n *Node) Compact() string {
	s := strings.Builder{}
	n.compact(&s)
	return s.String()
}

func (n *Node) compact(s *strings.Builder) {
	if n.IsTerminal() {
		s.WriteString(fmt.Sprintf("%q", n.Text))
		return
	}
	s.WriteString(n.Name)
	s.WriteString("(")
	for i, c := range n.Children {
		if i > 0 {
			s.WriteString(" ")
		}
		c.compact(s)
	}
	s.WriteString(")")
}
