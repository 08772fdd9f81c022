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
	"fmt"
	"strings"

	"github.com/k9engine/k9/console/grammar"
	"github.com/k9engine/k9/logger"
)

// Parameter is a parameter on the command line after reduction. The Name
// field is empty for positional values.
type Parameter struct {
	Name  string
	Value string
}

func (p Parameter) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%q", p.Value)
	}
	return fmt.Sprintf("%s: %q", p.Name, p.Value)
}

// the reducer panics with this message when the parse tree doesn't have the
// expected shape. that can only happen if the reducer and the grammar don't
// agree with each other.
func unexpectedNode(n *grammar.Node, context string) {
	name := n.Name
	if n.IsTerminal() {
		name = fmt.Sprintf("terminal %q", n.Text)
	}
	panic(fmt.Sprintf("console: unexpected parse tree node (%s) in %s", name, context))
}

// check the node is the named nonterminal.
func expectRule(n *grammar.Node, name string, context string) {
	if n == nil || n.IsTerminal() || n.Name != name {
		if n == nil {
			panic(fmt.Sprintf("console: missing parse tree node (%s) in %s", name, context))
		}
		unexpectedNode(n, context)
	}
}

// reduceCommandLine splits the parse tree of a command line into the command
// name and the parameters subtree. The parameters subtree is nil if there
// are no parameters.
func reduceCommandLine(tree *grammar.Node) (string, *grammar.Node) {
	expectRule(tree, "command_line", "command line")

	switch len(tree.Children) {
	case 1:
		expectRule(tree.Children[0], "command_name", "command line")
		return tree.Children[0].Flatten(), nil
	case 3:
		expectRule(tree.Children[0], "command_name", "command line")
		expectRule(tree.Children[1], "ws_plus", "command line")
		expectRule(tree.Children[2], "command_parameters", "command line")
		return tree.Children[0].Flatten(), tree.Children[2]
	}

	panic(fmt.Sprintf("console: unexpected number of children (%d) in command line", len(tree.Children)))
}

// reduceParameters walks the parameters subtree and returns the parameters
// in the order they appear on the command line.
func reduceParameters(params *grammar.Node) []Parameter {
	var p []Parameter

	// command_parameters is left recursive so the parameters are gathered
	// from the end of the list and then reversed
	for params != nil {
		expectRule(params, "command_parameters", "parameter list")

		switch len(params.Children) {
		case 1:
			p = append(p, reduceParam(params.Children[0]))
			params = nil
		case 3:
			expectRule(params.Children[1], "ws_plus", "parameter list")
			p = append(p, reduceParam(params.Children[2]))
			params = params.Children[0]
		default:
			panic(fmt.Sprintf("console: unexpected number of children (%d) in parameter list", len(params.Children)))
		}
	}

	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}

func reduceParam(param *grammar.Node) Parameter {
	expectRule(param, "command_param", "parameter")
	if len(param.Children) != 1 {
		panic(fmt.Sprintf("console: unexpected number of children (%d) in parameter", len(param.Children)))
	}

	n := param.Children[0]
	if n.IsTerminal() {
		unexpectedNode(n, "parameter")
	}

	switch n.Name {
	case "name_value_pair":
		// <token> <ws_star> ":" <ws_star> <value>
		if len(n.Children) != 5 {
			unexpectedNode(n, "named parameter")
		}
		expectRule(n.Children[0], "token", "named parameter")
		expectRule(n.Children[4], "value", "named parameter")
		return Parameter{
			Name:  n.Children[0].Flatten(),
			Value: reduceValue(n.Children[4]),
		}

	case "flag":
		// "--" <token>
		if len(n.Children) != 2 {
			unexpectedNode(n, "flag")
		}
		expectRule(n.Children[1], "token", "flag")
		return Parameter{
			Name:  n.Children[1].Flatten(),
			Value: "true",
		}

	case "indexed_value":
		// <value>
		if len(n.Children) != 1 {
			unexpectedNode(n, "positional parameter")
		}
		return Parameter{
			Value: reduceValue(n.Children[0]),
		}
	}

	unexpectedNode(n, "parameter")
	return Parameter{}
}

func reduceValue(value *grammar.Node) string {
	expectRule(value, "value", "value")

	switch len(value.Children) {
	case 1:
		c := value.Children[0]
		if c.IsTerminal() {
			// the empty quoted string
			if c.Text != `""` {
				unexpectedNode(c, "value")
			}
			return ""
		}
		expectRule(c, "string_implicit", "value")
		return c.Flatten()

	case 3:
		expectRule(value.Children[1], "string_explicit", "quoted value")
		s := strings.Builder{}
		decodeExplicit(value.Children[1], &s)
		return s.String()
	}

	panic(fmt.Sprintf("console: unexpected number of children (%d) in value", len(value.Children)))
}

// decodeExplicit writes the text of a quoted string with escape sequences
// decoded.
func decodeExplicit(n *grammar.Node, s *strings.Builder) {
	for _, c := range n.Children {
		if c.IsTerminal() {
			s.WriteString(c.Text)
			continue
		}

		switch c.Name {
		case "string_explicit", "explicit_char":
			decodeExplicit(c, s)

		case "escape_char":
			// "\" <any character>
			if len(c.Children) != 2 || !c.Children[1].IsTerminal() {
				unexpectedNode(c, "escape sequence")
			}
			e := c.Children[1].Text
			switch e {
			case `"`:
				s.WriteString(`"`)
			case `\`:
				s.WriteString(`\`)
			case "n":
				s.WriteString("\n")
			case "r":
				s.WriteString("\r")
			case "t":
				s.WriteString("\t")
			default:
				logger.Warnf(logger.Allow, "console", "unknown escape sequence in quoted string: \\%s", e)
				s.WriteString(e)
			}

		default:
			unexpectedNode(c, "quoted value")
		}
	}
}
