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
	"slices"
	"strings"

	"github.com/brunoga/deep"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
)

// Registry is the table of console commands, keyed by command name.
type Registry struct {
	commands map[string]*Command

	// command names in lexicographic order
	names []string
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds the command to the registry. A command with the same name
// is replaced and a warning is logged.
//
// The command's parameter definitions are copied so later changes to the
// Command's Args slice have no effect.
func (r *Registry) Register(name string, cmd *Command) error {
	if err := validate(name, cmd); err != nil {
		return err
	}

	args, err := deep.Copy(cmd.Args)
	if err != nil {
		return curated.Errorf(InvalidRegistration, name, err)
	}

	c := &Command{
		Callback:    cmd.Callback,
		Args:        args,
		Description: cmd.Description,
	}

	if _, ok := r.commands[name]; ok {
		logger.Warnf(logger.Allow, "console", "console command '%s' was overwritten", name)
	} else {
		idx, _ := slices.BinarySearch(r.names, name)
		r.names = slices.Insert(r.names, idx, name)
	}

	r.commands[name] = c

	return nil
}

func validate(name string, cmd *Command) error {
	if name == "" {
		return curated.Errorf(InvalidRegistration, name, "command name is empty")
	}
	if cmd == nil || cmd.Callback == nil {
		return curated.Errorf(InvalidRegistration, name, "no callback")
	}

	seen := make(map[string]bool)
	for _, a := range cmd.Args {
		if a.Name == "" {
			return curated.Errorf(InvalidRegistration, name, "parameter name is empty")
		}
		if seen[a.Name] {
			return curated.Errorf(InvalidRegistration, name, fmt.Sprintf("parameter '%s' is declared more than once", a.Name))
		}
		seen[a.Name] = true
	}

	return nil
}

// Lookup returns the named command. Returns false if there is no command
// with that name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// PrefixSearch returns the names of every command that begins with the
// prefix, in lexicographic order. An empty prefix matches every command.
//
// Implements the autocomplete.Source interface.
func (r *Registry) PrefixSearch(prefix string) []string {
	idx, _ := slices.BinarySearch(r.names, prefix)

	var match []string
	for _, n := range r.names[idx:] {
		if !strings.HasPrefix(n, prefix) {
			break
		}
		match = append(match, n)
	}

	return match
}

// Names returns the name of every command in lexicographic order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of commands in the registry.
func (r *Registry) Len() int {
	return len(r.names)
}
