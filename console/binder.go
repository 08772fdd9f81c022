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
	"strings"

	"github.com/edwingeng/deque"
	"github.com/iancoleman/orderedmap"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
)

// Bind matches the reduced parameters of a command line to the command's
// parameter definitions and converts each raw value to the definition's
// type.
//
// Named parameters are matched by name. A flag that is not named on the
// command line is bound to false. Positional values fill the remaining
// mandatory parameters before the remaining optional parameters, in the
// order the parameters were declared. Optional parameters that are not
// filled are absent from the returned Args.
//
// If any parameter cannot be bound then an error is returned and no Args
// are returned.
func Bind(params []Parameter, defs []ArgumentDefinition) (Args, error) {
	named := orderedmap.New()
	positional := deque.NewDeque()

	for _, p := range params {
		if p.Name == "" {
			positional.PushBack(p.Value)
			continue
		}
		if _, ok := named.Get(p.Name); ok {
			return nil, curated.Errorf(DuplicateParameter, p.Name)
		}
		named.Set(p.Name, p.Value)
	}

	args := make(Args, len(defs))

	mandatory := deque.NewDeque()
	optional := deque.NewDeque()

	for _, d := range defs {
		if raw, ok := named.Get(d.Name); ok {
			named.Delete(d.Name)
			v, ok := ParseValue(raw.(string), d)
			if !ok {
				return nil, curated.Errorf(ArgumentParseError, d.Name, d.Type, raw)
			}
			args[d.Name] = v
		} else if d.Type == ArgFlag {
			args[d.Name] = Flag(false)
		} else if d.Optional {
			optional.PushBack(d)
		} else {
			mandatory.PushBack(d)
		}
	}

	if unknown := named.Keys(); len(unknown) > 0 {
		logger.Warnf(logger.Allow, "console", "unknown parameters ignored: %s", strings.Join(unknown, ", "))
	}

	indexed := positional.Len()
	mandatoryLen := mandatory.Len()
	total := mandatoryLen + optional.Len()

	if indexed < mandatoryLen {
		return nil, curated.Errorf(TooFewArguments, indexed, mandatoryLen)
	}
	if indexed > total {
		return nil, curated.Errorf(TooManyArguments, indexed, total)
	}

	for !optional.Empty() {
		mandatory.PushBack(optional.PopFront())
	}

	for !positional.Empty() {
		raw := positional.PopFront().(string)
		d := mandatory.PopFront().(ArgumentDefinition)
		v, ok := ParseValue(raw, d)
		if !ok {
			return nil, curated.Errorf(ArgumentParseError, d.Name, d.Type, raw)
		}
		args[d.Name] = v
	}

	return args, nil
}
