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
	"strconv"

	"github.com/k9engine/k9/logger"
)

// ParseValue converts the raw string to a Value of the type given in the
// argument definition. Returns false if the raw string cannot be converted.
// Failures are logged with the name of the parameter and the type.
//
// Numbers are parsed with the strconv package. Bool values are parsed with
// strconv.ParseBool(), so the accepted spellings are:
//
//	true:  1 t T TRUE true True
//	false: 0 f F FALSE false False
//
// String values are the raw string unchanged. Flag values are always true.
func ParseValue(raw string, def ArgumentDefinition) (Value, bool) {
	v, err := parseValue(raw, def.Type)
	if err != nil {
		logger.Warnf(logger.Allow, "console", "'%s' is not a valid %s for parameter '%s'", raw, def.Type, def.Name)
		return nil, false
	}
	return v, true
}

func parseValue(raw string, t ArgType) (Value, error) {
	switch t {
	case ArgFloat32:
		f, err := strconv.ParseFloat(raw, 32)
		return Float32(f), err
	case ArgFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		return Float64(f), err
	case ArgInt32:
		i, err := strconv.ParseInt(raw, 10, 32)
		return Int32(i), err
	case ArgInt64:
		i, err := strconv.ParseInt(raw, 10, 64)
		return Int64(i), err
	case ArgString:
		return String(raw), nil
	case ArgBool:
		b, err := strconv.ParseBool(raw)
		return Bool(b), err
	case ArgFlag:
		return Flag(true), nil
	}
	panic("unknown console.ArgType")
}
