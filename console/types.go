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
	"strconv"
)

// ArgType is the type of a command parameter.
type ArgType int

// List of valid ArgType values.
const (
	ArgFloat32 ArgType = iota
	ArgFloat64
	ArgInt32
	ArgInt64
	ArgString
	ArgBool
	ArgFlag
)

func (t ArgType) String() string {
	switch t {
	case ArgFloat32:
		return "Float32"
	case ArgFloat64:
		return "Float64"
	case ArgInt32:
		return "Int32"
	case ArgInt64:
		return "Int64"
	case ArgString:
		return "String"
	case ArgBool:
		return "Bool"
	case ArgFlag:
		return "Flag"
	}
	panic("unknown console.ArgType")
}

// ArgumentDefinition describes a single parameter of a command.
//
// Flags are always optional regardless of the Optional field. A flag that
// isn't present on the command line has the value false.
type ArgumentDefinition struct {
	Name     string
	Type     ArgType
	Optional bool
}

func (d ArgumentDefinition) String() string {
	if d.Type == ArgFlag {
		return fmt.Sprintf("[--%s]", d.Name)
	}
	if d.Optional {
		return fmt.Sprintf("[%s: %s]", d.Name, d.Type)
	}
	return fmt.Sprintf("%s: %s", d.Name, d.Type)
}

// Value is the bound value of a parameter. The concrete type of a Value is
// one of Float32, Float64, Int32, Int64, String, Bool or Flag.
type Value interface {
	Type() ArgType
	fmt.Stringer
}

// Float32 is the Value for parameters of type ArgFloat32.
type Float32 float32

// Float64 is the Value for parameters of type ArgFloat64.
type Float64 float64

// Int32 is the Value for parameters of type ArgInt32.
type Int32 int32

// Int64 is the Value for parameters of type ArgInt64.
type Int64 int64

// String is the Value for parameters of type ArgString.
type String string

// Bool is the Value for parameters of type ArgBool.
type Bool bool

// Flag is the Value for parameters of type ArgFlag.
type Flag bool

func (v Float32) Type() ArgType { return ArgFloat32 }
func (v Float64) Type() ArgType { return ArgFloat64 }
func (v Int32) Type() ArgType   { return ArgInt32 }
func (v Int64) Type() ArgType   { return ArgInt64 }
func (v String) Type() ArgType  { return ArgString }
func (v Bool) Type() ArgType    { return ArgBool }
func (v Flag) Type() ArgType    { return ArgFlag }

func (v Float32) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Float64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Int32) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Int64) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string  { return string(v) }
func (v Bool) String() string    { return strconv.FormatBool(bool(v)) }
func (v Flag) String() string    { return strconv.FormatBool(bool(v)) }
