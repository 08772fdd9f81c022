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

	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
)

// Callback is implemented by anything that can be invoked as a console
// command.
type Callback interface {
	Invoke(ifc Interface, args Args) error
}

// CallbackFunc allows an ordinary function to be used as a Callback.
type CallbackFunc func(ifc Interface, args Args) error

// Invoke implements the Callback interface.
func (f CallbackFunc) Invoke(ifc Interface, args Args) error {
	return f(ifc, args)
}

// Command is a console command. Commands are added to the console with the
// Register() function.
type Command struct {
	Callback    Callback
	Args        []ArgumentDefinition
	Description string
}

// Usage returns a one line summary of how the command should be used.
func (cmd *Command) Usage(name string) string {
	s := strings.Builder{}
	s.WriteString(name)
	for _, a := range cmd.Args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Args are the bound arguments of a command, keyed by parameter name. Flags
// are always present. Optional parameters that were not supplied on the
// command line are absent.
type Args map[string]Value

func get[T Value](args Args, name string, t ArgType) (T, bool, error) {
	var zero T
	v, ok := args[name]
	if !ok {
		return zero, false, nil
	}
	tv, ok := v.(T)
	if !ok {
		return zero, true, curated.Errorf(WrongArgumentType, name, t, v.Type())
	}
	return tv, true, nil
}

func must[T Value](args Args, name string, t ArgType) (T, error) {
	v, ok, err := get[T](args, name, t)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, curated.Errorf(MissingArgument, name)
	}
	return v, nil
}

// Float32 returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) Float32(name string) (float32, error) {
	v, err := must[Float32](args, name, ArgFloat32)
	return float32(v), err
}

// Float64 returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) Float64(name string) (float64, error) {
	v, err := must[Float64](args, name, ArgFloat64)
	return float64(v), err
}

// Int32 returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) Int32(name string) (int32, error) {
	v, err := must[Int32](args, name, ArgInt32)
	return int32(v), err
}

// Int64 returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) Int64(name string) (int64, error) {
	v, err := must[Int64](args, name, ArgInt64)
	return int64(v), err
}

// String returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) String(name string) (string, error) {
	v, err := must[String](args, name, ArgString)
	return string(v), err
}

// Bool returns the named argument. It is an error if the argument is
// missing or is of a different type.
func (args Args) Bool(name string) (bool, error) {
	v, err := must[Bool](args, name, ArgBool)
	return bool(v), err
}

// Flag returns the named flag. Flags are always bound so it is an error only
// if the argument is of a different type or if there is no parameter with
// that name.
func (args Args) Flag(name string) (bool, error) {
	v, err := must[Flag](args, name, ArgFlag)
	return bool(v), err
}

// OptFloat32 returns the named argument if it was bound. The boolean return
// value is false if the argument is absent.
func (args Args) OptFloat32(name string) (float32, bool, error) {
	v, ok, err := get[Float32](args, name, ArgFloat32)
	return float32(v), ok, err
}

// OptFloat64 returns the named argument if it was bound.
func (args Args) OptFloat64(name string) (float64, bool, error) {
	v, ok, err := get[Float64](args, name, ArgFloat64)
	return float64(v), ok, err
}

// OptInt32 returns the named argument if it was bound.
func (args Args) OptInt32(name string) (int32, bool, error) {
	v, ok, err := get[Int32](args, name, ArgInt32)
	return int32(v), ok, err
}

// OptInt64 returns the named argument if it was bound.
func (args Args) OptInt64(name string) (int64, bool, error) {
	v, ok, err := get[Int64](args, name, ArgInt64)
	return int64(v), ok, err
}

// OptString returns the named argument if it was bound.
func (args Args) OptString(name string) (string, bool, error) {
	v, ok, err := get[String](args, name, ArgString)
	return string(v), ok, err
}

// OptBool returns the named argument if it was bound.
func (args Args) OptBool(name string) (bool, bool, error) {
	v, ok, err := get[Bool](args, name, ArgBool)
	return bool(v), ok, err
}

// CommandBuilder creates a Command one parameter at a time.
//
//	cmd := console.NewCommand("moves the camera").
//		Param("x", console.ArgFloat32).
//		Param("y", console.ArgFloat32).
//		Optional("speed", console.ArgFloat32).
//		Flag("relative").
//		Build(func(ifc console.Interface, args console.Args) error {
//			...
//		})
type CommandBuilder struct {
	cmd Command
}

// NewCommand starts a new CommandBuilder.
func NewCommand(description string) *CommandBuilder {
	return &CommandBuilder{
		cmd: Command{
			Description: description,
		},
	}
}

// Param adds a mandatory parameter. Parameters of type ArgFlag are optional
// whatever function is used to add them.
func (b *CommandBuilder) Param(name string, t ArgType) *CommandBuilder {
	b.cmd.Args = append(b.cmd.Args, ArgumentDefinition{Name: name, Type: t, Optional: t == ArgFlag})
	return b
}

// Optional adds an optional parameter.
func (b *CommandBuilder) Optional(name string, t ArgType) *CommandBuilder {
	if t == ArgFlag {
		logger.Warnf(logger.Allow, "console", "parameter '%s' is a flag. use Flag() to add flags", name)
	}
	b.cmd.Args = append(b.cmd.Args, ArgumentDefinition{Name: name, Type: t, Optional: true})
	return b
}

// Flag adds a flag parameter.
func (b *CommandBuilder) Flag(name string) *CommandBuilder {
	b.cmd.Args = append(b.cmd.Args, ArgumentDefinition{Name: name, Type: ArgFlag, Optional: true})
	return b
}

// Build returns the Command with the function as the callback. The builder
// should not be used after Build() has been called.
func (b *CommandBuilder) Build(fn func(ifc Interface, args Args) error) *Command {
	cmd := b.cmd
	cmd.Callback = CallbackFunc(fn)
	return &cmd
}
