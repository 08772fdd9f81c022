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
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/k9engine/k9/curated"
)

type declaredField struct {
	index int
	name  string
}

// Declare creates a Command from the fields of a struct type. Each exported
// field of the struct is a parameter of the command. When the command is
// invoked the bound arguments are copied into a new instance of the struct
// and passed to the function.
//
// The parameter name is the snake case version of the field name. The name
// can be changed with a struct tag. Adding ",opt" to the tag makes the
// parameter optional. A tag of "-" causes the field to be ignored.
//
//	type move struct {
//		X        float32
//		Y        float32
//		Speed    *float32
//		Relative console.Flag
//		Label    string `console:"name,opt"`
//	}
//
// Fields can be any of float32, float64, int32, int64, string and bool, or
// any of the Value types. Pointer fields are optional parameters and are
// nil if the parameter is not supplied. Fields of type Flag are flags.
//
// Optional fields that are not pointers have the zero value for their type
// if the parameter is not supplied.
func Declare[T any](description string, fn func(ifc Interface, p T) error) (*Command, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, curated.Errorf(InvalidDeclaration, typ, "not a struct")
	}

	var defs []ArgumentDefinition
	var fields []declaredField

	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		name := strcase.ToSnake(f.Name)
		optional := false

		if tag, ok := f.Tag.Lookup("console"); ok {
			if tag == "-" {
				continue
			}
			n, opts, _ := strings.Cut(tag, ",")
			if n != "" {
				name = n
			}
			switch opts {
			case "":
			case "opt":
				optional = true
			default:
				return nil, curated.Errorf(InvalidDeclaration, typ, fmt.Sprintf("unknown tag option '%s' for field %s", opts, f.Name))
			}
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			optional = true
			ft = ft.Elem()
		}

		t, ok := declaredType(ft)
		if !ok {
			return nil, curated.Errorf(InvalidDeclaration, typ, fmt.Sprintf("field %s has unsupported type %s", f.Name, f.Type))
		}
		if t == ArgFlag {
			if f.Type.Kind() == reflect.Pointer {
				return nil, curated.Errorf(InvalidDeclaration, typ, fmt.Sprintf("flag field %s cannot be a pointer", f.Name))
			}
			optional = true
		}

		defs = append(defs, ArgumentDefinition{Name: name, Type: t, Optional: optional})
		fields = append(fields, declaredField{index: i, name: name})
	}

	cmd := &Command{
		Args:        defs,
		Description: description,
		Callback: CallbackFunc(func(ifc Interface, args Args) error {
			var p T
			v := reflect.ValueOf(&p).Elem()
			for _, df := range fields {
				a, ok := args[df.name]
				if !ok {
					continue
				}
				fv := v.Field(df.index)
				if fv.Kind() == reflect.Pointer {
					ptr := reflect.New(fv.Type().Elem())
					ptr.Elem().Set(reflect.ValueOf(a).Convert(ptr.Elem().Type()))
					fv.Set(ptr)
				} else {
					fv.Set(reflect.ValueOf(a).Convert(fv.Type()))
				}
			}
			return fn(ifc, p)
		}),
	}

	return cmd, nil
}

// the ArgType for a struct field type. Flag must be checked before the Bool
// kind because both have the bool kind.
func declaredType(t reflect.Type) (ArgType, bool) {
	if t == reflect.TypeFor[Flag]() {
		return ArgFlag, true
	}
	switch t.Kind() {
	case reflect.Float32:
		return ArgFloat32, true
	case reflect.Float64:
		return ArgFloat64, true
	case reflect.Int32:
		return ArgInt32, true
	case reflect.Int64:
		return ArgInt64, true
	case reflect.String:
		return ArgString, true
	case reflect.Bool:
		return ArgBool, true
	}
	return 0, false
}
