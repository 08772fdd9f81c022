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

package console_test

import (
	"testing"

	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/test"
)

type moveParams struct {
	PosX     float32
	PosY     float64
	Steps    *int32
	Label    string `console:"name,opt"`
	Relative console.Flag
	Total    console.Int64 `console:",opt"`
	Ignored  string        `console:"-"`
	internal bool
}

func TestDeclare(t *testing.T) {
	var got moveParams
	var calls int

	cmd, err := console.Declare("moves things", func(_ console.Interface, p moveParams) error {
		calls++
		got = p
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmd.Description, "moves things")
	test.ExpectEquality(t, cmd.Usage("move"), "move pos_x: Float32 pos_y: Float64 [steps: Int32] [name: String] [--relative] [total: Int64]")

	con := newConsole(t)
	test.DemandSuccess(t, con.Register("move", cmd))

	test.DemandSuccess(t, con.Submit("move 1.5 2.5"))
	test.ExpectEquality(t, calls, 1)
	test.ExpectEquality(t, got.PosX, float32(1.5))
	test.ExpectEquality(t, got.PosY, 2.5)
	test.ExpectEquality(t, got.Steps == nil, true)
	test.ExpectEquality(t, got.Label, "")
	test.ExpectFailure(t, bool(got.Relative))
	test.ExpectEquality(t, got.Total, console.Int64(0))

	test.DemandSuccess(t, con.Submit(`move --relative name: "a b" pos_y: 3 1 10 total: -7`))
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, got.PosX, float32(1))
	test.ExpectEquality(t, got.PosY, 3.0)
	test.DemandSuccess(t, got.Steps != nil)
	test.ExpectEquality(t, *got.Steps, int32(10))
	test.ExpectEquality(t, got.Label, "a b")
	test.ExpectSuccess(t, bool(got.Relative))
	test.ExpectEquality(t, got.Total, console.Int64(-7))

	err = con.Submit("move 1 2 3 name 5 6")
	test.ExpectSuccess(t, curated.Is(err, console.TooManyArguments))
	test.ExpectEquality(t, calls, 2)
}

func TestDeclareErrors(t *testing.T) {
	_, err := console.Declare("", func(_ console.Interface, p int) error { return nil })
	test.ExpectSuccess(t, curated.Is(err, console.InvalidDeclaration))

	type unsupported struct {
		X uint8
	}
	_, err = console.Declare("", func(_ console.Interface, p unsupported) error { return nil })
	test.ExpectSuccess(t, curated.Is(err, console.InvalidDeclaration))

	type badTag struct {
		X int32 `console:"x,optional"`
	}
	_, err = console.Declare("", func(_ console.Interface, p badTag) error { return nil })
	test.ExpectSuccess(t, curated.Is(err, console.InvalidDeclaration))

	type pointerFlag struct {
		X *console.Flag
	}
	_, err = console.Declare("", func(_ console.Interface, p pointerFlag) error { return nil })
	test.ExpectSuccess(t, curated.Is(err, console.InvalidDeclaration))
}

func TestCommandBuilder(t *testing.T) {
	var got console.Args
	cmd := console.NewCommand("test command").
		Param("a", console.ArgInt32).
		Optional("b", console.ArgString).
		Flag("c").
		Param("d", console.ArgFlag).
		Build(func(_ console.Interface, args console.Args) error {
			got = args
			return nil
		})

	test.DemandEquality(t, len(cmd.Args), 4)
	test.ExpectEquality(t, cmd.Args[0], console.ArgumentDefinition{Name: "a", Type: console.ArgInt32})
	test.ExpectEquality(t, cmd.Args[1], console.ArgumentDefinition{Name: "b", Type: console.ArgString, Optional: true})
	test.ExpectEquality(t, cmd.Args[2], console.ArgumentDefinition{Name: "c", Type: console.ArgFlag, Optional: true})
	test.ExpectEquality(t, cmd.Args[3], console.ArgumentDefinition{Name: "d", Type: console.ArgFlag, Optional: true})
	test.ExpectEquality(t, cmd.Usage("cmd"), "cmd a: Int32 [b: String] [--c] [--d]")

	con := newConsole(t)
	test.DemandSuccess(t, con.Register("cmd", cmd))
	test.DemandSuccess(t, con.Submit("cmd --d 5"))
	a, _ := got.Int32("a")
	test.ExpectEquality(t, a, int32(5))
	c, _ := got.Flag("c")
	test.ExpectFailure(t, c)
	d, _ := got.Flag("d")
	test.ExpectSuccess(t, d)
}
