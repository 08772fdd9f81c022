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


package main

import (
	"fmt"
	"testing"

	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/logger"
	"github.com/k9engine/k9/test"
)

func TestRunExec(t *testing.T) {
	con, err := console.NewConsole(console.NewWindows())
	test.DemandSuccess(t, err)

	var ran []string
	cmd := console.NewCommand("records its argument").
		Param("v", console.ArgString).
		Build(func(_ console.Interface, args console.Args) error {
			v, err := args.String("v")
			ran = append(ran, v)
			return err
		})
	test.DemandSuccess(t, con.Register("record", cmd))

	exec := "record a; record v: b ;quit; record c"
	flags := commonFlags{exec: &exec}
	flags.runExec(con)

	test.ExpectEquality(t, con.QuitRequested(), true)
	test.ExpectEquality(t, fmt.Sprint(ran), "[a b]")
}

func BenchmarkSubmit(b *testing.B) {
	con, err := console.NewConsole(console.NewWindows())
	if err != nil {
		panic(fmt.Errorf("error preparing console: %s", err))
	}

	cmd := console.NewCommand("").
		Param("x", console.ArgFloat32).
		Optional("name", console.ArgString).
		Flag("fast").
		Build(func(_ console.Interface, _ console.Args) error {
			return nil
		})
	err = con.Register("bench", cmd)
	if err != nil {
		panic(err)
	}

	// every line is different so that the parse cache is never used
	b.ResetTimer()
	for i := range b.N {
		err = con.Submit(fmt.Sprintf(`bench %d.5 name: "hello world %d" --fast`, i, i))
		if err != nil {
			panic(err)
		}
	}
	b.StopTimer()

	logger.Clear()
}
