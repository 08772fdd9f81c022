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
	"errors"
	"fmt"
	"maps"
	"strings"
	"testing"
	"time"

	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/console/grammar"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
	"github.com/k9engine/k9/test"
)

// recorder is a command callback that remembers the arguments of the most
// recent invocation.
type recorder struct {
	calls int
	args  console.Args
	err   error
}

func (r *recorder) Invoke(_ console.Interface, args console.Args) error {
	r.calls++
	r.args = args
	return r.err
}

func newConsole(t *testing.T) *console.Console {
	t.Helper()
	con, err := console.NewConsole(console.NewWindows("log", "stats"))
	test.DemandSuccess(t, err)
	return con
}

func register(t *testing.T, con *console.Console, name string, defs ...console.ArgumentDefinition) *recorder {
	t.Helper()
	r := &recorder{}
	err := con.Register(name, &console.Command{Callback: r, Args: defs})
	test.DemandSuccess(t, err)
	return r
}

func TestNamedOrderIndependence(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "a", Type: console.ArgInt32},
		console.ArgumentDefinition{Name: "b", Type: console.ArgString},
		console.ArgumentDefinition{Name: "c", Type: console.ArgFloat64, Optional: true},
		console.ArgumentDefinition{Name: "d", Type: console.ArgFlag},
	)

	test.DemandSuccess(t, con.Submit("cmd a: 1 b: hello c: 2.5 --d"))
	expected := r.args

	a, err := expected.Int32("a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, int32(1))
	b, err := expected.String("b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, "hello")
	c, err := expected.Float64("c")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, 2.5)
	d, err := expected.Flag("d")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, d)

	for _, line := range []string{
		"cmd --d c: 2.5 b: hello a: 1",
		"cmd b: hello a: 1 --d c: 2.5",
		"cmd c:2.5 --d a :1 b : hello",
		"  cmd   a: 1   --d   b: hello   c: 2.5  ",
	} {
		test.DemandSuccess(t, con.Submit(line), line)
		test.ExpectSuccess(t, maps.Equal(r.args, expected), line)
	}

	test.ExpectEquality(t, r.calls, 5)
}

func TestPositionalFillOrder(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "a", Type: console.ArgString},
		console.ArgumentDefinition{Name: "b", Type: console.ArgString, Optional: true},
		console.ArgumentDefinition{Name: "c", Type: console.ArgString},
	)

	// the two mandatory parameters are filled before the optional parameter
	test.DemandSuccess(t, con.Submit("cmd 1 2"))
	test.ExpectEquality(t, len(r.args), 2)
	a, _ := r.args.String("a")
	test.ExpectEquality(t, a, "1")
	c, _ := r.args.String("c")
	test.ExpectEquality(t, c, "2")
	_, ok, err := r.args.OptString("b")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, con.Submit("cmd 1 2 3"))
	test.ExpectEquality(t, len(r.args), 3)
	a, _ = r.args.String("a")
	test.ExpectEquality(t, a, "1")
	c, _ = r.args.String("c")
	test.ExpectEquality(t, c, "2")
	b, ok, err := r.args.OptString("b")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, "3")

	// named parameters are removed from the positional fill
	test.DemandSuccess(t, con.Submit("cmd c: x 1 2"))
	a, _ = r.args.String("a")
	test.ExpectEquality(t, a, "1")
	b, _, _ = r.args.OptString("b")
	test.ExpectEquality(t, b, "2")
	c, _ = r.args.String("c")
	test.ExpectEquality(t, c, "x")
}

func TestFlagDefault(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "verbose", Type: console.ArgFlag},
	)

	test.DemandSuccess(t, con.Submit("cmd"))
	test.ExpectEquality(t, len(r.args), 1)
	test.ExpectEquality(t, r.args["verbose"], console.Value(console.Flag(false)))

	test.DemandSuccess(t, con.Submit("cmd --verbose"))
	test.ExpectEquality(t, r.args["verbose"], console.Value(console.Flag(true)))

	// flags can not be filled by positional values
	err := con.Submit("cmd true")
	test.ExpectSuccess(t, curated.Is(err, console.TooManyArguments))
}

func TestQuoting(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "name", Type: console.ArgString},
	)

	test.DemandSuccess(t, con.Submit(`cmd name: "a\"b\nc"`))
	v, err := r.args.String("name")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, "a\"b\nc")

	test.DemandSuccess(t, con.Submit(`cmd ""`))
	v, _ = r.args.String("name")
	test.ExpectEquality(t, v, "")

	test.DemandSuccess(t, con.Submit(`cmd "hello world: \\ \t"`))
	v, _ = r.args.String("name")
	test.ExpectEquality(t, v, "hello world: \\ \t")

	// unknown escape sequences are passed through
	test.DemandSuccess(t, con.Submit(`cmd "\q"`))
	v, _ = r.args.String("name")
	test.ExpectEquality(t, v, "q")
}

func TestLongCommandLine(t *testing.T) {
	con := newConsole(t)

	var defs []console.ArgumentDefinition
	for i := range 10 {
		defs = append(defs, console.ArgumentDefinition{Name: fmt.Sprintf("p%d", i), Type: console.ArgString})
	}
	defs = append(defs,
		console.ArgumentDefinition{Name: "x", Type: console.ArgFloat32},
		console.ArgumentDefinition{Name: "fast", Type: console.ArgFlag},
		console.ArgumentDefinition{Name: "title", Type: console.ArgString, Optional: true},
	)
	r := register(t, con, "spawn", defs...)

	line := `spawn p0: goblin one two p3: "a quoted \"value\" with spaces" four five six ` +
		`seven eight nine x: -10.5 --fast title: "the quick brown fox jumps over the lazy dog"`

	start := time.Now()
	test.DemandSuccess(t, con.Submit(line))
	test.ExpectSuccess(t, time.Since(start) < time.Second, "submit of long line took", time.Since(start))
	test.DemandEquality(t, r.calls, 1)

	var got []string
	for i := range 10 {
		v, err := r.args.String(fmt.Sprintf("p%d", i))
		test.ExpectSuccess(t, err)
		got = append(got, v)
	}
	test.ExpectEquality(t, strings.Join(got, ","),
		`goblin,one,two,a quoted "value" with spaces,four,five,six,seven,eight,nine`)

	x, err := r.args.Float32("x")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, x, float32(-10.5))
	title, ok, err := r.args.OptString("title")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, title, "the quick brown fox jumps over the lazy dog")

	// a long quoted string with escape sequences
	long := strings.Repeat(`words \"and\" \\ escapes\t`, 8)
	r = register(t, con, "echo", console.ArgumentDefinition{Name: "s", Type: console.ArgString})
	start = time.Now()
	test.DemandSuccess(t, con.Submit(fmt.Sprintf(`echo s: "%s"`, long)))
	test.ExpectSuccess(t, time.Since(start) < time.Second, "submit of long string took", time.Since(start))
	v, err := r.args.String("s")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, strings.Repeat("words \"and\" \\ escapes\t", 8))

	// syntax errors in long lines are found as quickly
	start = time.Now()
	test.ExpectFailure(t, con.Submit(line+` "unterminated`))
	test.ExpectSuccess(t, time.Since(start) < time.Second, "submit of bad line took", time.Since(start))
	test.ExpectEquality(t, r.calls, 1)
}

func TestAmbiguity(t *testing.T) {
	g, err := grammar.New(`
		<command_line> ::= <a> | <b> ;
		<a> ::= "x" ;
		<b> ::= "x" ;
	`)
	test.DemandSuccess(t, err)

	con, err := console.NewConsoleWithGrammar(console.NewWindows(), g)
	test.DemandSuccess(t, err)

	r := register(t, con, "x")

	err = con.Submit("x")
	test.ExpectSuccess(t, curated.Is(err, console.AmbiguousCommand))
	test.ExpectEquality(t, r.calls, 0)

	// same result with tracing, which enumerates every parse tree
	con.SetDebugTrace(true)
	err = con.Submit("x")
	test.ExpectSuccess(t, curated.Is(err, console.AmbiguousCommand))
	test.ExpectEquality(t, r.calls, 0)
}

func TestArity(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "x", Type: console.ArgInt64},
		console.ArgumentDefinition{Name: "y", Type: console.ArgInt64},
	)

	err := con.Submit("cmd 1 2 3")
	test.ExpectSuccess(t, curated.Is(err, console.TooManyArguments))
	test.ExpectEquality(t, r.calls, 0)

	err = con.Submit("cmd 1")
	test.ExpectSuccess(t, curated.Is(err, console.TooFewArguments))
	test.ExpectEquality(t, r.calls, 0)

	err = con.Submit("cmd 1 -2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.calls, 1)
	y, _ := r.args.Int64("y")
	test.ExpectEquality(t, y, int64(-2))
}

func TestUnknownCommand(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "foobar")

	err := con.Submit("foobar123")
	test.ExpectSuccess(t, curated.Is(err, console.CommandNotFound))
	test.ExpectEquality(t, r.calls, 0)
	test.ExpectFailure(t, con.QuitRequested())
}

func TestErrors(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "n", Type: console.ArgInt32},
		console.ArgumentDefinition{Name: "f", Type: console.ArgFloat32, Optional: true},
		console.ArgumentDefinition{Name: "b", Type: console.ArgBool, Optional: true},
	)

	logger.Clear()

	err := con.Submit("cmd n: 1 n: 2")
	test.ExpectSuccess(t, curated.Is(err, console.DuplicateParameter))

	err = con.Submit("cmd n: one")
	test.ExpectSuccess(t, curated.Is(err, console.ArgumentParseError))

	err = con.Submit("cmd 1 f: x")
	test.ExpectSuccess(t, curated.Is(err, console.ArgumentParseError))

	err = con.Submit("cmd 99999999999")
	test.ExpectSuccess(t, curated.Is(err, console.ArgumentParseError))

	err = con.Submit("cmd 1 2.0 maybe")
	test.ExpectSuccess(t, curated.Is(err, console.ArgumentParseError))

	err = con.Submit(`cmd "unterminated`)
	test.ExpectSuccess(t, curated.Is(err, console.SyntaxError))

	err = con.Submit("cmd : 1")
	test.ExpectSuccess(t, curated.Is(err, console.SyntaxError))

	test.ExpectEquality(t, r.calls, 0)

	// every error is logged
	var errs int
	for _, e := range logger.Copy() {
		if e.Level == logger.Error && e.Tag == "console" {
			errs++
		}
	}
	test.ExpectEquality(t, errs, 7)

	// the console is still usable after errors
	test.ExpectSuccess(t, con.Submit("cmd 1 2.0 1"))
	test.ExpectEquality(t, r.calls, 1)
	b, ok, _ := r.args.OptBool("b")
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, b)

	// empty lines are ignored
	test.ExpectSuccess(t, con.Submit(""))
	test.ExpectSuccess(t, con.Submit(" \t "))
	test.ExpectEquality(t, r.calls, 1)
}

func TestCallbackError(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd")
	r.err = errors.New("callback failed")

	err := con.Submit("cmd")
	test.ExpectSuccess(t, curated.Is(err, console.CallbackError))
	test.ExpectSuccess(t, errors.Is(err, r.err))
	test.ExpectEquality(t, r.calls, 1)
}

func TestUnknownParametersIgnored(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd",
		console.ArgumentDefinition{Name: "a", Type: console.ArgString},
	)

	test.ExpectSuccess(t, con.Submit("cmd a: x z: 1"))
	test.ExpectEquality(t, len(r.args), 1)
}

func TestRegistration(t *testing.T) {
	con := newConsole(t)

	err := con.Register("bad name", &console.Command{Callback: &recorder{}})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidRegistration))

	err = con.Register("--bad", &console.Command{Callback: &recorder{}})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidRegistration))

	err = con.Register("good", &console.Command{})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidRegistration))

	err = con.Register("good", &console.Command{
		Callback: &recorder{},
		Args: []console.ArgumentDefinition{
			{Name: "a", Type: console.ArgInt32},
			{Name: "a", Type: console.ArgInt64},
		},
	})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidRegistration))

	// replacing a command
	first := register(t, con, "good")
	second := register(t, con, "good")
	test.ExpectSuccess(t, con.Submit("good"))
	test.ExpectEquality(t, first.calls, 0)
	test.ExpectEquality(t, second.calls, 1)
}

func TestDebugTrace(t *testing.T) {
	con := newConsole(t)
	register(t, con, "cmd",
		console.ArgumentDefinition{Name: "a", Type: console.ArgString},
	)

	traces := func() int {
		var n int
		for _, e := range logger.Copy() {
			if e.Level == logger.Trace {
				n++
			}
		}
		return n
	}

	logger.Clear()
	test.ExpectSuccess(t, con.Submit("cmd x"))
	test.ExpectEquality(t, traces(), 0)

	test.ExpectSuccess(t, con.Submit(console.CmdDebugTrace+" true"))
	test.ExpectSuccess(t, con.DebugTrace())

	logger.Clear()
	test.ExpectSuccess(t, con.Submit("cmd x"))
	test.ExpectInequality(t, traces(), 0)

	test.ExpectSuccess(t, con.Submit(console.CmdDebugTrace+" value: 0"))
	test.ExpectFailure(t, con.DebugTrace())
}

func TestSubmitInput(t *testing.T) {
	con := newConsole(t)
	r := register(t, con, "cmd")

	con.Input().SetText("cm")
	sel, ok := con.Input().Selected()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sel.Name, "cmd")
	test.ExpectSuccess(t, con.Input().Accept(2))
	test.ExpectEquality(t, con.Input().Text(), "cmd")

	test.ExpectSuccess(t, con.SubmitInput())
	test.ExpectEquality(t, r.calls, 1)
	test.ExpectEquality(t, con.Input().Text(), "")
	test.DemandEquality(t, len(con.Input().History()), 1)
	test.ExpectEquality(t, con.Input().History()[0], "cmd")

	// failing lines are still added to the history
	con.Input().SetText("nothing")
	test.ExpectFailure(t, con.SubmitInput())
	test.ExpectEquality(t, len(con.Input().History()), 2)
}
