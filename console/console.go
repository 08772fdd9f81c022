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
	_ "embed"
	"strings"
	"sync"

	"github.com/goforj/godump"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/k9engine/k9/console/autocomplete"
	"github.com/k9engine/k9/console/grammar"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
	"github.com/tevino/abool/v2"
)

//go:embed console_command.bnf
var commandGrammar string

// the command grammar is compiled once and shared by every Console.
var defaultGrammar = sync.OnceValues(func() (*grammar.Grammar, error) {
	return grammar.New(commandGrammar)
})

// CommandGrammar returns the compiled grammar for console command lines.
func CommandGrammar() (*grammar.Grammar, error) {
	return defaultGrammar()
}

// the maximum number of parse trees enumerated when tracing.
const maxTraceTrees = 32

// tracing implements the logger.Permission interface. The value is decided
// once at the start of each dispatch.
type tracing bool

func (t tracing) AllowLogging() bool {
	return bool(t)
}

// the result of parsing a command line. count is the number of parse trees
// found, up to the limit that was used.
type parseResult struct {
	tree  *grammar.Node
	count int
}

func (r parseResult) result(line string) (*grammar.Node, error) {
	if r.count == 0 {
		return nil, curated.Errorf(SyntaxError, line)
	}
	if r.count > 1 {
		return nil, curated.Errorf(AmbiguousCommand, r.count, line)
	}
	return r.tree, nil
}

// Console parses command lines and dispatches them to registered commands.
//
// A Console should only be used from one goroutine. Commands are invoked on
// the goroutine that submits the command line.
type Console struct {
	grammar  *grammar.Grammar
	registry *Registry
	ifc      Interface

	// the state of the input line and the autocomplete candidates
	input *autocomplete.Engine

	// parse results keyed by command line
	cache *lru.Cache[string, parseResult]

	quit *abool.AtomicBool

	Prefs *Preferences
}

// NewConsole is the preferred method of initialisation for the Console type.
// The Interface is passed to every command when it is invoked.
func NewConsole(ifc Interface) (*Console, error) {
	g, err := defaultGrammar()
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}
	return NewConsoleWithGrammar(ifc, g)
}

// NewConsoleWithGrammar is the same as NewConsole() but command lines are
// parsed with the specified grammar. The grammar must be compatible with the
// default command grammar. Rules that are missing or differently shaped will
// cause a panic when a command line is reduced.
func NewConsoleWithGrammar(ifc Interface, g *grammar.Grammar) (*Console, error) {
	con := &Console{
		grammar:  g,
		registry: NewRegistry(),
		ifc:      ifc,
		quit:     abool.New(),
	}

	con.input = autocomplete.NewEngine(con.registry)

	var err error

	con.cache, err = lru.New[string, parseResult](defaultParseCacheSize)
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	con.Prefs, err = newPreferences(con)
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	con.registerBuiltins()

	return con, nil
}

// Register a command with the console. A command with the same name is
// replaced and a warning is logged. The name must be one that can be typed
// on the command line.
func (con *Console) Register(name string, cmd *Command) error {
	if con.grammar.HasRule("command_name") && !con.grammar.Matches("command_name", name) {
		return curated.Errorf(InvalidRegistration, name, "name cannot be parsed as a command name")
	}
	return con.registry.Register(name, cmd)
}

// Registry returns the command registry.
func (con *Console) Registry() *Registry {
	return con.registry
}

// Input returns the autocomplete engine for the console input line.
func (con *Console) Input() *autocomplete.Engine {
	return con.input
}

// Grammar returns the grammar used to parse command lines.
func (con *Console) Grammar() *grammar.Grammar {
	return con.grammar
}

// DebugTrace returns true if command lines are being traced.
func (con *Console) DebugTrace() bool {
	return con.Prefs.DebugTrace.Get().(bool)
}

// SetDebugTrace turns tracing of command lines on or off.
func (con *Console) SetDebugTrace(trace bool) {
	_ = con.Prefs.DebugTrace.Set(trace)
}

// QuitRequested returns true once the quit command has been run.
func (con *Console) QuitRequested() bool {
	return con.quit.IsSet()
}

// RequestQuit has the same effect as the quit command.
func (con *Console) RequestQuit() {
	con.quit.Set()
}

// SubmitInput submits the text of the input line, adds it to the history
// and clears the input line.
func (con *Console) SubmitInput() error {
	line := strings.TrimSpace(con.input.Text())
	con.input.AddHistory(line)
	con.input.Reset()
	return con.Submit(line)
}

// Submit parses the command line and invokes the command. Errors are logged
// and returned. An error only affects the command line being submitted.
//
// A command line that is empty after leading and trailing whitespace has
// been removed is ignored.
func (con *Console) Submit(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	err := con.dispatch(line, tracing(con.DebugTrace()))
	if err != nil {
		logger.Errorf(logger.Allow, "console", "%v [%s]", err, line)
	}

	return err
}

func (con *Console) dispatch(line string, trace tracing) error {
	tree, err := con.parse(line, trace)
	if err != nil {
		return err
	}

	name, paramsTree := reduceCommandLine(tree)

	var params []Parameter
	if paramsTree != nil {
		params = reduceParameters(paramsTree)
	}

	logger.Tracef(trace, "console", "command '%s' with parameters %v", name, params)

	cmd, ok := con.registry.Lookup(name)
	if !ok {
		return curated.Errorf(CommandNotFound, name)
	}

	args, err := Bind(params, cmd.Args)
	if err != nil {
		return err
	}

	if trace {
		logger.Tracef(trace, "console", "arguments for '%s': %s", name, godump.DumpStr(args))
	}

	err = cmd.Callback.Invoke(con.ifc, args)
	if err != nil {
		return curated.Errorf(CallbackError, name, err)
	}

	return nil
}

// parse the command line. when tracing every parse tree (up to a limit) is
// enumerated and logged. otherwise the result is cached.
func (con *Console) parse(line string, trace tracing) (*grammar.Node, error) {
	if !trace {
		if r, ok := con.cache.Get(line); ok {
			return r.result(line)
		}
	}

	f := con.grammar.Parse(line)

	// without tracing it is enough to know whether there is more than one
	// tree
	limit := 2
	if trace {
		limit = maxTraceTrees
	}

	var r parseResult
	for t := range f.Trees() {
		r.count++
		if r.tree == nil {
			r.tree = t
		}
		if trace {
			logger.Tracef(trace, "console", "parse tree %d: %s", r.count, t.Compact())
		}
		if r.count >= limit {
			break
		}
	}

	if trace {
		logger.Tracef(trace, "console", "%d parse tree(s) for '%s'", r.count, line)
	} else {
		con.cache.Add(line, r)
	}

	return r.result(line)
}
