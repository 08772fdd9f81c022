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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/logger"
	"github.com/k9engine/k9/paths"
)

// Names of the built-in commands.
const (
	CmdDebugTrace = "k9_debug_console_command"
	CmdQuit       = "quit"
	CmdHelp       = "help"
	CmdWindow     = "k9_window"
	CmdParseGraph = "k9_parse_graph"
)

type debugTraceParams struct {
	Value bool
}

type windowParams struct {
	ID    string
	Close Flag
}

// the built-in commands are added directly to the registry. they are normal
// commands in every other way and can be replaced by calling Register().
func (con *Console) registerBuiltins() {
	mustRegister := func(name string, cmd *Command, err error) {
		if err == nil {
			err = con.registry.Register(name, cmd)
		}
		if err != nil {
			panic(err)
		}
	}

	cmd, err := Declare("displays debug information about the parsing run for a console command.",
		func(_ Interface, p debugTraceParams) error {
			con.SetDebugTrace(p.Value)
			return nil
		})
	mustRegister(CmdDebugTrace, cmd, err)

	cmd = NewCommand("exits the application.").Build(func(_ Interface, _ Args) error {
		con.RequestQuit()
		return nil
	})
	mustRegister(CmdQuit, cmd, nil)

	cmd = NewCommand("lists the console commands or describes a single command.").
		Optional("command", ArgString).
		Build(func(_ Interface, args Args) error {
			return con.help(args)
		})
	mustRegister(CmdHelp, cmd, nil)

	cmd, err = Declare("opens or closes (with --close) the debug window with the id.",
		func(ifc Interface, p windowParams) error {
			if !ifc.SetWindowOpen(p.ID, !bool(p.Close)) {
				return fmt.Errorf("no window with id '%s'", p.ID)
			}
			return nil
		})
	mustRegister(CmdWindow, cmd, err)

	cmd = NewCommand("writes the parse tree of a command line as a graphviz file.").
		Param("line", ArgString).
		Optional("path", ArgString).
		Build(func(_ Interface, args Args) error {
			return con.parseGraph(args)
		})
	mustRegister(CmdParseGraph, cmd, nil)
}

func (con *Console) help(args Args) error {
	name, ok, err := args.OptString("command")
	if err != nil {
		return err
	}

	if !ok {
		for _, n := range con.registry.Names() {
			cmd, _ := con.registry.Lookup(n)
			logger.Log(logger.Allow, "help", cmd.Usage(n))
		}
		return nil
	}

	cmd, ok := con.registry.Lookup(name)
	if !ok {
		return curated.Errorf(CommandNotFound, name)
	}
	logger.Log(logger.Allow, "help", cmd.Usage(name))
	if cmd.Description != "" {
		logger.Log(logger.Allow, "help", cmd.Description)
	}

	return nil
}

func (con *Console) parseGraph(args Args) (rerr error) {
	line, err := args.String("line")
	if err != nil {
		return err
	}

	path, ok, err := args.OptString("path")
	if err != nil {
		return err
	}
	if !ok {
		path, err = paths.ResourcePath("graphs", fmt.Sprintf("%s.dot", paths.UniqueFilename("parse", "")))
		if err != nil {
			return err
		}
	}

	tree := con.grammar.Parse(line).First()
	if tree == nil {
		return curated.Errorf(SyntaxError, line)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("console: %v", err)
		}
	}()

	memviz.Map(f, tree)

	logger.Logf(logger.Allow, "console", "parse tree written to %s", path)

	return nil
}
