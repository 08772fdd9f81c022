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

// Package console implements the command language of the k9 debug console.
//
// A command line is a command name followed by parameters separated by
// whitespace:
//
//	command_name name: value --flag positional "quoted value"
//
// Command lines are parsed with the grammar in console_command.bnf (see the
// grammar package for the dialect). The parse tree is reduced to the command
// name and a list of Parameter values. The parameters are then bound to the
// command's ArgumentDefinitions by the Bind() function and the command's
// Callback is invoked with the resulting Args.
//
// Commands are added with Console.Register(). A Command can be created
// directly, with the CommandBuilder type, or from a struct type with the
// Declare() function.
//
// Every error from Console.Submit() is one of the curated patterns listed in
// errors.go. Errors are logged and only affect the command line that was
// submitted. A parse tree with an unexpected shape causes a panic because it
// means the grammar and the reducer disagree.
//
// Built-in commands are registered by NewConsole(). They can be replaced by
// registering a command with the same name.
//
//	k9_debug_console_command value: Bool
//	quit
//	help [command: String]
//	k9_window id: String [--close]
//	k9_parse_graph line: String [path: String]
//
// When debug tracing is enabled every parse tree of a command line and the
// bound arguments are written to the log at trace level.
package console
