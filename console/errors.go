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

// Sentinal error patterns for the console. Test for them with curated.Is().
const (
	// the command line could not be parsed. the placeholder is the command
	// line
	SyntaxError = "console: syntax error: %s"

	// the command line could be parsed in more than one way. the
	// placeholders are the number of parse trees found (or the search limit)
	// and the command line
	AmbiguousCommand = "console: ambiguous command (%d parse trees): %s"

	// no command has been registered with the name
	CommandNotFound = "console: command not found: %s"

	// the same named parameter appears more than once on the command line
	DuplicateParameter = "console: duplicate parameter: %s"

	// the value of a parameter could not be converted to the type of the
	// parameter. the placeholders are the parameter name, the type name and
	// the value
	ArgumentParseError = "console: cannot parse argument '%s' as %s: %q"

	// the number of positional values is fewer than the number of
	// mandatory parameters still to be filled
	TooFewArguments = "console: too few arguments: %d given, %d required"

	// the number of positional values is greater than the number of
	// parameters still to be filled
	TooManyArguments = "console: too many arguments: %d given, %d accepted"

	// the command callback returned an error. the placeholder is the name of
	// the command and the error returned by the callback
	CallbackError = "console: %s: %v"

	// a command could not be registered. the placeholders are the command
	// name and the reason
	InvalidRegistration = "console: cannot register '%s': %s"

	// a command callback asked for an argument that was not bound. the
	// placeholder is the name of the argument
	MissingArgument = "console: missing argument '%s'"

	// a command callback asked for an argument as the wrong type. the
	// placeholders are the name of the argument, the type requested and
	// the type of the bound value
	WrongArgumentType = "console: argument '%s' requested as %s but is %s"

	// a Command could not be created from a parameter type by Declare().
	// the placeholders are the name of the type and the reason
	InvalidDeclaration = "console: cannot declare command from %s: %s"
)
