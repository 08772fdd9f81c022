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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of modes: a mode is a word on the command line
// that selects a group of flags and a behaviour of the program.
//
// A new Modes instance is started with NewArgs() and the list of sub-modes
// is given with AddSubModes(). The first sub-mode is the default and is
// selected if the next argument is not one of the listed modes. Flags are
// added with the Add*() functions and are valid until the next call to
// NewMode().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONSOLE", "DEBUGUI")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	md.NewMode()
//	trace := md.AddBool("trace", false, "trace the console")
//
//	switch md.Mode() {
//	case "CONSOLE":
//		...
//	}
//
// Mode comparisons are case insensitive. Mode names are always reported in
// upper case.
//
// Help is printed to the Output writer when the -help flag (or -h) is
// found. The help lists the flags of the current mode and any sub-modes that
// are available.
package modalflag
