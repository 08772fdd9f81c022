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

// Package prefs facilitates the storage of preferential values in the
// application. Preference values are typed (Bool, String and Int) and are
// safe to read from any goroutine.
//
// Values are grouped and persisted with the Disk type. Each value is added
// to a Disk under a unique key:
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
//	var trace prefs.Bool
//	err = dsk.Add("console.debugtrace", &trace)
//	err = dsk.Load(true)
//
// The file is a plain text file of "key :: value" lines, sorted by key, with
// a warning line at the beginning. Many Disk instances can share the same
// file. Saving one Disk does not clobber the values of another.
//
// The command line stack allows preference values to be overridden from the
// command line for the duration of the program. Values on the top of the
// stack are applied (and then forgotten) by Disk.Load().
package prefs
