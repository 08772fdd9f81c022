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


package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var defaults strings.Builder
	md.flags.SetOutput(&defaults)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	var numFlags int
	md.flags.VisitAll(func(_ *flag.Flag) {
		numFlags++
	})

	if numFlags == 0 && len(md.subModes) == 0 {
		if len(md.path) > 0 {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	if len(md.path) > 0 {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}

	fmt.Fprint(md.Output, defaults.String())

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}
