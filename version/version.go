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


// Package version reports the version of the k9 binary. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/k9engine/k9/version.number=v0.1.0"
//
// Otherwise the version is taken from the module build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "k9"

// set by the linker for release builds
var number string

// Info describes the build of the running binary.
type Info struct {
	// the release number, "unreleased" if the binary was built from a vcs
	// checkout without a release number, or "local" if there is no
	// information at all. "local" happens with "go run ."
	Version string

	// vcs revision, suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// the go version used to build the binary
	GoVersion string

	// true if Version is a release number
	Release bool
}

// String returns a single line summary of the build. The revision is omitted
// for release builds.
func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, inf.Version, inf.Revision, inf.GoVersion)
}

// Current is the build information of the running binary. It is filled in
// once at program start.
var Current Info

func init() {
	Current = readInfo(number, debug.ReadBuildInfo)
}

func readInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var inf Info
	var vcs bool
	var modified bool

	if bi, ok := read(); ok {
		inf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
