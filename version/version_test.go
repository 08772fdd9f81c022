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


package version

import (
	"runtime/debug"
	"testing"

	"github.com/k9engine/k9/test"
)

func buildInfo(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.24.0", Settings: settings}, true
	}
}

func TestLocal(t *testing.T) {
	inf := readInfo("", func() (*debug.BuildInfo, bool) { return nil, false })
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Release, false)
	test.ExpectEquality(t, inf.Revision, "no revision information")
}

func TestUnreleased(t *testing.T) {
	inf := readInfo("", buildInfo(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.modified", Value: "true"},
	))
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
	test.ExpectEquality(t, inf.String(), "k9 unreleased (abc123+dirty) go1.24.0")
}

func TestRelease(t *testing.T) {
	inf := readInfo("v0.1.0", buildInfo(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.modified", Value: "false"},
	))
	test.ExpectEquality(t, inf.Release, true)
	test.ExpectEquality(t, inf.Revision, "abc123")
	test.ExpectEquality(t, inf.String(), "k9 v0.1.0")
}
