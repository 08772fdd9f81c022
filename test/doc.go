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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() family of functions report a test failure but allow
// the test to continue. The Demand*() family of functions are fatal to the
// test.
//
// The ExpectSuccess() and ExpectFailure() functions accept values of type
// bool, error or nil and test for the success or failure condition
// appropriate to the type.
//
//	test.ExpectSuccess(t, err)
//	test.ExpectFailure(t, ok)
//
// Any of the Expect/Demand functions accept optional tags. The tags are
// prepended to the failure message and help identify which of several similar
// tests in a table has failed.
//
// CompareWriter is an io.Writer that captures output so that it can be
// compared with an expected string.
package test
