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


// Package statsview runs a local HTTP server showing the runtime statistics
// of the k9 process. It is only available when the program is built with the
// statsview build tag:
//
//	go build -tags statsview
//
// The charts are at localhost:12609/debug/statsview and the standard pprof
// pages are at localhost:12609/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
