// This file is part of Padbridge.
//
// Padbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbridge.  If not, see <https://www.gnu.org/licenses/>.

//go:build !statsview
// +build !statsview

package statsview

import "io"

// Address of the stats server
const Address = ""

// Launch is a stub. Rebuild with the statsview tag for a working stats
// server
func Launch(output io.Writer) {
	output.Write([]byte("statsview not available in this build (rebuild with the statsview build tag)\n"))
}

// Available returns true if a statsview is available to launch
func Available() bool {
	return false
}
