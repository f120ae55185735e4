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

// Package controller defines the device model shared between hardware
// backends and the host. A Device is a named collection of Inputs and
// Outputs; the Registry is where backends publish devices and where the
// host finds them.
//
// The Registry serialises every mutation of its device list. A Device is
// only visible to the host after it has been fully constructed and
// published, and it is unlisted before it is closed. Backends are
// therefore free to construct and destroy devices from their own
// goroutines while the host polls from another.
package controller
