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

// Package sdlpad exposes SDL game controllers as controller.Device
// implementations. The Coordinator type owns a background goroutine that
// services the SDL event queue, reacting to hot-plug events by opening
// and closing devices and publishing them to a controller.Registry.
//
// The SDL library is reached through the System and Pad interfaces. The
// production implementation is returned by SDL(); tests substitute their
// own.
//
// Lifecycle is cooperative. Init() blocks until the background goroutine
// is servicing the event queue (or has failed to start); DeInit() injects
// a private stop event into the same queue the goroutine is blocked on
// and waits for it to exit. There are no timeouts anywhere in the
// package: shutdown relies on the event queue delivering the stop event.
package sdlpad
