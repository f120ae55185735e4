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

package controller

// ControlState is the normalised value of a control. Inputs report in the
// range [0.0, 1.0] for unidirectional controls and [-1.0, 1.0] for
// bidirectional ones. Outputs accept [0.0, 1.0]
type ControlState float64

// Input is a single readable control exposed by a Device
type Input interface {
	// Name of the control. stable for the lifetime of the device and
	// suitable for use in host-side bindings
	Name() string

	// State returns the current value of the control. the owning device's
	// UpdateInput() must have been called during the current polling cycle
	State() ControlState

	// Detectable indicates whether a change in the control's state can be
	// discovered by polling. controls that drift on their own, such as a
	// battery level, return false so that the host does not probe them
	// when scanning for user activity
	Detectable() bool
}

// Output is a single writable control exposed by a Device
type Output interface {
	// Name of the control
	Name() string

	// SetState writes a new value to the control
	SetState(ControlState)
}

// Device is a single physical input device published to the Registry
type Device interface {
	// Name of the device as reported by the hardware
	Name() string

	// Source identifies the backend that created the device
	Source() string

	// PreferredID returns the enumeration slot the device was opened at.
	// the second return value is false if the device has no stable slot.
	// hosts use this to keep bindings stable across reconnects when the
	// underlying instance id changes but the slot does not
	PreferredID() (int, bool)

	// SortPriority orders devices in the registry. higher values list
	// first
	SortPriority() int

	// NativeID returns the hardware instance id of the device. the second
	// return value is false for devices with no native identity. removal
	// predicates match on this rather than inspecting concrete types
	NativeID() (int32, bool)

	// Inputs owned by the device
	Inputs() []Input

	// Outputs owned by the device
	Outputs() []Output

	// UpdateInput refreshes any state cached by the device. it must be
	// called once per polling cycle before reading any Input
	UpdateInput()

	// Close releases the underlying hardware handle. the device must not
	// be used after Close
	Close()
}
