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

package sdlpad

import (
	"github.com/hattonsw/padbridge/controller"
)

// button is a digital input. pressed when the raw value is non-zero
type button struct {
	def buttonDef
	pad Pad
}

func (b button) Name() string {
	return b.def.name
}

func (b button) State() controller.ControlState {
	if b.pad.Button(b.def.button) > 0 {
		return 1
	}
	return 0
}

func (b button) Detectable() bool {
	return true
}

// axis is one half of a stick axis. rng is the signed range endpoint the
// raw value is divided by: axisMin for the negative half, axisMax for
// the positive half. pushing the stick toward the half's own extreme
// yields a value approaching 1.0; the opposite direction yields a
// negative value which hosts treat as no deflection. values are not
// clamped
type axis struct {
	def axisDef
	pad Pad
	rng int
}

func (a axis) Name() string {
	if a.rng < 0 {
		return a.def.name + "-"
	}
	return a.def.name + "+"
}

func (a axis) State() controller.ControlState {
	return controller.ControlState(a.pad.Axis(a.def.axis)) / controller.ControlState(a.rng)
}

func (a axis) Detectable() bool {
	return true
}

// trigger is a unidirectional analog input in the range [0.0, 1.0]
type trigger struct {
	def axisDef
	pad Pad
}

func (t trigger) Name() string {
	return t.def.name
}

func (t trigger) State() controller.ControlState {
	return controller.ControlState(t.pad.Axis(t.def.axis)) / axisMax
}

func (t trigger) Detectable() bool {
	return true
}

// motor sides, indexing namedMotors
const (
	motorLeft = iota
	motorRight
)

// motor is a rumble output. the requested state is scaled to the 16-bit
// magnitude range and written back to the owning device's cached rumble
// pair. the hardware write only happens when the computed magnitude
// differs from the cached one, so repeated writes of the same value cost
// nothing
type motor struct {
	name string
	side int
	rng  uint16
	dev  *device
}

func (m motor) Name() string {
	return m.name
}

func (m motor) SetState(state controller.ControlState) {
	v := uint16(state * controller.ControlState(m.rng))

	if m.side == motorRight {
		if v == m.dev.rumble.right {
			return
		}
		m.dev.rumble.right = v
	} else {
		if v == m.dev.rumble.left {
			return
		}
		m.dev.rumble.left = v
	}

	m.dev.UpdateMotors()
}

// battery is a read-only view of the device's cached battery level. not
// detectable: the level drifts without user interaction
type battery struct {
	dev *device
}

func (b battery) Name() string {
	return "Battery"
}

func (b battery) State() controller.ControlState {
	return b.dev.battery
}

func (b battery) Detectable() bool {
	return false
}
