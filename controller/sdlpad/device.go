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
	"strings"

	"github.com/hattonsw/padbridge/controller"
	"github.com/hattonsw/padbridge/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// how long a single rumble write lasts. long enough to outlast any
// polling interval; the coalescing in motor.SetState() issues a fresh
// write whenever the requested magnitude changes
const rumbleLengthMs = 10000

// device implements controller.Device for one opened Pad
type device struct {
	sys   System
	pad   Pad
	name  string
	index int

	// battery level as quantised by UpdateInput(). read through the
	// battery control
	battery controller.ControlState

	// the last magnitudes written to the rumble motors. written through
	// the motor controls
	rumble struct {
		left  uint16
		right uint16
	}

	inputs  []controller.Input
	outputs []controller.Output
}

// newDevice builds the fixed control catalogue around an opened Pad. the
// index is the enumeration slot the pad was opened at
func newDevice(sys System, pad Pad, index int) *device {
	dev := &device{
		sys:   sys,
		pad:   pad,
		name:  strings.TrimSpace(pad.Name()),
		index: index,
	}

	dev.inputs = make([]controller.Input, 0, len(namedButtons)+len(namedTriggers)+2*len(namedSticks)+1)
	dev.outputs = make([]controller.Output, 0, len(namedMotors))

	for _, def := range namedButtons {
		dev.inputs = append(dev.inputs, button{def: def, pad: pad})
	}

	for _, def := range namedTriggers {
		dev.inputs = append(dev.inputs, trigger{def: def, pad: pad})
	}

	// each stick axis is surfaced as two inputs, one for each half of its
	// travel. the host's binding model treats "stick pulled left" and
	// "stick pulled right" as independently bindable controls
	for _, def := range namedSticks {
		dev.inputs = append(dev.inputs, axis{def: def, pad: pad, rng: axisMin})
		dev.inputs = append(dev.inputs, axis{def: def, pad: pad, rng: axisMax})
	}

	for i, name := range namedMotors {
		dev.outputs = append(dev.outputs, motor{name: name, side: i, rng: rumbleMax, dev: dev})
	}

	dev.inputs = append(dev.inputs, battery{dev: dev})

	return dev
}

func (dev *device) Name() string {
	return dev.name
}

func (dev *device) Source() string {
	return "sdlpad"
}

func (dev *device) PreferredID() (int, bool) {
	return dev.index, true
}

// SortPriority is fixed below the default so these devices list after
// higher-priority input sources
func (dev *device) SortPriority() int {
	return -1
}

func (dev *device) NativeID() (int32, bool) {
	return dev.pad.InstanceID(), true
}

func (dev *device) Inputs() []controller.Input {
	return dev.inputs
}

func (dev *device) Outputs() []controller.Output {
	return dev.outputs
}

// UpdateInput refreshes the library's controller snapshot and requantises
// the battery level
func (dev *device) UpdateInput() {
	// TODO: refresh the library snapshot once per Registry.UpdateInput()
	// rather than once per device
	dev.sys.Update()

	// the coarse quantisation is intentional: hosts display the level as
	// a rough gauge, not a percentage
	switch dev.pad.PowerLevel() {
	case sdl.JOYSTICK_POWER_WIRED, sdl.JOYSTICK_POWER_MAX:
		dev.battery = 1.0
	case sdl.JOYSTICK_POWER_MEDIUM:
		dev.battery = 0.5
	case sdl.JOYSTICK_POWER_LOW:
		dev.battery = 0.3
	default:
		dev.battery = 0.0
	}
}

// UpdateMotors issues a single combined rumble write from the cached
// magnitudes. called by a motor control when its value changes, never
// unconditionally
func (dev *device) UpdateMotors() {
	if err := dev.pad.Rumble(dev.rumble.left, dev.rumble.right, rumbleLengthMs); err != nil {
		logger.Logf("sdlpad", "rumble %s: %v", dev.name, err)
	}
}

func (dev *device) Close() {
	dev.pad.Close()
}
