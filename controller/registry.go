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

import (
	"sort"
	"sync"

	"github.com/hattonsw/padbridge/logger"
)

// Registry is the list of published devices. All mutation of the list is
// serialised by an internal critical section, allowing a hardware backend
// to add and remove devices from its own goroutine while the host polls
// from another
type Registry struct {
	crit    sync.Mutex
	devices []Device
}

// NewRegistry is the preferred method of initialisation for the Registry
// type
func NewRegistry() *Registry {
	return &Registry{}
}

// AddDevice publishes a device. A device whose NativeID duplicates one
// already in the registry is rejected. Returns true if the device was
// published. The registry owns published devices and will close them on
// removal or shutdown
func (reg *Registry) AddDevice(dev Device) bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.addDevice(dev)
}

// addDevice assumes the critical section is held
func (reg *Registry) addDevice(dev Device) bool {
	if id, ok := dev.NativeID(); ok {
		for _, d := range reg.devices {
			if did, dok := d.NativeID(); dok && did == id {
				logger.Logf("controller", "rejecting %s: instance %d already registered", dev.Name(), id)
				return false
			}
		}
	}

	reg.devices = append(reg.devices, dev)
	sort.SliceStable(reg.devices, func(i, j int) bool {
		return reg.devices[i].SortPriority() > reg.devices[j].SortPriority()
	})

	logger.Logf("controller", "added %s (%s)", dev.Name(), dev.Source())
	return true
}

// RemoveDevice unlists and closes every device for which the match
// function returns true. Returns the number of devices removed. A match
// against nothing is not an error
func (reg *Registry) RemoveDevice(match func(Device) bool) int {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	num := 0
	keep := reg.devices[:0]
	for _, dev := range reg.devices {
		if match(dev) {
			logger.Logf("controller", "removed %s (%s)", dev.Name(), dev.Source())
			dev.Close()
			num++
		} else {
			keep = append(keep, dev)
		}
	}

	// clear the tail so removed devices are not retained by the backing
	// array
	for i := len(keep); i < len(reg.devices); i++ {
		reg.devices[i] = nil
	}
	reg.devices = keep

	return num
}

// PlatformPopulateDevices atomically replaces the device list. The
// current list is closed and cleared and the populate function is run
// inside the same critical section. The populate function re-adds
// devices through the add function it is given; calling any other
// Registry function from inside populate will deadlock
func (reg *Registry) PlatformPopulateDevices(populate func(add func(Device) bool)) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	for i, dev := range reg.devices {
		dev.Close()
		reg.devices[i] = nil
	}
	reg.devices = reg.devices[:0]

	populate(reg.addDevice)
}

// UpdateInput refreshes every published device. Called once per polling
// cycle by the host, before any Input is read. Runs inside the critical
// section so that a device cannot be closed mid-refresh
func (reg *Registry) UpdateInput() {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	for _, dev := range reg.devices {
		dev.UpdateInput()
	}
}

// ForEachOutput runs the do function over every output of every
// published device. Runs inside the critical section so that a device
// cannot be removed and closed while its outputs are being written
func (reg *Registry) ForEachOutput(do func(Output)) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	for _, dev := range reg.devices {
		for _, out := range dev.Outputs() {
			do(out)
		}
	}
}

// Devices returns a snapshot of the published device list
func (reg *Registry) Devices() []Device {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	return append([]Device(nil), reg.devices...)
}

// Shutdown closes and unlists every device. The registry can be reused
// after Shutdown but any previously published device cannot
func (reg *Registry) Shutdown() {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	for i, dev := range reg.devices {
		dev.Close()
		reg.devices[i] = nil
	}
	reg.devices = reg.devices[:0]
}
