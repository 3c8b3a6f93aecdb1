// Copyright 2024 Anton Yavask(ayvask)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"runtime"
	"sync/atomic"
)

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
	swap = atomic.SwapUint32
)

// TaskStatus holds the value that defines and represents the status of
// the task.
// It's read and written/updated atomically.
type TaskStatus uint32

// the lock's related values and constants, using 2 bits(the [1st : 2nd] bits)
const (
	// lockAcquired is the value of the status when some update call is
	// running(one of the Set methods).
	lockAcquired uint32 = 1 << iota
	_                   // reserved
)

// the fate's related values and constants, using 2 bits(the [3rd : 4th] bits)
const (
	// starting with a shift amount of 2, which is the number of bits used by
	// previous sections.

	// fate modes, using 2 bits
	fateUnresolved uint32 = iota << 2
	fateResolving  uint32 = iota << 2
	fateResolved   uint32 = iota << 2

	// fateBitsSetMask and fateBitsClrMask are &-ed with the status to get
	// the fate value and clear the fate value, respectively.
	fateBitsSetMask = 3 << 2
	fateBitsClrMask = ^uint32(fateBitsSetMask)
)

// the state's related values and constants, using 3 bits(the [5th : 7th] bits)
const (
	// starting with a shift amount of 4, which is the number of bits used by
	// previous sections.

	// state modes, using 3 bits
	statePending   uint32 = iota << 4
	stateFulfilled uint32 = iota << 4
	stateAbsent    uint32 = iota << 4
	stateFaulted   uint32 = iota << 4
	stateCancelled uint32 = iota << 4

	// stateBitsSetMask and stateBitsClrMask are &-ed with the status to get
	// the state value and clear the state value, respectively.
	stateBitsSetMask = 7 << 4
	stateBitsClrMask = ^uint32(stateBitsSetMask)
)

func (s *TaskStatus) readAndAcquireLock() (currentStatus uint32) {
	// read the current status value, and acquire the update lock,
	// by checking if any other, previous, update call is still
	// processing, and wait for it to finish.
	cs := swap((*uint32)(s), lockAcquired)
	for cs == lockAcquired {
		// don't actively wait for concurrent update calls, instead,
		// tell the go scheduler to run other goroutines(including the
		// one which has the lock) instead of the current(waiting) one.
		runtime.Gosched()
		cs = swap((*uint32)(s), lockAcquired)
	}
	// at this point, the value of the current status, cs, here is
	// only available to this method and its caller.
	return cs
}

func (s *TaskStatus) saveAndReleaseLock(newStatus uint32) {
	// save the new status value, and release the update lock
	if !cas((*uint32)(s), lockAcquired, newStatus) {
		// panic if the status value has been changed unexpectedly
		panic("status: internal: unexpected status change")
	}
}

// Load returns the current status value, if it's not being updated right now,
// and if it's, it waits until it's updated then return the value.
func (s *TaskStatus) Load() (currentStatus uint32) {
	cs := load((*uint32)(s))
	for cs == lockAcquired {
		cs = load((*uint32)(s))
	}
	return cs
}

// SetResolving sets the fate to Resolving, only if it's Unresolved.
// It's how a settle call claims the one-time right to resolve the task.
// The caller that gets set = true must follow up with exactly one of the
// SetXXXResolved methods.
func (s *TaskStatus) SetResolving() (set bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// set the fate to resolving, only if the fate is unresolved
	if ns&fateBitsSetMask == fateUnresolved {
		ns &= fateBitsClrMask // clear the fate section
		ns |= fateResolving   // set the fate to resolving
		set = true            // this is the first set to resolving
	}

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return set, ns
}

// SetFulfilledResolved sets the state to Fulfilled, and the fate to Resolved.
func (s *TaskStatus) SetFulfilledResolved() (status uint32) {
	return s.setResolved(stateFulfilled)
}

// SetAbsentResolved sets the state to Absent, and the fate to Resolved.
func (s *TaskStatus) SetAbsentResolved() (status uint32) {
	return s.setResolved(stateAbsent)
}

// SetFaultedResolved sets the state to Faulted, and the fate to Resolved.
func (s *TaskStatus) SetFaultedResolved() (status uint32) {
	return s.setResolved(stateFaulted)
}

// SetCancelledResolved sets the state to Cancelled, and the fate to Resolved.
func (s *TaskStatus) SetCancelledResolved() (status uint32) {
	return s.setResolved(stateCancelled)
}

func (s *TaskStatus) setResolved(state uint32) (status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	ns &= fateBitsClrMask  // clear the fate section
	ns |= fateResolved     // set the fate to resolved
	ns &= stateBitsClrMask // clear the state section
	ns |= state            // set the state to the requested state

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return ns
}
