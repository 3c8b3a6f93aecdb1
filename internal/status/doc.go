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

// Package status represents values for the task's status.
//
// The value is split into 3 sections, lock, fate, and state, as follows,
// starting from the right:
// - The lock section takes 2 bits.
// - The fate section takes 2 bits.
// - The state section takes 3 bits.
//
// Description of the sections:
//
//   - the lock section.
//     = although it's named 'lock', it doesn't use any Mutexes.
//     = The lock is implemented through atomic writing, reading, and updating
//     of the status value.
//     = The lock logic is just a way to tell new comers(that want to update
//     the status) that: "the value is currently being updated by some previous
//     update call, so wait here until it finishes, then you can get your
//     chance to update the status too".
//     = The whole waiting behaviour is passed to the 'go scheduler'(through a
//     call to runtime.Gosched) to decide which goroutine should run now(and
//     hence acquire the lock first).
//     = The lock will be acquired for only a small period of time by any call,
//     because the operations done while the lock is acquired are very basic.
//
//   - the fate section.
//     = The fate moves one-way, from Unresolved, through Resolving, to
//     Resolved.
//     = Resolving is claimed by at most one settle call(through SetResolving),
//     which is what makes the single-assignment guarantee of the task hold.
//
//   - the state section.
//     = The state is Pending until the fate is Resolved, then it's exactly
//     one of Fulfilled, Absent, Faulted, or Cancelled, and never changes
//     after that.
package status
