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

package task

import "fmt"

// State describes how a task ended up, once it's resolved.
type State int

const (
	// the order here matter
	Pending State = iota
	Fulfilled
	Absent
	Faulted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Absent:
		return "absent"
	case Faulted:
		return "faulted"
	case Cancelled:
		return "cancelled"
	default:
		return "<unknown>"
	}
}

// Resolution is the terminal value of a task, an explicit tagged union of
// the four ways a task can resolve.
// Exactly one reading of it is meaningful, based on the State field:
// Fulfilled carries Val, Faulted and Cancelled carry Cause, and Absent
// carries neither.
//
// A Resolution is immutable once published by the task, and it's always
// observed as a consistent whole, never partially written.
type Resolution[T any] struct {
	State State
	Val   T
	Cause error
}

func (r Resolution[T]) String() string {
	switch r.State {
	case Fulfilled:
		return fmt.Sprintf("fulfilled: %v", r.Val)
	case Absent:
		return "absent"
	case Faulted:
		return fmt.Sprintf("faulted: %s", r.Cause.Error())
	case Cancelled:
		return fmt.Sprintf("cancelled: %s", r.Cause.Error())
	default:
		return "pending"
	}
}
