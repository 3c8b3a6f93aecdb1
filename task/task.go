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

// Package task provides a single-assignment asynchronous completion slot.
//
// A Task is settable exactly once, from any goroutine, with either a value,
// an absent marker, a fault cause, or a cancellation, and it's observable
// any number of times, through blocking retrieval or completion callbacks.
// It's the execution primitive underneath the completion package, and it
// knows nothing about outcomes or composition.
package task

import (
	"context"
	"errors"

	"github.com/ayvask/completion/internal/status"
)

// panic messages
const (
	nilCallbackPanicMsg = "task: the provided callback is nil"
	nilCausePanicMsg    = "task: the provided cause is nil"
)

// ErrCanceled is the cause carried by a task that's resolved through Cancel.
var ErrCanceled = errors.New("task: task canceled")

// IsCancellation reports whether err is a cancellation signal, either this
// package's ErrCanceled or one of the context cancellation errors.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Task is a single-assignment completion slot producing a value of type T.
//
// The zero value is not usable, create tasks through New, Resolved,
// ResolvedAbsent, or Failed.
type Task[T any] struct {
	// closed when this task is resolved.
	// this channel has one writer (one goroutine), which is the settle call
	// that claimed the resolving fate, but can have multiple readers.
	syncChan chan struct{}

	// holds the resolution of the task.
	// written once, before the syncChan channel is closed.
	//
	// don't read it unless the syncChan is known to be closed.
	res Resolution[T]

	// holds the fate and state of the task.
	// refer to the docs of the TaskStatus type for more info.
	status status.TaskStatus
}

// New returns a fresh, externally completable task.
func New[T any]() *Task[T] {
	return &Task[T]{syncChan: make(chan struct{})}
}

var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}

// newTaskSync creates a new Task which is resolved synchronously,
// just after it's created.
func newTaskSync[T any](res Resolution[T]) *Task[T] {
	t := &Task[T]{syncChan: closedChan, res: res}
	t.status.SetResolving()
	switch res.State {
	case Fulfilled:
		t.status.SetFulfilledResolved()
	case Absent:
		t.status.SetAbsentResolved()
	case Faulted:
		t.status.SetFaultedResolved()
	case Cancelled:
		t.status.SetCancelledResolved()
	}
	return t
}

// Resolved returns a task that's already resolved with the provided value.
func Resolved[T any](val T) *Task[T] {
	return newTaskSync(Resolution[T]{State: Fulfilled, Val: val})
}

// ResolvedAbsent returns a task that's already resolved, but with no value,
// the degenerate completion of the underlying primitive.
func ResolvedAbsent[T any]() *Task[T] {
	return newTaskSync(Resolution[T]{State: Absent})
}

// Failed returns a task that's already resolved abnormally with the provided
// cause.
// A cancellation cause produces a cancelled task, not a faulted one.
func Failed[T any](cause error) *Task[T] {
	if cause == nil {
		panic(nilCausePanicMsg)
	}
	if IsCancellation(cause) {
		return newTaskSync(Resolution[T]{State: Cancelled, Cause: cause})
	}
	return newTaskSync(Resolution[T]{State: Faulted, Cause: cause})
}

// Complete resolves the task with the provided value.
// It returns true if this call is the one that resolved the task, or false
// if the task was already resolved, or is being resolved, by another call.
func (t *Task[T]) Complete(val T) bool {
	return t.settle(Resolution[T]{State: Fulfilled, Val: val})
}

// CompleteAbsent resolves the task with no value, no fault, and no
// cancellation.
func (t *Task[T]) CompleteAbsent() bool {
	return t.settle(Resolution[T]{State: Absent})
}

// Fail resolves the task abnormally with the provided cause.
// A cancellation cause(per IsCancellation) resolves the task to Cancelled
// instead of Faulted, keeping the cause as-is.
// It panics if cause is nil.
func (t *Task[T]) Fail(cause error) bool {
	if cause == nil {
		panic(nilCausePanicMsg)
	}
	if IsCancellation(cause) {
		return t.settle(Resolution[T]{State: Cancelled, Cause: cause})
	}
	return t.settle(Resolution[T]{State: Faulted, Cause: cause})
}

// Cancel resolves the task to Cancelled, with ErrCanceled as its cause.
func (t *Task[T]) Cancel() bool {
	return t.settle(Resolution[T]{State: Cancelled, Cause: ErrCanceled})
}

// settle is the single resolution path of the task.
// only the call that claims the Resolving fate writes the res field and
// closes the syncChan, so readers that got through the syncChan always see
// a complete Resolution value.
func (t *Task[T]) settle(res Resolution[T]) bool {
	if set, _ := t.status.SetResolving(); !set {
		return false
	}

	t.res = res
	switch res.State {
	case Fulfilled:
		t.status.SetFulfilledResolved()
	case Absent:
		t.status.SetAbsentResolved()
	case Faulted:
		t.status.SetFaultedResolved()
	case Cancelled:
		t.status.SetCancelledResolved()
	}
	close(t.syncChan)
	return true
}

// wait waits for the task to be resolved, by either blocking on receiving
// from the syncChan, or utilizing the fate value of the task status.
func (t *Task[T]) wait() {
	// if the fate is 'Resolved', don't wait, as it's guaranteed to happen
	// after the resolution is saved, and after the syncChan is closed.
	if status.IsFateResolved(t.status.Load()) {
		return
	}

	// the chan will always be closed by the settle call, after setting
	// the res and status fields as expected.
	<-t.syncChan
}

// Done returns a channel that's closed once the task is resolved.
func (t *Task[T]) Done() <-chan struct{} {
	return t.syncChan
}

// Wait blocks the calling goroutine until the task is resolved.
func (t *Task[T]) Wait() {
	t.wait()
}

// Res blocks the calling goroutine until the task is resolved, then returns
// its resolution.
func (t *Task[T]) Res() Resolution[T] {
	t.wait()
	return t.res
}

// State returns the current state of the task, without blocking.
// It returns Pending if the task is not resolved yet.
func (t *Task[T]) State() State {
	s := t.status.Load()
	switch {
	case !status.IsFateResolved(s):
		return Pending
	case status.IsStateFulfilled(s):
		return Fulfilled
	case status.IsStateAbsent(s):
		return Absent
	case status.IsStateFaulted(s):
		return Faulted
	case status.IsStateCancelled(s):
		return Cancelled
	default:
		return Pending
	}
}

// OnResolve registers a completion callback, invoked exactly once, on some
// goroutine, with the task's resolution, after the task is resolved.
// Registering on an already-resolved task still invokes the callback, there
// are no missed notifications.
// It panics if cb is nil.
func (t *Task[T]) OnResolve(cb func(res Resolution[T])) {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}

	go func() {
		t.wait()
		cb(t.res)
	}()
}
