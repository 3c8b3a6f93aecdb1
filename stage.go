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

package completion

import (
	"github.com/ayvask/completion/task"
)

// Stage represents one step of an asynchronous computation that eventually
// produces an Outcome[V, E], or terminates with a fault or a cancellation.
//
// A Stage never exposes its resolution in an ambiguous form: consumers
// observe it through the value/error taps, the fault tap, the Map/FlatMap
// combinators, or the blocking terminal GetBlocking, and each of those
// sees exactly one of the three channels.
//
// All combinators are non-blocking registration calls: they return a new
// Stage immediately, and the returned stage resolves asynchronously once
// the receiver does.
type Stage[V any, E comparable] struct {
	task *task.Task[Outcome[V, E]]
}

// FromTask wraps an existing asynchronous computation yielding an Outcome.
// The task is adopted as-is: completing, failing, or cancelling it resolves
// this stage accordingly.
// It panics if t is nil.
func FromTask[V any, E comparable](t *task.Task[Outcome[V, E]]) *Stage[V, E] {
	if t == nil {
		panic(nilTaskPanicMsg)
	}
	traceStage(traceFromTask)
	return &Stage[V, E]{task: t}
}

// FromOutcome wraps an already-resolved Outcome as a trivially-completed
// stage.
func FromOutcome[V any, E comparable](out Outcome[V, E]) *Stage[V, E] {
	traceStage(traceFromOutcome)
	return &Stage[V, E]{task: task.Resolved(out)}
}

// FromValue is shorthand for FromOutcome(ForValue(val)).
func FromValue[V any, E comparable](val V) *Stage[V, E] {
	return FromOutcome(ForValue[V, E](val))
}

// FromError is shorthand for FromOutcome(ForError(errCode)).
func FromError[V any, E comparable](errCode E) *Stage[V, E] {
	return FromOutcome(ForError[V, E](errCode))
}

// follow registers fn as the resolution handler of this stage, and returns
// the stage that fn is responsible for resolving.
// it's the registration half of every same-type combinator.
func (s *Stage[V, E]) follow(
	fn func(next *task.Task[Outcome[V, E]], res task.Resolution[Outcome[V, E]]),
) *Stage[V, E] {
	next := task.New[Outcome[V, E]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		fn(next, res)
	})
	return &Stage[V, E]{task: next}
}

// OnFault returns a stage carrying the same resolution as this one, with
// consumer invoked, at most once, with the direct fault cause, whenever
// this stage terminates abnormally(fault or cancellation), before that
// fault is normalized and re-raised downstream.
// A panic inside consumer faults the returned stage.
// It panics if consumer is nil.
func (s *Stage[V, E]) OnFault(consumer func(cause error)) *Stage[V, E] {
	if consumer == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceOnFault)
	return s.follow(func(next *task.Task[Outcome[V, E]], res task.Resolution[Outcome[V, E]]) {
		if res.State == task.Faulted || res.State == task.Cancelled {
			if !runGuarded(next, func() { consumer(faultCause(res.Cause)) }) {
				return
			}
		}
		adoptResolution(next, res)
	})
}

// OnValue returns a stage carrying the same resolution as this one, with
// consumer invoked with the value whenever this stage resolves to a value
// outcome, and not invoked otherwise.
// A panic inside consumer faults the returned stage.
// It panics if consumer is nil.
func (s *Stage[V, E]) OnValue(consumer func(val V)) *Stage[V, E] {
	if consumer == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceOnValue)
	return s.follow(func(next *task.Task[Outcome[V, E]], res task.Resolution[Outcome[V, E]]) {
		if res.State == task.Fulfilled && res.Val.IsValue() {
			if !runGuarded(next, func() { consumer(res.Val.Value()) }) {
				return
			}
		}
		adoptResolution(next, res)
	})
}

// OnError returns a stage carrying the same resolution as this one, with
// consumer invoked with the domain error code whenever this stage resolves
// to an error outcome, and not invoked otherwise.
// A panic inside consumer faults the returned stage.
// It panics if consumer is nil.
func (s *Stage[V, E]) OnError(consumer func(errCode E)) *Stage[V, E] {
	if consumer == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceOnError)
	return s.follow(func(next *task.Task[Outcome[V, E]], res task.Resolution[Outcome[V, E]]) {
		if res.State == task.Fulfilled && res.Val.IsError() {
			if !runGuarded(next, func() { consumer(res.Val.Error()) }) {
				return
			}
		}
		adoptResolution(next, res)
	})
}

// Wait blocks the calling goroutine until this stage is resolved.
func (s *Stage[V, E]) Wait() {
	s.task.Wait()
}

// Done returns a channel that's closed once this stage is resolved.
func (s *Stage[V, E]) Done() <-chan struct{} {
	return s.task.Done()
}

// State returns the current state of this stage, without blocking.
func (s *Stage[V, E]) State() task.State {
	return s.task.State()
}

// GetBlocking suspends the calling goroutine until this stage is resolved,
// then returns its resolution:
//   - (out, true, nil) when the stage resolved to an Outcome,
//   - (zero, false, nil) when the stage resolved absent(no value, no fault),
//   - (zero, false, err) when the stage faulted or was cancelled, with err
//     being the normalized fault, or the cancellation cause, respectively.
//
// It's meant for synchronous callers and tests, not for the middle of a
// composed chain, the non-blocking combinators are the chain's hot path.
func (s *Stage[V, E]) GetBlocking() (out Outcome[V, E], ok bool, err error) {
	traceStage(traceGetBlocking)
	res := s.task.Res()
	switch res.State {
	case task.Fulfilled:
		return res.Val, true, nil
	case task.Absent:
		return out, false, nil
	default:
		return out, false, normalizeFault(res.Cause)
	}
}

// runGuarded runs fn, converting a panic inside it into a fault on next.
// It reports whether fn returned normally.
func runGuarded[T any](next *task.Task[T], fn func()) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			next.Fail(PanicError{V: v})
		}
	}()
	fn()
	return true
}

// adoptResolution resolves next to the provided resolution, unchanged in
// meaning: values and absence pass through, and abnormal terminations are
// re-raised normalized(which keeps cancellation a cancellation, and never
// re-wraps an already-wrapped fault).
func adoptResolution[T any](next *task.Task[T], res task.Resolution[T]) {
	switch res.State {
	case task.Fulfilled:
		next.Complete(res.Val)
	case task.Absent:
		next.CompleteAbsent()
	case task.Faulted, task.Cancelled:
		next.Fail(normalizeFault(res.Cause))
	}
}
