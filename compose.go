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

// The transformation combinators live here as package-level functions,
// since Go methods can't introduce new type parameters for the mapped
// value/error types.
//
// All of them share the same resolution discipline:
//   - a fault propagates, normalized, without invoking the mapping,
//   - a cancellation propagates as cancellation, short-circuiting the chain,
//   - an absent resolution propagates as absent, without invoking the
//     mapping,
//   - a panic inside the mapping resolves the result stage to a fault
//     carrying the panic value,
//   - otherwise the mapping runs and determines the result stage's
//     resolution.

// MapValue returns a stage resolving to ForValue(mapping(v)) when s
// resolves to a value outcome, and passing an error outcome through
// unchanged(retyped to the new value type).
// It panics if mapping is nil.
func MapValue[V any, E comparable, T any](s *Stage[V, E], mapping func(val V) T) *Stage[T, E] {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceMapValue)
	next := task.New[Outcome[T, E]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		if propagateAbnormal(next, res) {
			return
		}
		if res.Val.IsError() {
			next.Complete(Outcome[T, E]{errCode: res.Val.errCode, isError: true})
			return
		}
		runGuarded(next, func() {
			out := ForValue[T, E](mapping(res.Val.value))
			next.Complete(out)
		})
	})
	return &Stage[T, E]{task: next}
}

// MapError is the error-channel counterpart of MapValue: it returns a stage
// resolving to ForError(mapping(e)) when s resolves to an error outcome,
// and passing a value outcome through unchanged(retyped to the new error
// type).
// It panics if mapping is nil.
func MapError[V any, E comparable, F comparable](s *Stage[V, E], mapping func(errCode E) F) *Stage[V, F] {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceMapError)
	next := task.New[Outcome[V, F]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		if propagateAbnormal(next, res) {
			return
		}
		if res.Val.IsValue() {
			next.Complete(Outcome[V, F]{value: res.Val.value})
			return
		}
		runGuarded(next, func() {
			out := ForError[V, F](mapping(res.Val.errCode))
			next.Complete(out)
		})
	})
	return &Stage[V, F]{task: next}
}

// FlatMapValue returns a stage that, when s resolves to a value outcome,
// adopts the eventual resolution of the stage returned by mapping, and
// passes an error outcome through unchanged.
// It panics if mapping is nil.
func FlatMapValue[V any, E comparable, T any](
	s *Stage[V, E],
	mapping func(val V) *Stage[T, E],
) *Stage[T, E] {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceFlatMapValue)
	next := task.New[Outcome[T, E]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		if propagateAbnormal(next, res) {
			return
		}
		if res.Val.IsError() {
			next.Complete(Outcome[T, E]{errCode: res.Val.errCode, isError: true})
			return
		}
		runGuarded(next, func() {
			mapped := mapping(res.Val.value)
			mapped.task.OnResolve(func(mappedRes task.Resolution[Outcome[T, E]]) {
				adoptResolution(next, mappedRes)
			})
		})
	})
	return &Stage[T, E]{task: next}
}

// FlatMapError is the error-channel counterpart of FlatMapValue: when s
// resolves to an error outcome it adopts the eventual resolution of the
// stage returned by mapping, and passes a value outcome through unchanged.
// It panics if mapping is nil.
func FlatMapError[V any, E comparable, F comparable](
	s *Stage[V, E],
	mapping func(errCode E) *Stage[V, F],
) *Stage[V, F] {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceFlatMapError)
	next := task.New[Outcome[V, F]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		if propagateAbnormal(next, res) {
			return
		}
		if res.Val.IsValue() {
			next.Complete(Outcome[V, F]{value: res.Val.value})
			return
		}
		runGuarded(next, func() {
			mapped := mapping(res.Val.errCode)
			mapped.task.OnResolve(func(mappedRes task.Resolution[Outcome[V, F]]) {
				adoptResolution(next, mappedRes)
			})
		})
	})
	return &Stage[V, F]{task: next}
}

// FlatMapOutcome is the general composition primitive: when s resolves to
// any Outcome, it adopts the eventual resolution of the stage returned by
// mapping, which may change both the value and the error type.
// It panics if mapping is nil.
func FlatMapOutcome[V any, E comparable, T any, F comparable](
	s *Stage[V, E],
	mapping func(out Outcome[V, E]) *Stage[T, F],
) *Stage[T, F] {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	traceStage(traceFlatMapOutcome)
	next := task.New[Outcome[T, F]]()
	s.task.OnResolve(func(res task.Resolution[Outcome[V, E]]) {
		if propagateAbnormal(next, res) {
			return
		}
		runGuarded(next, func() {
			mapped := mapping(res.Val)
			mapped.task.OnResolve(func(mappedRes task.Resolution[Outcome[T, F]]) {
				adoptResolution(next, mappedRes)
			})
		})
	})
	return &Stage[T, F]{task: next}
}

// propagateAbnormal resolves next when the upstream resolution is anything
// but a present Outcome, and reports whether it did, so combinators know
// when the mapping must not run.
func propagateAbnormal[T, U any](next *task.Task[T], res task.Resolution[U]) bool {
	switch res.State {
	case task.Faulted, task.Cancelled:
		next.Fail(normalizeFault(res.Cause))
		return true
	case task.Absent:
		next.CompleteAbsent()
		return true
	default:
		return false
	}
}
