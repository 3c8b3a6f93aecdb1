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

// Package completion represents the outcome of an asynchronous operation as
// exactly one of three mutually exclusive channels: a success value, a
// domain error code(a closed, enumerable set of expected failure reasons),
// or a fault(an unexpected condition, like a callback panic or a
// cancellation).
//
// It is built from two pieces: Outcome, an immutable two-variant sum of
// value-or-error, and Stage, a staged asynchronous computation that
// eventually produces an Outcome, with combinators to observe and transform
// it without ever unwrapping the result into an ambiguous form.
//
// A Stage has five states, and it can be in only one of them, at any time:
// Pending: the computation that corresponds to this Stage has not finished.
// Fulfilled: the computation has finished and produced an Outcome, either
// the value variant or the error variant.
// Absent: the computation has finished, but produced no Outcome at all, a
// degenerate completion of the underlying primitive.
// Faulted: the computation, or one of the chain's callbacks, terminated
// with an unexpected condition.
// Cancelled: the computation was cancelled before producing an Outcome.
//
// Transitions out of Pending happen exactly once, and there is no path
// back. Combinators registered after resolution still observe the already
// determined terminal state.
//
// Channel discipline:-
//
// * A domain error flows value-like through the chain: MapValue and
// FlatMapValue pass it through unchanged, and only the error-channel
// combinators(MapError, FlatMapError) act on it.
//
// * A fault bypasses every mapping in the chain, and flows directly to the
// first OnFault tap, or to the final GetBlocking call. A panic inside any
// callback is caught at that single combinator boundary and converted to a
// fault for the resulting stage.
//
// * A cancellation is a distinguished fault: it propagates as cancellation
// through every downstream combinator, it is never relabeled as a generic
// fault, and no downstream mapping ever runs after it.
//
// * Faults are normalized once at every boundary crossing: after N chained
// combinators, the fault cause observed at the end of the chain is the
// original triggering condition, not an onion of N wrappers.
//
// Execution:-
//
// * The package is agnostic to where upstream computations execute. It
// consumes the task package's guarantee that a task resolves exactly once,
// and that completion callbacks are invoked exactly once, each on some
// goroutine.
//
// * All combinators are non-blocking registration calls. Only GetBlocking
// (and Wait/MustGet) suspend the calling goroutine, and they are named for
// it, so callers can't accidentally block inside a supposedly-async
// pipeline.
package completion
