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
	"errors"
	"fmt"

	"github.com/ayvask/completion/task"
)

// panic messages
const (
	nilCallbackPanicMsg = "completion: the provided callback is nil"
	nilTaskPanicMsg     = "completion: the provided task is nil"
	nilValuePanicMsg    = "completion: the provided value is nil"
	nilErrorPanicMsg    = "completion: the provided error code is nil"
	noValuePanicMsg     = "completion: error outcome has no value"
	noErrorPanicMsg     = "completion: value outcome has no error"
)

// ErrCanceled is the cause observed through a chain whose root was
// cancelled by a Cancel call on its task.
// Cancellation coming from a context keeps the context's error instead.
var ErrCanceled = task.ErrCanceled

// FaultError wraps the condition that aborted a composition chain.
// Its cause is always the original triggering condition: normalization
// never wraps a FaultError inside another FaultError, no matter how long
// the chain is.
type FaultError struct {
	cause error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("completion: fault in the stage chain: %s", e.cause.Error())
}

func (e *FaultError) Unwrap() error {
	return e.cause
}

// PanicError wraps a panic value recovered from a callback.
type PanicError struct {
	V any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("completion: callback panicked: %v", e.V)
}

// Unwrap returns the panic value when it's an error, so errors.Is and
// errors.As can reach the original condition.
func (e PanicError) Unwrap() error {
	if err, ok := e.V.(error); ok {
		return err
	}
	return nil
}

// normalizeFault applies the fault discipline at every boundary crossing:
// cancellation passes through as-is, an already-wrapped fault keeps its
// single wrapper, and any other condition is wrapped exactly once.
func normalizeFault(err error) error {
	if err == nil {
		return nil
	}
	if task.IsCancellation(err) {
		return err
	}
	var fe *FaultError
	if errors.As(err, &fe) {
		return fe
	}
	return &FaultError{cause: err}
}

// faultCause returns the direct cause of a fault, the condition that would
// be handed to an OnFault consumer.
func faultCause(err error) error {
	var fe *FaultError
	if errors.As(err, &fe) {
		return fe.cause
	}
	return err
}
