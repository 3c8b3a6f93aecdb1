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
	"fmt"
	"reflect"
)

// Outcome is an immutable container for the result of an operation, holding
// either a value of type V, or a domain error code of type E, never both.
//
// The error code type E is meant to be a closed, finite enumeration declared
// at the call site(a const block over a defined type), reported through the
// normal return channel, it's never a fault.
//
// Outcome values with comparable V compare with ==, structurally: two value
// outcomes are equal iff their values are equal, two error outcomes are
// equal iff their codes are equal, and a value outcome never equals an
// error outcome.
type Outcome[V any, E comparable] struct {
	value   V
	errCode E
	isError bool
}

// ForValue returns a value outcome holding val.
// It panics if val is absent(a nil pointer, interface, map, slice, chan,
// or func).
func ForValue[V any, E comparable](val V) Outcome[V, E] {
	if isAbsent(val) {
		panic(nilValuePanicMsg)
	}
	return Outcome[V, E]{value: val}
}

// ForError returns an error outcome holding the domain error code errCode.
// It panics if errCode is absent.
func ForError[V any, E comparable](errCode E) Outcome[V, E] {
	if isAbsent(errCode) {
		panic(nilErrorPanicMsg)
	}
	return Outcome[V, E]{errCode: errCode, isError: true}
}

// IsValue reports whether this is a value outcome.
func (o Outcome[V, E]) IsValue() bool {
	return !o.isError
}

// IsError reports whether this is an error outcome.
func (o Outcome[V, E]) IsError() bool {
	return o.isError
}

// Value returns the value of a value outcome.
// It panics if called on an error outcome.
func (o Outcome[V, E]) Value() V {
	if o.isError {
		panic(noValuePanicMsg)
	}
	return o.value
}

// Error returns the domain error code of an error outcome.
// It panics if called on a value outcome.
func (o Outcome[V, E]) Error() E {
	if !o.isError {
		panic(noErrorPanicMsg)
	}
	return o.errCode
}

func (o Outcome[V, E]) String() string {
	if o.isError {
		return fmt.Sprintf("outcome{error=%v}", o.errCode)
	}
	return fmt.Sprintf("outcome{value=%v}", o.value)
}

// isAbsent reports whether v is a payload that can't be carried by an
// outcome, which is any nil value of a nil-able kind.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
