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
	"testing"

	"github.com/stretchr/testify/assert"
)

// testError is a domain error enumeration that's used only for testing.
type testError int

const (
	errRandom testError = iota + 1
	errSecond
	errOther
)

// testError2 is a second domain error enumeration, for combinators that
// retype the error channel.
type testError2 int

const (
	errAnotherType testError2 = iota + 1
)

func TestForValue(t *testing.T) {
	out := ForValue[string, testError]("quick brown fox")

	assert.True(t, out.IsValue())
	assert.False(t, out.IsError())
	assert.Equal(t, "quick brown fox", out.Value())
}

func TestForError(t *testing.T) {
	out := ForError[string](errRandom)

	assert.True(t, out.IsError())
	assert.False(t, out.IsValue())
	assert.Equal(t, errRandom, out.Error())
}

func TestValueOnErrorOutcome(t *testing.T) {
	out := ForError[string](errRandom)
	assert.PanicsWithValue(t, noValuePanicMsg, func() {
		out.Value()
	})
}

func TestErrorOnValueOutcome(t *testing.T) {
	out := ForValue[string, testError]("val")
	assert.PanicsWithValue(t, noErrorPanicMsg, func() {
		out.Error()
	})
}

func TestForValueNilPayload(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.PanicsWithValue(t, nilValuePanicMsg, func() {
			ForValue[*int, testError](nil)
		})
	})

	t.Run("nil interface", func(t *testing.T) {
		assert.PanicsWithValue(t, nilValuePanicMsg, func() {
			ForValue[error, testError](nil)
		})
	})

	t.Run("nil slice", func(t *testing.T) {
		assert.PanicsWithValue(t, nilValuePanicMsg, func() {
			ForValue[[]int, testError](nil)
		})
	})
}

func TestForErrorNilPayload(t *testing.T) {
	assert.PanicsWithValue(t, nilErrorPanicMsg, func() {
		ForError[string, *testError](nil)
	})
}

func TestStructuralEquality(t *testing.T) {
	assert.True(t, ForValue[int, testError](13) == ForValue[int, testError](13))
	assert.False(t, ForValue[int, testError](13) == ForValue[int, testError](14))

	assert.True(t, ForError[int](errRandom) == ForError[int](errRandom))
	assert.False(t, ForError[int](errRandom) == ForError[int](errSecond))
}

func TestValueNeverEqualsError(t *testing.T) {
	// same payload bits on both sides, still never equal across variants.
	value := ForValue[int, testError](1)
	errOut := ForError[int](testError(1))
	assert.False(t, value == errOut)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "outcome{value=13}", ForValue[int, testError](13).String())
	assert.Equal(t, "outcome{error=1}", ForError[int](errRandom).String())
}
