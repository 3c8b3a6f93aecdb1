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

// MustGet calls GetBlocking on the provided stage, and returns the Outcome,
// only if the stage resolved to one, otherwise, it panics.
//
// By name convention, the function will return the outcome successfully,
// or a panic will happen.
// It should be used on stages which are known to never fault nor resolve
// absent, like chains built from FromValue/FromError with non-panicking
// mappings.
func MustGet[V any, E comparable](s *Stage[V, E]) Outcome[V, E] {
	out, ok, err := s.GetBlocking()
	if err != nil {
		panic("completion: GetBlocking returned a fault: " + err.Error())
	}
	if !ok {
		panic("completion: GetBlocking returned an absent resolution")
	}
	return out
}

// Waiter is the wait surface shared by all Stage instantiations, so that
// stages of different types can be waited together.
type Waiter interface {
	Wait()
}

// WaitAll waits all the provided stages to resolve then returns true, or
// returns false if no stages are provided.
func WaitAll(stages ...Waiter) (waited bool) {
	n := len(stages)
	if n == 0 {
		return false
	}

	for _, s := range stages {
		s.Wait()
	}
	return true
}
