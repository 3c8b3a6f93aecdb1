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

package status

import (
	"sync"
	"testing"
)

func TestZeroValue(t *testing.T) {
	var s TaskStatus

	cs := s.Load()
	if !IsFateUnresolved(cs) {
		t.Errorf("zero status fate = %b, want: unresolved", cs)
	}
	if !IsStatePending(cs) {
		t.Errorf("zero status state = %b, want: pending", cs)
	}
}

func TestSetResolving(t *testing.T) {
	var s TaskStatus

	set, cs := s.SetResolving()
	if !set {
		t.Fatal("first SetResolving call: set = false, want: true")
	}
	if !IsFateResolving(cs) {
		t.Errorf("status fate = %b, want: resolving", cs)
	}
	if !IsStatePending(cs) {
		t.Errorf("status state = %b, want: pending", cs)
	}

	set, _ = s.SetResolving()
	if set {
		t.Fatal("second SetResolving call: set = true, want: false")
	}
}

func TestSetResolved(t *testing.T) {
	tests := []struct {
		name    string
		set     func(s *TaskStatus) uint32
		isState func(status uint32) bool
	}{
		{"fulfilled", (*TaskStatus).SetFulfilledResolved, IsStateFulfilled},
		{"absent", (*TaskStatus).SetAbsentResolved, IsStateAbsent},
		{"faulted", (*TaskStatus).SetFaultedResolved, IsStateFaulted},
		{"cancelled", (*TaskStatus).SetCancelledResolved, IsStateCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s TaskStatus
			if set, _ := s.SetResolving(); !set {
				t.Fatal("SetResolving: set = false, want: true")
			}

			cs := tt.set(&s)
			if !IsFateResolved(cs) {
				t.Errorf("status fate = %b, want: resolved", cs)
			}
			if !tt.isState(cs) {
				t.Errorf("status state = %b, want: %s", cs, tt.name)
			}
			if cs != s.Load() {
				t.Errorf("returned status = %b, loaded status = %b", cs, s.Load())
			}
		})
	}
}

func TestSetResolvingConcurrent(t *testing.T) {
	const n = 100

	var s TaskStatus
	var wg sync.WaitGroup
	winners := make(chan struct{}, n)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if set, _ := s.SetResolving(); set {
				winners <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(winners)

	if got := len(winners); got != 1 {
		t.Fatalf("SetResolving winners = %d, want: 1", got)
	}
}

func TestStatePredicatesAreExclusive(t *testing.T) {
	var s TaskStatus
	s.SetResolving()
	cs := s.SetFaultedResolved()

	if IsStatePending(cs) || IsStateFulfilled(cs) || IsStateAbsent(cs) || IsStateCancelled(cs) {
		t.Errorf("faulted status %b matched another state predicate", cs)
	}
	if IsFateUnresolved(cs) || IsFateResolving(cs) {
		t.Errorf("resolved status %b matched another fate predicate", cs)
	}
}
