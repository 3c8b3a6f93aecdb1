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

type debugEvent int

const (
	_ debugEvent = iota

	traceFromTask
	traceFromOutcome

	traceOnFault
	traceOnValue
	traceOnError

	traceMapValue
	traceMapError
	traceFlatMapValue
	traceFlatMapError
	traceFlatMapOutcome

	traceGetBlocking
)

func (e debugEvent) String() string {
	switch e {
	case traceFromTask:
		return "from_task"
	case traceFromOutcome:
		return "from_outcome"
	case traceOnFault:
		return "on_fault"
	case traceOnValue:
		return "on_value"
	case traceOnError:
		return "on_error"
	case traceMapValue:
		return "map_value"
	case traceMapError:
		return "map_error"
	case traceFlatMapValue:
		return "flat_map_value"
	case traceFlatMapError:
		return "flat_map_error"
	case traceFlatMapOutcome:
		return "flat_map_outcome"
	case traceGetBlocking:
		return "get_blocking"
	default:
		return "<unknown>"
	}
}
