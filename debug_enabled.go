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

//go:build completion_debug

package completion

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugSession identifies one process run in the trace output, so traces
// from concurrent test runs can be told apart.
var debugSession = uuid.NewString()

var debugLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Str("session", debugSession).
	Logger()

func traceStage(e debugEvent) {
	debugLog.Debug().
		Stringer("event", e).
		Msg("stage call")
}
