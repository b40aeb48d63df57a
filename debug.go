// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nfctag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZaparooProject/go-nfctag/internal/syncutil"
)

// debugEnabled controls whether debug lines are printed to the console
var debugEnabled = false

// Debug sink state. The helpers in this package are safe for concurrent use,
// so the sink is shared and must be locked.
var (
	debugMu     syncutil.Mutex
	debugWriter io.Writer
)

func init() {
	// Enable debug logging if a DEBUG environment variable is set
	if os.Getenv("NFCTAG_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled = true
	}
}

// Debugf prints debug information.
// Always writes to the debug output (if set) with timestamp.
// Only prints to console when debug mode is enabled.
func Debugf(format string, args ...any) {
	writeDebug(fmt.Sprintf(format, args...))
}

// Debugln prints debug information.
// Always writes to the debug output (if set) with timestamp.
// Only prints to console when debug mode is enabled.
func Debugln(args ...any) {
	writeDebug(fmt.Sprint(args...))
}

func writeDebug(message string) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugWriter != nil {
		timestamp := time.Now().Format("15:04:05.000")
		_, _ = fmt.Fprintf(debugWriter, "%s DEBUG: %s\n", timestamp, message)
	}

	if debugEnabled {
		_, _ = fmt.Printf("DEBUG: %s\n", message)
	}
}

// SetDebugEnabled allows programmatic control of console debug logging
func SetDebugEnabled(enabled bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
}

// SetDebugOutput sets an additional sink that receives every debug line,
// regardless of console debug mode. Pass nil to disable it.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugWriter = w
}
