//go:build deadlock

// Package syncutil provides the mutex used to guard shared debug state.
// This file is compiled when building with -tags=deadlock.
package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex wraps deadlock.Mutex so lock-order problems are reported.
type Mutex struct {
	deadlock.Mutex
}
