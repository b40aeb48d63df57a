//go:build !deadlock

// Package syncutil provides the mutex used to guard shared debug state.
// The default build uses sync.Mutex. Build or test with -tags=deadlock to
// swap in github.com/sasha-s/go-deadlock.
package syncutil

import "sync"

// Mutex wraps sync.Mutex. Build with -tags=deadlock for deadlock detection.
//
//nolint:gocritic // Intentionally embedding sync.Mutex to expose its interface
type Mutex struct {
	sync.Mutex
}
