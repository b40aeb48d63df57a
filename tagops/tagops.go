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

// Package tagops turns the discovery parameters and first data block of a
// tag into a read plan: which blocks or pages to read and how large the
// buffer must be. It performs no I/O.
package tagops

import "errors"

// Common errors
var (
	ErrUnsupportedTag  = errors.New("tag type not supported for NDEF reads")
	ErrExceedsCapacity = errors.New("NDEF message exceeds tag capacity")
	ErrEmptyMessage    = errors.New("NDEF message is empty")
)

// MIFARE Classic NDEF layout. Sector 0 holds the MIFARE Application
// Directory, so NDEF data starts in sector 1.
const (
	classicFirstDataBlock = 4
	classic1KLastBlock    = 63
	classic4KLastBlock    = 255
)

// MIFARE Ultralight (MF0ICU1) user memory spans pages 4-15.
const ultralightLastPage = 15
