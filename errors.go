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
	"errors"
	"fmt"
)

// Error categories returned by the decoding helpers
var (
	// TLV errors - the tag must be treated as unreadable
	ErrTLVNotFound  = errors.New("NDEF TLV not found")
	ErrTLVMalformed = errors.New("NDEF TLV malformed")

	// Data errors
	ErrInvalidBlockSize = errors.New("invalid block size")
)

// TLVError describes where in a block TLV decoding failed.
type TLVError struct {
	Err    error // ErrTLVNotFound or ErrTLVMalformed
	Offset int   // Offset of the offending byte, -1 when the whole block was scanned
	Value  byte  // Offending byte value (only meaningful when Offset >= 0)
}

func (e *TLVError) Error() string {
	if e.Offset < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: byte 0x%02X at offset %d", e.Err, e.Value, e.Offset)
}

func (e *TLVError) Unwrap() error {
	return e.Err
}

// IsTLVNotFound reports whether err means the block held only padding.
func IsTLVNotFound(err error) bool {
	return errors.Is(err, ErrTLVNotFound)
}

// IsTLVMalformed reports whether err means the block held an unexpected
// byte before the NDEF TLV or a truncated header.
func IsTLVMalformed(err error) bool {
	return errors.Is(err, ErrTLVMalformed)
}
