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

import "strings"

const hexChars = "0123456789ABCDEF"

// FormatUID renders a UID as uppercase hex separated by hyphens,
// e.g. "04-A2-FF". Returns an empty string for an empty UID.
func FormatUID(uid []byte) string {
	return formatHex(uid, '-')
}

// FormatBytes renders a byte buffer as uppercase hex separated by spaces,
// e.g. "01 02". Returns an empty string for an empty buffer.
func FormatBytes(data []byte) string {
	return formatHex(data, ' ')
}

func formatHex(data []byte, sep byte) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(data)*3 - 1)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteByte(hexChars[b>>4])
		sb.WriteByte(hexChars[b&0x0F])
	}
	return sb.String()
}
