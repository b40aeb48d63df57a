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

package tagops

import (
	"fmt"

	"github.com/ZaparooProject/go-nfctag"
)

const (
	unknownTagName    = "Unknown"
	type2TagName      = "NFC Forum Type 2"
	mifareClassicName = "MIFARE Classic"
	ultralightName    = "MIFARE Ultralight"
	desfireName       = "MIFARE DESFire"
)

// TagInfo contains descriptive information about a detected tag
type TagInfo struct {
	TypeName     string
	UID          string
	Manufacturer nfctag.Manufacturer
	Type         nfctag.TagType
	UnitSize     int // bytes per block or page, 0 if not applicable
	TotalMemory  int // bytes, 0 if not known
	UserMemory   int // NDEF-usable bytes, 0 if not known
	Sectors      int
}

// Describe returns detailed information about a detected tag
func Describe(tag nfctag.DetectedTag) TagInfo {
	info := TagInfo{
		Type:         tag.Type(),
		UID:          tag.UIDString(),
		Manufacturer: tag.Manufacturer(),
	}
	info.TypeName = TagTypeDisplayName(info.Type)

	switch info.Type {
	case nfctag.TagTypeMifareClassic:
		info.UnitSize = nfctag.ClassicBlockSize
		if tag.IsMIFARE4K() {
			info.TypeName = mifareClassicName + " 4K"
			info.Sectors = 40
			info.TotalMemory = 4096
		} else {
			info.TypeName = mifareClassicName + " 1K"
			info.Sectors = 16
			info.TotalMemory = 1024
		}
		info.UserMemory = len(classicDataBlocks(classicLastBlock(tag))) * nfctag.ClassicBlockSize

	case nfctag.TagTypeMifareUltralight:
		info.UnitSize = nfctag.UltralightPageSize
		info.TotalMemory = (ultralightLastPage + 1) * nfctag.UltralightPageSize
		info.UserMemory = (ultralightLastPage - nfctag.UltralightDataStartPage + 1) * nfctag.UltralightPageSize

	case nfctag.TagTypeType2:
		info.UnitSize = nfctag.UltralightPageSize

	case nfctag.TagTypeMifareDESFire, nfctag.TagTypeUnknown:
	}

	return info
}

// String returns a one-line summary of the tag
func (i TagInfo) String() string {
	s := fmt.Sprintf("%s (UID %s, %s)", i.TypeName, i.UID, i.Manufacturer)
	if i.UserMemory > 0 {
		s += fmt.Sprintf(", %d bytes user memory", i.UserMemory)
	}
	return s
}

// TagTypeDisplayName returns a human-readable display name for a tag type
func TagTypeDisplayName(t nfctag.TagType) string {
	switch t {
	case nfctag.TagTypeMifareClassic:
		return mifareClassicName
	case nfctag.TagTypeMifareUltralight:
		return ultralightName
	case nfctag.TagTypeMifareDESFire:
		return desfireName
	case nfctag.TagTypeType2:
		return type2TagName
	case nfctag.TagTypeUnknown:
		return unknownTagName
	default:
		return unknownTagName
	}
}
