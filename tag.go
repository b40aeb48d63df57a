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

import "fmt"

// TagType represents the physical family of a detected tag
type TagType int

const (
	// TagTypeUnknown is returned when no classification rule matches.
	TagTypeUnknown TagType = iota
	// TagTypeType2 is an NFC Forum Type 2 tag (coarse guess only).
	TagTypeType2
	// TagTypeMifareClassic represents MIFARE Classic 1K/4K tags.
	TagTypeMifareClassic
	// TagTypeMifareUltralight represents MIFARE Ultralight tags.
	TagTypeMifareUltralight
	// TagTypeMifareDESFire represents MIFARE DESFire tags.
	TagTypeMifareDESFire
)

// String returns the tag type name
func (t TagType) String() string {
	switch t {
	case TagTypeUnknown:
		return "Unknown"
	case TagTypeType2:
		return "Type2"
	case TagTypeMifareClassic:
		return "MifareClassic"
	case TagTypeMifareUltralight:
		return "MifareUltralight"
	case TagTypeMifareDESFire:
		return "MifareDESFire"
	default:
		return fmt.Sprintf("TagType(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined tag types.
func (t TagType) Valid() bool {
	switch t {
	case TagTypeUnknown, TagTypeType2, TagTypeMifareClassic,
		TagTypeMifareUltralight, TagTypeMifareDESFire:
		return true
	default:
		return false
	}
}

// GetTagType identifies the tag from its UID length and the ATQA/SAK values
// returned during anticollision.
//
// Known values:
//
//	Tag                    ATQA   SAK  UID length
//	MIFARE Classic 1K      00 04  08   4 bytes
//	MIFARE Classic 4K      00 02  18   4 bytes
//	MIFARE Ultralight      00 44  00   7 bytes
//	MIFARE DESFire         03 44  20   7 bytes
//
// Anything else is TagTypeUnknown.
func GetTagType(uidLength int, atqa uint16, sak byte) TagType {
	switch {
	case uidLength == 4 && atqa == 0x0004 && sak == 0x08:
		return TagTypeMifareClassic
	case uidLength == 4 && atqa == 0x0002 && sak == 0x18:
		return TagTypeMifareClassic
	case uidLength == 7 && atqa == 0x0044 && sak == 0x00:
		return TagTypeMifareUltralight
	case uidLength == 7 && atqa == 0x0344 && sak == 0x20:
		return TagTypeMifareDESFire
	default:
		return TagTypeUnknown
	}
}

// GuessTagType is a fallback for when ATQA and SAK are not available.
// A 4-byte UID is assumed to be MIFARE Classic, anything else Type 2.
func GuessTagType(uidLength int) TagType {
	if uidLength == 4 {
		return TagTypeMifareClassic
	}
	return TagTypeType2
}

// Manufacturer represents the chip manufacturer identified from the UID.
// The first byte of a 7-byte UID contains the manufacturer code per ISO/IEC 7816-6.
type Manufacturer string

const (
	// ManufacturerNXP is NXP Semiconductors (0x04), maker of MIFARE chips.
	ManufacturerNXP Manufacturer = "NXP"
	// ManufacturerST is STMicroelectronics (0x02).
	ManufacturerST Manufacturer = "STMicroelectronics"
	// ManufacturerInfineon is Infineon Technologies (0x05), maker of MIFARE-compatible chips.
	ManufacturerInfineon Manufacturer = "Infineon"
	// ManufacturerTI is Texas Instruments (0x07).
	ManufacturerTI Manufacturer = "Texas Instruments"
	// ManufacturerUnknown indicates an unrecognized manufacturer code.
	ManufacturerUnknown Manufacturer = "Unknown"
)

// GetManufacturer returns the chip manufacturer based on the UID's first byte.
// For 4-byte UIDs (MIFARE Classic) the first byte is usually random, so the
// result is only meaningful for 7-byte UIDs.
func GetManufacturer(uid []byte) Manufacturer {
	if len(uid) == 0 {
		return ManufacturerUnknown
	}

	switch uid[0] {
	case 0x04:
		return ManufacturerNXP
	case 0x02:
		return ManufacturerST
	case 0x05:
		return ManufacturerInfineon
	case 0x07:
		return ManufacturerTI
	default:
		return ManufacturerUnknown
	}
}

// IsGenuineNXP returns true if the UID indicates a genuine NXP chip.
func IsGenuineNXP(uid []byte) bool {
	return len(uid) > 0 && uid[0] == 0x04
}

// DetectedTag holds the discovery parameters of a tag as delivered by the
// reader driver. It is never mutated by this package.
type DetectedTag struct {
	UID  []byte // UID as raw bytes
	ATQA uint16 // Answer To Request, type A
	SAK  byte   // Select Acknowledge
}

// Type classifies the tag from its UID length, ATQA and SAK.
func (t DetectedTag) Type() TagType {
	return GetTagType(len(t.UID), t.ATQA, t.SAK)
}

// GuessedType classifies the tag from its UID length only.
func (t DetectedTag) GuessedType() TagType {
	return GuessTagType(len(t.UID))
}

// IsMIFARE4K returns true if this is a MIFARE Classic 4K card
func (t DetectedTag) IsMIFARE4K() bool {
	// MIFARE Classic 4K cards have SAK = 0x18
	// MIFARE Classic 1K cards have SAK = 0x08
	return t.SAK == 0x18
}

// Manufacturer returns the chip manufacturer identified from the UID.
func (t DetectedTag) Manufacturer() Manufacturer {
	return GetManufacturer(t.UID)
}

// UIDString returns the UID formatted as hyphen separated hex.
func (t DetectedTag) UIDString() string {
	return FormatUID(t.UID)
}

// Summary returns a brief summary of the tag
func (t DetectedTag) Summary() string {
	return fmt.Sprintf("Tag: %s, UID: %s, ATQA: %04X, SAK: %02X",
		t.Type(), t.UIDString(), t.ATQA, t.SAK)
}
