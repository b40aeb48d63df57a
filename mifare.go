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

import "math"

// MIFARE Classic memory structure.
//
// Sectors 0-31 hold 4 blocks each (blocks 0-127). Sectors 32 and above,
// only present on 4K cards, hold 16 blocks each. The last block of every
// sector is the trailer, which stores the keys and access bits.
const (
	ClassicBlockSize            = 16  // 16 bytes per block
	ClassicLowBlocksPerSector   = 4   // blocks per sector in sectors 0-31
	ClassicHighBlocksPerSector  = 16  // blocks per sector in sectors 32+
	ClassicHighSectorStartBlock = 128 // first block of sector 32
	ClassicLowSectorCount       = 32  // sectors with the 4-block geometry
)

// MIFARE Ultralight memory structure
const (
	UltralightPageSize      = 4 // 4 bytes per page
	UltralightReadSize      = 4 // buffer granularity for reads
	UltralightDataStartPage = 4 // first page of user memory
)

// ultralightTLVOverhead is the short TLV header plus the terminator TLV.
const ultralightTLVOverhead = ClassicShortTLVSize + 1

// UltralightBufferSize returns the number of bytes needed to hold an NDEF
// message of messageLength bytes plus its short TLV header and terminator,
// rounded up to UltralightReadSize. The result saturates at the largest
// multiple of UltralightReadSize that fits in a uint32.
func UltralightBufferSize(messageLength uint32) uint32 {
	return roundUp(uint64(messageLength)+ultralightTLVOverhead, UltralightReadSize)
}

// ClassicBufferSize returns the number of bytes needed to hold an NDEF
// message of messageLength bytes plus its TLV header, rounded up to a whole
// number of blocks. Short messages reserve one extra byte for the terminator.
// Messages of 255 bytes or more need the 4-byte long form header. The result
// saturates at the largest multiple of ClassicBlockSize that fits in a uint32.
func ClassicBufferSize(messageLength uint32) uint32 {
	size := uint64(messageLength)
	if messageLength < 0xFF {
		size += ClassicShortTLVSize + 1
	} else {
		size += ClassicLongTLVSize
	}
	return roundUp(size, ClassicBlockSize)
}

// roundUp rounds n up to the next multiple of unit, saturating at the
// largest multiple of unit below math.MaxUint32.
func roundUp(n uint64, unit uint32) uint32 {
	u := uint64(unit)
	if r := n % u; r != 0 {
		n += u - r
	}
	if n > math.MaxUint32 {
		return math.MaxUint32 - math.MaxUint32%unit
	}
	return uint32(n)
}

// ClassicIsFirstBlock reports whether block is the first block of its sector.
func ClassicIsFirstBlock(block uint8) bool {
	if block < ClassicHighSectorStartBlock {
		return block%ClassicLowBlocksPerSector == 0
	}
	return block%ClassicHighBlocksPerSector == 0
}

// ClassicIsTrailerBlock reports whether block is the sector trailer holding
// the keys and access bits. Trailer blocks never carry user data.
func ClassicIsTrailerBlock(block uint8) bool {
	// Widen before adding so block 255 does not wrap to 0.
	next := int(block) + 1
	if block < ClassicHighSectorStartBlock {
		return next%ClassicLowBlocksPerSector == 0
	}
	return next%ClassicHighBlocksPerSector == 0
}

// ClassicSectorOfBlock returns the sector containing block.
func ClassicSectorOfBlock(block uint8) int {
	if block < ClassicHighSectorStartBlock {
		return int(block) / ClassicLowBlocksPerSector
	}
	return ClassicLowSectorCount + (int(block)-ClassicHighSectorStartBlock)/ClassicHighBlocksPerSector
}

// ClassicBlocksInSector returns how many blocks sector holds.
func ClassicBlocksInSector(sector int) int {
	if sector < ClassicLowSectorCount {
		return ClassicLowBlocksPerSector
	}
	return ClassicHighBlocksPerSector
}

// ClassicSectorFirstBlock returns the first block number of sector.
func ClassicSectorFirstBlock(sector int) int {
	if sector < ClassicLowSectorCount {
		return sector * ClassicLowBlocksPerSector
	}
	return ClassicHighSectorStartBlock + (sector-ClassicLowSectorCount)*ClassicHighBlocksPerSector
}

// ClassicTrailerBlock returns the trailer block number of sector.
func ClassicTrailerBlock(sector int) int {
	return ClassicSectorFirstBlock(sector) + ClassicBlocksInSector(sector) - 1
}
