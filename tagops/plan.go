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

// ReadPlan describes how to read the NDEF message stored on a tag.
// Units are the block (Classic) or page (Ultralight) numbers to read, in
// order. MessageStart is the offset of the message within the buffer formed
// by concatenating those units.
type ReadPlan struct {
	Units         []int
	Type          nfctag.TagType
	MessageLength uint32
	MessageStart  int
	BufferSize    uint32
}

// PlanClassicRead builds a read plan for a MIFARE Classic tag from the
// contents of block 4, the first block of sector 1. Trailer blocks are
// skipped. TLV decoding errors are returned unchanged.
func PlanClassicRead(tag nfctag.DetectedTag, firstBlock []byte) (*ReadPlan, error) {
	if tagType := tag.Type(); tagType != nfctag.TagTypeMifareClassic {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTag, tagType)
	}

	tlv, err := nfctag.DecodeClassicTLV(firstBlock)
	if err != nil {
		return nil, err
	}
	if tlv.MessageLength == 0 {
		return nil, ErrEmptyMessage
	}

	// Leading NULL TLVs push the message end past ClassicBufferSize
	end := uint32(tlv.MessageStartIndex) + tlv.MessageLength + 1
	bufferSize := max(nfctag.ClassicBufferSize(tlv.MessageLength), roundUpToBlock(end))
	needed := int(bufferSize / nfctag.ClassicBlockSize)

	available := classicDataBlocks(classicLastBlock(tag))
	if needed > len(available) {
		return nil, fmt.Errorf("%w: need %d blocks, tag has %d",
			ErrExceedsCapacity, needed, len(available))
	}

	nfctag.Debugf("classic read plan: length=%d start=%d buffer=%d blocks=%d",
		tlv.MessageLength, tlv.MessageStartIndex, bufferSize, needed)

	return &ReadPlan{
		Type:          nfctag.TagTypeMifareClassic,
		MessageLength: tlv.MessageLength,
		MessageStart:  int(tlv.MessageStartIndex),
		BufferSize:    bufferSize,
		Units:         available[:needed],
	}, nil
}

// PlanUltralightRead builds a read plan for a MIFARE Ultralight tag whose
// NDEF TLV announces messageLength bytes. Reading starts at the first user
// page and the message follows the 2-byte TLV header. Plans that run past
// the last user page are rejected.
func PlanUltralightRead(messageLength uint32) (*ReadPlan, error) {
	if messageLength == 0 {
		return nil, ErrEmptyMessage
	}

	bufferSize := nfctag.UltralightBufferSize(messageLength)
	pages := int(bufferSize / nfctag.UltralightPageSize)

	available := ultralightLastPage - nfctag.UltralightDataStartPage + 1
	if pages > available {
		return nil, fmt.Errorf("%w: need %d pages, tag has %d",
			ErrExceedsCapacity, pages, available)
	}

	units := make([]int, pages)
	for i := range units {
		units[i] = nfctag.UltralightDataStartPage + i
	}

	return &ReadPlan{
		Type:          nfctag.TagTypeMifareUltralight,
		MessageLength: messageLength,
		MessageStart:  nfctag.ClassicShortTLVSize,
		BufferSize:    bufferSize,
		Units:         units,
	}, nil
}

// roundUpToBlock rounds n up to a whole number of Classic blocks.
// TLV lengths are at most 0xFFFF, so n cannot overflow.
func roundUpToBlock(n uint32) uint32 {
	return (n + nfctag.ClassicBlockSize - 1) / nfctag.ClassicBlockSize * nfctag.ClassicBlockSize
}

// classicLastBlock returns the highest block number of the card.
func classicLastBlock(tag nfctag.DetectedTag) int {
	if tag.IsMIFARE4K() {
		return classic4KLastBlock
	}
	return classic1KLastBlock
}

// classicDataBlocks lists the NDEF data blocks from sector 1 up to lastBlock,
// excluding sector trailers.
func classicDataBlocks(lastBlock int) []int {
	blocks := make([]int, 0, lastBlock)
	for b := classicFirstDataBlock; b <= lastBlock; b++ {
		if nfctag.ClassicIsTrailerBlock(uint8(b)) {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}
