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

import "encoding/binary"

// TLV type constants per NFC Forum tag specifications
const (
	TLVTypeNull         = 0x00 // NULL TLV - padding byte, no length field
	TLVTypeNDEF         = 0x03 // NDEF Message TLV - contains NDEF data
	TLVTypeTerminator   = 0xFE // Terminator TLV - end of data area, no length field
	TLVLongLengthMarker = 0xFF // length byte announcing a 2-byte big-endian length
)

// TLV header sizes
const (
	ClassicShortTLVSize = 2 // type + 1-byte length
	ClassicLongTLVSize  = 4 // type + 0xFF + 2-byte length
)

// ClassicTLV is the decoded NDEF TLV header found at the start of a MIFARE
// Classic data area.
type ClassicTLV struct {
	// MessageLength is the length of the NDEF message in bytes
	MessageLength uint32
	// MessageStartIndex is the offset in the block where the message starts
	MessageStartIndex uint8
	// HeaderSize is ClassicShortTLVSize or ClassicLongTLVSize
	HeaderSize int
}

// Long reports whether the header used the 3-byte length form.
func (t ClassicTLV) Long() bool {
	return t.HeaderSize == ClassicLongTLVSize
}

// ClassicNDEFStartIndex returns the offset of the NDEF TLV type byte in the
// first ClassicBlockSize bytes of block. Leading NULL TLVs are skipped; any
// other byte before the NDEF TLV is ErrTLVMalformed. A block holding only
// padding is ErrTLVNotFound.
func ClassicNDEFStartIndex(block []byte) (int, error) {
	if len(block) < ClassicBlockSize {
		return 0, ErrInvalidBlockSize
	}

	for i := range ClassicBlockSize {
		switch block[i] {
		case TLVTypeNull:
			continue
		case TLVTypeNDEF:
			return i, nil
		default:
			return 0, &TLVError{Err: ErrTLVMalformed, Offset: i, Value: block[i]}
		}
	}
	return 0, &TLVError{Err: ErrTLVNotFound, Offset: -1}
}

// DecodeClassicTLV locates the NDEF TLV in a MIFARE Classic block and
// decodes the message length and the offset where the message starts.
//
// Only the given block is scanned. A header whose length field continues in
// the next block is reported as ErrTLVMalformed.
func DecodeClassicTLV(block []byte) (ClassicTLV, error) {
	i, err := ClassicNDEFStartIndex(block)
	if err != nil {
		Debugf("can't decode NDEF message length: %v (block %s)", err, FormatBytes(block))
		return ClassicTLV{}, err
	}

	if i+1 >= ClassicBlockSize {
		return ClassicTLV{}, truncatedTLV(block, i)
	}

	if block[i+1] != TLVLongLengthMarker {
		return ClassicTLV{
			MessageLength:     uint32(block[i+1]),
			MessageStartIndex: uint8(i + ClassicShortTLVSize),
			HeaderSize:        ClassicShortTLVSize,
		}, nil
	}

	if i+3 >= ClassicBlockSize {
		return ClassicTLV{}, truncatedTLV(block, i)
	}

	return ClassicTLV{
		MessageLength:     uint32(binary.BigEndian.Uint16(block[i+2 : i+4])),
		MessageStartIndex: uint8(i + ClassicLongTLVSize),
		HeaderSize:        ClassicLongTLVSize,
	}, nil
}

func truncatedTLV(block []byte, offset int) error {
	err := &TLVError{Err: ErrTLVMalformed, Offset: offset, Value: block[offset]}
	Debugf("NDEF TLV header at offset %d crosses the block boundary (block %s)",
		offset, FormatBytes(block[:ClassicBlockSize]))
	return err
}
