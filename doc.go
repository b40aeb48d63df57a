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

/*
Package nfctag identifies contactless tags and computes the layout of the
NDEF data stored on them.

It does not talk to a reader. A driver delivers the UID, ATQA and SAK of a
discovered tag and raw memory dumps; this package turns those into values a
reader/writer layer needs:

  - the tag family (GetTagType, GuessTagType)
  - the NDEF TLV header of a MIFARE Classic data area (DecodeClassicTLV)
  - buffer sizes rounded to the tag's block or page size
    (ClassicBufferSize, UltralightBufferSize)
  - MIFARE Classic sector geometry (ClassicIsFirstBlock, ClassicIsTrailerBlock)

Basic Usage:

	tag := nfctag.DetectedTag{UID: uid, ATQA: atqa, SAK: sak}
	switch tag.Type() {
	case nfctag.TagTypeMifareClassic:
	    tlv, err := nfctag.DecodeClassicTLV(block4)
	    if err != nil {
	        return err
	    }
	    buf := make([]byte, nfctag.ClassicBufferSize(tlv.MessageLength))
	    // read blocks into buf, skipping trailers
	case nfctag.TagTypeMifareUltralight:
	    // ...
	}

All functions are pure and safe for concurrent use. Set NFCTAG_DEBUG to
print decoder diagnostics.
*/
package nfctag
