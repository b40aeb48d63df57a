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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUltralightBufferSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		messageLength uint32
		want          uint32
	}{
		{name: "rounds 15 up to 16", messageLength: 12, want: 16},
		{name: "already a multiple", messageLength: 13, want: 16},
		{name: "empty message", messageLength: 0, want: 4},
		{name: "one past a multiple", messageLength: 14, want: 20},
		{name: "NTAG215 sized", messageLength: 493, want: 496},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := UltralightBufferSize(tt.messageLength)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got%UltralightReadSize)
		})
	}
}

func TestClassicBufferSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		messageLength uint32
		want          uint32
	}{
		{name: "short form rounds 13 up to 16", messageLength: 10, want: 16},
		{name: "short form exact block", messageLength: 13, want: 16},
		{name: "short form spills", messageLength: 14, want: 32},
		{name: "largest short form", messageLength: 254, want: 272},
		{name: "smallest long form", messageLength: 255, want: 272},
		{name: "long form exact multiple", messageLength: 300, want: 304},
		{name: "long form one past a multiple", messageLength: 301, want: 320},
		{name: "long form rounds up", messageLength: 299, want: 304},
		{name: "empty message", messageLength: 0, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ClassicBufferSize(tt.messageLength)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got%ClassicBlockSize)
		})
	}
}

func TestClassicBufferSize_CoversHeader(t *testing.T) {
	t.Parallel()

	for length := uint32(0); length < 2048; length++ {
		overhead := uint32(ClassicShortTLVSize + 1)
		if length >= 0xFF {
			overhead = ClassicLongTLVSize
		}
		size := ClassicBufferSize(length)
		assert.GreaterOrEqual(t, size, length+overhead)
		assert.Less(t, size, length+overhead+ClassicBlockSize)
	}
}

func TestBufferSize_SaturatesAtUint32Max(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{name: "classic max length", got: ClassicBufferSize(math.MaxUint32), want: 0xFFFFFFF0},
		{name: "classic exact top multiple", got: ClassicBufferSize(0xFFFFFFEC), want: 0xFFFFFFF0},
		{name: "classic just past top multiple", got: ClassicBufferSize(0xFFFFFFED), want: 0xFFFFFFF0},
		{name: "ultralight max length", got: UltralightBufferSize(math.MaxUint32), want: 0xFFFFFFFC},
		{name: "ultralight wrap point", got: UltralightBufferSize(0xFFFFFFFE), want: 0xFFFFFFFC},
		{name: "ultralight exact top multiple", got: UltralightBufferSize(0xFFFFFFF9), want: 0xFFFFFFFC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBufferSize_MonotonicNearMax(t *testing.T) {
	t.Parallel()

	prevClassic, prevUltralight := uint32(0), uint32(0)
	for length := uint32(math.MaxUint32 - 64); ; length++ {
		classic := ClassicBufferSize(length)
		ultralight := UltralightBufferSize(length)
		assert.GreaterOrEqual(t, classic, prevClassic, "length %d", length)
		assert.GreaterOrEqual(t, ultralight, prevUltralight, "length %d", length)
		prevClassic, prevUltralight = classic, ultralight
		if length == math.MaxUint32 {
			break
		}
	}
}

func TestRoundUp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), roundUp(0, 16))
	assert.Equal(t, uint32(16), roundUp(1, 16))
	assert.Equal(t, uint32(16), roundUp(16, 16))
	assert.Equal(t, uint32(32), roundUp(17, 16))
	assert.Equal(t, uint32(304), roundUp(304, 16))
	assert.Equal(t, uint32(0xFFFFFFF0), roundUp(math.MaxUint32+1, 16))
}

func TestClassicIsFirstBlock(t *testing.T) {
	t.Parallel()

	assert.True(t, ClassicIsFirstBlock(0))
	assert.False(t, ClassicIsFirstBlock(3))
	assert.True(t, ClassicIsFirstBlock(4))
	assert.True(t, ClassicIsFirstBlock(124))
	assert.True(t, ClassicIsFirstBlock(128))
	assert.False(t, ClassicIsFirstBlock(131))
	assert.False(t, ClassicIsFirstBlock(132))
	assert.True(t, ClassicIsFirstBlock(144))
	assert.True(t, ClassicIsFirstBlock(240))
}

func TestClassicIsTrailerBlock(t *testing.T) {
	t.Parallel()

	assert.True(t, ClassicIsTrailerBlock(3))
	assert.True(t, ClassicIsTrailerBlock(7))
	assert.True(t, ClassicIsTrailerBlock(127))
	assert.False(t, ClassicIsTrailerBlock(0))
	assert.False(t, ClassicIsTrailerBlock(131))
	assert.True(t, ClassicIsTrailerBlock(143))
	assert.True(t, ClassicIsTrailerBlock(255))
	assert.False(t, ClassicIsTrailerBlock(254))
}

func TestClassicBlockClassification_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 255; n++ {
		block := uint8(n)
		assert.False(t, ClassicIsFirstBlock(block) && ClassicIsTrailerBlock(block),
			"block %d classified as both first and trailer", n)
	}
}

func TestClassicBlockClassification_MatchesGeometry(t *testing.T) {
	t.Parallel()

	// 32 sectors of 4 blocks followed by 8 sectors of 16 blocks = 256 blocks
	for sector := range 40 {
		first := ClassicSectorFirstBlock(sector)
		trailer := ClassicTrailerBlock(sector)
		assert.Equal(t, ClassicBlocksInSector(sector)-1, trailer-first)

		for b := first; b <= trailer; b++ {
			block := uint8(b)
			assert.Equal(t, sector, ClassicSectorOfBlock(block), "block %d", b)
			assert.Equal(t, b == first, ClassicIsFirstBlock(block), "block %d", b)
			assert.Equal(t, b == trailer, ClassicIsTrailerBlock(block), "block %d", b)
		}
	}
	assert.Equal(t, 255, ClassicTrailerBlock(39))
}

func TestClassicSectorGeometry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ClassicSectorOfBlock(0))
	assert.Equal(t, 1, ClassicSectorOfBlock(4))
	assert.Equal(t, 31, ClassicSectorOfBlock(127))
	assert.Equal(t, 32, ClassicSectorOfBlock(128))
	assert.Equal(t, 32, ClassicSectorOfBlock(143))
	assert.Equal(t, 33, ClassicSectorOfBlock(144))

	assert.Equal(t, 4, ClassicBlocksInSector(31))
	assert.Equal(t, 16, ClassicBlocksInSector(32))
	assert.Equal(t, 128, ClassicSectorFirstBlock(32))
	assert.Equal(t, 7, ClassicTrailerBlock(1))
}
