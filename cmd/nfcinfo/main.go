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

// Command nfcinfo identifies a tag from its discovery parameters and prints
// the NDEF read plan, without talking to a reader.
//
//	nfcinfo -uid 12:34:56:78 -atqa 0004 -sak 08 -block 00000310D1010C54...
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ZaparooProject/go-nfctag"
	"github.com/ZaparooProject/go-nfctag/tagops"
)

type config struct {
	uid    []byte
	block  []byte
	length uint32
	atqa   uint16
	sak    byte
	debug  bool
}

// Package-level flag variables
var (
	flagUID    string
	flagATQA   string
	flagSAK    string
	flagBlock  string
	flagLength uint
	flagDebug  bool
)

func init() {
	flag.StringVar(&flagUID, "uid", "", "Tag UID as hex (separators ':', '-' and ' ' are ignored)")
	flag.StringVar(&flagATQA, "atqa", "", "ATQA as hex, e.g. 0044")
	flag.StringVar(&flagSAK, "sak", "", "SAK as hex, e.g. 08")
	flag.StringVar(&flagBlock, "block", "", "MIFARE Classic block 4 contents as hex")
	flag.UintVar(&flagLength, "length", 0, "MIFARE Ultralight NDEF message length")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug output")
}

func parseConfig() (*config, error) {
	cfg := &config{debug: flagDebug}

	uid, err := parseHexBytes(flagUID)
	if err != nil {
		return nil, fmt.Errorf("invalid -uid: %w", err)
	}
	if len(uid) == 0 {
		return nil, errors.New("-uid is required")
	}
	cfg.uid = uid

	atqa, err := parseHexUint(flagATQA, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid -atqa: %w", err)
	}
	cfg.atqa = uint16(atqa)

	sak, err := parseHexUint(flagSAK, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid -sak: %w", err)
	}
	cfg.sak = byte(sak)

	if cfg.block, err = parseHexBytes(flagBlock); err != nil {
		return nil, fmt.Errorf("invalid -block: %w", err)
	}

	if flagLength > 0xFFFF {
		return nil, fmt.Errorf("invalid -length: %d exceeds 65535", flagLength)
	}
	cfg.length = uint32(flagLength)

	// Enable debug output if --debug flag is set
	if cfg.debug {
		nfctag.SetDebugEnabled(true)
	}

	return cfg, nil
}

// parseHexBytes decodes hex, ignoring common byte separators.
func parseHexBytes(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(":", "", "-", "", " ", "").Replace(s)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return data, nil
}

func parseHexUint(s string, bitSize int) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parse hex: %w", err)
	}
	return v, nil
}

func run(w io.Writer, cfg *config) error {
	tag := nfctag.DetectedTag{UID: cfg.uid, ATQA: cfg.atqa, SAK: cfg.sak}

	_, _ = fmt.Fprintln(w, tag.Summary())
	_, _ = fmt.Fprintf(w, "Info: %s\n", tagops.Describe(tag))

	switch tag.Type() {
	case nfctag.TagTypeMifareClassic:
		if len(cfg.block) == 0 {
			return nil
		}
		plan, err := tagops.PlanClassicRead(tag, cfg.block)
		if err != nil {
			return fmt.Errorf("cannot plan read: %w", err)
		}
		printPlan(w, plan, "blocks")

	case nfctag.TagTypeMifareUltralight:
		if cfg.length == 0 {
			return nil
		}
		plan, err := tagops.PlanUltralightRead(cfg.length)
		if err != nil {
			return fmt.Errorf("cannot plan read: %w", err)
		}
		printPlan(w, plan, "pages")

	case nfctag.TagTypeMifareDESFire:
		_, _ = fmt.Fprintln(w, "DESFire tags use ISO 7816 file access, no block plan")

	case nfctag.TagTypeType2, nfctag.TagTypeUnknown:
		_, _ = fmt.Fprintf(w, "Guess from UID length: %s\n", tagops.TagTypeDisplayName(tag.GuessedType()))
	}

	return nil
}

func printPlan(w io.Writer, plan *tagops.ReadPlan, unitName string) {
	_, _ = fmt.Fprintf(w, "NDEF message: %d bytes at offset %d\n", plan.MessageLength, plan.MessageStart)
	_, _ = fmt.Fprintf(w, "Buffer: %d bytes\n", plan.BufferSize)
	_, _ = fmt.Fprintf(w, "Read %s: %v\n", unitName, plan.Units)
}

func main() {
	flag.Parse()

	cfg, err := parseConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
