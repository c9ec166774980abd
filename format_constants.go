// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// HAL format constants: the 64 KiB domain cap, run-size thresholds, and
// opcode byte layout (see spec §4.2 opcode parsing / §4.5 writer tables).

// dataSize is the maximum size of either the decoded or the encoded buffer.
const dataSize = 65536

// MaxBlockSize is the largest number of bytes Encode will accept or Decode
// will produce: the format's 64 KiB domain cap (spec §3 "Buffers"). Callers
// that read a compressed block out of a larger file (a ROM, say) should cap
// their read to this many bytes, matching the original tools' fixed
// DATA_SIZE-byte buffer.
const MaxBlockSize = dataSize

// runSize is the boundary between the short (5-bit) and long (10-bit)
// opcode envelopes: a size-minus-one that doesn't fit in 5 bits (size > 32)
// forces the long form.
const runSize = 32

// longRunSize (LONG_RUN) is the architectural cap on any single operation's
// size field.
const longRunSize = 1024

// Opcode envelope markers (top bits of the control byte).
const (
	opLiteral = 0x00 // 000 bits 7:5 - literal run
	opRLE     = 0x20 // 001 bits 7:5 - short RLE
	opBackref = 0x80 // 100 bits 7:5 - short back-reference
	opLong    = 0xE0 // top 3 bits set - long form envelope
	opRLELong = 0xE4 // long RLE envelope (opLong | rle method << 2)
	opRefLong = 0xF0 // long back-reference envelope
	opEnd     = 0xFF // stream terminator
)

// rleMethod enumerates the three RLE variants (shares its integer range with
// lzMethod; which one applies is determined by the opcode's top bits).
type rleMethod uint8

const (
	rle8  rleMethod = 0 // single byte repeated
	rle16 rleMethod = 1 // byte pair repeated
	rleSeq rleMethod = 2 // arithmetic sequence, mod 256
)

// lzMethod enumerates the three back-reference variants.
type lzMethod uint8

const (
	lzNorm lzMethod = 0 // plain forward copy
	lzRot  lzMethod = 1 // forward copy, each byte bit-reversed
	lzRev  lzMethod = 2 // backward (descending-offset) copy
)
