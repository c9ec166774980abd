// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

/*
Package exhal implements the HAL Laboratory compression format used in
several Super NES and Game Boy game ROMs developed by HAL Laboratory.

The format is a byte-oriented LZ/RLE hybrid bounded to 64 KiB on either side
of the codec. An opcode byte selects one of several operations (literal run,
three RLE variants, three back-reference variants) and carries either a
5-bit or 10-bit length depending on its envelope; the stream ends with a
0xFF terminator byte.

# Decode

	out, stats, err := exhal.Decode(compressed)

Decode never writes more than 65,536 output bytes and returns
ErrTruncatedInput, ErrOutputOverflow, or ErrBadBackref on malformed input.

# Encode

	out, err := exhal.Encode(data, nil)                                 // greedy, full search
	out, err := exhal.Encode(data, &exhal.EncodeOptions{Fast: true})    // greedy, forward-only
	out, err := exhal.Encode(data, &exhal.EncodeOptions{Optimal: true}) // shortest-path search

Optimal mode trades encode time for a smaller (though not provably minimal:
its cost model charges every literal byte a flat two bytes) compressed
stream.
*/
package exhal
