// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

import "github.com/pkg/errors"

// Decode decompresses compressed per the HAL wire format (spec §4.2) and
// returns the decoded bytes plus diagnostic counters. It fails with
// ErrInputTooLarge if len(compressed) exceeds 65,536, with
// ErrTruncatedInput if an opcode's operand runs past the end of compressed,
// with ErrOutputOverflow if a decoded operation would write past the
// 65,536-byte output cap, and with ErrBadBackref if a back-reference reads
// a source position that hasn't been written yet (forward/rotated) or
// would walk below output position 0 (reverse).
func Decode(compressed []byte) ([]byte, DecodeStats, error) {
	var stats DecodeStats
	if len(compressed) > dataSize {
		return nil, stats, errors.Wrapf(ErrInputTooLarge, "compressed input is %d bytes", len(compressed))
	}

	out := make([]byte, 0, dataSize)
	pos := 0 // read cursor into compressed

	readByte := func() (byte, bool) {
		if pos >= len(compressed) {
			return 0, false
		}
		b := compressed[pos]
		pos++
		return b, true
	}

	for {
		opStart := pos
		b, ok := readByte()
		if !ok {
			return nil, stats, errors.Wrapf(ErrTruncatedInput, "opcode byte at compressed[%d]", opStart)
		}
		if b == opEnd {
			stats.BytesConsumed = pos
			return out, stats, nil
		}

		var method int
		var length int
		if b&0xE0 == 0xE0 {
			lo, ok := readByte()
			if !ok {
				return nil, stats, errors.Wrapf(ErrTruncatedInput, "long-form length byte at compressed[%d]", pos)
			}
			method = int(b>>2) & 0x07
			length = (int(b&0x03)<<8 | int(lo)) + 1
		} else {
			method = int(b >> 5)
			length = int(b&0x1F) + 1
		}

		// Bug-compatible aliasing: the historical decoder's method mask
		// admits an 8th value that the encoder never emits; treat it as
		// method 4 (spec §4.2 case 7, P5).
		dispatchMethod := method
		if dispatchMethod == 7 {
			dispatchMethod = 4
		}

		var err error
		switch dispatchMethod {
		case 0:
			out, err = decodeLiteral(compressed, &pos, out, length)
		case 1:
			out, err = decodeRLE8(compressed, &pos, out, length)
		case 2:
			out, err = decodeRLE16(compressed, &pos, out, length)
		case 3:
			out, err = decodeSeq(compressed, &pos, out, length)
		case 4:
			out, err = decodeBackref(compressed, &pos, out, length, lzNorm)
		case 5:
			out, err = decodeBackref(compressed, &pos, out, length, lzRot)
		case 6:
			out, err = decodeReverseBackref(compressed, &pos, out, length)
		}
		if err != nil {
			return nil, stats, errors.Wrapf(err, "method %d opcode at compressed[%d]", dispatchMethod, opStart)
		}
		stats.MethodUse[dispatchMethod]++
	}
}

func decodeLiteral(compressed []byte, pos *int, out []byte, length int) ([]byte, error) {
	if *pos+length > len(compressed) {
		return nil, ErrTruncatedInput
	}
	if len(out)+length > dataSize {
		return nil, ErrOutputOverflow
	}
	out = append(out, compressed[*pos:*pos+length]...)
	*pos += length
	return out, nil
}

func decodeRLE8(compressed []byte, pos *int, out []byte, length int) ([]byte, error) {
	if *pos+1 > len(compressed) {
		return nil, ErrTruncatedInput
	}
	if len(out)+length > dataSize {
		return nil, ErrOutputOverflow
	}
	v := compressed[*pos]
	*pos++
	for i := 0; i < length; i++ {
		out = append(out, v)
	}
	return out, nil
}

func decodeRLE16(compressed []byte, pos *int, out []byte, length int) ([]byte, error) {
	if *pos+2 > len(compressed) {
		return nil, ErrTruncatedInput
	}
	if len(out)+2*length > dataSize {
		return nil, ErrOutputOverflow
	}
	x, y := compressed[*pos], compressed[*pos+1]
	*pos += 2
	for i := 0; i < length; i++ {
		out = append(out, x, y)
	}
	return out, nil
}

func decodeSeq(compressed []byte, pos *int, out []byte, length int) ([]byte, error) {
	if *pos+1 > len(compressed) {
		return nil, ErrTruncatedInput
	}
	if len(out)+length > dataSize {
		return nil, ErrOutputOverflow
	}
	s := compressed[*pos]
	*pos++
	for i := 0; i < length; i++ {
		out = append(out, s+byte(i))
	}
	return out, nil
}

// decodeBackref implements methods 4 (lzNorm) and 5 (lzRot): a forward copy
// from an earlier absolute output offset, byte-at-a-time so that a copy may
// read positions written earlier within the same operation (self-extending
// copy, spec §4.2 case 4).
func decodeBackref(compressed []byte, pos *int, out []byte, length int, method lzMethod) ([]byte, error) {
	if *pos+2 > len(compressed) {
		return nil, ErrTruncatedInput
	}
	off := int(compressed[*pos])<<8 | int(compressed[*pos+1])
	*pos += 2
	if len(out)+length > dataSize {
		return nil, ErrOutputOverflow
	}
	for i := 0; i < length; i++ {
		srcIdx := off + i
		if srcIdx >= len(out) {
			return nil, ErrBadBackref
		}
		v := out[srcIdx]
		if method == lzRot {
			v = rotate(v)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeReverseBackref implements method 6: emits output[off], output[off-1],
// ..., output[off-length+1]. offset must satisfy off >= length-1 or the walk
// would go below output position 0.
func decodeReverseBackref(compressed []byte, pos *int, out []byte, length int) ([]byte, error) {
	if *pos+2 > len(compressed) {
		return nil, ErrTruncatedInput
	}
	off := int(compressed[*pos])<<8 | int(compressed[*pos+1])
	*pos += 2
	if off < length-1 {
		return nil, ErrBadBackref
	}
	if len(out)+length > dataSize {
		return nil, ErrOutputOverflow
	}
	for i := 0; i < length; i++ {
		srcIdx := off - i
		if srcIdx < 0 || srcIdx >= len(out) {
			return nil, ErrBadBackref
		}
		out = append(out, out[srcIdx])
	}
	return out, nil
}
