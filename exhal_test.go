// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

import (
	"bytes"
	"errors"
	"testing"
)

// Concrete scenarios below correspond to the six worked examples: encoded
// byte layouts are checked against the formal writer table (§4.5) rather
// than against illustrative prose that, for the 33-byte run and the
// 4-byte alternating pair, doesn't account for the long-form length
// threshold and the RLE-16 candidate respectively (see DESIGN.md).

func TestEncodeSingleLiteralByte(t *testing.T) {
	got, err := Encode([]byte{0x00}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x00, 0x00, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
	dec, _, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, []byte{0x00}) {
		t.Errorf("Decode = % X, want [00]", dec)
	}
}

func TestEncodeLongRLE8Run(t *testing.T) {
	in := bytes.Repeat([]byte{0x41}, 33)
	got, err := Encode(in, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// 33 bytes: size-1 = 32 doesn't fit 5 bits, so the long-RLE envelope
	// applies: B = 0xE4 | (rle8<<2) | ((33-1)>>8), length byte = 32.
	want := []byte{0xE4, 0x20, 0x41, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
	dec, stats, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("Decode length %d, want %d copies of 0x41", len(dec), len(in))
	}
	if stats.MethodUse[1] != 1 {
		t.Errorf("MethodUse[rle8] = %d, want 1", stats.MethodUse[1])
	}
}

func TestEncodeSequenceRLE(t *testing.T) {
	in := make([]byte, 32)
	for i := range in {
		in[i] = byte(i)
	}
	got, err := Encode(in, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x7F, 0x00, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}

	fastGot, err := Encode(in, &EncodeOptions{Fast: true})
	if err != nil {
		t.Fatalf("Encode (fast): %v", err)
	}
	dec, _, err := Decode(fastGot)
	if err != nil {
		t.Fatalf("Decode (fast): %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("fast-mode round trip mismatch")
	}
	if bytes.Equal(fastGot, want) {
		t.Errorf("fast mode should not choose sequence RLE")
	}
}

func TestEncodeShortBackrefMinimumSize(t *testing.T) {
	// Repeating 2-byte pair qualifies as a valid rle_16 candidate (size 4),
	// which the greedy/optimal selection criteria prefer over any back-ref
	// (no back-ref candidate exists this early in the input anyway, since a
	// back-ref requires an earlier occurrence of the 4-byte key).
	in := []byte{0xAB, 0xCD, 0xAB, 0xCD}
	got, err := Encode(in, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x41, 0xAB, 0xCD, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
	dec, _, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("Decode = % X, want % X", dec, in)
	}
}

func TestEncodeRotatedBackref(t *testing.T) {
	unit := []byte{0x80, 0x00, 0x00, 0x00}
	rotUnit := make([]byte, len(unit))
	for i, b := range unit {
		rotUnit[i] = rotate(b)
	}
	in := append(append([]byte{}, unit...), rotUnit...)
	in = append(in, rotUnit...) // extra repeat so the rotated match clears the size-4 minimum

	full, err := Encode(in, &EncodeOptions{Optimal: false})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, stats, err := Decode(full)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("round trip mismatch")
	}
	if stats.MethodUse[5] == 0 {
		t.Errorf("full mode: expected at least one lz_rot back-ref, got MethodUse=%v", stats.MethodUse)
	}

	fast, err := Encode(in, &EncodeOptions{Fast: true})
	if err != nil {
		t.Fatalf("Encode (fast): %v", err)
	}
	_, fastStats, err := Decode(fast)
	if err != nil {
		t.Fatalf("Decode (fast): %v", err)
	}
	if fastStats.MethodUse[5] != 0 {
		t.Errorf("fast mode: expected no lz_rot back-refs, got MethodUse=%v", fastStats.MethodUse)
	}
}

func TestDecodeMethod7QuirkAliasesMethod4(t *testing.T) {
	// A short literal (0xAB) followed by a long-form back-ref to offset 0,
	// length 1 -- once with the quirk method field (7), once with the
	// legitimate method (4) it must alias to.
	quirk := []byte{0x00, 0xAB, 0xE0 | (7 << 2), 0x00, 0x00, 0x00, 0xFF}
	explicit := []byte{0x00, 0xAB, 0xE0 | (4 << 2), 0x00, 0x00, 0x00, 0xFF}

	out, stats, err := Decode(quirk)
	if err != nil {
		t.Fatalf("Decode(quirk): %v", err)
	}
	out2, stats2, err := Decode(explicit)
	if err != nil {
		t.Fatalf("Decode(explicit): %v", err)
	}
	if !bytes.Equal(out, out2) {
		t.Errorf("quirk output %v != method-4 output %v", out, out2)
	}
	if stats.MethodUse != stats2.MethodUse {
		t.Errorf("quirk stats %v != method-4 stats %v", stats.MethodUse, stats2.MethodUse)
	}
}

func TestDecodeBadBackrefOnUnwrittenSource(t *testing.T) {
	// Long form, method-7 quirk (aliases to forward back-ref), length 1,
	// offset 0xFFFF: the source position was never written.
	crafted := []byte{0xE0 | (7 << 2), 0x00, 0xFF, 0xFF}
	_, _, err := Decode(crafted)
	if !errors.Is(err, ErrBadBackref) {
		t.Errorf("Decode error = %v, want ErrBadBackref", err)
	}
}

func TestDecodeTruncatedInput(t *testing.T) {
	_, _, err := Decode([]byte{0x02})
	if !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("Decode error = %v, want ErrTruncatedInput", err)
	}
}

func TestDecodeTerminatorOnly(t *testing.T) {
	out, stats, err := Decode([]byte{0xFF})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Decode = %v, want empty", out)
	}
	if stats.BytesConsumed != 1 {
		t.Errorf("BytesConsumed = %d, want 1", stats.BytesConsumed)
	}
}

func TestEncodeInputTooLarge(t *testing.T) {
	_, err := Encode(make([]byte, dataSize+1), nil)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Encode error = %v, want ErrInputTooLarge", err)
	}
}

func TestRoundTripAllStrategyCombinations(t *testing.T) {
	in := make([]byte, 4096)
	for i := range in {
		in[i] = byte((i*7 + i/13) % 256)
	}
	// Salt in some literal, RLE, and repeat structure.
	copy(in[100:132], bytes.Repeat([]byte{0x5A}, 32))
	copy(in[500:564], in[0:64])

	for _, optimal := range []bool{false, true} {
		for _, fast := range []bool{false, true} {
			opts := &EncodeOptions{Optimal: optimal, Fast: fast}
			t.Run(fmtCase(optimal, fast), func(t *testing.T) {
				enc, err := Encode(in, opts)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				if len(enc) > dataSize {
					t.Fatalf("encoded length %d exceeds %d", len(enc), dataSize)
				}
				dec, _, err := Decode(enc)
				if err != nil {
					t.Fatalf("Decode: %v", err)
				}
				if !bytes.Equal(dec, in) {
					t.Fatalf("round trip mismatch for optimal=%v fast=%v", optimal, fast)
				}
			})
		}
	}
}

func fmtCase(optimal, fast bool) string {
	s := "greedy"
	if optimal {
		s = "optimal"
	}
	if fast {
		s += "/fast"
	} else {
		s += "/full"
	}
	return s
}

func TestEncodeTerminatorAlwaysPresent(t *testing.T) {
	in := []byte("the quick brown fox jumps over the lazy dog, repeatedly, the quick brown fox")
	for _, optimal := range []bool{false, true} {
		enc, err := Encode(in, &EncodeOptions{Optimal: optimal})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if enc[len(enc)-1] != opEnd {
			t.Errorf("last byte = %#x, want %#x", enc[len(enc)-1], opEnd)
		}
	}
}

func TestOptimalNeverWorseThanGreedyByMuch(t *testing.T) {
	in := make([]byte, 2048)
	for i := range in {
		in[i] = byte(i % 251)
	}
	greedy, err := Encode(in, &EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode greedy: %v", err)
	}
	optimal, err := Encode(in, &EncodeOptions{Optimal: true})
	if err != nil {
		t.Fatalf("Encode optimal: %v", err)
	}
	if len(optimal) > len(greedy)+len(in)/32+1 {
		t.Errorf("optimal length %d far exceeds greedy length %d for a %d-byte input",
			len(optimal), len(greedy), len(in))
	}
}
