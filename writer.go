// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// packContext accumulates encoder output, batching literal bytes into runs
// so that a contiguous span of otherwise-unclassified input bytes shares one
// control byte (spec §4.5).
type packContext struct {
	in      []byte
	out     []byte
	litFrom int // input index of start of pending literal run; -1 if none
	litTo   int // input index one past the end of the pending literal run
}

func newPackContext(in []byte) *packContext {
	return &packContext{
		in:      in,
		out:     make([]byte, 0, dataSize),
		litFrom: -1,
	}
}

// pushLiteral appends one input byte to the pending literal-accumulator
// run, flushing first if the accumulator is already at capacity.
func (c *packContext) pushLiteral(p int) error {
	if c.litFrom >= 0 && c.litTo-c.litFrom >= longRunSize {
		if err := c.flushLiteral(); err != nil {
			return err
		}
	}
	if c.litFrom < 0 {
		c.litFrom = p
		c.litTo = p
	}
	c.litTo = p + 1
	return nil
}

// flushLiteral writes out any pending literal run as one opcode.
func (c *packContext) flushLiteral() error {
	if c.litFrom < 0 {
		return nil
	}
	from, to := c.litFrom, c.litTo
	c.litFrom, c.litTo = -1, -1
	return c.writeRaw(c.in[from:to])
}

// writeRaw emits a literal run of the given bytes, choosing short or long
// form by length.
func (c *packContext) writeRaw(data []byte) error {
	l := len(data)
	if l == 0 {
		return nil
	}
	if l <= runSize {
		if len(c.out)+1+l > dataSize {
			return ErrEncodeOverflow
		}
		c.out = append(c.out, opcodeByte(l-1))
		c.out = append(c.out, data...)
		return nil
	}
	if len(c.out)+2+l > dataSize {
		return ErrEncodeOverflow
	}
	c.out = append(c.out, opcodeByte(int(opLong)|((l-1)>>8)), opcodeByte((l-1)&0xFF))
	c.out = append(c.out, data...)
	return nil
}

// writeRLE emits an RLE opcode (flushing any pending literal run first).
func (c *packContext) writeRLE(cand rleCandidate) error {
	if err := c.flushLiteral(); err != nil {
		return err
	}
	l := int(cand.size)
	m := int(cand.method)

	dataBytes := []byte{byte(cand.data)}
	seriesLen := l // the "S" used for the size field (byte pairs for rle16)
	if cand.method == rle16 {
		dataBytes = []byte{byte(cand.data), byte(cand.data >> 8)}
		seriesLen = l / 2
	}

	if seriesLen <= runSize {
		if len(c.out)+1+len(dataBytes) > dataSize {
			return ErrEncodeOverflow
		}
		c.out = append(c.out, opcodeByte((int(opRLE)+(m<<5))|(seriesLen-1)))
		c.out = append(c.out, dataBytes...)
		return nil
	}
	if len(c.out)+2+len(dataBytes) > dataSize {
		return ErrEncodeOverflow
	}
	c.out = append(c.out, opcodeByte((int(opRLELong)+(m<<2))|((seriesLen-1)>>8)), opcodeByte((seriesLen-1)&0xFF))
	c.out = append(c.out, dataBytes...)
	return nil
}

// writeBackref emits a back-reference opcode (flushing any pending literal
// run first).
func (c *packContext) writeBackref(cand backrefCandidate) error {
	if err := c.flushLiteral(); err != nil {
		return err
	}
	l := int(cand.size)
	m := int(cand.method)
	offHi, offLo := byte(cand.offset>>8), byte(cand.offset)

	if l <= runSize {
		if len(c.out)+1+2 > dataSize {
			return ErrEncodeOverflow
		}
		c.out = append(c.out, opcodeByte(int(opBackref)|(m<<5)|(l-1)), offHi, offLo)
		return nil
	}
	if len(c.out)+2+2 > dataSize {
		return ErrEncodeOverflow
	}
	c.out = append(c.out, opcodeByte(int(opRefLong)|(m<<2)|((l-1)>>8)), opcodeByte((l-1)&0xFF), offHi, offLo)
	return nil
}

// rleEncodedLen returns the number of output bytes writeRLE would produce
// for cand, without writing anything. Used by the optimal strategy's edge
// cost (spec §4.4).
func rleEncodedLen(cand rleCandidate) int {
	l := int(cand.size)
	dataBytes := 1
	if cand.method == rle16 {
		l /= 2
		dataBytes = 2
	}
	if l <= runSize {
		return 1 + dataBytes
	}
	return 2 + dataBytes
}

// backrefEncodedLen returns the number of output bytes writeBackref would
// produce for cand, without writing anything.
func backrefEncodedLen(cand backrefCandidate) int {
	l := int(cand.size)
	if l <= runSize {
		return 1 + 2
	}
	return 2 + 2
}

// writeTrailer flushes any pending literal run and appends the terminator.
func (c *packContext) writeTrailer() error {
	if err := c.flushLiteral(); err != nil {
		return err
	}
	if len(c.out)+1 > dataSize {
		return ErrEncodeOverflow
	}
	c.out = append(c.out, opEnd)
	return nil
}
