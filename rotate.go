// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// rotate reverses the order of bits in a byte (bit i <-> bit 7-i). One of
// the back-reference methods applies this to each copied byte; as far as
// SNES/GB graphics data goes, it tends to be useful for tile data stored
// column-major relative to the source it references.
func rotate(b byte) byte {
	var r byte
	if b&0x01 != 0 {
		r |= 0x80
	}
	if b&0x02 != 0 {
		r |= 0x40
	}
	if b&0x04 != 0 {
		r |= 0x20
	}
	if b&0x08 != 0 {
		r |= 0x10
	}
	if b&0x10 != 0 {
		r |= 0x08
	}
	if b&0x20 != 0 {
		r |= 0x04
	}
	if b&0x40 != 0 {
		r |= 0x02
	}
	if b&0x80 != 0 {
		r |= 0x01
	}
	return r
}
