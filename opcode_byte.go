// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// opcodeByte packs an opcode fragment into one byte as required by the
// format's bit layout. Callers pass values whose low 8 bits are the
// serialized representation.
func opcodeByte(v int) byte {
	// #nosec G115 -- opcode fragments intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
