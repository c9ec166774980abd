// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// packGreedy walks in left to right, at each position choosing between a
// back-reference, an RLE run, or a single literal byte and advancing by the
// chosen span (spec §4.4 "Greedy strategy").
func packGreedy(in []byte, idx tupleIndex, fast bool) ([]byte, error) {
	c := newPackContext(in)
	n := len(in)

	for p := 0; p < n; {
		rle := rleScan(in, p, fast)

		var ref backrefCandidate
		if int(rle.size) < longRunSize && p+4 <= n {
			ref = backrefSearch(in, idx, p, fast)
		}

		switch {
		case ref.size >= 4 && int(ref.size) > int(rle.size):
			if err := c.writeBackref(ref); err != nil {
				return nil, err
			}
			p += int(ref.size)
		case rle.size >= 2:
			if err := c.writeRLE(rle); err != nil {
				return nil, err
			}
			p += int(rle.size)
		default:
			if err := c.pushLiteral(p); err != nil {
				return nil, err
			}
			p++
		}
	}

	if err := c.writeTrailer(); err != nil {
		return nil, err
	}
	return c.out, nil
}
