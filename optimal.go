// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

import "math"

type edgeKind uint8

const (
	edgeLiteral edgeKind = iota
	edgeRLE
	edgeBackref
)

// node is one position in the optimal strategy's shortest-path graph (spec
// §4.4 "Optimal strategy"). dist is the minimum number of encoded output
// bytes needed to reach this position from position 0; pred/kind/rle/ref
// describe the edge used to reach it, for path reconstruction.
type node struct {
	dist int
	pred int
	kind edgeKind
	rle  rleCandidate
	ref  backrefCandidate
}

// packOptimal finds a shortest (by approximate encoded byte cost) path from
// input position 0 to position len(in) through a DAG of literal and
// compression edges, then re-emits the opcodes along that path.
//
// The literal edge's flat cost of 2 does not account for runs of literals
// sharing one control byte, so this is admissible but not tight: it
// approximates the true minimum rather than achieving it. This matches the
// historical encoder's behaviour and must not be "corrected" (spec §4.4).
func packOptimal(in []byte, idx tupleIndex, fast bool) ([]byte, error) {
	n := len(in)
	nodes := make([]node, n+1)
	for i := 1; i <= n; i++ {
		nodes[i].dist = math.MaxInt32
	}

	for p := 0; p < n; p++ {
		d := nodes[p].dist
		if d == math.MaxInt32 {
			continue
		}

		if lit := d + 2; lit < nodes[p+1].dist {
			nodes[p+1] = node{dist: lit, pred: p, kind: edgeLiteral}
		}

		rle := rleScan(in, p, fast)
		var ref backrefCandidate
		if int(rle.size) < longRunSize && p+4 <= n {
			ref = backrefSearch(in, idx, p, fast)
		}

		switch {
		case ref.size >= 4 && int(ref.size) > int(rle.size):
			target := p + int(ref.size)
			cost := d + backrefEncodedLen(ref)
			if cost < nodes[target].dist {
				nodes[target] = node{dist: cost, pred: p, kind: edgeBackref, ref: ref}
			}
		case rle.size >= 2:
			target := p + int(rle.size)
			cost := d + rleEncodedLen(rle)
			if cost < nodes[target].dist {
				nodes[target] = node{dist: cost, pred: p, kind: edgeRLE, rle: rle}
			}
		}
	}

	type step struct {
		kind edgeKind
		pos  int
		rle  rleCandidate
		ref  backrefCandidate
	}
	var steps []step
	for p := n; p > 0; {
		nd := nodes[p]
		steps = append(steps, step{kind: nd.kind, pos: nd.pred, rle: nd.rle, ref: nd.ref})
		p = nd.pred
	}

	c := newPackContext(in)
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		switch s.kind {
		case edgeLiteral:
			if err := c.pushLiteral(s.pos); err != nil {
				return nil, err
			}
		case edgeRLE:
			if err := c.writeRLE(s.rle); err != nil {
				return nil, err
			}
		case edgeBackref:
			if err := c.writeBackref(s.ref); err != nil {
				return nil, err
			}
		}
	}
	if err := c.writeTrailer(); err != nil {
		return nil, err
	}
	return c.out, nil
}
