// Package duplex implements the dual-sequence CTC prefix beam search
// (Silvestre-Ryan & Holmes): given two softmax outputs believed to encode
// the same underlying label sequence, it jointly decodes both and returns
// the single best-scoring collapsed labelling.
//
// Unlike the single-sequence decoder, a duplex beam entry carries two
// independent blank/non-blank probability streams - one per network - plus
// a cursor into the second network's row axis. Both streams extend the
// same shared prefix node, so the two networks are forced to agree on the
// label sequence even though they may disagree on timing.
//
// Package: ctcbeam/duplex
package duplex

import (
	"fmt"

	"github.com/katalvlaran/ctcbeam/decodeerr"
	"github.com/katalvlaran/ctcbeam/suffixtree"
)

// Bound is one row of an Envelope: the half-open window [Lo, Hi) into the
// second network's row axis that may be aligned with a given row of the
// first.
type Bound struct {
	Lo, Hi int
}

// Envelope constrains, row by row of net1, which rows of net2 may be
// aligned with it. len(Envelope) must equal net1's row count.
type Envelope []Bound

// FullEnvelope returns the permissive envelope that allows every row of
// net1 to align with any row of net2: [0, t2) on every one of the t1 rows.
// The design notes call this approximate; callers wanting a reproducible
// alignment should supply their own envelope.
func FullEnvelope(t1, t2 int) Envelope {
	env := make(Envelope, t1)
	for i := range env {
		env[i] = Bound{Lo: 0, Hi: t2}
	}

	return env
}

// Validate checks the envelope's monotonicity and bounds invariants against
// the row counts of net1 (t1) and net2 (t2): every row's bounds lie within
// [0, t2], lo and hi are non-decreasing across rows, the first row's lo is
// 0, and the last row's hi is t2.
func (env Envelope) Validate(t1, t2 int) error {
	if len(env) != t1 {
		return fmt.Errorf("duplex: envelope has %d rows, want %d: %w", len(env), t1, decodeerr.ErrInvalidEnvelope)
	}
	if t1 == 0 {
		return nil
	}
	if env[0].Lo != 0 {
		return fmt.Errorf("duplex: envelope[0].Lo = %d, want 0: %w", env[0].Lo, decodeerr.ErrInvalidEnvelope)
	}
	if env[t1-1].Hi != t2 {
		return fmt.Errorf("duplex: envelope[%d].Hi = %d, want %d: %w", t1-1, env[t1-1].Hi, t2, decodeerr.ErrInvalidEnvelope)
	}

	prevLo, prevHi := -1, -1
	for i, b := range env {
		if b.Lo < 0 || b.Hi > t2 || b.Lo > b.Hi {
			return fmt.Errorf("duplex: envelope[%d] = [%d, %d) out of bounds for t2=%d: %w", i, b.Lo, b.Hi, t2, decodeerr.ErrInvalidEnvelope)
		}
		if b.Lo < prevLo || b.Hi < prevHi {
			return fmt.Errorf("duplex: envelope[%d] = [%d, %d) is not non-decreasing after row %d: %w", i, b.Lo, b.Hi, i-1, decodeerr.ErrInvalidEnvelope)
		}
		prevLo, prevHi = b.Lo, b.Hi
	}

	return nil
}

// entry is one surviving joint beam member: a shared prefix node, two
// independent blank/non-blank probability streams, and the net2 cursor the
// streams were last advanced to.
type entry struct {
	node      suffixtree.NodeID
	pb1, pnb1 float64
	pb2, pnb2 float64
	t2        int
}

// score is the joint probability mass the beam prunes and finalises on:
// the product of each stream's total path probability.
func (e entry) score() float64 {
	return (e.pb1 + e.pnb1) * (e.pb2 + e.pnb2)
}
