// Package beam implements the single-sequence CTC prefix beam search
// (Graves-style): given one network's softmax output, it returns the
// collapsed label sequence most likely to have produced it, together with
// the timestep at which each label's prefix first received probability
// mass.
//
// A path through the network assigns one alphabet symbol to every
// timestep. Collapsing a path into a labelling merges consecutive
// duplicates, then drops the blanks: the path AAAGGbGGbbbC collapses to
// AGbGbC, then to AGGC. Decode approximates, by beam search, the highest-
// probability labelling rather than enumerating every path (which is
// intractable for any non-trivial T).
//
// Package: ctcbeam/beam
package beam

import "github.com/katalvlaran/ctcbeam/suffixtree"

// Result is the output of a single-sequence decode: the collapsed label
// string, and for each emitted label the timestep at which its prefix on
// the winning path was first created. len(Labels as runes-of-symbols) ==
// len(Timesteps).
type Result struct {
	// Labels is the concatenation of the non-blank alphabet symbols along
	// the winning path, in emission order.
	Labels string

	// Timesteps holds one entry per emitted label: the first timestep at
	// which expansion gave that label's prefix on the winning path non-zero
	// probability. The prefix may have been pruned at that timestep and
	// re-entered the beam later; the recorded timestep is not moved.
	// Non-decreasing and each value lies in [0, T).
	Timesteps []int
}

// entry is one surviving beam member: a prefix node plus its blank-ending
// and non-blank-ending path probability mass.
type entry struct {
	node suffixtree.NodeID
	pb   float64
	pnb  float64
}

// score is the quantity beam search prunes and finalises on: the total
// probability mass of all paths collapsing to this prefix, blank-ending or
// not.
func (e entry) score() float64 {
	return e.pb + e.pnb
}
