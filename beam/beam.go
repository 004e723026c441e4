package beam

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/ctcbeam/alphabet"
	"github.com/katalvlaran/ctcbeam/decodeerr"
	"github.com/katalvlaran/ctcbeam/suffixtree"
	"github.com/katalvlaran/ctcbeam/vec2d"
)

// Decode runs a Graves-style CTC prefix beam search over network.
//
// alpha provides the label alphabet (index 0 is the blank and is never
// emitted); beamSize bounds how many surviving prefixes are kept after
// every timestep (beamSize >= 1); cutThreshold discards any label whose
// probability at a timestep does not exceed it (0 <= cutThreshold <
// 1/alpha.Len()).
//
// Argument validation happens entirely before any allocation. Once decoding
// starts, an empty beam after pruning yields ErrRanOutOfBeam, and a NaN
// encountered while comparing path probabilities yields
// ErrIncomparableValues - both release the partially-built suffix tree on
// return.
//
// Complexity: O(T * K * L) time, O(T distinct prefixes) memory for the
// suffix tree arena, where T = network.Rows(), K = beamSize, L+1 =
// alpha.Len().
func Decode(network alphabet.Matrix, alpha alphabet.Alphabet, beamSize int, cutThreshold float64) (Result, error) {
	// 1) Validate the alphabet/network shape and beam parameters up front.
	if alpha.Len() < 2 {
		return Result{}, decodeerr.ErrAlphabetTooShort
	}
	if w := network.Width(); w != 0 && w != alpha.Len() {
		return Result{}, decodeerr.ErrAlphabetMismatch
	}
	if err := alphabet.ValidateBeamParams(alpha, beamSize, cutThreshold); err != nil {
		return Result{}, err
	}

	// 2) T=0 is a valid, degenerate decode: no timesteps, empty output.
	if network.Rows() == 0 {
		return Result{}, nil
	}

	// 3) Allocate search state: the suffix tree and the initial beam
	//    {(root, p_b=1, p_nb=0)}.
	tree := suffixtree.New()
	current := []entry{{node: tree.Root(), pb: 1, pnb: 0}}

	// 4) Step through every timestep: expand, prune, commit.
	for t := 0; t < network.Rows(); t++ {
		expanded, err := expand(tree, current, network[t], alpha.Len(), cutThreshold, t)
		if err != nil {
			return Result{}, fmt.Errorf("beam.Decode: timestep %d: %w", t, err)
		}
		pruned, err := prune(expanded, beamSize)
		if err != nil {
			return Result{}, fmt.Errorf("beam.Decode: timestep %d: %w", t, err)
		}
		current = pruned
	}

	// 5) Finalise: return the highest-scoring surviving prefix.
	best, err := bestOf(current)
	if err != nil {
		return Result{}, fmt.Errorf("beam.Decode: %w", err)
	}

	return materialise(tree, alpha, best.node), nil
}

// expand applies one timestep's worth of blank/repeat/extend rules to
// every current beam entry, accumulating destination prefixes into a
// vec2d.Buffer-backed scratch table keyed by insertion order so that
// pruning ties resolve first-seen-wins.
func expand(tree *suffixtree.Tree, current []entry, row []float64, width int, cutThreshold float64, t int) ([]entry, error) {
	acc := newAccumulator(2 * len(current))

	for _, cur := range current {
		curLabel := tree.Label(cur.node) // -1 at the root: never matches a real label
		for k := 0; k < width && k < len(row); k++ {
			p := row[k]
			if p <= cutThreshold {
				continue
			}
			switch {
			case k == 0: // blank: mass stays on the same node, routed into p_b
				if amount := (cur.pb + cur.pnb) * p; amount != 0 {
					if err := acc.addPB(cur.node, amount); err != nil {
						return nil, err
					}
				}
			case k == curLabel: // repeating the most recent non-blank label
				if amount := cur.pnb * p; amount != 0 {
					if err := acc.addPNB(cur.node, amount); err != nil {
						return nil, err
					}
				}
				// Only a blank between two identical labels keeps them distinct,
				// so this destination only becomes live when p_b is non-zero -
				// otherwise no real path reaches it yet, and get_or_create_child
				// must not freeze a "first seen" timestep for a node no path has
				// actually entered.
				if amount := cur.pb * p; amount != 0 {
					child := tree.GetOrCreateChild(cur.node, k, t)
					if err := acc.addPNB(child, amount); err != nil {
						return nil, err
					}
				}
			default: // a genuinely new label extends the prefix
				if amount := (cur.pb + cur.pnb) * p; amount != 0 {
					child := tree.GetOrCreateChild(cur.node, k, t)
					if err := acc.addPNB(child, amount); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return acc.entries(), nil
}

// prune keeps the beamSize highest-scoring entries, breaking ties by
// insertion (first-seen) order, and fails if nothing survived expansion.
func prune(entries []entry, beamSize int) ([]entry, error) {
	if len(entries) == 0 {
		return nil, decodeerr.ErrRanOutOfBeam
	}
	scores := make([]float64, len(entries))
	for i, e := range entries {
		s := e.score()
		if math.IsNaN(s) {
			return nil, decodeerr.ErrIncomparableValues
		}
		scores[i] = s
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if len(order) > beamSize {
		order = order[:beamSize]
	}
	out := make([]entry, len(order))
	for i, idx := range order {
		out[i] = entries[idx]
	}

	return out, nil
}

// bestOf returns the highest-scoring entry in a beam, per the same
// tie-break and NaN-handling rules as prune.
func bestOf(entries []entry) (entry, error) {
	if len(entries) == 0 {
		return entry{}, decodeerr.ErrRanOutOfBeam
	}
	best := entries[0]
	bestScore := best.score()
	if math.IsNaN(bestScore) {
		return entry{}, decodeerr.ErrIncomparableValues
	}
	for _, e := range entries[1:] {
		s := e.score()
		if math.IsNaN(s) {
			return entry{}, decodeerr.ErrIncomparableValues
		}
		if s > bestScore {
			best, bestScore = e, s
		}
	}

	return best, nil
}

// materialise walks the winning node's path and renders it as the public
// Result: concatenated symbol text plus parallel timesteps.
func materialise(tree *suffixtree.Tree, alpha alphabet.Alphabet, node suffixtree.NodeID) Result {
	path := tree.Path(node)
	var sb strings.Builder
	timesteps := make([]int, len(path))
	for i, step := range path {
		sb.WriteString(alpha.Symbol(step.Label))
		timesteps[i] = step.Time
	}

	return Result{Labels: sb.String(), Timesteps: timesteps}
}

// accumulator merges per-destination probability contributions during one
// timestep's expansion, preserving first-seen order for deterministic,
// stable pruning.
type accumulator struct {
	index map[suffixtree.NodeID]int
	rows  *vec2d.Buffer
	nodes []suffixtree.NodeID
	cap   int
}

func newAccumulator(hint int) *accumulator {
	if hint < 1 {
		hint = 1
	}

	return &accumulator{
		index: make(map[suffixtree.NodeID]int, hint),
		rows:  vec2d.New(hint, 2, 0),
		cap:   hint,
	}
}

func (a *accumulator) slot(node suffixtree.NodeID) int {
	idx, ok := a.index[node]
	if ok {
		return idx
	}
	idx = len(a.nodes)
	if idx >= a.cap {
		a.grow()
	}
	a.index[node] = idx
	a.nodes = append(a.nodes, node)

	return idx
}

func (a *accumulator) grow() {
	bigger := vec2d.New(a.cap*2, 2, 0)
	for r := 0; r < a.cap; r++ {
		bigger.Set(r, 0, a.rows.Get(r, 0))
		bigger.Set(r, 1, a.rows.Get(r, 1))
	}
	a.rows = bigger
	a.cap *= 2
}

func (a *accumulator) addPB(node suffixtree.NodeID, amount float64) error {
	if math.IsNaN(amount) {
		return decodeerr.ErrIncomparableValues
	}
	idx := a.slot(node)
	a.rows.Set(idx, 0, a.rows.Get(idx, 0)+amount)

	return nil
}

func (a *accumulator) addPNB(node suffixtree.NodeID, amount float64) error {
	if math.IsNaN(amount) {
		return decodeerr.ErrIncomparableValues
	}
	idx := a.slot(node)
	a.rows.Set(idx, 1, a.rows.Get(idx, 1)+amount)

	return nil
}

func (a *accumulator) entries() []entry {
	out := make([]entry, len(a.nodes))
	for i, n := range a.nodes {
		out[i] = entry{node: n, pb: a.rows.Get(i, 0), pnb: a.rows.Get(i, 1)}
	}

	return out
}
