package duplex

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/ctcbeam/alphabet"
	"github.com/katalvlaran/ctcbeam/decodeerr"
	"github.com/katalvlaran/ctcbeam/suffixtree"
)

// Decode runs a dual-sequence CTC prefix beam search over net1 and net2,
// two softmax outputs believed to encode the same underlying label
// sequence. It returns only the winning path's collapsed label string -
// the two networks may disagree on timing, so no timesteps are reported.
//
// env constrains, for every row of net1, which rows of net2 may be
// aligned with it; pass nil to fall back to FullEnvelope(net1.Rows(),
// net2.Rows()), which allows any alignment and is documented as
// approximate. beamSize and cutThreshold follow the same constraints as
// the single-sequence decoder.
//
// Complexity: O(T1 * W * K * L) time where W is the widest envelope
// window, O(distinct joint prefixes) memory for the suffix tree arena.
func Decode(net1, net2 alphabet.Matrix, alpha alphabet.Alphabet, env Envelope, beamSize int, cutThreshold float64) (string, error) {
	// 1) Validate the alphabet/network shapes and beam parameters up front.
	if alpha.Len() < 2 {
		return "", decodeerr.ErrAlphabetTooShort
	}
	if w := net1.Width(); w != 0 && w != alpha.Len() {
		return "", decodeerr.ErrAlphabetMismatch
	}
	if w := net2.Width(); w != 0 && w != alpha.Len() {
		return "", decodeerr.ErrAlphabetMismatch
	}
	if err := alphabet.ValidateBeamParams(alpha, beamSize, cutThreshold); err != nil {
		return "", err
	}

	if env == nil {
		env = FullEnvelope(net1.Rows(), net2.Rows())
	}
	if err := env.Validate(net1.Rows(), net2.Rows()); err != nil {
		return "", err
	}

	// 2) T1=0 is a valid, degenerate decode: no rows to align, empty output.
	if net1.Rows() == 0 {
		return "", nil
	}

	// 3) Allocate search state: the shared suffix tree and the initial beam
	//    {(root, p_b1=1, p_nb1=0, p_b2=1, p_nb2=0, t2=env[0].Lo)}.
	tree := suffixtree.New()
	current := []entry{{node: tree.Root(), pb1: 1, pnb1: 0, pb2: 1, pnb2: 0, t2: env[0].Lo}}

	// 4) Step through every row of net1: expand against net1 and, within
	//    its envelope window, against net2; prune; commit.
	for t1 := 0; t1 < net1.Rows(); t1++ {
		expanded, err := expand(tree, current, net1[t1], net2, alpha.Len(), cutThreshold, env[t1])
		if err != nil {
			return "", fmt.Errorf("duplex.Decode: row %d: %w", t1, err)
		}
		pruned, err := prune(expanded, beamSize)
		if err != nil {
			return "", fmt.Errorf("duplex.Decode: row %d: %w", t1, err)
		}
		current = pruned
	}

	// 5) Finalise: return the highest-scoring joint path's labelling.
	best, err := bestOf(current)
	if err != nil {
		return "", fmt.Errorf("duplex.Decode: %w", err)
	}

	return materialise(tree, alpha, best.node), nil
}

// expand applies one row of net1, combined with every admissible row of
// net2 inside window, to every current joint beam entry. For each entry,
// each label k passing net1's threshold, and each net2 row t2 in window
// where the same label k also passes net2's threshold, it runs the
// single-sequence blank/repeat/extend rule independently on each stream
// and combines their contributions multiplicatively.
func expand(tree *suffixtree.Tree, current []entry, row1 []float64, net2 alphabet.Matrix, width int, cutThreshold float64, window Bound) ([]entry, error) {
	acc := newAccumulator(2 * len(current) * (window.Hi - window.Lo + 1))

	for _, cur := range current {
		curLabel := tree.Label(cur.node)
		for k := 0; k < width && k < len(row1); k++ {
			p1 := row1[k]
			if p1 <= cutThreshold {
				continue
			}
			for t2 := window.Lo; t2 < window.Hi; t2++ {
				row2 := net2[t2]
				if k >= len(row2) {
					continue
				}
				p2 := row2[k]
				if p2 <= cutThreshold {
					continue
				}

				switch {
				case k == 0: // blank on both streams: mass stays on the same node
					amount1 := (cur.pb1 + cur.pnb1) * p1
					amount2 := (cur.pb2 + cur.pnb2) * p2
					if amount1 != 0 && amount2 != 0 {
						if err := acc.addPB(cur.node, t2, amount1, amount2); err != nil {
							return nil, err
						}
					}
				case k == curLabel: // repeating the most recent non-blank label
					sameAmount1 := cur.pnb1 * p1
					sameAmount2 := cur.pnb2 * p2
					if sameAmount1 != 0 && sameAmount2 != 0 {
						if err := acc.addPNB(cur.node, t2, sameAmount1, sameAmount2); err != nil {
							return nil, err
						}
					}
					childAmount1 := cur.pb1 * p1
					childAmount2 := cur.pb2 * p2
					if childAmount1 != 0 && childAmount2 != 0 {
						child := tree.GetOrCreateChild(cur.node, k, t2)
						if err := acc.addPNB(child, t2, childAmount1, childAmount2); err != nil {
							return nil, err
						}
					}
				default: // a genuinely new label extends the shared prefix
					amount1 := (cur.pb1 + cur.pnb1) * p1
					amount2 := (cur.pb2 + cur.pnb2) * p2
					if amount1 != 0 && amount2 != 0 {
						child := tree.GetOrCreateChild(cur.node, k, t2)
						if err := acc.addPNB(child, t2, amount1, amount2); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return acc.entries(), nil
}

// prune keeps the beamSize highest joint-scoring entries, breaking ties by
// insertion order, and fails if nothing survived expansion.
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

// bestOf returns the highest joint-scoring entry in a beam.
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

// materialise walks the winning node's path and renders it as a collapsed
// label string - no timesteps, since the two networks may disagree on
// timing.
func materialise(tree *suffixtree.Tree, alpha alphabet.Alphabet, node suffixtree.NodeID) string {
	path := tree.Path(node)
	var sb strings.Builder
	for _, step := range path {
		sb.WriteString(alpha.Symbol(step.Label))
	}

	return sb.String()
}

// accumulator merges per-destination joint probability contributions
// during one row's expansion. Destinations are keyed by (node, t2) since
// the same prefix node may be reached at different net2 cursor positions,
// each carrying its own pair of probability streams.
type accumulator struct {
	index map[destKey]int
	dest  []entry
}

type destKey struct {
	node suffixtree.NodeID
	t2   int
}

func newAccumulator(hint int) *accumulator {
	if hint < 1 {
		hint = 1
	}

	return &accumulator{index: make(map[destKey]int, hint)}
}

func (a *accumulator) slot(node suffixtree.NodeID, t2 int) int {
	key := destKey{node: node, t2: t2}
	idx, ok := a.index[key]
	if ok {
		return idx
	}
	idx = len(a.dest)
	a.index[key] = idx
	a.dest = append(a.dest, entry{node: node, t2: t2})

	return idx
}

func (a *accumulator) addPB(node suffixtree.NodeID, t2 int, amount1, amount2 float64) error {
	if math.IsNaN(amount1) || math.IsNaN(amount2) {
		return decodeerr.ErrIncomparableValues
	}
	idx := a.slot(node, t2)
	a.dest[idx].pb1 += amount1
	a.dest[idx].pb2 += amount2

	return nil
}

func (a *accumulator) addPNB(node suffixtree.NodeID, t2 int, amount1, amount2 float64) error {
	if math.IsNaN(amount1) || math.IsNaN(amount2) {
		return decodeerr.ErrIncomparableValues
	}
	idx := a.slot(node, t2)
	a.dest[idx].pnb1 += amount1
	a.dest[idx].pnb2 += amount2

	return nil
}

func (a *accumulator) entries() []entry {
	return a.dest
}
