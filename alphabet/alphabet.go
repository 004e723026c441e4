// Package alphabet defines the symbol table and network-output matrix shared
// by the beam and duplex decoders.
//
// An Alphabet is an ordered list of L+1 symbols; index 0 is always the
// blank. A Matrix is a T x (L+1) row-major probability table: network[t][k]
// is the probability that timestep t emits symbol k. Construction validates
// shape up front, before either decoder allocates any search state, so a
// malformed matrix never reaches a decode's inner loop.
package alphabet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ctcbeam/decodeerr"
)

// BlankIndex is the alphabet index reserved for the CTC blank label. Its
// textual value is never emitted and is not consulted by the decoders.
const BlankIndex = 0

// Alphabet is an ordered, validated symbol table. Index 0 is the blank.
type Alphabet struct {
	symbols []string
}

// New validates and wraps symbols as an Alphabet. len(symbols) must be at
// least 2 (a blank plus one real label); symbols[0] is the blank and may be
// any placeholder string, since its value is never emitted.
//
// Complexity: O(L) to copy the symbol slice.
func New(symbols []string) (Alphabet, error) {
	if len(symbols) < 2 {
		return Alphabet{}, decodeerr.ErrAlphabetTooShort
	}
	cp := make([]string, len(symbols))
	copy(cp, symbols)

	return Alphabet{symbols: cp}, nil
}

// Len returns L+1, the total symbol count including the blank.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the textual form of alphabet index k. Panics if k is out
// of range; callers only ever index with values already bounds-checked
// against Len() during decode.
func (a Alphabet) Symbol(k int) string {
	return a.symbols[k]
}

// IsBlank reports whether k is the blank index.
func (a Alphabet) IsBlank(k int) bool {
	return k == BlankIndex
}

// Matrix is a T x (L+1) row-major network output: Matrix[t][k] is the
// probability that timestep t emits symbol k.
type Matrix [][]float64

// NewMatrix validates rows against alpha and wraps them as a Matrix. Every
// row must have exactly alpha.Len() columns. Validation is O(T) and happens
// once, up front, so a misshapen matrix never reaches either decoder's
// inner loop.
//
// Finiteness is deliberately not enforced here: "all entries finite" is a
// soft expectation, not a hard format constraint - a NaN surfacing during a
// probability comparison is reported as ErrIncomparableValues by the
// decoder itself, mid-decode, rather than rejected sight-unseen at
// construction.
func NewMatrix(rows [][]float64, alpha Alphabet) (Matrix, error) {
	width := alpha.Len()
	for t, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("alphabet.NewMatrix: row %d has %d columns, want %d: %w", t, len(row), width, decodeerr.ErrAlphabetMismatch)
		}
	}

	return Matrix(rows), nil
}

// Rows returns the number of timesteps (T) in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Width returns the inner axis size (L+1) of the matrix, or 0 if empty.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// ValidateBeamParams checks beam_size and beam_cut_threshold against an
// alphabet: beam_size >= 1, and 0 <= beam_cut_threshold < 1/alpha.Len().
func ValidateBeamParams(alpha Alphabet, beamSize int, cutThreshold float64) error {
	if beamSize < 1 {
		return decodeerr.ErrBeamSizeTooSmall
	}
	if math.IsNaN(cutThreshold) {
		return fmt.Errorf("alphabet.ValidateBeamParams: beam_cut_threshold is NaN: %w", decodeerr.ErrThresholdOutOfRange)
	}
	upperBound := 1.0 / float64(alpha.Len())
	if cutThreshold < 0 || cutThreshold >= upperBound {
		return decodeerr.ErrThresholdOutOfRange
	}

	return nil
}
