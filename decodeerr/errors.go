// SPDX-License-Identifier: MIT
// Package: ctcbeam/decodeerr
//
// errors.go - the shared sentinel error taxonomy surfaced by beam and duplex.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Call sites attach context with fmt.Errorf("...: %w", err).
//
// Package decodeerr collects the failure kinds that can be raised while
// decoding a CTC network output: argument-validation errors (raised before
// any allocation) and runtime errors (raised mid-decode, which release the
// partially built search state).
package decodeerr

import "errors"

// Runtime errors: raised mid-decode, after argument validation has passed.
var (
	// ErrRanOutOfBeam indicates every candidate at some timestep fell below
	// the beam cut threshold. Increase beam width or lower the threshold.
	ErrRanOutOfBeam = errors.New("decodeerr: ran out of beam (beam_cut_threshold too high)")

	// ErrIncomparableValues indicates a NaN was encountered while comparing
	// path probabilities; the input likely contains NaNs.
	ErrIncomparableValues = errors.New("decodeerr: incomparable values (NaN in input?)")

	// ErrInvalidEnvelope indicates the supplied envelope violates the
	// monotonicity or bounds invariants required by the duplex decoder.
	ErrInvalidEnvelope = errors.New("decodeerr: invalid envelope")
)

// Argument-validation errors. These are always returned before the decoder
// allocates its suffix tree or scratch buffer.
var (
	// ErrAlphabetTooShort indicates an alphabet of length < 2 was supplied;
	// a blank plus at least one label is required.
	ErrAlphabetTooShort = errors.New("decodeerr: alphabet must have at least 2 symbols")

	// ErrAlphabetMismatch indicates the alphabet length does not equal the
	// inner axis of a network output matrix.
	ErrAlphabetMismatch = errors.New("decodeerr: alphabet length does not match network width")

	// ErrBeamSizeTooSmall indicates beam_size < 1 was supplied.
	ErrBeamSizeTooSmall = errors.New("decodeerr: beam_size must be at least 1")

	// ErrThresholdOutOfRange indicates beam_cut_threshold is negative or not
	// strictly less than 1/len(alphabet).
	ErrThresholdOutOfRange = errors.New("decodeerr: beam_cut_threshold out of range")
)
