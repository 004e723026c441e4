// Errors:
//
//   - decodeerr.ErrAlphabetTooShort, ErrAlphabetMismatch, ErrBeamSizeTooSmall,
//     ErrThresholdOutOfRange: argument validation, raised before any
//     allocation.
//   - decodeerr.ErrInvalidEnvelope: the supplied envelope violates its
//     monotonicity or bounds invariants.
//   - decodeerr.ErrRanOutOfBeam: the joint beam emptied out after a row's
//     threshold filtering and pruning.
//   - decodeerr.ErrIncomparableValues: a NaN surfaced while scoring or
//     comparing joint beam entries.
//
// Complexity: O(T1 * W * K * L) time where W is the widest envelope
// window and T1 = net1.Rows(), plus O(distinct joint prefixes) memory for
// the shared suffix tree arena.
//
// Options: none - beamSize, cutThreshold and the envelope are passed
// directly to Decode. A nil envelope falls back to FullEnvelope, which the
// design notes call approximate; callers wanting reproducible alignment
// should supply their own.
package duplex
