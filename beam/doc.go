// Errors:
//
//   - decodeerr.ErrAlphabetTooShort, ErrAlphabetMismatch, ErrBeamSizeTooSmall,
//     ErrThresholdOutOfRange: argument validation, raised before any
//     allocation.
//   - decodeerr.ErrRanOutOfBeam: the beam emptied out after a timestep's
//     threshold filtering and pruning.
//   - decodeerr.ErrIncomparableValues: a NaN surfaced while scoring or
//     comparing beam entries.
//
// Complexity: O(T * K * L) time, O(min(K*L, distinct prefixes)) memory per
// timestep for the accumulator, plus O(distinct prefixes) for the suffix
// tree arena over the whole decode.
//
// Options: none - beamSize and cutThreshold are passed directly to Decode
// rather than through a functional-options struct, since both are mandatory
// for every call.
package beam
