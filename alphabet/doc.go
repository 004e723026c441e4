// Errors:
//
//   - decodeerr.ErrAlphabetTooShort: New was given fewer than 2 symbols.
//   - decodeerr.ErrAlphabetMismatch: NewMatrix saw a row whose width didn't
//     match the alphabet.
//   - decodeerr.ErrBeamSizeTooSmall, ErrThresholdOutOfRange:
//     ValidateBeamParams rejected beamSize or cutThreshold.
//
// Complexity: O(L) for New, O(T) for NewMatrix, O(1) for ValidateBeamParams.
//
// Package: ctcbeam/alphabet
package alphabet
