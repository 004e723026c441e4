// Complexity: O(1) amortized for Get/Set/SwapRows; O(rows*cols) for New.
//
// Package: ctcbeam/vec2d
package vec2d
