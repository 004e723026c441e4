// Complexity: O(1) amortized per GetOrCreateChild; O(depth) for Path.
//
// Package: ctcbeam/suffixtree
package suffixtree
