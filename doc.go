// Package ctcbeam decodes Connectionist Temporal Classification (CTC)
// network output into discrete label sequences.
//
// What is ctcbeam?
//
//	A focused, thread-safe-by-construction beam search decoder that brings
//	together:
//
//	  - Single-sequence decoding: collapse one softmax matrix into its most
//	    likely label sequence (beam.Decode).
//	  - Dual-sequence decoding: jointly decode two softmax matrices believed
//	    to encode the same sequence, aligned through an optional envelope
//	    (duplex.Decode).
//
// Why ctcbeam?
//
//   - No shared mutable state - every decode owns its own suffix tree
//     arena and scratch buffers, so independent decodes never need
//     coordination.
//   - Deterministic - ties in beam pruning always resolve by insertion
//     order, so repeated decodes of the same input agree exactly.
//   - Pure Go - no cgo, no hidden dependencies beyond the error-comparison
//     and testing conveniences the test suite uses.
//
// Under the hood, everything is organized under six subpackages:
//
//	vec2d/      - dense 2-D scratch storage for per-prefix probability pairs
//	suffixtree/ - arena-allocated prefix tree shared by both decoders
//	alphabet/   - label alphabet and network-matrix validation
//	beam/       - single-sequence prefix beam search
//	duplex/     - dual-sequence prefix beam search with an alignment envelope
//	decodeerr/  - the closed set of sentinel errors both decoders raise
//
// This root package re-exports the two entry points as BeamSearch and
// BeamSearchDuplex so that simple callers need only one import.
package ctcbeam
