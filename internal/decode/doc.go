// Package decode turns BMS source text into a model.Map.
//
// Decoding is lenient: it never fails. Lines that cannot be interpreted are
// skipped, fields without a usable position are dropped, and invalid labels
// are replaced by synthesized names. DecodeReport returns the same map
// together with a diagnostic.Diagnostics describing what was skipped or
// repaired.
//
// The decoder is a set of pure functions over explicit Options; it keeps no
// package state and is safe for concurrent use.
package decode
