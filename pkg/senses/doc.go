// Package senses indexes external word-sense keys against ontology concepts
// and walks the external sense graph when a key is not indexed directly.
//
// The sense graph itself is supplied by a Provider. Lookups ascend broader
// terms, including instance-of edges, up to a bounded depth; the downward
// closure descends narrower terms while a caller-supplied predicate holds.
// Misses are never errors: an unresolvable key yields an empty match.
package senses
