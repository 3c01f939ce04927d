// Package ontology builds and queries a rooted hierarchy of concept types
// cross-indexed with word forms and an external sense graph.
//
// A Graph is built once from already-parsed records and is immutable
// afterwards; it is safe for concurrent readers. Concepts refer to their
// parent and children by name and resolve them through the owning Graph,
// so a whole ontology can be swapped by replacing the Graph.
//
// Queries use tagged keys:
//
//	ont::dog   concept by name (the tag is optional)
//	w::bark    concepts for a word, optionally restricted to a part of speech
//	wn::key    concepts for an external sense key, with bounded closure
//	q::bark    word lookup plus the concepts reached from the word's senses
//	p::v       every concept (and word) for a part of speech
//	d::text    concepts whose definition contains text
//
// Lookups never fail: a miss is an empty Result. Only Build returns errors,
// plus the comparison helpers that accept loosely typed operands.
package ontology
