package senses

import (
	"sort"
)

// DefaultMaxDepth bounds upward closure when the caller does not choose.
const DefaultMaxDepth = 5

// Index maps normalized sense keys to the names of the concepts declaring
// them. It is filled during graph construction and read-only afterwards.
type Index struct {
	byKey    map[string][]string
	provider Provider
}

// Match is the result of a sense lookup.
type Match struct {
	Concepts []string // sorted, deduplicated concept names
	Visited  int      // sense-graph nodes examined
}

// NewIndex creates an empty index. provider may be nil, in which case only
// direct key hits resolve.
func NewIndex(provider Provider) *Index {
	return &Index{
		byKey:    make(map[string][]string),
		provider: provider,
	}
}

// Add registers concept under key. Duplicate pairs are ignored.
func (ix *Index) Add(key, concept string) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	for _, c := range ix.byKey[key] {
		if c == concept {
			return
		}
	}
	ix.byKey[key] = append(ix.byKey[key], concept)
}

// Provider returns the sense-graph provider, or nil.
func (ix *Index) Provider() Provider { return ix.provider }

// Len returns the number of indexed keys.
func (ix *Index) Len() int { return len(ix.byKey) }

// Keys returns all indexed keys in sorted order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.byKey))
	for k := range ix.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Direct returns the concepts declaring key, without any closure.
func (ix *Index) Direct(key string) []string {
	return append([]string(nil), ix.byKey[NormalizeKey(key)]...)
}

// Lookup resolves a sense key. A directly indexed key answers immediately;
// otherwise the key is resolved to its synset and broader terms are climbed
// for at most maxDepth levels, the key's own synset being level one.
// maxDepth 0 yields nothing.
func (ix *Index) Lookup(key string, maxDepth int) Match {
	if maxDepth <= 0 {
		return Match{}
	}
	key = NormalizeKey(key)
	if direct, ok := ix.byKey[key]; ok {
		return Match{Concepts: sortedUnique(direct), Visited: 1}
	}
	if ix.provider == nil {
		return Match{}
	}
	id, ok := ix.provider.Synset(key)
	if !ok {
		return Match{}
	}
	return ix.LookupSynset(id, maxDepth)
}

// LookupSynset resolves a synset through the keys of its lemmas, climbing
// broader terms while nothing matches.
func (ix *Index) LookupSynset(id SynsetID, maxDepth int) Match {
	if maxDepth <= 0 || ix.provider == nil {
		return Match{}
	}
	w := &upwardWalk{ix: ix, memo: make(map[walkState][]string)}
	found := w.visit(id, maxDepth)
	return Match{Concepts: sortedUnique(found), Visited: w.visited}
}

type walkState struct {
	id    SynsetID
	depth int
}

// upwardWalk is a DFS over the broader-term DAG, memoized per (synset,
// remaining depth) for the lifetime of one lookup.
type upwardWalk struct {
	ix      *Index
	memo    map[walkState][]string
	visited int
}

func (w *upwardWalk) visit(id SynsetID, depth int) []string {
	if depth <= 0 {
		return nil
	}
	state := walkState{id: id, depth: depth}
	if res, ok := w.memo[state]; ok {
		return res
	}
	w.visited++

	var res []string
	for _, lemma := range w.ix.provider.Lemmas(id) {
		res = append(res, w.ix.byKey[NormalizeKey(lemma.Key)]...)
	}
	if len(res) == 0 {
		for _, parent := range Broader(w.ix.provider, id) {
			res = append(res, w.visit(parent, depth-1)...)
		}
	}

	w.memo[state] = res
	return res
}

// Chain is a broader-term path from a synset to the nearest synset whose
// lemma keys are indexed.
type Chain struct {
	Synsets  []SynsetID // start first, anchor last
	Concepts []string   // concepts anchored at the last synset
}

// Chains returns every upward path from id that ends at the first indexed
// synset on its branch, within maxDepth levels (id itself is level one).
// Its anchors are the ones LookupSynset reports.
func (ix *Index) Chains(id SynsetID, maxDepth int) []Chain {
	if maxDepth <= 0 || ix.provider == nil {
		return nil
	}
	var out []Chain
	var walk func(path []SynsetID, depth int)
	walk = func(path []SynsetID, depth int) {
		cur := path[len(path)-1]
		if found := ix.anchored(cur); len(found) > 0 {
			out = append(out, Chain{Synsets: append([]SynsetID(nil), path...), Concepts: found})
			return
		}
		if depth <= 1 {
			return
		}
		for _, parent := range Broader(ix.provider, cur) {
			walk(append(path, parent), depth-1)
		}
	}
	walk([]SynsetID{id}, maxDepth)
	return out
}

func (ix *Index) anchored(id SynsetID) []string {
	var res []string
	for _, lemma := range ix.provider.Lemmas(id) {
		res = append(res, ix.byKey[NormalizeKey(lemma.Key)]...)
	}
	return sortedUnique(res)
}

// Descend collects synsets reachable from roots by narrower-term edges
// (instance edges included) within maxDepth levels. A synset is kept, and
// its own narrower terms explored, only while keep accepts it. Roots are
// not part of the result.
func (ix *Index) Descend(roots []SynsetID, maxDepth int, keep func(SynsetID) bool) []SynsetID {
	if ix.provider == nil || maxDepth <= 0 {
		return nil
	}

	seen := make(map[SynsetID]struct{}, len(roots))
	for _, r := range roots {
		seen[r] = struct{}{}
	}

	var out []SynsetID
	frontier := roots
	for level := 0; level < maxDepth && len(frontier) > 0; level++ {
		var next []SynsetID
		for _, id := range frontier {
			for _, child := range Narrower(ix.provider, id) {
				if _, ok := seen[child]; ok {
					continue
				}
				seen[child] = struct{}{}
				if keep != nil && !keep(child) {
					continue
				}
				out = append(out, child)
				next = append(next, child)
			}
		}
		frontier = next
	}
	return out
}

func sortedUnique(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := set[n]; ok {
			continue
		}
		set[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
