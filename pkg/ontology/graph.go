package ontology

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-ontology/pkg/logging"
	"github.com/dd0wney/cluso-ontology/pkg/metrics"
	"github.com/dd0wney/cluso-ontology/pkg/records"
	"github.com/dd0wney/cluso-ontology/pkg/senses"
	"github.com/dd0wney/cluso-ontology/pkg/validation"
)

// noParentClass collects lexical senses without a parent class.
const noParentClass = "no_parent"

// Drop reasons reported in Stats.Dropped.
const (
	DropGloss            = "gloss"
	DropStoplistedSense  = "stoplisted_sense"
	DropStoplistedLexeme = "stoplisted_lexeme"
)

// Graph is an immutable ontology with its word, sense and definition
// indexes. All methods are safe for concurrent use.
type Graph struct {
	id       string
	builtAt  time.Time
	concepts map[string]*Concept
	root     *Concept

	// pos -> word -> entries
	words map[string]map[string][]wordEntry

	senses      *senses.Index
	definitions map[string][]string
	defTexts    []string

	opts   Options
	logger logging.Logger
	cache  *resultCache
	stats  Stats
}

type wordEntry struct {
	class    string
	senseKey string
}

// Stats summarizes a build.
type Stats struct {
	Concepts  int
	SenseKeys int
	Words     int
	Dropped   map[string]int
}

// Build constructs a Graph from parsed records. Any malformed record, unknown
// parent or cycle aborts the build.
func Build(concepts []records.Concept, lexicon []records.Lexicon, opts Options) (*Graph, error) {
	opts = opts.withDefaults()
	start := time.Now()

	g := &Graph{
		id:          uuid.NewString(),
		concepts:    make(map[string]*Concept, len(concepts)+1),
		words:       make(map[string]map[string][]wordEntry),
		senses:      senses.NewIndex(opts.Provider),
		definitions: make(map[string][]string),
		opts:        opts,
		stats:       Stats{Dropped: make(map[string]int)},
	}
	g.logger = opts.Logger.With(logging.Component("ontology"), logging.BuildID(g.id))

	if err := g.build(concepts, lexicon); err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordBuildFailure(time.Since(start))
		}
		g.logger.Error("ontology build failed", logging.Error(err))
		return nil, err
	}

	g.builtAt = time.Now()
	g.cache = newResultCache(!opts.DisableCache, opts.Metrics)
	g.stats.Concepts = len(g.concepts)
	g.stats.SenseKeys = g.senses.Len()

	elapsed := time.Since(start)
	if opts.Metrics != nil {
		opts.Metrics.RecordBuild(metrics.BuildStats{
			Concepts:  g.stats.Concepts,
			SenseKeys: g.stats.SenseKeys,
			Words:     g.stats.Words,
			Dropped:   g.stats.Dropped,
		}, elapsed)
	}
	g.logger.Info("ontology built",
		logging.Int("concepts", g.stats.Concepts),
		logging.Int("sense_keys", g.stats.SenseKeys),
		logging.Int("words", g.stats.Words),
		logging.Any("dropped", g.stats.Dropped),
		logging.Latency(elapsed),
	)
	return g, nil
}

func (g *Graph) build(concepts []records.Concept, lexicon []records.Lexicon) error {
	for i := range concepts {
		if err := validation.ValidateConcept(&concepts[i]); err != nil {
			return newBuildError("validate").record("concept", i).causef(ErrMalformedEntry, "%v", err).Err()
		}
	}
	for i := range lexicon {
		if err := validation.ValidateLexicon(&lexicon[i]); err != nil {
			return newBuildError("validate").record("lexicon", i).causef(ErrMalformedEntry, "%v", err).Err()
		}
	}

	excluded := g.glossExclusions(concepts)
	classWords := g.indexLexicon(lexicon, excluded)

	g.root = &Concept{name: RootName, frame: NewFrame("", nil, nil), g: g}
	g.concepts[RootName] = g.root

	for i := range concepts {
		rec := &concepts[i]
		name := NormalizeName(rec.Name)
		if _, skip := excluded[name]; skip {
			continue
		}
		if name == RootName {
			if err := g.augmentRoot(rec, excluded); err != nil {
				return err
			}
			continue
		}
		if _, dup := g.concepts[name]; dup {
			return newBuildError("insert").concept(name).cause(ErrDuplicateConcept).Err()
		}
		c := g.newConcept(name, rec, excluded)
		c.parent = RootName
		if rec.Parent != "" {
			c.parent = NormalizeName(rec.Parent)
		}
		g.concepts[name] = c
	}

	for name, words := range classWords {
		if c, ok := g.concepts[name]; ok {
			sort.Strings(words)
			c.words = words
		}
	}

	if err := g.link(); err != nil {
		return err
	}
	if err := g.computeDepths(); err != nil {
		return err
	}

	for _, c := range g.sortedConcepts() {
		for _, key := range c.senseKeys {
			g.senses.Add(key, c.name)
		}
		if c.definition != "" {
			g.definitions[c.definition] = append(g.definitions[c.definition], c.name)
		}
	}
	g.defTexts = make([]string, 0, len(g.definitions))
	for text := range g.definitions {
		g.defTexts = append(g.defTexts, text)
	}
	sort.Strings(g.defTexts)
	return nil
}

// glossExclusions returns gloss-derived names and every record below them.
func (g *Graph) glossExclusions(concepts []records.Concept) map[string]struct{} {
	excluded := make(map[string]struct{})
	if g.opts.UseGloss {
		return excluded
	}
	parents := make(map[string]string, len(concepts))
	for i := range concepts {
		name := NormalizeName(concepts[i].Name)
		parents[name] = NormalizeName(concepts[i].Parent)
		if g.opts.isGloss(name) {
			excluded[name] = struct{}{}
		}
	}
	if len(excluded) == 0 {
		return excluded
	}
	for changed := true; changed; {
		changed = false
		for name, parent := range parents {
			if _, done := excluded[name]; done {
				continue
			}
			if _, gone := excluded[parent]; gone {
				excluded[name] = struct{}{}
				changed = true
			}
		}
	}
	for name := range excluded {
		g.logger.Debug("dropping gloss concept", logging.Concept(name))
	}
	g.stats.Dropped[DropGloss] = len(excluded)
	return excluded
}

// indexLexicon fills the word index and returns class -> "word.pos" entries.
func (g *Graph) indexLexicon(lexicon []records.Lexicon, excluded map[string]struct{}) map[string][]string {
	classWords := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, rec := range lexicon {
		word := normalizeWord(rec.Word)
		for _, sense := range rec.Senses {
			if sense.SenseKey != "" && g.opts.blocks(sense.SenseKey) {
				g.stats.Dropped[DropStoplistedLexeme]++
				g.logger.Debug("dropping stoplisted lexical sense", logging.SenseKey(sense.SenseKey))
				continue
			}
			pos := strings.ToLower(strings.TrimSpace(sense.POS))
			class := NormalizeName(sense.ParentClass)
			if class == "" {
				class = noParentClass
			}
			if _, gone := excluded[class]; gone {
				continue
			}

			byWord, ok := g.words[pos]
			if !ok {
				byWord = make(map[string][]wordEntry)
				g.words[pos] = byWord
			}
			if len(byWord[word]) == 0 {
				g.stats.Words++
			}
			byWord[word] = append(byWord[word], wordEntry{class: class, senseKey: senses.NormalizeKey(sense.SenseKey)})

			entry := word + "." + pos
			if seen[class] == nil {
				seen[class] = make(map[string]struct{})
			}
			if _, dup := seen[class][entry]; !dup {
				seen[class][entry] = struct{}{}
				classWords[class] = append(classWords[class], entry)
			}
		}
	}
	return classWords
}

func (g *Graph) newConcept(name string, rec *records.Concept, excluded map[string]struct{}) *Concept {
	c := &Concept{name: name, g: g}
	g.fill(c, rec, excluded)
	return c
}

// augmentRoot merges a record named "root" into the implicit root.
func (g *Graph) augmentRoot(rec *records.Concept, excluded map[string]struct{}) error {
	if rec.Parent != "" && NormalizeName(rec.Parent) != RootName {
		return newBuildError("insert").concept(RootName).causef(ErrMalformedEntry, "root cannot have parent %q", rec.Parent).Err()
	}
	g.fill(g.root, rec, excluded)
	return nil
}

func (g *Graph) fill(c *Concept, rec *records.Concept, excluded map[string]struct{}) {
	for _, child := range rec.Children {
		name := NormalizeName(child)
		if _, gone := excluded[name]; gone || name == "" {
			continue
		}
		c.children = appendName(c.children, name)
	}
	for _, arg := range rec.Arguments {
		c.restrictions = append(c.restrictions, newRestriction(g, arg.Role, arg.Restrictions, arg.Optionality))
	}
	if rec.Sem != nil {
		c.frame = NewFrame(rec.Sem.Type, rec.Sem.Features, rec.Sem.Default)
	} else if c.frame.typeTag == "" {
		c.frame = NewFrame("", nil, nil)
	}
	for _, key := range rec.SenseKeys {
		if g.opts.blocks(key) {
			g.stats.Dropped[DropStoplistedSense]++
			g.logger.Debug("dropping stoplisted sense key", logging.Concept(c.name), logging.SenseKey(key))
			continue
		}
		if key = senses.NormalizeKey(key); key != "" {
			c.senseKeys = appendName(c.senseKeys, key)
		}
	}
	if len(rec.Definitions) > 0 {
		c.definitions = append(c.definitions, rec.Definitions...)
		c.definition = definitionText(c.definitions)
	}
}

// link checks parents and adds implied children. A declared child must
// name the declaring concept as its parent.
func (g *Graph) link() error {
	for _, c := range g.sortedConcepts() {
		for _, name := range c.children {
			child, ok := g.concepts[name]
			if ok && child.parent != c.name {
				return newBuildError("link").concept(c.name).
					causef(ErrMalformedEntry, "child %q has parent %q", name, child.parent).Err()
			}
		}
	}
	for _, c := range g.sortedConcepts() {
		if c.IsRoot() {
			continue
		}
		parent, ok := g.concepts[c.parent]
		if !ok {
			return newBuildError("link").concept(c.name).causef(ErrDanglingParent, "%q", c.parent).Err()
		}
		parent.children = appendName(parent.children, c.name)
	}
	return nil
}

// computeDepths assigns depths and rejects parent chains that never reach
// the root.
func (g *Graph) computeDepths() error {
	const unset = -1
	for _, c := range g.concepts {
		c.depth = unset
	}
	g.root.depth = 0

	limit := len(g.concepts)
	for _, c := range g.sortedConcepts() {
		if c.depth != unset {
			continue
		}
		var chain []*Concept
		cur := c
		for cur.depth == unset {
			chain = append(chain, cur)
			if len(chain) > limit {
				return newBuildError("depth").concept(c.name).causef(ErrCycle, "parent chain from %q does not reach root", c.name).Err()
			}
			cur = g.concepts[cur.parent]
		}
		for i := len(chain) - 1; i >= 0; i-- {
			chain[i].depth = cur.depth + len(chain) - i
		}
	}
	return nil
}

func appendName(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

func (g *Graph) sortedConcepts() []*Concept {
	out := make([]*Concept, 0, len(g.concepts))
	for _, c := range g.concepts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// BuildID identifies this build in logs and metrics.
func (g *Graph) BuildID() string { return g.id }

func (g *Graph) BuiltAt() time.Time { return g.builtAt }

func (g *Graph) Root() *Concept { return g.root }

// Get returns the concept with the given name (with or without "ont::"),
// or nil.
func (g *Graph) Get(name string) *Concept {
	return g.concepts[NormalizeName(name)]
}

// Concepts returns every concept sorted by name.
func (g *Graph) Concepts() []*Concept { return g.sortedConcepts() }

// Len is the number of concepts, root included.
func (g *Graph) Len() int { return len(g.concepts) }

// Stats returns a copy of the build summary.
func (g *Graph) Stats() Stats {
	s := g.stats
	s.Dropped = make(map[string]int, len(g.stats.Dropped))
	for k, v := range g.stats.Dropped {
		s.Dropped[k] = v
	}
	return s
}

// SenseIndex exposes the sense-key index.
func (g *Graph) SenseIndex() *senses.Index { return g.senses }

// MaxSenseDepth is the default bound for sense closure queries.
func (g *Graph) MaxSenseDepth() int { return g.opts.MaxSenseDepth }
