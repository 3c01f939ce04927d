// Package loader reads ontology, lexicon, sense-graph and stoplist files
// into records. Files may be snappy-compressed (".sz" suffix) and are read
// concurrently.
package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/cluso-ontology/pkg/logging"
	"github.com/dd0wney/cluso-ontology/pkg/records"
)

// Paths names the input files. Only Ontology is required.
type Paths struct {
	Ontology  string
	Lexicon   string
	Senses    string
	Stoplist  string
	Allowlist string
}

// Bundle is everything needed to build an ontology graph.
type Bundle struct {
	Concepts []records.Concept
	Lexicon  []records.Lexicon
	Synsets  []records.Synset
	Stoplist records.Stoplist
}

// Load reads every configured file in parallel. The first failure cancels
// the remaining reads.
func Load(ctx context.Context, paths Paths, logger logging.Logger) (*Bundle, error) {
	if paths.Ontology == "" {
		return nil, fmt.Errorf("ontology path is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.With(logging.Component("loader"))

	var (
		b         Bundle
		stoplist  records.Stoplist
		allowlist records.Stoplist
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(path string, decode func([]byte) (int, error)) {
		if path == "" {
			return
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			timer := logging.StartTimer(logger, "loaded file", logging.File(path))
			data, err := ReadFile(path)
			if err != nil {
				timer.EndError(err)
				return err
			}
			n, err := decode(data)
			if err != nil {
				err = fmt.Errorf("%s: %w", path, err)
				timer.EndError(err)
				return err
			}
			timer.End(logging.Count(n))
			return nil
		})
	}

	load(paths.Ontology, func(data []byte) (n int, err error) {
		b.Concepts, err = DecodeConcepts(data)
		return len(b.Concepts), err
	})
	load(paths.Lexicon, func(data []byte) (n int, err error) {
		b.Lexicon, err = DecodeLexicon(data)
		return len(b.Lexicon), err
	})
	load(paths.Senses, func(data []byte) (n int, err error) {
		b.Synsets, err = DecodeSynsets(data)
		return len(b.Synsets), err
	})
	load(paths.Stoplist, func(data []byte) (n int, err error) {
		stoplist, err = DecodeStoplist(data, format(paths.Stoplist))
		return len(stoplist.Exclude) + len(stoplist.Include), err
	})
	load(paths.Allowlist, func(data []byte) (n int, err error) {
		allowlist, err = DecodeStoplist(data, format(paths.Allowlist))
		return len(allowlist.Exclude) + len(allowlist.Include), err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// every key of an allow-list file is kept, whichever list it sits in
	b.Stoplist = records.Stoplist{
		Exclude: stoplist.Exclude,
		Include: append(append(stoplist.Include, allowlist.Exclude...), allowlist.Include...),
	}
	return &b, nil
}
