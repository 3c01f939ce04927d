package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-ontology/pkg/ontology"
)

func newQueryCmd(a *app) *cobra.Command {
	var pos string
	cmd := &cobra.Command{
		Use:   "query KEY",
		Short: "Resolve a tagged key",
		Example: `  ontology query w::bark --pos v
  ontology query wn::cat%1:05:00::`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(g.QueryPOS(args[0], pos))
		},
	}
	cmd.Flags().StringVarP(&pos, "pos", "p", "", "part of speech for w:: and q:: keys")
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe CONCEPT",
		Short: "Show a concept with its words, senses and restrictions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			c, err := g.Operand(args[0])
			if err != nil {
				return err
			}
			return a.printView(c.Describe())
		},
	}
}

func newLCSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lcs A B",
		Short: "Print the lowest common subsumer of two concepts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			lcs, err := g.LCS(args[0], args[1])
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(map[string]any{"lcs": lcs.Name(), "depth": lcs.Depth()})
			}
			fmt.Fprintf(a.out, "%s (depth %d)\n", lcs, lcs.Depth())
			return nil
		},
	}
}

func newSimilarityCmd(a *app) *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "similarity A B",
		Short: "Score two concepts by depth-based similarity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ontology.ParseMetric(metric)
			if err != nil {
				return err
			}
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			score, err := g.Similarity(args[0], args[1], m)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(map[string]any{"metric": m.String(), "score": score})
			}
			fmt.Fprintf(a.out, "%s %.4f\n", m, score)
			return nil
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", "wup", "wup, cosine or path")
	return cmd
}

func newClosureCmd(a *app) *cobra.Command {
	var (
		depth int
		pos   string
		isA   bool
	)
	cmd := &cobra.Command{
		Use:   "closure CONCEPT",
		Short: "List the words reachable below a concept through the sense graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			c, err := g.Operand(args[0])
			if err != nil {
				return err
			}
			var words []string
			if isA {
				words = g.IsAClosure(c, depth)
			} else {
				words = g.WordClosure(c, depth, pos)
			}
			if a.asJSON {
				return a.printJSON(words)
			}
			fmt.Fprintln(a.out, strings.Join(words, "\n"))
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", ontology.DefaultWordClosureDepth, "levels to descend")
	cmd.Flags().StringVarP(&pos, "pos", "p", "", "restrict senses to a part of speech")
	cmd.Flags().BoolVar(&isA, "is-a", false, "include every concept below")
	return cmd
}

func newCandidatesCmd(a *app) *cobra.Command {
	var (
		pos string
		w   = ontology.DefaultSenseWeights()
	)
	cmd := &cobra.Command{
		Use:   "candidates CONCEPT WORD",
		Short: "Rank the senses of a word that lead to a concept",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			cands, err := g.WeightedSenseCandidates(args[0], args[1], pos, w)
			if err != nil {
				return err
			}
			if a.asJSON {
				out := make([]map[string]any, len(cands))
				for i, c := range cands {
					out[i] = map[string]any{"synset": c.Synset, "weight": c.Weight}
				}
				return a.printJSON(out)
			}
			if len(cands) == 0 {
				fmt.Fprintln(a.out, "no match")
				return nil
			}
			for _, c := range cands {
				fmt.Fprintf(a.out, "%s %.2f\n", c.Synset, c.Weight)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pos, "pos", "p", "", "part of speech of the word")
	cmd.Flags().Float64Var(&w.Synset, "synset-weight", w.Synset, "cost of each sense-graph step")
	cmd.Flags().Float64Var(&w.Concept, "concept-weight", w.Concept, "cost of each ontology step")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print build statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			s := g.Stats()
			if a.asJSON {
				return a.printJSON(map[string]any{"build_id": g.BuildID(), "stats": s, "cache": g.CacheStats()})
			}
			fmt.Fprintf(a.out, "build:      %s\n", g.BuildID())
			fmt.Fprintf(a.out, "concepts:   %d\n", s.Concepts)
			fmt.Fprintf(a.out, "sense keys: %d\n", s.SenseKeys)
			fmt.Fprintf(a.out, "words:      %d\n", s.Words)
			reasons := make([]string, 0, len(s.Dropped))
			for reason := range s.Dropped {
				reasons = append(reasons, reason)
			}
			sort.Strings(reasons)
			for _, reason := range reasons {
				fmt.Fprintf(a.out, "dropped %s: %d\n", reason, s.Dropped[reason])
			}
			return nil
		},
	}
}

func (a *app) printResult(r ontology.Result) error {
	if a.asJSON {
		out := map[string]any{"kind": r.Kind, "concepts": r.Names()}
		if len(r.Words) > 0 {
			out["words"] = r.Words
		}
		return a.printJSON(out)
	}
	if r.Empty() {
		fmt.Fprintln(a.out, "no match")
		return nil
	}
	for _, c := range r.Concepts {
		fmt.Fprintln(a.out, c)
	}
	if len(r.Words) > 0 {
		fmt.Fprintf(a.out, "words: %s\n", strings.Join(r.Words, ", "))
	}
	return nil
}

func (a *app) printView(v ontology.ConceptView) error {
	if a.asJSON {
		return a.printJSON(v)
	}
	fmt.Fprintf(a.out, "%s%s\n", ontology.NamePrefix, v.Name)
	if v.Parent != "" {
		fmt.Fprintf(a.out, "  parent:      %s%s\n", ontology.NamePrefix, v.Parent)
	}
	fmt.Fprintf(a.out, "  depth:       %d\n", v.Depth)
	fmt.Fprintf(a.out, "  significant: %t\n", v.Significant)
	fmt.Fprintf(a.out, "  frame:       %s %v\n", v.FrameType, v.Features)
	if len(v.Children) > 0 {
		fmt.Fprintf(a.out, "  children:    %s\n", strings.Join(v.Children, ", "))
	}
	if len(v.Words) > 0 {
		fmt.Fprintf(a.out, "  words:       %s\n", strings.Join(v.Words, ", "))
	}
	if len(v.SenseKeys) > 0 {
		fmt.Fprintf(a.out, "  senses:      %s\n", strings.Join(v.SenseKeys, ", "))
	}
	for role, targets := range v.Restrictions {
		fmt.Fprintf(a.out, "  :%s %s\n", role, strings.Join(targets, ", "))
	}
	if v.Definition != "" {
		fmt.Fprintf(a.out, "  definition:  %s\n", v.Definition)
	}
	return nil
}
