package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-ontology/pkg/ontology"
)

// parseToken reads WORD, WORD/POS or WORD/POS/LEMMA. A bare word is tagged
// as a noun.
func parseToken(s string) ontology.Token {
	parts := strings.SplitN(s, "/", 3)
	t := ontology.Token{Text: parts[0], POS: "n"}
	if len(parts) > 1 {
		t.POS = parts[1]
	}
	if len(parts) > 2 {
		t.Lemma = parts[2]
	}
	return t
}

func newTagCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "tag [TOKEN...]",
		Short: "Tag tokens with the concepts their words and senses reach",
		Long: `Tag tokens with concepts. Tokens are WORD, WORD/POS or WORD/POS/LEMMA
and are read from stdin when no arguments are given. POS accepts universal
tags (NOUN, VERB, ADJ, ADV) or n, v, a, r.`,
		Example: `  ontology tag dogs/NOUN/dog bark/VERB
  echo "the/DET dog/NOUN" | ontology tag`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				sc.Split(bufio.ScanWords)
				for sc.Scan() {
					args = append(args, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}
			tokens := make([]ontology.Token, len(args))
			for i, arg := range args {
				tokens[i] = parseToken(arg)
			}

			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			tags, err := g.Tag(tokens, workers)
			if err != nil {
				return err
			}

			if a.asJSON {
				out := make([]map[string]any, len(tokens))
				for i, t := range tokens {
					out[i] = map[string]any{"token": t.Text, "pos": ontology.NormalizePOS(t.POS), "concepts": conceptNames(tags[i])}
				}
				return a.printJSON(out)
			}
			for i, t := range tokens {
				fmt.Fprintf(a.out, "%s\t%s\n", t.Text, strings.Join(conceptNames(tags[i]), " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "tagging goroutines")
	return cmd
}

func conceptNames(cs []*ontology.Concept) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
