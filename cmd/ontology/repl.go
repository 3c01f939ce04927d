package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-ontology/pkg/ontology"
)

type repl struct {
	app     *app
	graph   *ontology.Graph
	scanner *bufio.Scanner
	pos     string
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive query shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			r := &repl{app: a, graph: g, scanner: bufio.NewScanner(cmd.InOrStdin())}
			fmt.Fprintf(a.out, "Loaded %d concepts (build %s)\n", g.Len(), g.BuildID())
			fmt.Fprintln(a.out, "Type 'help' for available commands, 'exit' to quit")
			r.run()
			return nil
		},
	}
}

func (r *repl) run() {
	out := r.app.out
	for {
		fmt.Fprint(out, "ont> ")

		if !r.scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		input := strings.TrimSpace(r.scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		if err := r.execute(input); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (r *repl) execute(input string) error {
	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])
	args := parts[1:]
	out := r.app.out

	switch command {
	case "help":
		r.showHelp(out)

	case "pos":
		if len(args) == 0 {
			r.pos = ""
		} else {
			r.pos = strings.ToLower(args[0])
		}
		fmt.Fprintf(out, "pos = %q\n", r.pos)

	case "describe", "d":
		if len(args) != 1 {
			return fmt.Errorf("usage: describe <concept>")
		}
		c, err := r.graph.Operand(args[0])
		if err != nil {
			return err
		}
		return r.app.printView(c.Describe())

	case "lcs":
		if len(args) != 2 {
			return fmt.Errorf("usage: lcs <a> <b>")
		}
		lcs, err := r.graph.LCS(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, lcs)

	case "sim", "similarity":
		if len(args) < 2 {
			return fmt.Errorf("usage: sim <a> <b> [wup|cosine|path]")
		}
		metric := ""
		if len(args) > 2 {
			metric = args[2]
		}
		m, err := ontology.ParseMetric(metric)
		if err != nil {
			return err
		}
		score, err := r.graph.Similarity(args[0], args[1], m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %.4f\n", m, score)

	case "subsumes":
		if len(args) != 2 {
			return fmt.Errorf("usage: subsumes <a> <b>")
		}
		ok, err := r.graph.Subsumes(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ok)

	case "closure":
		if len(args) < 1 {
			return fmt.Errorf("usage: closure <concept> [depth]")
		}
		c, err := r.graph.Operand(args[0])
		if err != nil {
			return err
		}
		depth := ontology.DefaultWordClosureDepth
		if len(args) > 1 {
			if depth, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid depth %q", args[1])
			}
		}
		fmt.Fprintln(out, strings.Join(r.graph.WordClosure(c, depth, r.pos), " "))

	case "significant":
		if len(args) != 1 {
			return fmt.Errorf("usage: significant <concept>")
		}
		c, err := r.graph.Operand(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r.graph.Significant(c))

	default:
		// anything else is a key
		return r.app.printResult(r.graph.QueryPOS(input, r.pos))
	}
	return nil
}

func (r *repl) showHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  <key>                   resolve a key (ont::, w::, wn::, q::, p::, d::)
  pos [POS]               set or clear the part of speech for w:: and q::
  describe <concept>      show a concept
  lcs <a> <b>             lowest common subsumer
  sim <a> <b> [metric]    similarity (wup, cosine, path)
  subsumes <a> <b>        is a a proper ancestor of b
  closure <concept> [n]   words reachable below a concept
  significant <concept>   nearest significant ancestor-or-self
  exit                    leave the shell
`)
}
