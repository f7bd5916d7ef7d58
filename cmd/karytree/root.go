package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/g-m-twostay/karytree/Complex"
	"github.com/g-m-twostay/karytree/Render"
	"github.com/g-m-twostay/karytree/Trees"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	arity    uint
	root     string
	edges    []string
	keys     string
	orders   string
	heapify  bool
	render   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "karytree",
		Short: "Build a K-ary tree and print its traversals",
		Example: `  karytree -k 3 --keys string --root a -e a:b -e a:c -e b:d
  karytree --root 7 -e 7:3 -e 7:9 -e 3:1 -e 3:5 --heapify -o bfs --render
  karytree --keys complex --root 1,1 -e 1,1:0,2 -o pre`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments %q", args)
			}
			log, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			switch o.keys {
			case "int":
				err = run(cmd, log, o, Trees.New[int](o.arity), parseInt)
			case "string":
				err = run(cmd, log, o, Trees.New[string](o.arity), parseString)
			case "complex":
				err = run(cmd, log, o, Trees.NewFunc(o.arity, Complex.Complex.Compare), Complex.Parse)
			default:
				err = fmt.Errorf("unknown key type %q", o.keys)
			}
			if err != nil {
				log.Error().Err(err).Msg("tree")
			}
			return err
		},
	}
	f := cmd.Flags()
	f.UintVarP(&o.arity, "arity", "k", 2, "maximum children per node")
	f.StringVar(&o.root, "root", "", "root key")
	f.StringArrayVarP(&o.edges, "edge", "e", nil, "parent:child edge, repeatable, applied in order")
	f.StringVar(&o.keys, "keys", "int", "key type: int, string or complex (re,im)")
	f.StringVarP(&o.orders, "order", "o", "all", "comma separated traversals to print: pre,post,in,bfs,dfs or all")
	f.BoolVar(&o.heapify, "heapify", false, "heapify the tree before printing, needs k=2")
	f.BoolVar(&o.render, "render", false, "print a diagram of the tree")
	f.StringVar(&o.logLevel, "log-level", "", "log level, overrides $"+EnvLogLevel)
	return cmd
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseString(s string) (string, error) {
	if s = strings.TrimSpace(s); s == "" {
		return "", fmt.Errorf("empty key")
	}
	return s, nil
}

// parseOrders reads the --order value. "all" skips in-order for non binary trees.
func parseOrders(s string, binary bool) ([]Trees.Order, error) {
	if s == "all" {
		ords := Trees.Orders()
		if !binary {
			ords = slices.DeleteFunc(ords, func(o Trees.Order) bool { return o == Trees.InOrderKind })
		}
		return ords, nil
	}
	var ords []Trees.Order
	for _, name := range strings.Split(s, ",") {
		o, ok := Trees.ParseOrder(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown order %q", name)
		}
		ords = append(ords, o)
	}
	return ords, nil
}

func run[T any](cmd *cobra.Command, log zerolog.Logger, o *options, tree *Trees.Tree[T], parse func(string) (T, error)) error {
	if o.root != "" {
		key, err := parse(o.root)
		if err != nil {
			return fmt.Errorf("root: %w", err)
		}
		if err = tree.AttachRoot(key); err != nil {
			return err
		}
		log.Debug().Str("key", o.root).Msg("attached root")
	}
	for _, e := range o.edges {
		ps, cs, ok := strings.Cut(e, ":")
		if !ok {
			return fmt.Errorf("edge %q: want parent:child", e)
		}
		p, err := parse(ps)
		if err != nil {
			return fmt.Errorf("edge %q: %w", e, err)
		}
		c, err := parse(cs)
		if err != nil {
			return fmt.Errorf("edge %q: %w", e, err)
		}
		if err = tree.AttachChild(p, c); err != nil {
			return fmt.Errorf("edge %q: %w", e, err)
		}
		log.Debug().Str("parent", ps).Str("child", cs).Msg("attached child")
	}
	log.Info().Uint("k", tree.K()).Uint("size", tree.Size()).Int("height", tree.Height()).Msg("tree built")

	if o.heapify {
		if err := tree.Heapify(); err != nil {
			return err
		}
		log.Info().Int("height", tree.Height()).Msg("heapified")
	}

	orders, err := parseOrders(o.orders, tree.IsBinary())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, ord := range orders {
		tr, err := tree.Traverse(ord)
		if err != nil {
			return err
		}
		ks := make([]string, 0, tr.Len())
		for tr.Next() {
			ks = append(ks, tr.Node().String())
		}
		fmt.Fprintf(out, "%v: %s\n", ord, strings.Join(ks, ", "))
	}

	if o.render {
		var s *Render.Style
		if isTerminal(out) {
			d := Render.DefaultStyle()
			s = &d
		}
		fmt.Fprintln(out, Render.Tree(tree, s))
	}
	log.Debug().Int("orders", len(orders)).Msg("done")
	return nil
}
