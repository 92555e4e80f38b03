package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/zephyrtronium/rpcalc"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname, inname, verb string
		nl, echo, list        bool
	)
	flag.StringVar(&cfgname, "config", os.Getenv("RPCALC_CONFIG"), "YAML file of default settings")
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print tokens before results")
	flag.BoolVar(&list, "list", false, "list operators and constants, then exit")
	flag.Parse()

	if cfgname != "" {
		cfg, err := readConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		applyConfig(flag.CommandLine, cfg, &verb, &nl, &echo)
	}

	if list {
		vocabulary(os.Stdout)
		return
	}

	var exprs [][]string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		e, err := expressions(f, nl)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, e...)
	}
	if flag.NArg() > 0 {
		e, err := expressions(strings.NewReader(strings.Join(flag.Args(), " ")), false)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, e...)
	}

	if evaluate(os.Stdout, exprs, verb+"\n", echo) > 0 {
		os.Exit(1)
	}
}

// applyConfig sets each of verb, nl, and echo from cfg unless its flag was
// given on the command line.
func applyConfig(fs *flag.FlagSet, cfg config, verb *string, nl, echo *bool) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["fmt"] {
		*verb = cfg.Format
	}
	if !set["n"] {
		*nl = cfg.Lines
	}
	if !set["echo"] {
		*echo = cfg.Echo
	}
}

// expressions reads token sequences from in. If lines is true, each line that
// has any tokens is an expression. Otherwise, all of in is one expression.
// Text from # to the end of a line is a comment.
func expressions(in io.Reader, lines bool) ([][]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		toks, err := shlex.Split(string(b))
		if err != nil {
			return nil, fmt.Errorf("splitting input: %w", err)
		}
		return [][]string{toks}, nil
	}
	var r [][]string
	s := bufio.NewScanner(in)
	for n := 1; s.Scan(); n++ {
		toks, err := shlex.Split(s.Text())
		if err != nil {
			return nil, fmt.Errorf("splitting line %d: %w", n, err)
		}
		if len(toks) == 0 {
			continue
		}
		r = append(r, toks)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// evaluate solves each expression and prints its result or error to w. The
// result is the number of expressions that failed.
func evaluate(w io.Writer, exprs [][]string, verb string, echo bool) int {
	failed := 0
	for _, toks := range exprs {
		if echo {
			fmt.Fprintf(w, "%s : ", strings.Join(toks, " "))
		}
		r, err := rpcalc.Solve(toks)
		if err != nil {
			fmt.Fprintln(w, err)
			failed++
			continue
		}
		fmt.Fprintf(w, verb, r)
	}
	return failed
}

func vocabulary(w io.Writer) {
	fmt.Fprintln(w, "operators:")
	for _, op := range rpcalc.Operators() {
		fmt.Fprintf(w, "\t%s\t(%d)\n", op, rpcalc.Lookup(op).Arity())
	}
	fmt.Fprintln(w, "constants:")
	for _, name := range rpcalc.Constants() {
		v, _ := rpcalc.Constant(name)
		fmt.Fprintf(w, "\t%s\t%g\n", name, v)
	}
}

// infile opens the input file, stdin, or nothing. Closing the result does not
// close stdin.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
