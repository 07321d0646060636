package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/postfix/internal/batch"
	"github.com/zephyrtronium/postfix/internal/config"
	"github.com/zephyrtronium/postfix/internal/render"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expr...]",
	Short: "Evaluate infix expressions",
	Long: `Eval evaluates each argument as an expression. With no arguments, it reads
from --in, or from stdin if --in is not given.`,
	RunE: runEval,
}

func init() {
	f := evalCmd.Flags()
	f.String("in", "", "input file (default stdin if no args given)")
	f.String("fmt", "%g", "result formatting verb")
	f.BoolP("lines", "n", false, "evaluate separate input lines as separate expressions")
	f.Bool("echo", false, "print each expression next to its result")
	f.Bool("explain", false, "print why invalid expressions are NaN")
	f.Bool("html", false, "strip markup from inputs and print escaped \"expr = result\" lines")
	f.IntP("jobs", "j", 0, "number of expressions to evaluate concurrently (default GOMAXPROCS)")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := evalFlags(cmd, &cfg); err != nil {
		return err
	}
	inname, _ := cmd.Flags().GetString("in")

	var srcs []string
	if inname != "" || len(args) == 0 {
		src, err := readInput(cmd.InOrStdin(), inname)
		if err != nil {
			return err
		}
		srcs = append(srcs, src)
	}
	srcs = append(srcs, args...)
	exprs, err := split(srcs, cfg.Lines)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		log.Printf("evaluating %d expressions with %d jobs", len(exprs), cfg.Jobs)
	}

	inputs := exprs
	if cfg.HTML {
		inputs = make([]string, len(exprs))
		for i, e := range exprs {
			inputs[i] = render.StripMarkup(e)
		}
	}
	results, err := batch.Evaluate(cmd.Context(), inputs, cfg.Jobs, cfg.Explain)
	if err != nil {
		return err
	}
	return printResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, results)
}

// evalFlags overrides configuration with flags given on the command line.
func evalFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("fmt") {
		cfg.Format, _ = f.GetString("fmt")
	}
	if f.Changed("lines") {
		cfg.Lines, _ = f.GetBool("lines")
	}
	if f.Changed("echo") {
		cfg.Echo, _ = f.GetBool("echo")
	}
	if f.Changed("explain") {
		cfg.Explain, _ = f.GetBool("explain")
	}
	if f.Changed("html") {
		cfg.HTML, _ = f.GetBool("html")
	}
	if f.Changed("jobs") {
		cfg.Jobs, _ = f.GetInt("jobs")
	}
	return cfg.Validate()
}

// readInput reads the named file, or stdin if the name is empty or "-".
func readInput(stdin io.Reader, name string) (string, error) {
	r := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", displayName(name), err)
	}
	return string(b), nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

// split turns input sources into expressions, one per source or one per
// line. Blank expressions are skipped.
func split(srcs []string, lines bool) ([]string, error) {
	var exprs []string
	for _, src := range srcs {
		if !lines {
			if strings.TrimSpace(src) != "" {
				exprs = append(exprs, src)
			}
			continue
		}
		sc := bufio.NewScanner(strings.NewReader(src))
		// A line can be as long as the whole source.
		sc.Buffer(nil, len(src)+1)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				exprs = append(exprs, sc.Text())
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading lines: %w", err)
		}
	}
	return exprs, nil
}

func printResults(out, errOut io.Writer, cfg config.Config, results []batch.Result) error {
	nan := color.New(color.FgRed, color.Bold)
	why := color.New(color.FgYellow)
	setColor(nan, !cfg.HTML && useColor(cfg.Color, out))
	setColor(why, useColor(cfg.Color, errOut))

	rows := make([]render.Row, len(results))
	for i, r := range results {
		s := render.Result(r.Value, cfg.Format)
		if math.IsNaN(r.Value) {
			s = nan.Sprint(s)
		}
		rows[i] = render.Row{Expr: r.Input, Result: s}
	}
	var lines []string
	switch {
	case cfg.HTML:
		// HTML output always shows the expression, as a rendered field would.
		lines = make([]string, len(results))
		for i, r := range results {
			lines[i] = render.HTML(r.Input, r.Value, cfg.Format)
		}
	case cfg.Echo:
		lines = render.Align(rows)
	default:
		lines = make([]string, len(rows))
		for i, r := range rows {
			lines[i] = r.Result
		}
	}
	for i, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
		if err := results[i].Err; err != nil {
			fmt.Fprintln(errOut, why.Sprintf("%s: %v", strings.TrimSpace(results[i].Input), err))
		}
	}
	return nil
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
