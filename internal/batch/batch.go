// Package batch evaluates many expressions concurrently.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/postfix"
)

// Result is the outcome of evaluating one expression.
type Result struct {
	// Input is the expression as given.
	Input string
	// Postfix is the transformed token sequence.
	Postfix postfix.Sequence
	// Value is the result, NaN if the expression is invalid.
	Value float64
	// Err is the reason the expression is invalid. It is only set when the
	// evaluation was asked to explain failures.
	Err error
}

// Run applies fn to every input using up to jobs goroutines. Results are in
// the same order as inputs. If jobs is not positive, it defaults to
// GOMAXPROCS. The only error is the context's.
func Run(ctx context.Context, inputs []string, jobs int, fn func(string) Result) ([]Result, error) {
	if len(inputs) == 0 {
		return nil, ctx.Err()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Each goroutine writes only its own slot.
	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = fn(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate transforms and evaluates every input. If explain is true, each
// invalid result carries the reason it is invalid.
func Evaluate(ctx context.Context, inputs []string, jobs int, explain bool) ([]Result, error) {
	return Run(ctx, inputs, jobs, func(in string) Result {
		seq := postfix.Transform(in)
		r := Result{
			Input:   in,
			Postfix: seq,
			Value:   postfix.Evaluate(seq),
		}
		if explain {
			r.Err = postfix.Diagnose(in)
		}
		return r
	})
}
