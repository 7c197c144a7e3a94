// ABOUTME: check command: verifies placement guarantees over random requests in parallel
// ABOUTME: Workers run under an errgroup; any violation makes the command fail

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

// maxReported caps how many violations are printed.
const maxReported = 10

type checkReport struct {
	Samples    int
	Violations []*placement.Violation
	// Total counts every violation, including ones beyond maxReported.
	Total int
}

func (c *cli) checkCommand() *cobra.Command {
	var (
		samples int
		workers int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify placement guarantees over random requests",
		Long: `Verify placement guarantees over random requests.

Each sample is checked for determinism, single-axis flipping, top never
flipping, and containment inside the padded viewport whenever the resolved
side has room. The same seed always produces the same requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples <= 0 || workers <= 0 {
				return fmt.Errorf("--samples and --workers must be positive")
			}
			rep, err := runCheck(cmd.Context(), samples, workers, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range rep.Violations {
				fmt.Fprintln(out, v)
			}
			fmt.Fprintf(out, "checked %d requests with %d workers: %d violations\n", rep.Samples, workers, rep.Total)
			if rep.Total > 0 {
				return fmt.Errorf("%d placement violations", rep.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 100000, "number of random requests")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "parallel workers")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// runCheck splits samples across workers. Worker i draws from a PCG seeded
// with (seed, i), so results do not depend on scheduling.
func runCheck(ctx context.Context, samples, workers int, seed uint64) (checkReport, error) {
	var (
		mu  sync.Mutex
		rep = checkReport{Samples: samples}
	)

	g, ctx := errgroup.WithContext(ctx)
	per := samples / workers
	for i := range workers {
		n := per
		if i < samples%workers {
			n++
		}
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			for j := range n {
				if j%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				err := placement.Verify(placement.RandomRequest(r))
				var v *placement.Violation
				if !errors.As(err, &v) {
					continue
				}
				mu.Lock()
				rep.Total++
				if len(rep.Violations) < maxReported {
					rep.Violations = append(rep.Violations, v)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return rep, fmt.Errorf("checking: %w", err)
	}
	return rep, nil
}
