// SPDX-License-Identifier: MIT

// Command qmcdispatch dispatches a lattice-rule integrator from a
// configuration record and runs it on a demo integrand.
//
// Usage:
//
//	qmcdispatch integrate --transform korobov3x2 --fitfunction polysingular \
//	    --target multi-thread --cputhreads 4 --dimension 4
//	qmcdispatch integrate --config qmc.yaml --plot convergence.png
//	qmcdispatch list
//
// Settings are read from --config (YAML), then QMC_* environment variables,
// then command-line flags; later sources win.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qmcdispatch",
		Short:         "Dispatch and run quasi-Monte Carlo integrators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newIntegrateCmd(), newListCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qmcdispatch:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
