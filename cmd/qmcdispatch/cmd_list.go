// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qmc/registry"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the transforms, fit functions, tables and targets that can be dispatched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			family := registry.DefaultFamily()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "transforms:")
			for _, id := range family.Transforms() {
				spec, err := registry.ResolveTransform(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %4d  %s\n", int(id), spec)
			}

			fmt.Fprintln(out, "fit functions:")
			for _, id := range family.FitFunctions() {
				kind, err := registry.ResolveFitFunction(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %4d  %s\n", int(id), kind)
			}

			fmt.Fprintln(out, "generating vectors:")
			for id := registry.CBCPTDN1_100; id <= registry.CBCPTCFFTW2_10; id++ {
				fmt.Fprintf(out, "  %4d  %s (up to %d dimensions)\n", int(id), id, id.MaxDimension())
			}

			targets := make([]string, 0, 4)
			for k := registry.SingleThread; k <= registry.MultiDevice; k++ {
				targets = append(targets, k.String())
			}
			fmt.Fprintf(out, "targets: %s\n", strings.Join(targets, ", "))

			return nil
		},
	}
}
