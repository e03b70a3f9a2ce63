package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl"
)

func (a *app) dltestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dltest LIBRARY [SYMBOL]",
		Short: "Check that a module loads and optionally exports a symbol",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dltest(cmd, args)
		},
	}
}

func (a *app) dltest(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	lib := args[0]

	if err := ltdl.Init(); err != nil {
		return err
	}
	defer ltdl.Exit()

	h, err := ltdl.Open(lib)
	if err != nil {
		a.log.Debug("open failed", "library", lib, "err", err)
		fmt.Fprintf(errOut, "ERROR: Failed to load %s: %s\n", lib, ltdl.LastError())
		return errReported
	}
	defer func() {
		if err := ltdl.Close(h); err != nil {
			a.log.Warn("close failed", "library", lib, "err", err)
		}
	}()
	fmt.Fprintf(out, "SUCCESS: Loaded %s\n", lib)

	if len(args) < 2 {
		return nil
	}
	sym := args[1]
	addr, err := ltdl.Sym(h, sym)
	if err != nil {
		a.log.Debug("symbol lookup failed", "symbol", sym, "err", err)
		fmt.Fprintf(errOut, "ERROR: Failed to find %s: %s\n", sym, ltdl.LastError())
		return errReported
	}
	a.log.Debug("resolved symbol", "symbol", sym, "addr", fmt.Sprintf("%#x", addr))
	fmt.Fprintf(out, "SUCCESS: Found %s\n", sym)
	return nil
}
