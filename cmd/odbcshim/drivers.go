package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl"
	"github.com/slingdata-io/ltdl/odbcinst"
)

func (a *app) driversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List the drivers registered in odbcinst.ini",
		Long: `drivers lists the drivers registered in odbcinst.ini with the module
path the driver manager would load. With --probe each module is opened
and checked for the entry points every ODBC 3 driver exports.`,
		Args: cobra.NoArgs,
		RunE: a.drivers,
	}
	cmd.Flags().String("ini", "", "odbcinst.ini to read (default from ODBCINSTINI/ODBCSYSINI)")
	cmd.Flags().Bool("probe", false, "load each driver module and check its symbols")
	cmd.Flags().StringSlice("symbol", nil, "symbols to check when probing (default SQLDriverConnect, SQLAllocHandle, SQLFreeHandle)")
	a.v.BindPFlag("ini", cmd.Flags().Lookup("ini"))
	return cmd
}

func (a *app) drivers(cmd *cobra.Command, args []string) error {
	path := a.v.GetString("ini")
	if path == "" {
		path = odbcinst.InstFile(os.Getenv)
	}
	reg, err := odbcinst.Load(path)
	if err != nil {
		return err
	}
	a.log.Debug("loaded driver registry", "path", path, "drivers", len(reg.Drivers()))

	out := cmd.OutOrStdout()
	probe, _ := cmd.Flags().GetBool("probe")
	if !probe {
		for _, d := range reg.Drivers() {
			fmt.Fprintf(out, "%s\t%s\n", d.Name, d.Path)
		}
		return nil
	}

	symbols, _ := cmd.Flags().GetStringSlice("symbol")
	failed := 0
	for _, rep := range reg.ProbeAll(ltdl.Native(), symbols...) {
		status := "OK"
		switch {
		case rep.Err != nil:
			status = "FAILED: " + rep.Err.Error()
		case len(rep.Missing) > 0:
			status = "FAILED: missing " + strings.Join(rep.Missing, ", ")
		}
		if !rep.OK() {
			failed++
			a.log.Warn("driver probe failed", "driver", rep.Driver.Name, "path", rep.Driver.Path)
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", rep.Driver.Name, rep.Driver.Path, status)
	}
	// Probing leaves the loader's error slot set on failure.
	ltdl.LastError()
	if failed > 0 {
		return errReported
	}
	return nil
}
