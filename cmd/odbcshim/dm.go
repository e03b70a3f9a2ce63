package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl/odbc"
)

func (a *app) dmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dm",
		Short: "Query the installed ODBC driver manager",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			if lib := a.v.GetString("dm-library"); lib != "" {
				os.Setenv("GODBC_LIBRARY_PATH", lib)
			}
			return nil
		},
	}
	cmd.PersistentFlags().String("dm-library", "", "driver manager library to load")
	a.v.BindPFlag("dm-library", cmd.PersistentFlags().Lookup("dm-library"))

	drivers := &cobra.Command{
		Use:   "drivers",
		Short: "List drivers known to the driver manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			defer env.Close()

			list, err := env.Drivers()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range list {
				fmt.Fprintln(out, d.Description)
				keys := make([]string, 0, len(d.Attributes))
				for k := range d.Attributes {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "\t%s=%s\n", k, d.Attributes[k])
				}
			}
			return nil
		},
	}

	var scope string
	dsn := &cobra.Command{
		Use:   "dsn",
		Short: "List data sources known to the driver manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var direction odbc.SQLUSMALLINT
			switch scope {
			case "all":
				direction = odbc.SQL_FETCH_FIRST
			case "user":
				direction = odbc.SQL_FETCH_FIRST_USER
			case "system":
				direction = odbc.SQL_FETCH_FIRST_SYSTEM
			default:
				return fmt.Errorf("invalid scope %q (want all, user or system)", scope)
			}
			env, err := a.environment()
			if err != nil {
				return err
			}
			defer env.Close()

			list, err := env.DataSources(direction)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ds := range list {
				fmt.Fprintf(out, "%s\t%s\n", ds.Name, ds.Driver)
			}
			return nil
		},
	}
	dsn.Flags().StringVar(&scope, "scope", "all", "data sources to list (all, user or system)")

	cmd.AddCommand(drivers, dsn)
	return cmd
}

func (a *app) environment() (*odbc.Environment, error) {
	env, err := odbc.NewEnvironment()
	if err != nil {
		if odbc.IsDriverLoadError(err) {
			a.log.Error("driver manager could not load a driver", "err", err)
		}
		return nil, err
	}
	if path, err := odbc.LibraryPath(); err == nil {
		a.log.Debug("loaded driver manager", "path", path)
	}
	return env, nil
}
