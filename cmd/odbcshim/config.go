package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl/buildcfg"
	"github.com/slingdata-io/ltdl/confgen"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved platform capabilities and preprocessor defines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.flavor()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := buildcfg.Capabilities()
			fmt.Fprintf(out, "pointer width: %d\n", p.SizeofLongInt)
			fmt.Fprintf(out, "library suffix: %s\n", p.SharedLibExt)
			fmt.Fprintf(out, "os family: %s\n", p.OS)
			for _, dir := range confgen.LinkSearchPaths(cmd.Context(), os.Getenv) {
				fmt.Fprintf(out, "link search path: %s\n", dir)
			}
			fmt.Fprintf(out, "flavor: %s %s\n", f.Package(), f.Version())
			fmt.Fprintln(out, "defines:")
			for _, d := range buildcfg.Defines(f) {
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}
}
