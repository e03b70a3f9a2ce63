package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl/confgen"
)

func (a *app) sourcesCmd() *cobra.Command {
	var includes bool
	cmd := &cobra.Command{
		Use:   "sources ROOT",
		Short: "List the library sources of a vendored driver manager tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.flavor()
			if err != nil {
				return err
			}
			root := args[0]
			out := cmd.OutOrStdout()
			if includes {
				for _, d := range confgen.IncludeDirs(f) {
					fmt.Fprintln(out, filepath.Join(root, filepath.FromSlash(d)))
				}
				return nil
			}
			files, err := confgen.AllSources(afero.NewOsFs(), root, f)
			if err != nil {
				return err
			}
			a.log.Debug("collected sources", "root", root, "flavor", f, "count", len(files))
			for _, path := range files {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&includes, "includes", false, "list include directories instead of sources")
	return cmd
}
