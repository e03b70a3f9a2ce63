package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slingdata-io/ltdl/buildcfg"
	"github.com/slingdata-io/ltdl/confgen"
)

func (a *app) generateCmd() *cobra.Command {
	var stub bool
	cmd := &cobra.Command{
		Use:   "generate DIR",
		Short: "Write config.h (and ltdl.h for unixODBC) into a source directory",
		Long: `generate writes the config.h needed to compile the driver manager in
DIR without running configure. An existing config.h is left untouched.
For unixODBC the ltdl.h stub is written as well, so the sources compile
without libltdl; --stub writes it for iODBC too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.flavor()
			if err != nil {
				return err
			}
			dir := args[0]
			fs := afero.NewOsFs()
			written, err := confgen.Configure(fs, dir, f)
			if err != nil {
				return err
			}
			if stub && f != buildcfg.UnixODBC {
				if err := confgen.WriteLoaderStub(fs, dir); err != nil {
					return err
				}
				written = append(written, filepath.Join(dir, confgen.LoaderHeaderName))
			}
			out := cmd.OutOrStdout()
			kept := true
			for _, path := range written {
				if filepath.Base(path) == confgen.ConfigHeaderName {
					kept = false
				}
				a.log.Info("wrote header", "path", path, "flavor", f)
				fmt.Fprintln(out, "wrote", path)
			}
			if kept {
				fmt.Fprintln(out, "kept", filepath.Join(dir, confgen.ConfigHeaderName))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stub, "stub", false, "write the ltdl.h stub whatever the flavor")
	return cmd
}
