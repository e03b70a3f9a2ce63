package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slingdata-io/ltdl/buildcfg"
)

// app holds the state shared by the subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "odbcshim",
		Short: "Load ODBC driver modules and prepare driver manager sources",
		Long: `odbcshim loads dynamic modules the way the ODBC driver managers do
(lazy binding, global symbol visibility) and generates the config.h and
ltdl.h headers needed to compile unixODBC or iODBC without autotools or
libltdl.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is /etc/odbcshim.yaml)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("flavor", "unixodbc", "driver manager flavor (unixodbc or iodbc)")
	a.v.BindPFlags(root.PersistentFlags())
	addVersionFlag(root.PersistentFlags())

	root.AddCommand(
		a.dltestCmd(),
		a.configCmd(),
		a.generateCmd(),
		a.sourcesCmd(),
		a.driversCmd(),
		a.dmCmd(),
	)
	return root
}

// init reads the config file and environment and sets up logging.
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath("/etc")
		a.v.SetConfigName("odbcshim")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("odbcshim")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || a.cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" && a.cfgFile == "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}

func (a *app) flavor() (buildcfg.Flavor, error) {
	return buildcfg.ParseFlavor(a.v.GetString("flavor"))
}
