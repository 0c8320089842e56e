package main

import (
	"net/http"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/branched-services/go-unique/internal/bindgen"
	"github.com/branched-services/go-unique/internal/config"
	"github.com/branched-services/go-unique/internal/logging"
	"github.com/branched-services/go-unique/internal/pipeline"
	"github.com/branched-services/go-unique/internal/solc"
)

// app carries the collaborators shared by every subcommand. Nil fields are
// filled with production implementations.
type app struct {
	v    *viper.Viper
	fs   afero.Fs
	http *http.Client
	log  *zap.Logger

	downloader pipeline.Downloader
	compiler   solc.Compiler
	generator  bindgen.Generator
}

func newApp() *app {
	return &app{
		v:    config.New(),
		fs:   afero.NewOsFs(),
		http: http.DefaultClient,
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unique-sdk",
		Short:         "Release and code generation tooling for the Unique Network SDK",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(a.v); err != nil {
				return err
			}
			if a.log != nil {
				return nil
			}
			l, err := config.GetLog(a.v)
			if err != nil {
				return err
			}
			a.log, err = logging.New(l.Level, l.Format)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level: debug|info|warn|error")
	flags.String("log-format", "console", "log format: console|json")
	bindFlags(a.v, flags, map[string]string{
		config.ConfigFileKey: "config",
		config.LogLevelKey:   "log-level",
		config.LogFormatKey:  "log-format",
	})

	cmd.AddCommand(
		newBumpCmd(a),
		newInterfacesCmd(a),
		newBundlesCmd(),
	)
	return cmd
}

// bindFlags binds viper keys to flag names. Bind only fails on a nil flag,
// which is a programming error.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
