package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/grindlemire/go-boxlayout/internal/debug"
)

// globalOptions holds the persistent flags and the configuration they load.
type globalOptions struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "boxlayout",
		Short:         "Solve and draw single-axis box layouts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = debug.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./boxlayout.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newSolveCmd(opts), newRenderCmd(opts), newVersionCmd())
	return cmd
}

// init loads configuration and installs the logger.
func (o *globalOptions) init(cmd *cobra.Command) error {
	v := viper.New()
	if o.logLevel != "" {
		v.Set("logger.level", o.logLevel)
	}

	cfg, err := config.Load(v, o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	console := zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))
	if _, err := debug.Init(cfg.Logger, console); err != nil {
		return err
	}
	if debug.InitFromEnv() {
		debug.Logger().Info("debug log enabled", zap.String("env", debug.EnvVar))
	}

	debug.Logger().Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", v.ConfigFileUsed()),
		zap.Int("workers", cfg.Output.Workers))
	return nil
}
