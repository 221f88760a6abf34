package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	tcerror "github.com/msto63/textcase/foundation/core/error"
	tclog "github.com/msto63/textcase/foundation/core/log"
	"github.com/msto63/textcase/pkg/core/config"
	"github.com/msto63/textcase/pkg/core/logging"
	"github.com/msto63/textcase/pkg/textcase"
)

// app holds the state shared by every subcommand of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg       *config.Config
	logger    *tclog.Logger
	converter *textcase.Converter
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "textcase",
		Short: "textcase - Konvertierung von Zeichenketten",
		Long: `textcase wandelt Text in gängige Schreibweisen um.

Formate:
  title       - Jedes Wort Großgeschrieben
  slug        - kleinbuchstaben-mit-bindestrich
  snake       - kleinbuchstaben_mit_unterstrich
  camelcaps   - JedesWortGroßOhneTrenner
  camelcase   - erstesWortKleinDanachGroß
  namespaced  - kleinbuchstaben\mit\backslash`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: ./textcase.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newNormalizeCmd(a),
		newRandomCmd(a),
		newPluralCmd(a),
		newSingularCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and reports errors on stderr
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// setup loads the configuration and builds the logger and converter
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:    "textcase",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Output:  cmd.ErrOrStderr(),
		Verbose: a.verbose,
	})
	a.converter = textcase.New(cfg.ConverterConfig(a.logger))
	textcase.SetDefault(a.converter)

	a.logger.Debug("configuration loaded", tclog.Fields{
		"command":        cmd.Name(),
		"cache_enabled":  cfg.Cache.Enabled,
		"default_format": cfg.Convert.DefaultFormat,
	})
	return nil
}

// loadConfig reads --config or TEXTCASE_CONFIG when given. Otherwise the
// default locations are searched and no file at all means defaults.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if os.Getenv(config.EnvConfigPath) == "" && tcerror.HasCode(err, tcerror.CodeMissingConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
