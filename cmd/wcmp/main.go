package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pthm/wcmp/lib/generator"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "wcmp",
		Short: "Web component compiler for Go",
		Long: `wcmp lowers component declarations into runtime registration code.

Structs embedding wcmp.Element are components. Their wc struct tags and
//wc: directives declare public fields, public methods, tracked fields
and wired members; wcmp generate writes the matching *_wc.go files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", generator.DefaultConfigFile, "Path to the generator config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	opts := func(dryRun bool) (generator.Options, error) {
		cfg, err := generator.LoadConfig(configPath)
		if err != nil {
			return generator.Options{}, err
		}
		log, err := newLogger(verbose)
		if err != nil {
			return generator.Options{}, err
		}
		return generator.Options{DryRun: dryRun, Config: cfg, Logger: log}, nil
	}

	rootCmd.AddCommand(
		generateCmd(opts),
		cleanCmd(opts),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: console output, info level unless
// verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// patternsOrDefault defaults to every package below the working directory.
func patternsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"./..."}
	}
	return args
}
