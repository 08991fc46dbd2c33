package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/wcmp/lib/generator"
)

type optionsFunc func(dryRun bool) (generator.Options, error)

func generateCmd(opts optionsFunc) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate code for components",
		Long: `Generate *_wc.go files for every component in the given packages.

Examples:
  wcmp generate ./...                    Generate for all packages
  wcmp generate ./components/todo        Generate for a specific package
  wcmp generate --dry-run ./...          Preview generation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts(dryRun)
			if err != nil {
				return err
			}
			defer o.Logger.Sync() //nolint:errcheck
			return generator.New(o).Generate(patternsOrDefault(args)...)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")

	return cmd
}

func cleanCmd(opts optionsFunc) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean [packages]",
		Short: "Remove generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts(dryRun)
			if err != nil {
				return err
			}
			defer o.Logger.Sync() //nolint:errcheck
			return generator.New(o).Clean(patternsOrDefault(args)...)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without deleting files")

	return cmd
}
